package card

import (
	"sort"
	"strings"
)

// Catalog 是不可变的卡牌目录：一次性构建，之后只读，
// 可以被任意多个并发的Resolve调用安全共享。
type Catalog struct {
	// cards 以原始key（未经归一化）为主键
	cards map[string]*CardInfo
	// index 把每个归一化变体映射回规范key。
	// 不变式：每个变体最多映射到一个key；两张卡牌归一化后冲突时后写者胜，
	// 这是有意保留的行为（源数据假定已去重），不要改成唯一性校验。
	index map[string]string
}

// BuildCatalog 从三张静态输入表同步构建完整目录。
// 格式不完整的原始记录（缺key、名称、费用或类型）被静默丢弃；
// 找不到属性记录的卡牌以降级但合法的状态进入目录。
func BuildCatalog(raw []RawCard, charStats, buildingStats []CardStats) *Catalog {
	// 属性表按连接形式的名称建立辅助索引，重复键后写者胜
	charByName := make(map[string]*CardStats, len(charStats))
	for i := range charStats {
		if charStats[i].Name != "" {
			charByName[NormalizeForJoin(charStats[i].Name)] = &charStats[i]
		}
	}
	buildingByName := make(map[string]*CardStats, len(buildingStats))
	for i := range buildingStats {
		if buildingStats[i].Name != "" {
			buildingByName[NormalizeForJoin(buildingStats[i].Name)] = &buildingStats[i]
		}
	}

	c := &Catalog{
		cards: make(map[string]*CardInfo, len(raw)),
		index: make(map[string]string, len(raw)*5),
	}

	for _, r := range raw {
		if r.Key == "" || r.Name == "" || r.Elixir == nil || r.Type == "" {
			continue
		}

		var stats *CardStats
		switch r.Type {
		case TypeBuilding:
			stats = buildingByName[NormalizeForJoin(r.Name)]
		case TypeTroop:
			stats = charByName[NormalizeForJoin(r.Name)]
		}
		// 法术没有属性表，stats保持为nil

		info := classify(r, stats)
		c.cards[r.Key] = &info
	}

	c.buildIndex()
	return c
}

// buildIndex 为每张卡牌注册所有归一化变体。
// 每次注册都是无条件覆盖，冲突时后写者胜。
func (c *Catalog) buildIndex() {
	for key, info := range c.cards {
		c.addIndex(NormalizeForJoin(key), key)
		c.addIndex(NormalizeCardName(key), key)
		c.addIndex(NormalizeForJoin(info.Name), key)
		c.addIndex(NormalizeCardName(info.Name), key)
		// key去掉连字符的变体（用户输入中常见）
		c.addIndex(NormalizeForJoin(strings.ReplaceAll(key, "-", " ")), key)
		// 处理常见冠词："The Log" <-> "Log"
		if strings.HasPrefix(strings.ToLower(info.Name), "the ") {
			c.addIndex(NormalizeForJoin(info.Name[4:]), key)
			c.addIndex(NormalizeCardName(info.Name[4:]), key)
		}
	}
}

func (c *Catalog) addIndex(normalized, key string) {
	if normalized == "" {
		return
	}
	c.index[normalized] = key
}

// Resolve 把任意用户输入解析为目录中的卡牌，无法解析时返回nil。
// 回退链必须保持原有顺序：后面的回退专门处理前面遗漏的
// 标点密集名称（"P.E.K.K.A"）和进化前缀输入（"Evolved Archers"）。
func (c *Catalog) Resolve(input string) *CardInfo {
	_, info := c.ResolveKey(input)
	return info
}

// ResolveKey 与Resolve相同，但同时返回规范key，供需要key的调用方使用。
func (c *Catalog) ResolveKey(input string) (string, *CardInfo) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return "", nil
	}

	// 允许用户输入进化卡名称，映射回基础卡牌
	evolvedStripped := raw
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "evolved ") {
		evolvedStripped = strings.TrimSpace(raw[len("evolved "):])
	}

	// 快速路径：输入本身就是规范key
	slug := NormalizeCardName(raw)
	if info, ok := c.cards[slug]; ok {
		return slug, info
	}

	// 连接形式的级联回退，命中即停
	candidates := []string{
		NormalizeForJoin(raw),
		NormalizeForJoin(slug),
	}
	if evolvedStripped != raw {
		candidates = append(candidates,
			NormalizeForJoin(evolvedStripped),
			NormalizeForJoin(NormalizeCardName(evolvedStripped)),
		)
	}
	for _, candidate := range candidates {
		if key, ok := c.index[candidate]; ok {
			return key, c.cards[key]
		}
	}
	return "", nil
}

// Card 按规范key直接查找，不做任何归一化。
func (c *Catalog) Card(key string) (*CardInfo, bool) {
	info, ok := c.cards[key]
	return info, ok
}

// Len 返回目录中的卡牌数量。
func (c *Catalog) Len() int {
	return len(c.cards)
}

// SortedEntries 返回按显示名称排序的(key, CardInfo)列表，供列表API使用。
func (c *Catalog) SortedEntries() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(c.cards))
	for key, info := range c.cards {
		entries = append(entries, CatalogEntry{Key: key, Info: info})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Info.Name < entries[j].Info.Name
	})
	return entries
}

// CatalogEntry 是目录的一条只读条目。
type CatalogEntry struct {
	Key  string
	Info *CardInfo
}
