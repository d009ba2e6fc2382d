package deck

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/SlpAus/royale-coach-backend/internal/card"
	"github.com/SlpAus/royale-coach-backend/internal/platform/database"
)

const (
	// analysisCachePrefix 是Redis中评分结果缓存的键名前缀
	analysisCachePrefix = "deck_analysis:"
	// analysisCacheTTL 是缓存条目的生存时间
	analysisCacheTTL = time.Hour
)

// cacheKeyForDeck 由卡组的规范key生成与卡牌顺序无关的缓存键。
// 任意一张卡解析失败时返回空串，交由评分引擎产生正式的校验错误。
func cacheKeyForDeck(catalog *card.Catalog, cardNames []string) string {
	keys := make([]string, 0, len(cardNames))
	for _, name := range cardNames {
		key, info := catalog.ResolveKey(name)
		if info == nil {
			return ""
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return analysisCachePrefix + strings.Join(keys, ",")
}

// getCachedAnalysis 尝试从Redis读取缓存的评分结果。
// Redis不可用或未命中时返回nil，调用方正常执行评分。
func getCachedAnalysis(cacheKey string) *DeckAnalysis {
	if cacheKey == "" || database.RDB == nil || !database.IsRedisHealthy() {
		return nil
	}
	raw, err := database.RDB.Get(database.Ctx, cacheKey).Result()
	if err != nil {
		return nil
	}
	var analysis DeckAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil
	}
	return &analysis
}

// putCachedAnalysis 把评分结果写入Redis。写入失败只会丢失缓存，不影响响应。
func putCachedAnalysis(cacheKey string, analysis *DeckAnalysis) {
	if cacheKey == "" || database.RDB == nil || !database.IsRedisHealthy() {
		return
	}
	raw, err := json.Marshal(analysis)
	if err != nil {
		return
	}
	database.RDB.Set(database.Ctx, cacheKey, raw, analysisCacheTTL)
}
