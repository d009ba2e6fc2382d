package card

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

// 静态输入表以内嵌JSON的形式随二进制分发：
// 卡牌列表来自RoyaleAPI，两张属性表来自cr-api-data。
// 这些表在目录构建前已在内存中，核心逻辑不做任何I/O。
var (
	//go:embed assets/cards.json
	rawCardsJSON []byte
	//go:embed assets/cards_stats_characters.json
	rawCharacterStatsJSON []byte
	//go:embed assets/cards_stats_building.json
	rawBuildingStatsJSON []byte
)

// loadStaticTables 解码三张内嵌表。
func loadStaticTables() (raw []RawCard, charStats, buildingStats []CardStats, err error) {
	if err = json.Unmarshal(rawCardsJSON, &raw); err != nil {
		return nil, nil, nil, fmt.Errorf("无法解析内嵌卡牌列表: %w", err)
	}
	if err = json.Unmarshal(rawCharacterStatsJSON, &charStats); err != nil {
		return nil, nil, nil, fmt.Errorf("无法解析角色属性表: %w", err)
	}
	if err = json.Unmarshal(rawBuildingStatsJSON, &buildingStats); err != nil {
		return nil, nil, nil, fmt.Errorf("无法解析建筑属性表: %w", err)
	}
	return raw, charStats, buildingStats, nil
}
