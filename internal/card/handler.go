package card

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// --- API响应模型 ---

type CardResponse struct {
	Key     string  `json:"key"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Elixir  int     `json:"elixir"`
	Roles   []Role  `json:"roles"`
	Targets Targets `json:"targets,omitempty"`
}

func formatCard(key string, info *CardInfo) CardResponse {
	return CardResponse{
		Key:     key,
		Name:    info.Name,
		Type:    info.Type,
		Elixir:  info.Elixir,
		Roles:   info.Roles,
		Targets: info.Targets,
	}
}

// GetCards 返回按显示名称排序的完整卡牌列表。
func GetCards(c *gin.Context) {
	catalog := GetCatalog()
	entries := catalog.SortedEntries()

	cards := make([]CardResponse, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, formatCard(e.Key, e.Info))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cards": cards})
}

// GetCardByName 把路径参数当作任意用户输入解析为一张卡牌。
func GetCardByName(c *gin.Context) {
	catalog := GetCatalog()
	key, info := catalog.ResolveKey(c.Param("name"))
	if info == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Card not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "card": formatCard(key, info)})
}
