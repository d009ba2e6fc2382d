package counter

import (
	"fmt"
	"net/http"

	"github.com/SlpAus/royale-coach-backend/internal/card"
	"github.com/SlpAus/royale-coach-backend/internal/rag"
	"github.com/gin-gonic/gin"
)

// StrategyRequestBody 定义了克制查询请求体的JSON结构
type StrategyRequestBody struct {
	CardName string `json:"cardName" binding:"required"`
}

// GetCounterStrategy 处理克制方案查询请求。
func GetCounterStrategy(c *gin.Context) {
	var body StrategyRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Card name is required"})
		return
	}

	strategy, ok := GetStrategy(body.CardName)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   fmt.Sprintf("No counter strategy found for %q", body.CardName),
		})
		return
	}
	recordQuery(card.NormalizeCardName(body.CardName))

	// 附带知识库中关于该卡牌的专家建议，检索失败不影响主结果
	expertAdvice := []rag.Citation{}
	query := "How to counter " + strategy.TargetCard + " in Clash Royale"
	if citations, err := rag.SearchKnowledgeBase(c.Request.Context(), query,
		rag.DefaultTopK, rag.DefaultMinSimilarity); err == nil && citations != nil {
		expertAdvice = citations
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"strategy":     strategy,
		"expertAdvice": expertAdvice,
	})
}

// GetCounterCards 返回所有有克制方案的目标卡牌列表。
// Redis可用时按查询热度降序排列，否则退回字典序。
func GetCounterCards(c *gin.Context) {
	cards := AllTargetCards()

	if top, err := TopQueried(c.Request.Context(), int64(len(cards))); err == nil && len(top) > 0 {
		ranked := make([]string, 0, len(cards))
		seen := make(map[string]bool, len(cards))
		for _, entry := range top {
			key, ok := entry.Member.(string)
			if !ok {
				continue
			}
			strategy, exists := counterStrategies[key]
			if !exists {
				continue
			}
			ranked = append(ranked, strategy.TargetCard)
			seen[strategy.TargetCard] = true
		}
		for _, name := range cards {
			if !seen[name] {
				ranked = append(ranked, name)
			}
		}
		cards = ranked
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "cards": cards})
}
