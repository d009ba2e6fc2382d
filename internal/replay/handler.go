package replay

import (
	"errors"
	"net/http"

	"github.com/SlpAus/royale-coach-backend/internal/card"
	"github.com/SlpAus/royale-coach-backend/internal/platform/clash"
	"github.com/SlpAus/royale-coach-backend/internal/platform/gemini"
	"github.com/SlpAus/royale-coach-backend/internal/rag"
	"github.com/gin-gonic/gin"
)

// AnalyzeBattleRequestBody 定义了对战复盘请求体的JSON结构
type AnalyzeBattleRequestBody struct {
	Battle    *Battle `json:"battle" binding:"required"`
	PlayerTag string  `json:"playerTag" binding:"required"`
}

// AnalyzeBattle 处理对战复盘请求。
func AnalyzeBattle(c *gin.Context) {
	var body AnalyzeBattleRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Battle data and player tag are required"})
		return
	}

	analysis, err := AnalyzeBattleWithAI(c.Request.Context(), card.GetCatalog(), body.Battle, body.PlayerTag)
	if err != nil {
		if errors.Is(err, gemini.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Battle analysis is not available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to analyze battle with AI. Please try again."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "analysis": analysis})
}

// AnalyzePlayerRequestBody 定义了玩家战绩分析请求体的JSON结构
type AnalyzePlayerRequestBody struct {
	PlayerTag string `json:"playerTag" binding:"required"`
}

// AnalyzePlayer 拉取玩家档案和最近战绩，挖掘行为模式并附上专家建议。
func AnalyzePlayer(c *gin.Context) {
	var body AnalyzePlayerRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Player tag is required"})
		return
	}
	ctx := c.Request.Context()

	player, err := clash.GetPlayer(ctx, body.PlayerTag)
	if err != nil {
		respondClashError(c, err)
		return
	}
	var battles []Battle
	if err := clash.GetBattleLog(ctx, body.PlayerTag, &battles); err != nil {
		respondClashError(c, err)
		return
	}

	patterns := AnalyzeBattlePatterns(battles)

	// 用最严重的模式检索知识库，检索失败不影响主结果
	expertAdvice := []rag.Citation{}
	if len(patterns) > 0 {
		query := "Clash Royale advice: " + patterns[0].Description + " " + patterns[0].Recommendation
		if citations, err := rag.SearchKnowledgeBase(ctx, query, 3, 0.5); err == nil && citations != nil {
			expertAdvice = citations
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"player": gin.H{
			"name":         player.Name,
			"tag":          player.Tag,
			"trophies":     player.Trophies,
			"bestTrophies": player.BestTrophies,
			"wins":         player.Wins,
			"losses":       player.Losses,
		},
		"battles":      battles,
		"patterns":     patterns,
		"expertAdvice": expertAdvice,
	})
}

// respondClashError 把官方API客户端的错误映射为HTTP响应。
func respondClashError(c *gin.Context, err error) {
	if errors.Is(err, clash.ErrNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success":  false,
			"error":    "Clash Royale API is not configured",
			"disabled": true,
		})
		return
	}
	var apiErr *clash.APIError
	if errors.As(err, &apiErr) {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "API Error: " + apiErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to analyze player battles. Please try again."})
}
