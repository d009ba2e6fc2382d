package deck

import (
	"errors"
	"net/http"

	"github.com/SlpAus/royale-coach-backend/internal/card"
	"github.com/SlpAus/royale-coach-backend/internal/platform/gemini"
	"github.com/SlpAus/royale-coach-backend/internal/rag"
	"github.com/gin-gonic/gin"
)

// AnalyzeRequestBody 定义了卡组分析请求体的JSON结构
type AnalyzeRequestBody struct {
	Cards []string `json:"cards" binding:"required"`
	// Mode 为空或"rubric"时走规则评分，"ai"时走Gemini分析
	Mode string `json:"mode"`
}

// AnalyzeDeck 处理卡组分析请求。
// 规则评分的ValidationError以400原样返回给前端。
func AnalyzeDeck(c *gin.Context) {
	var body AnalyzeRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Must provide exactly 8 card names"})
		return
	}

	catalog := card.GetCatalog()

	if body.Mode == "ai" {
		analyzeWithAI(c, catalog, body.Cards)
		return
	}

	cacheKey := cacheKeyForDeck(catalog, body.Cards)
	if cached := getCachedAnalysis(cacheKey); cached != nil {
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"analysis":     cached,
			"expertAdvice": expertAdviceFor(c, cached),
		})
		return
	}

	analysis, err := Analyze(catalog, body.Cards)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": vErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	putCachedAnalysis(cacheKey, analysis)

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"analysis":     analysis,
		"expertAdvice": expertAdviceFor(c, analysis),
	})
}

// analyzeWithAI 执行AI分析路径。前置校验与规则路径一致，先于LLM调用执行。
func analyzeWithAI(c *gin.Context, catalog *card.Catalog, cardNames []string) {
	// 复用规则引擎的前置校验：卡组必须是8张可解析的卡牌
	if _, err := Analyze(catalog, cardNames); err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": vErr.Message})
			return
		}
	}

	analysis, err := AnalyzeWithLLM(c.Request.Context(), catalog, cardNames)
	if err != nil {
		if errors.Is(err, gemini.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "AI analysis is not available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to analyze deck with AI. Please try again."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "analysis": analysis})
}

// expertAdviceFor 用评分发现的问题检索知识库，为分析结果附上专家引文。
// 检索失败或没有命中时返回空列表，不影响主结果。
func expertAdviceFor(c *gin.Context, analysis *DeckAnalysis) []rag.Citation {
	if len(analysis.Issues) == 0 {
		return []rag.Citation{}
	}
	query := "How to fix a Clash Royale deck with these problems: " + analysis.Issues[0]
	citations, err := rag.SearchKnowledgeBase(c.Request.Context(), query, 3, 0.5)
	if err != nil || citations == nil {
		return []rag.Citation{}
	}
	return citations
}
