package api

import (
	"github.com/SlpAus/royale-coach-backend/internal/card"
	"github.com/SlpAus/royale-coach-backend/internal/counter"
	"github.com/SlpAus/royale-coach-backend/internal/deck"
	"github.com/SlpAus/royale-coach-backend/internal/ingest"
	"github.com/SlpAus/royale-coach-backend/internal/platform/health"
	"github.com/SlpAus/royale-coach-backend/internal/rag"
	"github.com/SlpAus/royale-coach-backend/internal/ratelimit"
	"github.com/SlpAus/royale-coach-backend/internal/replay"
	"github.com/gin-gonic/gin"
)

// aiRequestsPerHour 是调用LLM的端点对单个IP的滑动窗口限额。
const aiRequestsPerHour = 30

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/health", health.GetHealth)

		// 卡牌目录 /api/cards
		cardRoutes := api.Group("/cards")
		{
			cardRoutes.GET("", card.GetCards)
			cardRoutes.GET("/:name", card.GetCardByName)
		}

		// 卡组诊断 /api/deck-doctor
		api.POST("/deck-doctor/analyze", ratelimit.PerIPMiddleware(aiRequestsPerHour), deck.AnalyzeDeck)

		// 克制指南 /api/counter-guide
		api.POST("/counter-guide", counter.GetCounterStrategy)
		api.GET("/counter-guide/cards", counter.GetCounterCards)

		// 知识库 /api/rag 与 /api/sources
		api.POST("/rag/query", rag.QueryKnowledgeBase)
		api.GET("/sources", ingest.GetSources)
		api.GET("/tutorials", ingest.GetTutorials)

		// 对战复盘 /api/replay-analyzer
		api.POST("/replay-analyzer", replay.AnalyzePlayer)
		api.POST("/replay-analyzer/analyze-battle", ratelimit.PerIPMiddleware(aiRequestsPerHour), replay.AnalyzeBattle)

		// 管理端点: 内容摄取
		adminRoutes := api.Group("/ingest", ingest.AdminAuthMiddleware())
		{
			adminRoutes.POST("/url", ingest.IngestURLHandler)
			adminRoutes.POST("/seed", ingest.IngestSeedHandler)
		}
	}
}
