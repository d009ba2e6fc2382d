package health

import (
	"net/http"

	"github.com/SlpAus/royale-coach-backend/internal/card"
	"github.com/SlpAus/royale-coach-backend/internal/platform/database"
	"github.com/SlpAus/royale-coach-backend/internal/platform/gemini"
	"github.com/gin-gonic/gin"
)

// GetHealth 返回服务与依赖的当前状态。
// Redis降级不影响核心评分能力，因此整体状态仍为ok。
func GetHealth(c *gin.Context) {
	redisStatus := "healthy"
	if !database.IsRedisHealthy() {
		redisStatus = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"redis":       redisStatus,
		"gemini":      gemini.Enabled(),
		"catalogSize": card.GetCatalog().Len(),
	})
}
