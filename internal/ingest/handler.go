package ingest

import (
	"errors"
	"net/http"

	"github.com/SlpAus/royale-coach-backend/internal/platform/database"
	"github.com/gin-gonic/gin"
)

// IngestURLRequestBody 定义了URL摄取请求体的JSON结构
type IngestURLRequestBody struct {
	URL  string   `json:"url" binding:"required"`
	Tags []string `json:"tags"`
}

// IngestURLHandler 处理URL摄取请求，任务在后台执行。
func IngestURLHandler(c *gin.Context) {
	var body IngestURLRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "URL is required"})
		return
	}

	sourceID, err := IngestURL(c.Request.Context(), body.URL, body.Tags)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateURL):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
		case errors.Is(err, ErrQueueFull):
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to ingest URL"})
		}
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"success": true, "sourceId": sourceID, "status": StatusProcessing})
}

// IngestSeedHandler 触发一次内置教程的种子摄取。
func IngestSeedHandler(c *gin.Context) {
	result, err := IngestSeed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to ingest seed tutorials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}

// GetSources 返回全部知识库来源，按创建时间倒序。
func GetSources(c *gin.Context) {
	var sources []Source
	if err := database.DB.WithContext(c.Request.Context()).
		Order("created_at DESC").Find(&sources).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load sources"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "sources": sources})
}

// GetTutorials 返回全部内置教程，按分类和创建顺序排列。
func GetTutorials(c *gin.Context) {
	var tutorials []Tutorial
	if err := database.DB.WithContext(c.Request.Context()).
		Order("category, created_at").Find(&tutorials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load tutorials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tutorials": tutorials})
}
