package rag

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// QueryRequestBody 定义了知识库问答请求体的JSON结构
type QueryRequestBody struct {
	Query string `json:"query" binding:"required"`
}

// QueryKnowledgeBase 处理知识库问答请求。
func QueryKnowledgeBase(c *gin.Context) {
	var body QueryRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Query is required"})
		return
	}

	result, err := GenerateCitedAnswer(c.Request.Context(), body.Query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to query knowledge base"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}
