package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/SlpAus/royale-coach-backend/internal/platform/config"
	"google.golang.org/genai"
)

// ErrNotConfigured 表示没有配置API密钥，所有依赖Gemini的端点应向调用方报告不可用。
var ErrNotConfigured = errors.New("Gemini API密钥未配置")

// client 是全局的Gemini客户端实例。未配置密钥时保持为nil。
var client *genai.Client

var (
	generationModel string
	embeddingModel  string
)

// InitClient 根据配置初始化Gemini客户端。
// 密钥缺失不是启动错误：评分核心完全不依赖LLM，AI端点各自降级。
func InitClient(cfg config.GeminiConfig) error {
	generationModel = cfg.Model
	embeddingModel = cfg.EmbeddingModel

	if cfg.APIKey == "" {
		fmt.Println("未配置Gemini API密钥，AI分析端点将不可用，嵌入退化为零向量。")
		return nil
	}

	c, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return fmt.Errorf("无法创建Gemini客户端: %w", err)
	}
	client = c
	fmt.Println("Gemini客户端初始化成功。")
	return nil
}

// Enabled 返回Gemini客户端是否可用。
func Enabled() bool {
	return client != nil
}

// GenerateJSON 以JSON响应模式执行一次文本生成，返回原始响应文本。
func GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if client == nil {
		return "", ErrNotConfigured
	}

	contents := []*genai.Content{
		genai.NewContentFromText(systemPrompt, genai.RoleUser),
		genai.NewContentFromText(userPrompt, genai.RoleUser),
	}
	result, err := client.Models.GenerateContent(ctx, generationModel, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr(float32(0.7)),
	})
	if err != nil {
		return "", fmt.Errorf("Gemini生成失败: %w", err)
	}
	return result.Text(), nil
}

// EmbeddingDimensions 是嵌入向量的维度(gemini-embedding-001)。
const EmbeddingDimensions = 768

// Embed 为一段文档文本生成嵌入向量。
// 未配置密钥时返回零向量：零向量与任何查询的余弦相似度不会超过阈值，
// 检索会安全地返回空结果，摄取流程无需特判。
func Embed(ctx context.Context, text string) ([]float32, error) {
	return embed(ctx, text, "RETRIEVAL_DOCUMENT")
}

// EmbedQuery 为一条检索查询生成嵌入向量。
func EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return embed(ctx, text, "RETRIEVAL_QUERY")
}

func embed(ctx context.Context, text string, taskType string) ([]float32, error) {
	if client == nil {
		return make([]float32, EmbeddingDimensions), nil
	}

	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}
	result, err := client.Models.EmbedContent(ctx, embeddingModel, contents, &genai.EmbedContentConfig{
		TaskType: taskType,
	})
	if err != nil {
		return nil, fmt.Errorf("Gemini嵌入失败: %w", err)
	}
	if len(result.Embeddings) == 0 {
		return nil, errors.New("Gemini没有返回嵌入向量")
	}
	return result.Embeddings[0].Values, nil
}
