package rag

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/SlpAus/royale-coach-backend/internal/ingest"
	"github.com/SlpAus/royale-coach-backend/internal/platform/database"
	"github.com/SlpAus/royale-coach-backend/internal/platform/gemini"
)

// Citation 是知识库检索的一条命中结果，附带来源信息和相关度。
type Citation struct {
	SourceID       string  `json:"sourceId"`
	SourceTitle    string  `json:"sourceTitle"`
	SourceType     string  `json:"sourceType"`
	SourceURL      string  `json:"sourceUrl,omitempty"`
	ChunkContent   string  `json:"chunkContent"`
	RelevanceScore float64 `json:"relevanceScore"`
}

// Result 是一次带引文问答的完整结果。
type Result struct {
	Answer    string     `json:"answer"`
	Citations []Citation `json:"citations"`
}

// DefaultTopK 和 DefaultMinSimilarity 是检索的默认参数。
const (
	DefaultTopK          = 5
	DefaultMinSimilarity = 0.5
)

type scoredChunk struct {
	chunk      ingest.SourceChunk
	source     ingest.Source
	similarity float64
}

// SearchKnowledgeBase 对知识库做一次语义检索。
// 知识库规模是人工维护的数量级，直接线性扫描全部分块计算余弦相似度。
func SearchKnowledgeBase(ctx context.Context, query string, topK int, minSimilarity float64) ([]Citation, error) {
	queryEmbedding, err := gemini.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("无法生成查询嵌入: %w", err)
	}

	// 只检索已完成摄取的来源
	var sources []ingest.Source
	if err := database.DB.WithContext(ctx).
		Where("status = ?", ingest.StatusCompleted).
		Preload("Chunks").
		Find(&sources).Error; err != nil {
		return nil, fmt.Errorf("无法加载知识库分块: %w", err)
	}

	scored := make([]scoredChunk, 0)
	for _, source := range sources {
		for _, chunk := range source.Chunks {
			if chunk.Embedding == "" {
				continue
			}
			var embedding []float32
			if err := json.Unmarshal([]byte(chunk.Embedding), &embedding); err != nil {
				fmt.Printf("知识库分块 %s 的嵌入无法解析，已跳过: %v\n", chunk.ID, err)
				continue
			}
			similarity, err := CosineSimilarity(queryEmbedding, embedding)
			if err != nil || similarity < minSimilarity {
				continue
			}
			scored = append(scored, scoredChunk{chunk: chunk, source: source, similarity: similarity})
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].similarity > scored[j].similarity
	})
	if topK > 0 && len(scored) > topK {
		scored = scored[:topK]
	}

	citations := make([]Citation, 0, len(scored))
	for _, s := range scored {
		citations = append(citations, Citation{
			SourceID:       s.source.ID,
			SourceTitle:    s.source.Title,
			SourceType:     s.source.Type,
			SourceURL:      s.source.URL,
			ChunkContent:   s.chunk.Content,
			RelevanceScore: s.similarity,
		})
	}
	return citations, nil
}

// FormatCitations 把引文渲染为编号列表，供前端直接展示。
func FormatCitations(citations []Citation) string {
	if len(citations) == 0 {
		return ""
	}
	lines := make([]string, len(citations))
	for i, c := range citations {
		sourceInfo := c.SourceTitle
		if c.SourceURL != "" {
			sourceInfo = fmt.Sprintf("[%s](%s)", c.SourceTitle, c.SourceURL)
		}
		lines[i] = fmt.Sprintf("[%d] %s (%s)", i+1, sourceInfo, c.SourceType)
	}
	return strings.Join(lines, "\n")
}

// GenerateCitedAnswer 执行一次带引文的知识库问答。
// 没有命中时返回固定的提示文案，引导管理员补充来源。
func GenerateCitedAnswer(ctx context.Context, query string) (*Result, error) {
	citations, err := SearchKnowledgeBase(ctx, query, DefaultTopK, DefaultMinSimilarity)
	if err != nil {
		return nil, err
	}

	if len(citations) == 0 {
		return &Result{
			Answer:    "I don't have enough expert knowledge in the database yet to answer this question confidently. Please add more sources in the Admin panel.",
			Citations: []Citation{},
		}, nil
	}

	answer := fmt.Sprintf("Based on expert sources:\n\n%s\n\n%s",
		citations[0].ChunkContent, FormatCitations(citations))
	return &Result{Answer: answer, Citations: citations}, nil
}
