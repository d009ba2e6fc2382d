package ingest

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/SlpAus/royale-coach-backend/internal/platform/database"
	"github.com/SlpAus/royale-coach-backend/internal/platform/gemini"
	"gorm.io/gorm"
)

//go:embed assets/deck-doctor-tutorials.md
var seedMarkdown string

// seedSourceTitle 是种子教程来源的固定标题，用于识别重复摄取。
const seedSourceTitle = "Deck Doctor Seed Tutorials"

// SeedTutorial 是从种子Markdown解析出的一篇教程。
type SeedTutorial struct {
	Title    string
	Content  string
	Category string
}

// SeedResult 汇总一次种子摄取的产出。
type SeedResult struct {
	TutorialsCount int `json:"tutorialsCount"`
	ChunksCount    int `json:"chunksCount"`
}

var seedSectionRe = regexp.MustCompile(`(?m)^\d+\.\s`)
var seedTitleRe = regexp.MustCompile(`^\d+\.\s+(.+)$`)

// ParseSeedMarkdown 把种子Markdown按编号小节解析为教程列表。
// 分类由小节内容中的关键词决定，默认归入basics。
func ParseSeedMarkdown(content string) []SeedTutorial {
	indexes := seedSectionRe.FindAllStringIndex(content, -1)
	tutorials := make([]SeedTutorial, 0, len(indexes))

	for i, idx := range indexes {
		end := len(content)
		if i+1 < len(indexes) {
			end = indexes[i+1][0]
		}
		section := strings.TrimSpace(content[idx[0]:end])
		if section == "" {
			continue
		}

		lines := strings.Split(section, "\n")
		m := seedTitleRe.FindStringSubmatch(lines[0])
		if m == nil {
			continue
		}

		category := "basics"
		switch {
		case strings.Contains(section, "Synergy"):
			category = "synergy"
		case strings.Contains(section, "Advanced"),
			strings.Contains(section, "Champion"),
			strings.Contains(section, "Evolution"):
			category = "advanced"
		case strings.Contains(section, "Archetype"), strings.Contains(section, "Combo"):
			category = "synergy"
		}

		tutorials = append(tutorials, SeedTutorial{
			Title:    m[1],
			Content:  strings.TrimSpace(strings.Join(lines[1:], "\n")),
			Category: category,
		})
	}
	return tutorials
}

// IngestSeed 把内置教程Markdown摄取进知识库。
// 重复执行是安全的：已存在的种子来源会清空旧分块后重建，教程按标题去重。
func IngestSeed(ctx context.Context) (*SeedResult, error) {
	tutorials := ParseSeedMarkdown(seedMarkdown)
	if len(tutorials) == 0 {
		return nil, errors.New("种子Markdown中没有可解析的教程")
	}
	fmt.Printf("种子摄取: 解析出 %d 篇教程。\n", len(tutorials))

	var source Source
	err := database.DB.WithContext(ctx).
		Where("type = ? AND title = ?", SourceTypeSeed, seedSourceTitle).
		First(&source).Error
	switch {
	case err == nil:
		fmt.Println("种子摄取: 来源已存在，清空旧分块后重建。")
		if err := database.DB.WithContext(ctx).
			Where("source_id = ?", source.ID).
			Delete(&SourceChunk{}).Error; err != nil {
			return nil, fmt.Errorf("无法清空旧的种子分块: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		tags, _ := json.Marshal([]string{"deck-building", "strategy", "fundamentals"})
		source = Source{
			Type:   SourceTypeSeed,
			Title:  seedSourceTitle,
			Author: "Internal",
			Tags:   string(tags),
			Status: StatusProcessing,
		}
		if err := database.DB.WithContext(ctx).Create(&source).Error; err != nil {
			return nil, fmt.Errorf("无法创建种子来源记录: %w", err)
		}
	default:
		return nil, fmt.Errorf("无法查询种子来源: %w", err)
	}

	totalChunks := 0
	for _, tutorial := range tutorials {
		var existing Tutorial
		err := database.DB.WithContext(ctx).
			Where("title = ?", tutorial.Title).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			record := Tutorial{
				Title:    tutorial.Title,
				Category: tutorial.Category,
				Content:  tutorial.Content,
				SourceID: source.ID,
			}
			if err := database.DB.WithContext(ctx).Create(&record).Error; err != nil {
				return nil, fmt.Errorf("无法写入教程 %q: %w", tutorial.Title, err)
			}
		} else if err != nil {
			return nil, fmt.Errorf("无法查询教程 %q: %w", tutorial.Title, err)
		}

		fullText := tutorial.Title + "\n\n" + tutorial.Content
		chunks := ChunkText(fullText, maxChunkSize())
		for chunkIdx, chunk := range chunks {
			if err := storeChunk(ctx, source.ID, totalChunks+chunkIdx, chunk); err != nil {
				// 单个分块失败只丢失该分块，继续摄取其余内容
				fmt.Printf("种子摄取: 教程 %q 第 %d 块写入失败: %v\n", tutorial.Title, chunkIdx, err)
			}
		}
		totalChunks += len(chunks)
	}

	if err := database.DB.WithContext(ctx).Model(&source).
		Update("status", StatusCompleted).Error; err != nil {
		return nil, fmt.Errorf("无法更新种子来源状态: %w", err)
	}

	fmt.Printf("种子摄取完成: %d 篇教程, %d 个分块。\n", len(tutorials), totalChunks)
	return &SeedResult{TutorialsCount: len(tutorials), ChunksCount: totalChunks}, nil
}

// storeChunk 为一段文本生成嵌入并落库。
func storeChunk(ctx context.Context, sourceID string, index int, content string) error {
	embedding, err := gemini.Embed(ctx, content)
	if err != nil {
		return fmt.Errorf("生成嵌入失败: %w", err)
	}
	raw, err := json.Marshal(embedding)
	if err != nil {
		return fmt.Errorf("序列化嵌入失败: %w", err)
	}
	chunk := SourceChunk{
		SourceID:   sourceID,
		ChunkIndex: index,
		Content:    content,
		Embedding:  string(raw),
	}
	if err := database.DB.WithContext(ctx).Create(&chunk).Error; err != nil {
		return fmt.Errorf("写入分块失败: %w", err)
	}
	return nil
}
