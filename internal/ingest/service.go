package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SlpAus/royale-coach-backend/internal/platform/config"
	"github.com/SlpAus/royale-coach-backend/internal/platform/database"
	"github.com/SlpAus/royale-coach-backend/pkg/lifecycle"
	"gorm.io/gorm"
)

// ErrDuplicateURL 表示该URL已经摄取过。
var ErrDuplicateURL = errors.New("This URL has already been ingested")

// ErrQueueFull 表示后台摄取队列已满，调用方应稍后重试。
var ErrQueueFull = errors.New("Ingestion queue is full. Please try again later.")

// ingestJob 是投递给后台工作协程的一个摄取任务。
type ingestJob struct {
	SourceID string
	URL      string
}

var jobQueue chan ingestJob

// maxChunkSize 返回配置的分块大小上限。
func maxChunkSize() int {
	if config.Cfg != nil && config.Cfg.Ingest.MaxChunkSize > 0 {
		return config.Cfg.Ingest.MaxChunkSize
	}
	return 500
}

// IngestURL 登记一个新的URL来源并投递后台摄取任务。
// 抓取和嵌入在工作协程中异步执行，调用方立即拿到processing状态的来源ID。
func IngestURL(ctx context.Context, url string, tags []string) (string, error) {
	var existing Source
	err := database.DB.WithContext(ctx).Where("url = ?", url).First(&existing).Error
	if err == nil {
		return "", ErrDuplicateURL
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("无法查询已有来源: %w", err)
	}

	sourceType := SourceTypeArticle
	if extractYouTubeVideoID(url) != "" {
		sourceType = SourceTypeYouTube
	}
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, _ := json.Marshal(tags)

	source := Source{
		Type:   sourceType,
		URL:    url,
		Title:  "Processing...",
		Tags:   string(tagsJSON),
		Status: StatusProcessing,
	}
	if err := database.DB.WithContext(ctx).Create(&source).Error; err != nil {
		return "", fmt.Errorf("无法创建来源记录: %w", err)
	}

	select {
	case jobQueue <- ingestJob{SourceID: source.ID, URL: url}:
		return source.ID, nil
	default:
		markFailed(source.ID, ErrQueueFull.Error())
		return "", ErrQueueFull
	}
}

// StartWorker 启动后台摄取工作协程。
// 收到停机信号后丢弃未处理的任务退出，对应来源保持processing状态，
// 重启后管理员可以删除重提。
func StartWorker(handle *lifecycle.Handle) {
	defer handle.Close()
	fmt.Println("内容摄取工作协程已启动。")

	for {
		select {
		case <-handle.Done():
			fmt.Println("摄取工作协程: 收到停机信号，正在关闭...")
			return
		case job := <-jobQueue:
			processJob(handle.Ctx(), job)
		}
	}
}

// processJob 执行一次完整的URL摄取: 抓取、分块、嵌入、落库。
func processJob(ctx context.Context, job ingestJob) {
	fmt.Printf("摄取工作协程: 正在处理 %s ...\n", job.URL)

	content, err := fetchURLContent(ctx, job.URL)
	if err != nil {
		fmt.Printf("摄取工作协程: 抓取 %s 失败: %v\n", job.URL, err)
		markFailed(job.SourceID, err.Error())
		return
	}

	updates := map[string]interface{}{
		"title":  content.Title,
		"author": content.Author,
	}
	if err := database.DB.Model(&Source{}).
		Where("id = ?", job.SourceID).Updates(updates).Error; err != nil {
		fmt.Printf("摄取工作协程: 更新来源 %s 失败: %v\n", job.SourceID, err)
		markFailed(job.SourceID, err.Error())
		return
	}

	chunks := ChunkText(content.Content, maxChunkSize())
	fmt.Printf("摄取工作协程: %s 切分为 %d 个分块。\n", job.URL, len(chunks))

	stored := 0
	for i, chunk := range chunks {
		if err := storeChunk(ctx, job.SourceID, i, chunk); err != nil {
			fmt.Printf("摄取工作协程: 第 %d 块处理失败: %v\n", i, err)
			continue
		}
		stored++
	}
	if stored == 0 {
		markFailed(job.SourceID, "没有任何分块成功入库")
		return
	}

	if err := database.DB.Model(&Source{}).
		Where("id = ?", job.SourceID).
		Update("status", StatusCompleted).Error; err != nil {
		fmt.Printf("摄取工作协程: 标记来源 %s 完成失败: %v\n", job.SourceID, err)
		return
	}
	fmt.Printf("摄取工作协程: %s 摄取完成 (%d/%d 分块)。\n", job.URL, stored, len(chunks))
}

// markFailed 把来源标记为失败并记录原因。
func markFailed(sourceID, reason string) {
	err := database.DB.Model(&Source{}).
		Where("id = ?", sourceID).
		Updates(map[string]interface{}{
			"status": StatusFailed,
			"error":  reason,
		}).Error
	if err != nil {
		fmt.Printf("无法把来源 %s 标记为失败: %v\n", sourceID, err)
	}
}
