package ingest

import (
	"fmt"

	"github.com/SlpAus/royale-coach-backend/internal/platform/config"
	"github.com/SlpAus/royale-coach-backend/internal/platform/database"
)

// PrimeModule 负责初始化ingest模块: 迁移数据库表并创建任务队列。
func PrimeModule() error {
	if err := database.DB.AutoMigrate(&Source{}, &SourceChunk{}, &Tutorial{}); err != nil {
		return fmt.Errorf("无法迁移ingest模块的表: %w", err)
	}

	queueSize := 16
	if config.Cfg != nil && config.Cfg.Ingest.QueueSize > 0 {
		queueSize = config.Cfg.Ingest.QueueSize
	}
	jobQueue = make(chan ingestJob, queueSize)

	fmt.Println("Ingest模块初始化成功。")
	return nil
}
