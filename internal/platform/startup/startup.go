package startup

import (
	"context"
	"fmt"

	"github.com/SlpAus/royale-coach-backend/internal/card"
	"github.com/SlpAus/royale-coach-backend/internal/counter"
	"github.com/SlpAus/royale-coach-backend/internal/ingest"
	"github.com/SlpAus/royale-coach-backend/internal/platform/backup"
	"github.com/SlpAus/royale-coach-backend/internal/platform/database"
	"github.com/SlpAus/royale-coach-backend/internal/platform/metadata"
)

// InitializeApplication 是应用首次启动时执行的总入口
func InitializeApplication() error {
	fmt.Println("开始应用首次初始化...")

	if err := metadata.PrimeDB(); err != nil {
		return err
	}
	if err := card.PrimeModule(); err != nil {
		return err
	}
	if err := ingest.PrimeModule(); err != nil {
		return err
	}
	if err := counter.PrimeModule(); err != nil {
		return err
	}

	if err := metadata.SetCatalogSize(database.DB, card.GetCatalog().Len()); err != nil {
		fmt.Printf("警告: 记录目录规模失败: %v\n", err)
	}

	fmt.Println("应用初始化完成！")
	return nil
}

// RebuildCache 是一个专门用于在运行时热重建Redis缓存的函数。
// 卡牌目录随静态表一起重建，热度计数从SQLite快照恢复。
func RebuildCache() error {
	fmt.Println("开始缓存热重建...")

	if err := card.RebuildCatalog(); err != nil {
		return err
	}
	if err := counter.WarmupPopularity(); err != nil {
		return err
	}

	// 触发一次新的快照，让SQLite立刻与恢复后的Redis对齐
	fmt.Println("缓存热重建完成，正在触发一次新的热度快照...")
	if err := backup.CreateSnapshot(context.Background()); err != nil {
		fmt.Printf("警告: 缓存热重建后的快照创建失败: %v\n", err)
	}

	return nil
}
