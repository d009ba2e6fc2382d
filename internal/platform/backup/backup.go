package backup

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SlpAus/royale-coach-backend/internal/counter"
	"github.com/SlpAus/royale-coach-backend/internal/platform/database"
	"github.com/SlpAus/royale-coach-backend/internal/platform/metadata"
	"github.com/SlpAus/royale-coach-backend/pkg/lifecycle"
)

const backupInterval = 10 * time.Minute // 定时快照频率

var backupMutex sync.Mutex // 避免调度器与停机路径并发快照

// StartBackupScheduler 启动一个后台Goroutine来定期把Redis中的
// 克制查询热度快照到SQLite。它接收一个lifecycle.Handle来管理其生命周期。
func StartBackupScheduler(handle *lifecycle.Handle) {
	defer handle.Close() // 确保在退出时通知管理器
	fmt.Println("热度快照调度器已启动。")

	for {
		// 使用可中断的休眠来代替ticker。
		// 这使得整个循环可以在收到停机信号时立刻从休眠中唤醒并退出。
		if err := handle.Sleep(backupInterval); err != nil {
			fmt.Println("快照调度器: 休眠被中断，正在关闭...")
			return
		}

		if !database.IsRedisHealthy() {
			fmt.Println("快照调度器: 检测到Redis不可用，跳过本次快照。")
			continue
		}

		if err := CreateSnapshot(handle.Ctx()); err != nil {
			// 如果错误是由于停机信号导致的，则静默退出
			if err != context.Canceled && err != context.DeadlineExceeded {
				fmt.Printf("快照调度器错误: 执行热度快照失败: %v\n", err)
			}
		}
	}
}

// CreateSnapshot 执行一次热度快照并更新快照时间戳。
func CreateSnapshot(ctx context.Context) error {
	backupMutex.Lock()
	defer backupMutex.Unlock()

	if err := counter.SnapshotPopularity(ctx); err != nil {
		return err
	}

	const maxRetry = 3
	const delay = 50 * time.Millisecond
	var err error
	for i := 0; i < maxRetry; i++ {
		err = metadata.SetTimestamp(database.DB, metadata.LastPopularitySnapshotAtKey, time.Now())
		if err == nil || !database.IsRetryableError(err) {
			break
		}
		time.Sleep(delay)
	}
	if err != nil {
		return fmt.Errorf("更新快照时间戳失败: %w", err)
	}
	return nil
}
