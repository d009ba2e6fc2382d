package counter

import (
	"context"
	"fmt"

	"github.com/SlpAus/royale-coach-backend/internal/platform/database"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PopularityKey 是Redis中记录克制查询热度的有序集合键名。
// member是目标卡牌slug，score是累计查询次数。
const PopularityKey = "counter:popularity"

// recordQuery 在Redis中为目标卡牌累加一次查询热度。
// Redis不可用时静默跳过，热度统计不影响主流程。
func recordQuery(cardKey string) {
	if database.RDB == nil || !database.IsRedisHealthy() {
		return
	}
	if err := database.RDB.ZIncrBy(database.Ctx, PopularityKey, 1, cardKey).Err(); err != nil {
		fmt.Printf("累加克制查询热度失败: %v\n", err)
	}
}

// TopQueried 返回查询热度最高的前limit张目标卡牌及其次数。
func TopQueried(ctx context.Context, limit int64) ([]redis.Z, error) {
	if database.RDB == nil || !database.IsRedisHealthy() {
		return nil, nil
	}
	return database.RDB.ZRevRangeWithScores(ctx, PopularityKey, 0, limit-1).Result()
}

// WarmupPopularity 用SQLite中的持久化计数重建Redis热度集合。
// 在启动和Redis重启后的缓存重建中调用。
func WarmupPopularity() error {
	var rows []CardPopularity
	if err := database.DB.Find(&rows).Error; err != nil {
		return fmt.Errorf("无法加载热度持久化数据: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}

	members := make([]redis.Z, 0, len(rows))
	for _, row := range rows {
		members = append(members, redis.Z{Score: float64(row.Queries), Member: row.CardKey})
	}

	pipe := database.RDB.TxPipeline()
	pipe.Del(database.Ctx, PopularityKey)
	pipe.ZAdd(database.Ctx, PopularityKey, members...)
	if _, err := pipe.Exec(database.Ctx); err != nil {
		return fmt.Errorf("无法重建Redis热度集合: %w", err)
	}
	fmt.Printf("克制查询热度已重建 (%d 张卡牌)。\n", len(rows))
	return nil
}

// SnapshotPopularity 把Redis中的实时热度快照到SQLite。
// 由备份调度器定期调用，也在优雅停机时执行最后一次。
func SnapshotPopularity(ctx context.Context) error {
	entries, err := database.RDB.ZRangeWithScores(ctx, PopularityKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("无法读取Redis热度集合: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}

	rows := make([]CardPopularity, 0, len(entries))
	for _, entry := range entries {
		key, ok := entry.Member.(string)
		if !ok {
			continue
		}
		rows = append(rows, CardPopularity{CardKey: key, Queries: int64(entry.Score)})
	}

	return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "card_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"queries", "updated_at"}),
		}).Create(&rows).Error
	})
}
