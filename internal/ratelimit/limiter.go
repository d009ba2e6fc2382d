package ratelimit

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"net/http"
	"time"

	"github.com/SlpAus/royale-coach-backend/internal/platform/database"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	// aiRequestKeyPrefix 是Redis中有序集合的键名前缀
	aiRequestKeyPrefix = "ai_requests:"
	// aiRequestWindow 定义了计数的滑动时间窗口
	aiRequestWindow = time.Hour
	// aiRequestTTL 比窗口稍长，作为过期缓冲
	aiRequestTTL = 70 * time.Minute
)

// generateUniqueID 根据给定的时间生成一个16字节的、抗冲突的成员ID。
// 结构: [ 8字节纳秒时间戳 (Big Endian) | 8字节随机数 ]
func generateUniqueID(t time.Time) (string, error) {
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b[0:8], uint64(t.UnixNano()))
	if _, err := rand.Read(b[8:16]); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// incrementRequestCount 在Redis中为一个IP原子地记录一次AI请求，
// 并返回该IP在过去aiRequestWindow内的总请求数。
func incrementRequestCount(ip string, now time.Time) (int64, error) {
	key := aiRequestKeyPrefix + ip
	minTimestamp := float64(now.Add(-aiRequestWindow).UnixMicro())

	memberID, err := generateUniqueID(now)
	if err != nil {
		return 0, fmt.Errorf("生成 memberID 失败: %w", err)
	}

	// 使用Redis事务保证清理、计入和计数的原子性
	pipe := database.RDB.TxPipeline()
	pipe.ZRemRangeByScore(database.Ctx, key, "-inf", fmt.Sprintf("(%f", minTimestamp))
	pipe.ZAdd(database.Ctx, key, redis.Z{Score: float64(now.UnixMicro()), Member: memberID})
	pipe.Expire(database.Ctx, key, aiRequestTTL)
	countCmd := pipe.ZCard(database.Ctx, key)

	if _, err := pipe.Exec(database.Ctx); err != nil {
		return 0, fmt.Errorf("执行IP计数事务失败: %w", err)
	}
	return countCmd.Result()
}

// PerIPMiddleware 限制单个IP在滑动窗口内的请求次数，用于保护调用LLM的端点。
// Redis不健康时放行请求：限流是保护措施，不应成为单点故障。
func PerIPMiddleware(maxPerWindow int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if database.RDB == nil || !database.IsRedisHealthy() {
			c.Next()
			return
		}

		count, err := incrementRequestCount(c.ClientIP(), time.Now())
		if err != nil {
			fmt.Printf("IP限流计数失败: %v\n", err)
			c.Next()
			return
		}
		if count > maxPerWindow {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Too many requests. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
