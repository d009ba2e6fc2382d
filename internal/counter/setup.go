package counter

import (
	"fmt"

	"github.com/SlpAus/royale-coach-backend/internal/platform/database"
)

// PrimeModule 负责初始化counter模块: 迁移热度表并预热Redis计数。
func PrimeModule() error {
	if err := database.DB.AutoMigrate(&CardPopularity{}); err != nil {
		return fmt.Errorf("无法迁移counter模块的表: %w", err)
	}
	if err := WarmupPopularity(); err != nil {
		return err
	}
	fmt.Println("Counter模块初始化成功。")
	return nil
}
