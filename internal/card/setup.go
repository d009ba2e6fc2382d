package card

import (
	"fmt"

	"github.com/SlpAus/royale-coach-backend/internal/platform/database"
)

// PrimeModule 负责card模块的启动初始化：
// 迁移并播种sqlite中的卡牌表，然后构建内存目录。
// 必须在其他依赖目录的模块初始化之前调用。
func PrimeModule() error {
	raw, charStats, buildingStats, err := loadStaticTables()
	if err != nil {
		return err
	}

	if err := migrateDB(); err != nil {
		return err
	}
	if err := seedDB(raw); err != nil {
		return err
	}

	catalog := BuildCatalog(raw, charStats, buildingStats)
	if catalog.Len() == 0 {
		return fmt.Errorf("卡牌目录为空，无法初始化card模块")
	}
	swapCatalog(catalog)

	fmt.Printf("卡牌目录初始化成功，加载了 %d 张卡牌。\n", catalog.Len())
	return nil
}

// NewCatalogFromStaticTables 只从内嵌静态表构建目录，不接触数据库。
// 供不需要持久化的调用方（评分测试、离线工具）使用。
func NewCatalogFromStaticTables() (*Catalog, error) {
	raw, charStats, buildingStats, err := loadStaticTables()
	if err != nil {
		return nil, err
	}
	return BuildCatalog(raw, charStats, buildingStats), nil
}

// RebuildCatalog 在运行时从静态表热重建目录。
// 重建是写时复制的：新目录完整构建后才替换旧目录。
func RebuildCatalog() error {
	raw, charStats, buildingStats, err := loadStaticTables()
	if err != nil {
		return err
	}
	swapCatalog(BuildCatalog(raw, charStats, buildingStats))
	fmt.Println("卡牌目录已热重建。")
	return nil
}

// migrateDB 负责自动迁移数据库表结构。
func migrateDB() error {
	if err := database.DB.AutoMigrate(&Card{}); err != nil {
		return fmt.Errorf("无法迁移card表: %w", err)
	}
	return nil
}

// seedDB 把内嵌卡牌列表写入sqlite，供管理界面和后续同步任务查询。
// 只在表为空时播种；格式不完整的记录与目录构建时一样被静默跳过。
func seedDB(raw []RawCard) error {
	var count int64
	if err := database.DB.Model(&Card{}).Count(&count).Error; err != nil {
		return fmt.Errorf("无法统计card表行数: %w", err)
	}
	if count > 0 {
		return nil
	}

	rows := make([]Card, 0, len(raw))
	for _, r := range raw {
		if r.Key == "" || r.Name == "" || r.Elixir == nil || r.Type == "" {
			continue
		}
		rows = append(rows, Card{
			CardKey: r.Key,
			Name:    r.Name,
			Type:    r.Type,
			Rarity:  r.Rarity,
			Elixir:  *r.Elixir,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	if err := database.DB.Create(&rows).Error; err != nil {
		return fmt.Errorf("无法播种card表: %w", err)
	}
	fmt.Printf("已向sqlite播种 %d 张卡牌。\n", len(rows))
	return nil
}
