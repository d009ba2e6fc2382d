package counter

import "gorm.io/gorm"

// 克制效果等级
const (
	EffectivenessExcellent = "excellent"
	EffectivenessGood      = "good"
	EffectivenessFair      = "fair"
)

// TilePosition 是竞技场格子坐标(简化的18x32网格)。
// 原点(0,0)在左上角，x向右增长，y向下增长。
type TilePosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PlacementStep 是克制教学中的一步放置操作。
type PlacementStep struct {
	Position    TilePosition `json:"position"`
	Card        string       `json:"card"`
	Description string       `json:"description"`
}

// CounterCard 是针对目标卡牌的一张克制卡及其用法。
type CounterCard struct {
	Card          string          `json:"card"`
	Cost          int             `json:"cost"`
	Effectiveness string          `json:"effectiveness"`
	Placement     []PlacementStep `json:"placement"`
	Notes         string          `json:"notes"`
}

// CounterStrategy 是某张目标卡牌的完整克制方案。
type CounterStrategy struct {
	TargetCard   string        `json:"targetCard"`
	CounterCards []CounterCard `json:"counterCards"`
}

// CardPopularity 持久化每张目标卡牌被查询的次数。
// 实时计数在Redis有序集合中累加，由备份调度器定期快照到这张表。
type CardPopularity struct {
	gorm.Model
	CardKey string `gorm:"uniqueIndex;not null;type:varchar(64)"`
	Queries int64  `gorm:"not null;default:0"`
}
