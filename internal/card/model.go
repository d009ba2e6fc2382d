package card

import "gorm.io/gorm"

// Role 是从卡牌类型、费用和属性推导出的语义标签，供评分规则使用。
type Role string

const (
	RoleWinCondition Role = "win_condition"
	RoleTank         Role = "tank"
	RoleTankKiller   Role = "tank_killer"
	RoleSplash       Role = "splash"
	RoleAirDefense   Role = "air_defense"
	RoleBuilding     Role = "building"
	RoleSpellSmall   Role = "spell_small"
	RoleSpellBig     Role = "spell_big"
	RoleCycle        Role = "cycle"
	RoleSwarm        Role = "swarm"
	RoleChampion     Role = "champion"
)

// Targets 描述一张卡牌可以攻击的目标类型。空字符串表示未知（没有属性数据）。
type Targets string

const (
	TargetsGround Targets = "ground"
	TargetsAir    Targets = "air"
	TargetsBoth   Targets = "both"
)

// 卡牌类型常量，来自原始数据的type字段。
const (
	TypeTroop    = "troop"
	TypeSpell    = "spell"
	TypeBuilding = "building"
)

// RawCard 对应RoyaleAPI卡牌列表中的一条原始记录。
// Elixir使用指针以区分"缺失"与0：缺失的记录在构建时被静默丢弃。
type RawCard struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Rarity string `json:"rarity,omitempty"`
	Elixir *int   `json:"elixir"`
}

// CardStats 对应cr-api-data属性表中的一条记录（角色表或建筑表）。
// 所有字段都是可选的，缺失时为零值；一张卡牌可以完全没有匹配的属性记录。
type CardStats struct {
	Name                string  `json:"name"`
	AttacksAir          bool    `json:"attacks_air,omitempty"`
	AttacksGround       bool    `json:"attacks_ground,omitempty"`
	TargetOnlyBuildings bool    `json:"target_only_buildings,omitempty"`
	AreaDamageRadius    float64 `json:"area_damage_radius,omitempty"`
	MultipleTargets     float64 `json:"multiple_targets,omitempty"`
	AllTargetsHit       bool    `json:"all_targets_hit,omitempty"`
	Hitpoints           float64 `json:"hitpoints,omitempty"`
}

// CardInfo 是目录中一张卡牌的最终形态，构建完成后不再修改。
type CardInfo struct {
	Name    string  `json:"name"`
	Elixir  int     `json:"elixir"`
	Roles   []Role  `json:"roles"`
	Targets Targets `json:"targets,omitempty"`
	Type    string  `json:"type"`
}

// HasRole 判断卡牌是否带有指定角色。
func (c *CardInfo) HasRole(role Role) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Card 定义了sqlite中卡牌的持久化结构，在启动时由内嵌数据播种。
// 业务逻辑中的主键是CardKey（RoyaleAPI的slug）。
type Card struct {
	gorm.Model

	CardKey string `gorm:"uniqueIndex;not null" json:"key"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Rarity  string `json:"rarity"`
	Elixir  int    `json:"elixir"`
}
