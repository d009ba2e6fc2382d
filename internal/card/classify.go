package card

import "strings"

// --- 角色推导的固定白名单 ---

// winConditionKeys 列出不能由属性数据推导出的胜利条件卡牌。
// 包含非"只攻击建筑"的进攻核心（miner、graveyard）、建筑类胜利条件
// （x-bow、mortar）以及常被用作终结手段的rocket。
var winConditionKeys = map[string]bool{
	"miner":         true,
	"graveyard":     true,
	"goblin-barrel": true,
	"x-bow":         true,
	"mortar":        true,
	"rocket":        true,
}

// tankKillerKeys 列出公认的高单体输出"坦克杀手"。
var tankKillerKeys = map[string]bool{
	"pekka":          true,
	"mini-pekka":     true,
	"inferno-dragon": true,
	"inferno-tower":  true,
	"hunter":         true,
	"mighty-miner":   true,
}

// inferTargets 根据属性数据推导攻击目标类型。没有属性数据时返回空值。
func inferTargets(stats *CardStats) Targets {
	if stats == nil {
		return ""
	}
	air := stats.AttacksAir
	ground := stats.AttacksGround
	switch {
	case air && ground:
		return TargetsBoth
	case air:
		return TargetsAir
	case ground:
		return TargetsGround
	}
	return ""
}

// inferSwarm 判断一张部队卡是否属于"海量单位"。
// 注意：bats/skeletons/goblins/minions 四个子串只在key上检查，
// 不在名称上检查。改动这个不对称会改变存量卡组的评分，不要动。
func inferSwarm(key, name string, elixir int) bool {
	if elixir > 5 {
		return false
	}
	k := NormalizeCardName(key)
	n := NormalizeCardName(name)
	return strings.Contains(k, "gang") ||
		strings.Contains(k, "horde") ||
		strings.Contains(k, "army") ||
		strings.Contains(k, "recruits") ||
		strings.Contains(k, "bats") ||
		strings.Contains(k, "skeletons") ||
		strings.Contains(k, "goblins") ||
		strings.Contains(k, "minions") ||
		strings.Contains(n, "gang") ||
		strings.Contains(n, "horde") ||
		strings.Contains(n, "army") ||
		strings.Contains(n, "recruits")
}

// classify 由一条原始记录和它（可能缺失的）属性数据构建CardInfo。
// 规则按固定顺序叠加角色，最后去重并保留首次出现的顺序。
// 没有属性数据的卡牌仍然能获得基于类型和key的角色，
// 但永远不会获得依赖属性的角色（targets/splash/tank）。
func classify(raw RawCard, stats *CardStats) CardInfo {
	elixir := 0
	if raw.Elixir != nil {
		elixir = *raw.Elixir
	}
	targets := inferTargets(stats)

	var roles []Role
	if raw.Rarity == "champion" {
		roles = append(roles, RoleChampion)
	}

	switch raw.Type {
	case TypeSpell:
		if elixir <= 3 {
			roles = append(roles, RoleSpellSmall)
		} else {
			roles = append(roles, RoleSpellBig)
		}
		if winConditionKeys[raw.Key] {
			roles = append(roles, RoleWinCondition)
		}
	case TypeBuilding:
		roles = append(roles, RoleBuilding)
		if winConditionKeys[raw.Key] {
			roles = append(roles, RoleWinCondition)
		}
	default:
		// troop
		if (stats != nil && stats.TargetOnlyBuildings) || winConditionKeys[raw.Key] {
			roles = append(roles, RoleWinCondition)
		}
	}

	if targets == TargetsAir || targets == TargetsBoth {
		roles = append(roles, RoleAirDefense)
	}
	if raw.Type == TypeTroop && elixir <= 2 {
		roles = append(roles, RoleCycle)
	}
	if raw.Type == TypeTroop && inferSwarm(raw.Key, raw.Name, elixir) {
		roles = append(roles, RoleSwarm)
	}
	if stats != nil && (stats.AreaDamageRadius > 0 || stats.MultipleTargets > 0 || stats.AllTargetsHit) {
		roles = append(roles, RoleSplash)
	}
	if raw.Type == TypeTroop && stats != nil && stats.Hitpoints >= 1500 && elixir >= 5 {
		roles = append(roles, RoleTank)
	}
	if raw.Type == TypeTroop && tankKillerKeys[raw.Key] {
		roles = append(roles, RoleTankKiller)
	}

	return CardInfo{
		Name:    raw.Name,
		Elixir:  elixir,
		Roles:   dedupeRoles(roles),
		Targets: targets,
		Type:    raw.Type,
	}
}

// dedupeRoles 去重并保留首次出现的顺序。
func dedupeRoles(roles []Role) []Role {
	seen := make(map[Role]bool, len(roles))
	out := make([]Role, 0, len(roles))
	for _, r := range roles {
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}
