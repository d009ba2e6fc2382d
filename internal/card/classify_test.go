package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roles(t *testing.T, c *Catalog, key string) []Role {
	t.Helper()
	info, ok := c.Card(key)
	require.True(t, ok, "目录中应当有 %q", key)
	return info.Roles
}

func TestClassifyWinConditions(t *testing.T) {
	c := buildTestCatalog(t)

	// 只攻击建筑的部队由属性数据推导
	assert.Contains(t, roles(t, c, "hog-rider"), RoleWinCondition)
	assert.Contains(t, roles(t, c, "balloon"), RoleWinCondition)
	// 白名单覆盖非"只攻击建筑"的进攻核心
	assert.Contains(t, roles(t, c, "miner"), RoleWinCondition)
	assert.Contains(t, roles(t, c, "graveyard"), RoleWinCondition)
	assert.Contains(t, roles(t, c, "goblin-barrel"), RoleWinCondition)
	assert.Contains(t, roles(t, c, "x-bow"), RoleWinCondition)
	assert.Contains(t, roles(t, c, "mortar"), RoleWinCondition)
	assert.Contains(t, roles(t, c, "rocket"), RoleWinCondition)
	// 普通部队不是胜利条件
	assert.NotContains(t, roles(t, c, "knight"), RoleWinCondition)
	assert.NotContains(t, roles(t, c, "wizard"), RoleWinCondition)
}

func TestClassifySpells(t *testing.T) {
	c := buildTestCatalog(t)

	// 3费及以下是小法术，4费及以上是大法术
	assert.Contains(t, roles(t, c, "zap"), RoleSpellSmall)
	assert.Contains(t, roles(t, c, "the-log"), RoleSpellSmall)
	assert.Contains(t, roles(t, c, "arrows"), RoleSpellSmall)
	assert.Contains(t, roles(t, c, "fireball"), RoleSpellBig)
	assert.Contains(t, roles(t, c, "poison"), RoleSpellBig)
	assert.Contains(t, roles(t, c, "rocket"), RoleSpellBig)
	// 法术不会同时是大小两种
	assert.NotContains(t, roles(t, c, "zap"), RoleSpellBig)
	assert.NotContains(t, roles(t, c, "rocket"), RoleSpellSmall)
}

func TestClassifyChampions(t *testing.T) {
	c := buildTestCatalog(t)
	assert.Contains(t, roles(t, c, "golden-knight"), RoleChampion)
	assert.Contains(t, roles(t, c, "skeleton-king"), RoleChampion)
	assert.Contains(t, roles(t, c, "mighty-miner"), RoleChampion)
	assert.NotContains(t, roles(t, c, "knight"), RoleChampion)
}

func TestClassifyTankKillers(t *testing.T) {
	c := buildTestCatalog(t)
	assert.Contains(t, roles(t, c, "pekka"), RoleTankKiller)
	assert.Contains(t, roles(t, c, "mini-pekka"), RoleTankKiller)
	assert.Contains(t, roles(t, c, "inferno-dragon"), RoleTankKiller)
	assert.Contains(t, roles(t, c, "hunter"), RoleTankKiller)
	assert.Contains(t, roles(t, c, "mighty-miner"), RoleTankKiller)
	// 坦克杀手判定只作用于部队：inferno-tower是建筑，不拿这个角色
	assert.NotContains(t, roles(t, c, "inferno-tower"), RoleTankKiller)
	assert.Contains(t, roles(t, c, "inferno-tower"), RoleBuilding)
}

func TestClassifySwarmAsymmetry(t *testing.T) {
	c := buildTestCatalog(t)

	assert.Contains(t, roles(t, c, "goblin-gang"), RoleSwarm)
	assert.Contains(t, roles(t, c, "minion-horde"), RoleSwarm)
	assert.Contains(t, roles(t, c, "skeleton-army"), RoleSwarm)
	assert.Contains(t, roles(t, c, "royal-recruits"), RoleSwarm)
	// key包含bats/skeletons/goblins/minions的子串判定
	assert.Contains(t, roles(t, c, "bats"), RoleSwarm)
	assert.Contains(t, roles(t, c, "skeletons"), RoleSwarm)
	assert.Contains(t, roles(t, c, "goblins"), RoleSwarm)
	assert.Contains(t, roles(t, c, "minions"), RoleSwarm)
	// 超过5费的部队不做海量单位判定
	assert.NotContains(t, roles(t, c, "elite-barbarians"), RoleSwarm)
	// 单体部队不是海量单位
	assert.NotContains(t, roles(t, c, "knight"), RoleSwarm)
}

func TestInferSwarmKeyOnlySubstrings(t *testing.T) {
	// bats等子串只检查key，不检查名称
	assert.True(t, inferSwarm("bats", "Bats", 2))
	assert.False(t, inferSwarm("flying-machine", "Giant Bats", 4))
	// gang/horde/army/recruits两边都检查
	assert.True(t, inferSwarm("some-key", "Goblin Gang", 3))
	assert.False(t, inferSwarm("minion-horde", "Minion Horde", 6))
}

func TestClassifyStatDerivedRoles(t *testing.T) {
	c := buildTestCatalog(t)

	// splash: 区域伤害半径/多重目标/全体命中任一即可
	assert.Contains(t, roles(t, c, "wizard"), RoleSplash)
	assert.Contains(t, roles(t, c, "valkyrie"), RoleSplash)
	// tank: 部队且血量>=1500且费用>=5
	assert.Contains(t, roles(t, c, "golem"), RoleTank)
	assert.Contains(t, roles(t, c, "pekka"), RoleTank)
	assert.NotContains(t, roles(t, c, "knight"), RoleTank)
	// cycle: 部队且费用<=2
	assert.Contains(t, roles(t, c, "skeletons"), RoleCycle)
	assert.Contains(t, roles(t, c, "ice-spirit"), RoleCycle)
	assert.NotContains(t, roles(t, c, "knight"), RoleCycle)
	// air_defense来自攻击目标
	assert.Contains(t, roles(t, c, "musketeer"), RoleAirDefense)
	assert.Contains(t, roles(t, c, "tesla"), RoleAirDefense)
	assert.NotContains(t, roles(t, c, "valkyrie"), RoleAirDefense)
}

func TestClassifyWithoutStats(t *testing.T) {
	elixir := 4
	raw := RawCard{Key: "mystery", Name: "Mystery", Type: TypeTroop, Rarity: "rare", Elixir: &elixir}
	info := classify(raw, nil)
	// 没有属性数据时不产生依赖属性的角色
	assert.NotContains(t, info.Roles, RoleSplash)
	assert.NotContains(t, info.Roles, RoleTank)
	assert.NotContains(t, info.Roles, RoleAirDefense)
	assert.Equal(t, Targets(""), info.Targets)
}

func TestRolesDeduplicated(t *testing.T) {
	c := buildTestCatalog(t)
	for _, entry := range c.SortedEntries() {
		seen := make(map[Role]bool)
		for _, r := range entry.Info.Roles {
			assert.False(t, seen[r], "%s 的角色 %s 出现了多次", entry.Key, r)
			seen[r] = true
		}
	}
}
