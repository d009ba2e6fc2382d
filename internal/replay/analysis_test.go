package replay

import (
	"testing"

	"github.com/SlpAus/royale-coach-backend/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutcome(t *testing.T) {
	assert.Equal(t, OutcomeWin, validateOutcome("WIN"))
	assert.Equal(t, OutcomeLoss, validateOutcome("loss"))
	assert.Equal(t, OutcomeDraw, validateOutcome("Draw"))
	assert.Equal(t, OutcomeDraw, validateOutcome("victory"))
	assert.Equal(t, OutcomeDraw, validateOutcome(""))
}

func TestValidateFavorability(t *testing.T) {
	assert.Equal(t, FavorabilityFavorable, validateFavorability("Favorable"))
	assert.Equal(t, FavorabilityUnfavorable, validateFavorability("unfavorable"))
	assert.Equal(t, FavorabilityEven, validateFavorability("unknown"))
	assert.Equal(t, FavorabilityEven, validateFavorability(""))
}

func TestBuildBattlePrompt(t *testing.T) {
	catalog, err := card.NewCatalogFromStaticTables()
	require.NoError(t, err)

	trophyChange := 30
	kingHP := 4824
	battle := &Battle{
		Team: []BattleParticipant{{
			Tag:                     "#PLAYER1",
			Crowns:                  2,
			StartingTrophies:        6200,
			TrophyChange:            &trophyChange,
			KingTowerHitPoints:      &kingHP,
			PrincessTowersHitPoints: []int{2100},
			Cards: []BattleCard{
				{Name: "Hog Rider"}, {Name: "Zap"}, {Name: "Fireball"}, {Name: "Musketeer"},
				{Name: "Archers"}, {Name: "Mini P.E.K.K.A"}, {Name: "Knight"}, {Name: "Skeletons"},
			},
		}},
		Opponent: []BattleParticipant{{
			Tag:    "#OPP",
			Crowns: 1,
			Cards:  []BattleCard{{Name: "Golem"}, {Name: "Baby Dragon"}},
		}},
	}
	battle.GameMode.Name = "Ladder"
	battle.Arena.Name = "Legendary Arena"

	prompt := buildBattlePrompt(catalog, battle, "player1")

	assert.Contains(t, prompt, "BATTLE RESULT: WIN")
	assert.Contains(t, prompt, "Final Score: 2 - 1 crowns")
	assert.Contains(t, prompt, "Trophy Range: 6200 (+30 after battle)")
	assert.Contains(t, prompt, "Hog Rider, Zap, Fireball")
	assert.Contains(t, prompt, "Average Elixir: 3.1")
	assert.Contains(t, prompt, "King: 4824, Princess Towers: 2100")
	assert.Contains(t, prompt, `"outcome": "win"`)
}

func TestAvgElixirIgnoresUnknownCards(t *testing.T) {
	catalog, err := card.NewCatalogFromStaticTables()
	require.NoError(t, err)

	// 目录中没有的卡牌不计入平均费用
	avg := avgElixirOf(catalog, []BattleCard{
		{Name: "Knight"}, {Name: "Totally Fake Card"}, {Name: "Skeletons"},
	})
	assert.InDelta(t, 2.0, avg, 0.001)

	// 全部未知时退回4.0
	avg = avgElixirOf(catalog, []BattleCard{{Name: "Fake One"}, {Name: "Fake Two"}})
	assert.InDelta(t, 4.0, avg, 0.001)
}
