package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// historyBattle 构造战绩历史中的一场对战，只填充模式挖掘用到的字段。
func historyBattle(playerCrowns, opponentCrowns int, deckSelection string) Battle {
	b := Battle{DeckSelection: deckSelection}
	b.Team = []BattleParticipant{{Tag: "#P", Crowns: playerCrowns}}
	b.Opponent = []BattleParticipant{{Tag: "#O", Crowns: opponentCrowns}}
	return b
}

func findPattern(patterns []BattlePattern, name string) *BattlePattern {
	for i := range patterns {
		if patterns[i].Pattern == name {
			return &patterns[i]
		}
	}
	return nil
}

func TestAnalyzeBattlePatternsEmptyHistory(t *testing.T) {
	assert.Empty(t, AnalyzeBattlePatterns(nil))
	assert.Empty(t, AnalyzeBattlePatterns([]Battle{}))
	// 缺少任一方数据的对战直接忽略
	assert.Empty(t, AnalyzeBattlePatterns([]Battle{{}}))
}

func TestAnalyzeBattlePatternsLossStreak(t *testing.T) {
	// 时间倒序: 最近4场胜(多皇冠)，中间连败3场，更早3场胜。
	// 失利的卡组选择各不相同，避免同时触发同类卡组模式。
	battles := []Battle{
		historyBattle(2, 0, ""), historyBattle(2, 1, ""),
		historyBattle(2, 0, ""), historyBattle(2, 1, ""),
		historyBattle(0, 1, "collection"), historyBattle(1, 2, "draft"), historyBattle(0, 3, "predefined"),
		historyBattle(2, 0, ""), historyBattle(3, 0, ""), historyBattle(2, 1, ""),
	}

	patterns := AnalyzeBattlePatterns(battles)
	require.Len(t, patterns, 1)
	assert.Equal(t, "loss_streak", patterns[0].Pattern)
	assert.Equal(t, "You lost 3 battles in a row", patterns[0].Description)
	assert.Equal(t, PatternSeverityHigh, patterns[0].Severity)
	assert.Equal(t, 3, patterns[0].Occurrences)
}

func TestAnalyzeBattlePatternsArchetypeWeakness(t *testing.T) {
	// 3次对collection类卡组的失利分散在胜局之间，不构成连败
	battles := []Battle{
		historyBattle(0, 1, "collection"),
		historyBattle(2, 0, ""),
		historyBattle(0, 2, "collection"),
		historyBattle(3, 1, ""),
		historyBattle(1, 3, "collection"),
		historyBattle(2, 0, ""),
		historyBattle(2, 1, ""),
		historyBattle(3, 0, ""),
	}

	patterns := AnalyzeBattlePatterns(battles)
	pattern := findPattern(patterns, "archetype_weakness")
	require.NotNil(t, pattern)
	assert.Equal(t, "Lost 3 times against collection decks", pattern.Description)
	assert.Equal(t, PatternSeverityMedium, pattern.Severity)
	assert.Equal(t, 3, pattern.Occurrences)
	assert.Nil(t, findPattern(patterns, "loss_streak"))
}

func TestAnalyzeBattlePatternsPassiveWins(t *testing.T) {
	// 10胜中8场只拿1皇冠: 80% > 70%阈值
	battles := make([]Battle, 0, 10)
	for i := 0; i < 8; i++ {
		battles = append(battles, historyBattle(1, 0, ""))
	}
	battles = append(battles, historyBattle(3, 0, ""), historyBattle(2, 1, ""))

	patterns := AnalyzeBattlePatterns(battles)
	require.Len(t, patterns, 1)
	assert.Equal(t, "passive_wins", patterns[0].Pattern)
	assert.Equal(t, "80% of your wins are 1-crown victories", patterns[0].Description)
	assert.Equal(t, PatternSeverityLow, patterns[0].Severity)
	assert.Equal(t, 8, patterns[0].Occurrences)
}

func TestAnalyzeBattlePatternsHighLossRate(t *testing.T) {
	// 10场输7场: 70% > 60%阈值
	battles := []Battle{
		historyBattle(0, 1, ""), historyBattle(1, 2, ""), historyBattle(0, 3, ""),
		historyBattle(2, 0, ""),
		historyBattle(0, 2, ""), historyBattle(1, 3, ""),
		historyBattle(3, 1, ""),
		historyBattle(0, 1, ""), historyBattle(0, 2, ""),
		historyBattle(2, 0, ""),
	}

	patterns := AnalyzeBattlePatterns(battles)
	pattern := findPattern(patterns, "high_loss_rate")
	require.NotNil(t, pattern)
	assert.Equal(t, "You've lost 70% of your recent battles", pattern.Description)
	assert.Equal(t, 7, pattern.Occurrences)

	// 高严重度的模式排在前面
	assert.Equal(t, PatternSeverityHigh, patterns[0].Severity)
}

func TestAnalyzeBattlePatternsDrawSemantics(t *testing.T) {
	// 平局计入连败口径，但不计入整体败率
	battles := []Battle{
		historyBattle(1, 1, ""), historyBattle(0, 0, ""), historyBattle(2, 2, ""),
	}

	patterns := AnalyzeBattlePatterns(battles)
	require.NotNil(t, findPattern(patterns, "loss_streak"))
	assert.Nil(t, findPattern(patterns, "high_loss_rate"))
}
