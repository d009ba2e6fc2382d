package deck

import (
	"testing"

	"github.com/SlpAus/royale-coach-backend/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *card.Catalog {
	t.Helper()
	catalog, err := card.NewCatalogFromStaticTables()
	require.NoError(t, err)
	return catalog
}

func TestAnalyzeRejectsWrongDeckSize(t *testing.T) {
	catalog := testCatalog(t)
	for _, cards := range [][]string{
		{},
		{"Knight"},
		{"Knight", "Archers", "Zap", "Fireball", "Hog Rider", "Musketeer", "Skeletons"},
		{"Knight", "Archers", "Zap", "Fireball", "Hog Rider", "Musketeer", "Skeletons", "Mini P.E.K.K.A", "Valkyrie"},
	} {
		_, err := Analyze(catalog, cards)
		require.Error(t, err)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Deck must contain exactly 8 cards", vErr.Message)
	}
}

func TestAnalyzeReportsUnknownCards(t *testing.T) {
	catalog := testCatalog(t)
	_, err := Analyze(catalog, []string{
		"Hog Rider", "Fake Card One", "Zap", "Fireball", "Musketeer", "AnotherFake", "Knight", "Skeletons",
	})
	require.Error(t, err)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	// 错误消息保留用户原始拼写和输入顺序
	assert.Equal(t, "Unknown cards: Fake Card One, AnotherFake", vErr.Message)
}

func TestAnalyzePerfectDeck(t *testing.T) {
	catalog := testCatalog(t)
	// 经典Hog 3.1循环: 胜利条件+双法术+双对空+坦克杀手+费用适中
	analysis, err := Analyze(catalog, []string{
		"Hog Rider", "Zap", "Fireball", "Musketeer", "Archers", "Mini P.E.K.K.A", "Knight", "Skeletons",
	})
	require.NoError(t, err)

	assert.Equal(t, 100, analysis.Score)
	assert.Equal(t, GradeS, analysis.Grade)
	assert.InDelta(t, 3.13, analysis.AvgElixir, 0.001)
	assert.Empty(t, analysis.Issues)
	for name, result := range analysis.CheckResults {
		assert.True(t, result.Passed, "检查 %s 应当通过", name)
	}
	require.Len(t, analysis.CheckResults, 6)
}

func TestAnalyzeDegenerateDeck(t *testing.T) {
	catalog := testCatalog(t)
	// 无胜利条件、无法术、超重、单对空、无坦克杀手: 全部扣分叠加后截断到0
	analysis, err := Analyze(catalog, []string{
		"Minion Horde", "Mega Knight", "Elite Barbarians", "Royal Recruits",
		"Valkyrie", "Golden Knight", "Skeleton King", "Knight",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, analysis.Score)
	assert.Equal(t, GradeF, analysis.Grade)
	assert.InDelta(t, 5.0, analysis.AvgElixir, 0.001)

	assert.False(t, analysis.CheckResults[CheckWinCondition].Passed)
	assert.Equal(t, SeverityCritical, analysis.CheckResults[CheckWinCondition].Severity)
	assert.False(t, analysis.CheckResults[CheckSpells].Passed)
	assert.False(t, analysis.CheckResults[CheckElixirCost].Passed)
	assert.False(t, analysis.CheckResults[CheckAirDefense].Passed)
	assert.False(t, analysis.CheckResults[CheckTankKiller].Passed)
	// 三张溅射卡不触发冗余检查(>3才触发)
	assert.True(t, analysis.CheckResults[CheckRedundancy].Passed)
}

func TestAnalyzeElixirBoundaries(t *testing.T) {
	catalog := testCatalog(t)

	// 恰好4.0在通过区间内(严格大于才扣分)
	analysis, err := Analyze(catalog, []string{
		"Hog Rider", "Zap", "Fireball", "Musketeer", "Hunter", "Mini P.E.K.K.A", "Wizard", "Balloon",
	})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, analysis.AvgElixir, 0.001)
	assert.True(t, analysis.CheckResults[CheckElixirCost].Passed)

	// 超过4.0但不超过4.5只扣5分
	analysis, err = Analyze(catalog, []string{
		"Hog Rider", "Zap", "Fireball", "Musketeer", "Hunter", "Mini P.E.K.K.A", "Wizard", "Lava Hound",
	})
	require.NoError(t, err)
	assert.InDelta(t, 4.25, analysis.AvgElixir, 0.001)
	assert.False(t, analysis.CheckResults[CheckElixirCost].Passed)
	assert.Equal(t, 95, analysis.Score)
}

func TestAnalyzeRedundancyCheck(t *testing.T) {
	catalog := testCatalog(t)
	// 四张溅射卡触发冗余扣分
	analysis, err := Analyze(catalog, []string{
		"Hog Rider", "Zap", "Fireball", "Wizard", "Valkyrie", "Baby Dragon", "Mega Knight", "Musketeer",
	})
	require.NoError(t, err)
	assert.False(t, analysis.CheckResults[CheckRedundancy].Passed)
	assert.Contains(t, analysis.Issues, "Redundant roles")
}

func TestAnalyzeSingleAirDefense(t *testing.T) {
	catalog := testCatalog(t)
	// 唯一的对空单位是Musketeer
	analysis, err := Analyze(catalog, []string{
		"Hog Rider", "Zap", "Fireball", "Musketeer", "Knight", "Mini P.E.K.K.A", "Valkyrie", "Skeletons",
	})
	require.NoError(t, err)
	assert.False(t, analysis.CheckResults[CheckAirDefense].Passed)
	assert.Equal(t, SeverityMajor, analysis.CheckResults[CheckAirDefense].Severity)
	assert.Equal(t, 90, analysis.Score)
	assert.Equal(t, GradeS, analysis.Grade)
}

func TestAnalyzeWinConditionSwapNeverLowersScore(t *testing.T) {
	catalog := testCatalog(t)
	// 把一张非胜利条件卡换成胜利条件卡，分数不应下降
	decks := [][]string{
		{"Minion Horde", "Mega Knight", "Elite Barbarians", "Royal Recruits",
			"Valkyrie", "Golden Knight", "Skeleton King", "Knight"},
		{"Hog Rider", "Zap", "Fireball", "Musketeer", "Knight", "Mini P.E.K.K.A", "Valkyrie", "Skeletons"},
	}
	swaps := []struct {
		index int
		card  string
	}{
		{7, "Hog Rider"},      // Knight -> Hog Rider
		{6, "Goblin Barrel"},  // Valkyrie -> Goblin Barrel
	}

	for i, deck := range decks {
		before, err := Analyze(catalog, deck)
		require.NoError(t, err)

		swapped := make([]string, len(deck))
		copy(swapped, deck)
		swapped[swaps[i].index] = swaps[i].card
		after, err := Analyze(catalog, swapped)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, after.Score, before.Score,
			"换入 %s 后分数不应下降", swaps[i].card)
	}
}

func TestGradeForScore(t *testing.T) {
	assert.Equal(t, GradeS, gradeForScore(100))
	assert.Equal(t, GradeS, gradeForScore(90))
	assert.Equal(t, GradeA, gradeForScore(89))
	assert.Equal(t, GradeA, gradeForScore(80))
	assert.Equal(t, GradeB, gradeForScore(79))
	assert.Equal(t, GradeB, gradeForScore(70))
	assert.Equal(t, GradeC, gradeForScore(69))
	assert.Equal(t, GradeC, gradeForScore(60))
	assert.Equal(t, GradeD, gradeForScore(59))
	assert.Equal(t, GradeD, gradeForScore(50))
	assert.Equal(t, GradeF, gradeForScore(49))
	assert.Equal(t, GradeF, gradeForScore(0))
}

func TestAnalyzeOrderInsensitive(t *testing.T) {
	catalog := testCatalog(t)
	deck := []string{"Hog Rider", "Zap", "Fireball", "Musketeer", "Archers", "Mini P.E.K.K.A", "Knight", "Skeletons"}
	reversed := make([]string, len(deck))
	for i, name := range deck {
		reversed[len(deck)-1-i] = name
	}

	a, err := Analyze(catalog, deck)
	require.NoError(t, err)
	b, err := Analyze(catalog, reversed)
	require.NoError(t, err)
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Grade, b.Grade)
	assert.Equal(t, a.AvgElixir, b.AvgElixir)
}
