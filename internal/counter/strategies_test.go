package counter

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStrategyNormalizesInput(t *testing.T) {
	for _, input := range []string{"hog-rider", "Hog Rider", "HOG RIDER", "hog rider"} {
		strategy, ok := GetStrategy(input)
		require.True(t, ok, "输入 %q 应当命中", input)
		assert.Equal(t, "Hog Rider", strategy.TargetCard)
		assert.NotEmpty(t, strategy.CounterCards)
	}

	strategy, ok := GetStrategy("P.E.K.K.A")
	require.True(t, ok)
	assert.Equal(t, "P.E.K.K.A", strategy.TargetCard)

	_, ok = GetStrategy("Totally Fake Card")
	assert.False(t, ok)
}

func TestStrategiesWellFormed(t *testing.T) {
	for key, strategy := range counterStrategies {
		assert.NotEmpty(t, strategy.TargetCard, "%s 缺少目标卡牌名", key)
		require.NotEmpty(t, strategy.CounterCards, "%s 没有克制卡", key)
		for _, counter := range strategy.CounterCards {
			assert.NotEmpty(t, counter.Card)
			assert.Greater(t, counter.Cost, 0)
			assert.Contains(t,
				[]string{EffectivenessExcellent, EffectivenessGood, EffectivenessFair},
				counter.Effectiveness)
			require.NotEmpty(t, counter.Placement, "%s 的 %s 缺少放置步骤", key, counter.Card)
			assert.NotEmpty(t, counter.Notes)
		}
	}
}

func TestAllTargetCards(t *testing.T) {
	names := AllTargetCards()
	require.Len(t, names, len(counterStrategies))
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "Hog Rider")
	assert.Contains(t, names, "Mega Knight")
	assert.Contains(t, names, "P.E.K.K.A")
	assert.Contains(t, names, "X-Bow")
}
