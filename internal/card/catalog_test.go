package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	raw, charStats, buildingStats, err := loadStaticTables()
	require.NoError(t, err)
	return BuildCatalog(raw, charStats, buildingStats)
}

func TestBuildCatalogDropsMalformedRows(t *testing.T) {
	elixir := 3
	raw := []RawCard{
		{Key: "knight", Name: "Knight", Type: TypeTroop, Rarity: "common", Elixir: &elixir},
		{Key: "", Name: "Nameless", Type: TypeTroop, Elixir: &elixir},
		{Key: "no-elixir", Name: "No Elixir", Type: TypeTroop},
		{Key: "no-type", Name: "No Type", Elixir: &elixir},
	}
	c := BuildCatalog(raw, nil, nil)
	assert.Equal(t, 1, c.Len())
	_, ok := c.Card("knight")
	assert.True(t, ok)
}

func TestResolveAcceptsManyShapes(t *testing.T) {
	c := buildTestCatalog(t)

	// 同一张卡的各种用户输入形态都要命中
	variants := []string{
		"hog-rider", "Hog Rider", "HOG RIDER", "hog rider", "HogRider", "  Hog Rider  ",
	}
	for _, v := range variants {
		key, info := c.ResolveKey(v)
		require.NotNil(t, info, "输入 %q 应当可解析", v)
		assert.Equal(t, "hog-rider", key)
		assert.Equal(t, "Hog Rider", info.Name)
	}
}

func TestResolvePunctuationHeavyNames(t *testing.T) {
	c := buildTestCatalog(t)

	key, info := c.ResolveKey("P.E.K.K.A")
	require.NotNil(t, info)
	assert.Equal(t, "pekka", key)

	key, info = c.ResolveKey("Mini P.E.K.K.A")
	require.NotNil(t, info)
	assert.Equal(t, "mini-pekka", key)

	// slug形式直接命中快速路径
	_, info = c.ResolveKey("p-e-k-k-a")
	assert.NotNil(t, info)
}

func TestResolveTheLogVariants(t *testing.T) {
	c := buildTestCatalog(t)
	for _, v := range []string{"The Log", "the log", "Log", "log", "the-log"} {
		key, info := c.ResolveKey(v)
		require.NotNil(t, info, "输入 %q 应当可解析", v)
		assert.Equal(t, "the-log", key)
	}
}

func TestResolveEvolvedPrefix(t *testing.T) {
	c := buildTestCatalog(t)

	key, info := c.ResolveKey("Evolved Archers")
	require.NotNil(t, info)
	assert.Equal(t, "archers", key)

	key, info = c.ResolveKey("evolved skeletons")
	require.NotNil(t, info)
	assert.Equal(t, "skeletons", key)

	// 进化前缀+标点密集名称走最后一级回退
	key, info = c.ResolveKey("Evolved P.E.K.K.A")
	require.NotNil(t, info)
	assert.Equal(t, "pekka", key)
}

func TestResolveUnknown(t *testing.T) {
	c := buildTestCatalog(t)
	assert.Nil(t, c.Resolve("Totally Fake Card"))
	assert.Nil(t, c.Resolve(""))
	assert.Nil(t, c.Resolve("   "))
}

func TestResolveSupersetOfKeys(t *testing.T) {
	c := buildTestCatalog(t)
	// 每个规范key和显示名都必须能解析回自身
	for _, entry := range c.SortedEntries() {
		key, info := c.ResolveKey(entry.Key)
		require.NotNil(t, info, "key %q 应当可解析", entry.Key)
		assert.Equal(t, entry.Key, key)

		key, info = c.ResolveKey(entry.Info.Name)
		require.NotNil(t, info, "显示名 %q 应当可解析", entry.Info.Name)
		assert.Equal(t, entry.Key, key)
	}
}

func TestSortedEntriesOrdered(t *testing.T) {
	c := buildTestCatalog(t)
	entries := c.SortedEntries()
	require.Equal(t, c.Len(), len(entries))
	for i := 1; i < len(entries); i++ {
		assert.LessOrEqual(t, entries[i-1].Info.Name, entries[i].Info.Name)
	}
}
