package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeForJoin(t *testing.T) {
	assert.Equal(t, "hogrider", NormalizeForJoin("Hog Rider"))
	assert.Equal(t, "pekka", NormalizeForJoin("P.E.K.K.A"))
	assert.Equal(t, "thelog", NormalizeForJoin("The Log"))
	assert.Equal(t, "giantsnowball", NormalizeForJoin("Giant  Snowball"))
	// &在删除前替换为and
	assert.Equal(t, "bowlerandfriends", NormalizeForJoin("Bowler & Friends"))
	assert.Equal(t, "", NormalizeForJoin("!!!"))
	assert.Equal(t, "", NormalizeForJoin(""))
}

func TestNormalizeCardName(t *testing.T) {
	assert.Equal(t, "hog-rider", NormalizeCardName("Hog Rider"))
	assert.Equal(t, "p-e-k-k-a", NormalizeCardName("P.E.K.K.A"))
	assert.Equal(t, "the-log", NormalizeCardName("The Log"))
	// 连续的非法字符折叠为单个连字符
	assert.Equal(t, "x-bow", NormalizeCardName("X --- Bow"))
	// 首尾连字符被去掉
	assert.Equal(t, "miner", NormalizeCardName("  ~Miner~  "))
	assert.Equal(t, "bowler-and-friends", NormalizeCardName("Bowler & Friends"))
	assert.Equal(t, "", NormalizeCardName("..."))
}

func TestNormalizeIdempotence(t *testing.T) {
	inputs := []string{"Hog Rider", "P.E.K.K.A", "The Log", "Evolved Archers", "X-Bow", "三个火枪手"}
	for _, input := range inputs {
		join := NormalizeForJoin(input)
		slug := NormalizeCardName(input)
		assert.Equal(t, join, NormalizeForJoin(join), "NormalizeForJoin应当幂等: %q", input)
		assert.Equal(t, slug, NormalizeCardName(slug), "NormalizeCardName应当幂等: %q", input)
		// 输出只包含各自的合法字符集
		for _, r := range join {
			assert.True(t, (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'), "join形式含非法字符: %q", join)
		}
		for _, r := range slug {
			assert.True(t, (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-', "slug形式含非法字符: %q", slug)
		}
	}
}
