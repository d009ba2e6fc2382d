package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTextRespectsMaxSize(t *testing.T) {
	text := "First sentence here. Second sentence follows! Third one asks? Fourth closes the set."
	chunks := ChunkText(text, 45)
	require.NotEmpty(t, chunks)
	// 容量判断不含连接空格，聚合后的分块最多超出一个空格
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 46)
	}
	// 所有句子都保留
	joined := strings.Join(chunks, " ")
	assert.Contains(t, joined, "First sentence here.")
	assert.Contains(t, joined, "Fourth closes the set.")
}

func TestChunkTextShortInput(t *testing.T) {
	chunks := ChunkText("Just one short sentence.", 500)
	require.Len(t, chunks, 1)
	assert.Equal(t, "Just one short sentence.", chunks[0])
}

func TestChunkTextEmptyInput(t *testing.T) {
	assert.Empty(t, ChunkText("", 500))
}

func TestChunkTextOversizedSentence(t *testing.T) {
	long := strings.Repeat("word ", 200) + "end."
	chunks := ChunkText(long, 100)
	// 无法切分的超长句子独占一个分块而不是被丢弃
	require.Len(t, chunks, 1)
}

func TestSplitSentences(t *testing.T) {
	sentences := splitSentences("One. Two! Three? Four")
	require.Len(t, sentences, 4)
	assert.Equal(t, "One.", sentences[0])
	assert.Equal(t, "Two!", sentences[1])
	assert.Equal(t, "Three?", sentences[2])
	assert.Equal(t, "Four", sentences[3])

	// 句中的点号(如小数)不在空白前，不触发切分
	sentences = splitSentences("Average elixir is 3.5 in this deck. Done.")
	require.Len(t, sentences, 2)
}

func TestParseSeedMarkdown(t *testing.T) {
	tutorials := ParseSeedMarkdown(seedMarkdown)
	require.NotEmpty(t, tutorials)

	titles := make(map[string]SeedTutorial, len(tutorials))
	for _, tut := range tutorials {
		assert.NotEmpty(t, tut.Title)
		assert.NotEmpty(t, tut.Content)
		titles[tut.Title] = tut
	}

	fundamentals, ok := titles["Deck Building Fundamentals"]
	require.True(t, ok)
	assert.Equal(t, "basics", fundamentals.Category)
	assert.Contains(t, fundamentals.Content, "win condition")

	synergy, ok := titles["Card Synergy and Combos"]
	require.True(t, ok)
	assert.Equal(t, "synergy", synergy.Category)

	advanced, ok := titles["Advanced: Champions and Evolutions"]
	require.True(t, ok)
	assert.Equal(t, "advanced", advanced.Category)
}

func TestExtractYouTubeVideoID(t *testing.T) {
	cases := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":       "dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ":                      "dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ":         "dQw4w9WgXcQ",
		"https://www.youtube.com/v/dQw4w9WgXcQ":             "dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10s": "dQw4w9WgXcQ",
		"https://example.com/article":                       "",
	}
	for url, want := range cases {
		assert.Equal(t, want, extractYouTubeVideoID(url), "url: %s", url)
	}
}
