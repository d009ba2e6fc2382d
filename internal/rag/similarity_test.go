package rag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity(t *testing.T) {
	sim, err := CosineSimilarity([]float32{1, 0, 0}, []float32{1, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-9)

	sim, err = CosineSimilarity([]float32{1, 0}, []float32{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, sim, 1e-9)

	sim, err = CosineSimilarity([]float32{1, 0}, []float32{-1, 0})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, sim, 1e-9)

	// 缩放不改变余弦相似度
	sim, err = CosineSimilarity([]float32{1, 2, 3}, []float32{2, 4, 6})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-9)
}

func TestCosineSimilarityZeroVector(t *testing.T) {
	// 零向量与任何向量的相似度为0，未配置嵌入密钥时依赖这个行为
	sim, err := CosineSimilarity([]float32{0, 0, 0}, []float32{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, sim)
}

func TestCosineSimilarityDimensionMismatch(t *testing.T) {
	_, err := CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3})
	assert.Error(t, err)
}

func TestFormatCitations(t *testing.T) {
	assert.Equal(t, "", FormatCitations(nil))

	citations := []Citation{
		{SourceTitle: "Deck Guide", SourceType: "article", SourceURL: "https://example.com/guide"},
		{SourceTitle: "Seed Tutorials", SourceType: "seed_markdown"},
	}
	formatted := FormatCitations(citations)
	assert.Equal(t, "[1] [Deck Guide](https://example.com/guide) (article)\n[2] Seed Tutorials (seed_markdown)", formatted)
}
