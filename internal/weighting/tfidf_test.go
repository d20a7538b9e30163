package weighting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuahur/term_weight_engine/models"
)

func TestComputeWeights_SingleDocumentCorpus(t *testing.T) {
	corpus := models.CorpusFrequencies{
		"doc_Sort_by_Frequency.txt": {"cat": 3, "sat": 2},
	}
	df := DocumentFrequencies(corpus)
	scored := ComputeWeights(corpus, df, 1)

	doc := scored["doc_Sort_by_Frequency.txt"]
	require.Len(t, doc, 2)

	// With one document every token appears everywhere, so idf is 1 instead
	// of ln(1) = 0 and the weights reduce to the normalized dampened term
	// frequencies.
	tfCat := math.Log(1 + 3.0/5.0)
	tfSat := math.Log(1 + 2.0/5.0)
	norm := math.Sqrt(tfCat*tfCat + tfSat*tfSat)
	assert.InDelta(t, tfCat/norm, doc["cat"], 1e-12)
	assert.InDelta(t, tfSat/norm, doc["sat"], 1e-12)
	assert.Greater(t, doc["cat"], doc["sat"])
}

func TestComputeWeights_UnitNorm(t *testing.T) {
	corpus := models.CorpusFrequencies{
		"a.txt": {"cat": 3, "sat": 2, "mat": 7},
		"b.txt": {"cat": 1, "dog": 4},
		"c.txt": {"dog": 2, "fox": 9, "mat": 1},
	}
	df := DocumentFrequencies(corpus)
	scored := ComputeWeights(corpus, df, len(corpus))
	require.Len(t, scored, 3)

	for name, doc := range scored {
		var sumOfSquares float64
		for _, weight := range doc {
			sumOfSquares += weight * weight
		}
		assert.InDelta(t, 1.0, math.Sqrt(sumOfSquares), 1e-9, "document %s", name)
	}
}

func TestComputeWeights_VocabularyPreserved(t *testing.T) {
	corpus := models.CorpusFrequencies{
		"a.txt": {"cat": 3, "sat": 2},
		"b.txt": {"cat": 1, "dog": 4, "fox": 1},
	}
	df := DocumentFrequencies(corpus)
	scored := ComputeWeights(corpus, df, len(corpus))

	for name, table := range corpus {
		doc := scored[name]
		require.Len(t, doc, len(table), "document %s", name)
		for token := range table {
			assert.Contains(t, doc, token, "document %s", name)
		}
	}
}

func TestComputeWeights_EmptyDocument(t *testing.T) {
	corpus := models.CorpusFrequencies{
		"empty.txt": {},
		"full.txt":  {"cat": 2, "dog": 1},
	}
	df := DocumentFrequencies(corpus)
	scored := ComputeWeights(corpus, df, len(corpus))

	assert.Empty(t, scored["empty.txt"])
	assert.Len(t, scored["full.txt"], 2)
}

func TestComputeWeights_RareTokenOutweighsSharedToken(t *testing.T) {
	// "fox" appears in one of three documents, "cat" in all of them. At
	// equal counts the rarer token must carry the larger weight.
	corpus := models.CorpusFrequencies{
		"a.txt": {"cat": 2, "fox": 2},
		"b.txt": {"cat": 5},
		"c.txt": {"cat": 1},
	}
	df := DocumentFrequencies(corpus)
	scored := ComputeWeights(corpus, df, len(corpus))

	doc := scored["a.txt"]
	assert.Greater(t, doc["fox"], doc["cat"])
}

func TestScoreDocument_ZeroNormStaysFinite(t *testing.T) {
	// A table of zero counts has no term mass at all; every weight must be
	// exactly zero rather than NaN from a 0/0 division.
	table := models.FrequencyTable{"cat": 0, "sat": 0}
	doc := scoreDocument(table, models.DocumentFrequencies{"cat": 1, "sat": 1}, 2)

	require.Len(t, doc, 2)
	for token, weight := range doc {
		assert.Zero(t, weight, "token %s", token)
		assert.False(t, math.IsNaN(weight), "token %s", token)
	}
}

func TestScoreDocument_TermFrequencyMonotonic(t *testing.T) {
	// Raising a token's count while its document frequency stays fixed must
	// never lower its weight relative to the other token in the document.
	df := models.DocumentFrequencies{"cat": 1, "dog": 2}
	prevRatio := 0.0
	for count := 1; count <= 5; count++ {
		doc := scoreDocument(models.FrequencyTable{"cat": count, "dog": 1}, df, 2)
		ratio := doc["cat"] / doc["dog"]
		assert.Greater(t, ratio, prevRatio, "count %d", count)
		prevRatio = ratio
	}
}
