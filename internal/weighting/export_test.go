package weighting

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuahur/term_weight_engine/models"
)

func TestRank_DescendingByWeight(t *testing.T) {
	scored := models.ScoredDocument{"cat": 0.81, "sat": 0.58, "mat": 0.02}

	ranked := Rank(scored)

	require.Len(t, ranked, 3)
	assert.Equal(t, "cat", ranked[0].Token)
	assert.Equal(t, "sat", ranked[1].Token)
	assert.Equal(t, "mat", ranked[2].Token)
}

func TestRank_TiesBrokenByToken(t *testing.T) {
	scored := models.ScoredDocument{"zebra": 0.5, "apple": 0.5, "mango": 0.5}

	ranked := Rank(scored)

	require.Len(t, ranked, 3)
	assert.Equal(t, "apple", ranked[0].Token)
	assert.Equal(t, "mango", ranked[1].Token)
	assert.Equal(t, "zebra", ranked[2].Token)
}

func TestWriteRanked_FiveDecimalPlaces(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRanked(&buf, []TokenWeight{
		{Token: "cat", Weight: 0.5},
		{Token: "sat", Weight: 0.123456789},
	})
	require.NoError(t, err)
	assert.Equal(t, "cat: 0.50000\nsat: 0.12346\n", buf.String())
}

func TestExportDocument_EmptyDocumentWritesEmptyFile(t *testing.T) {
	dir := t.TempDir()

	err := ExportDocument(dir, "empty_Sort_by_Term_Weight.wts", models.ScoredDocument{})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "empty_Sort_by_Term_Weight.wts"))
	require.NoError(t, err)
	assert.Empty(t, data)
}
