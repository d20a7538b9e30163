package weighting

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/joshuahur/term_weight_engine/models"
)

// TokenWeight is one line of a ranked export file.
type TokenWeight struct {
	Token  string
	Weight float64
}

// Rank orders a document's weights descending. Equal weights fall back to
// ascending token order so repeated runs produce byte-identical files.
func Rank(scored models.ScoredDocument) []TokenWeight {
	ranked := make([]TokenWeight, 0, len(scored))
	for token, weight := range scored {
		ranked = append(ranked, TokenWeight{Token: token, Weight: weight})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Weight != ranked[j].Weight {
			return ranked[i].Weight > ranked[j].Weight
		}
		return ranked[i].Token < ranked[j].Token
	})
	return ranked
}

// WriteRanked serializes ranked weights, one "token: weight" pair per line
// with five decimal places.
func WriteRanked(w io.Writer, ranked []TokenWeight) error {
	for _, tw := range ranked {
		if _, err := fmt.Fprintf(w, "%s: %.5f\n", tw.Token, tw.Weight); err != nil {
			return fmt.Errorf("failed to write ranked weights: %w", err)
		}
	}
	return nil
}

// ExportDocument writes one document's ranked weight file. An empty scored
// document produces an empty file, not an error.
func ExportDocument(exportDir, fileName string, scored models.ScoredDocument) error {
	path := filepath.Join(exportDir, fileName)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create weight file %s: %w", path, err)
	}

	writer := bufio.NewWriter(file)
	if err := WriteRanked(writer, Rank(scored)); err != nil {
		file.Close()
		return err
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush weight file %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close weight file %s: %w", path, err)
	}
	return nil
}
