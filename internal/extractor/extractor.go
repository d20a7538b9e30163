package extractor

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joshuahur/term_weight_engine/config"
	"github.com/joshuahur/term_weight_engine/models"
	"github.com/joshuahur/term_weight_engine/pkg"
)

// Extractor turns a directory of HTML documents into per-document token
// frequency files, the input format of the weighting stage.
type Extractor struct {
	importDir  string
	exportDir  string
	cfg        *config.ExtractorConfig
	normalizer Normalizer
}

func NewExtractor(importDir, exportDir string, cfg *config.ExtractorConfig) *Extractor {
	return &Extractor{
		importDir: importDir,
		exportDir: exportDir,
		cfg:       cfg,
	}
}

// Run tokenizes every matching document in the import directory into a
// frequency file, plus one combined file covering the whole corpus. A
// document that fails to read or parse is logged and skipped, it does not
// abort the remaining files.
func (e *Extractor) Run(ctx context.Context) error {
	entries, err := os.ReadDir(e.importDir)
	if err != nil {
		return fmt.Errorf("failed to read import directory %s: %w", e.importDir, err)
	}
	if err := pkg.EnsureDir(e.exportDir); err != nil {
		return err
	}

	combined := make(models.FrequencyTable)
	processed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), e.cfg.Suffix) {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		path := filepath.Join(e.importDir, entry.Name())
		counts, err := e.processFile(path)
		if err != nil {
			log.Printf("Failed to process %s: %v", path, err)
			continue
		}
		for token, count := range counts {
			combined[token] += count
		}

		base := strings.TrimSuffix(entry.Name(), e.cfg.Suffix)
		if err := exportCounts(filepath.Join(e.exportDir, pkg.FrequencyFileName(base)), counts); err != nil {
			return err
		}
		processed++
	}

	if err := exportCounts(filepath.Join(e.exportDir, pkg.CombinedFrequencyFile), combined); err != nil {
		return err
	}
	log.Printf("HTML files from %s are now tokenized and exported to %s (%d documents)", e.importDir, e.exportDir, processed)
	return nil
}

func (e *Extractor) processFile(path string) (models.FrequencyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	tokens, err := e.normalizer.Tokenize(string(data))
	if err != nil {
		return nil, err
	}
	if e.cfg.Stemming {
		tokens = stemTokens(tokens)
	}

	counts := make(models.FrequencyTable)
	for _, token := range tokens {
		counts[token]++
	}
	return counts, nil
}

// exportCounts writes "token: count" lines ordered by count descending,
// ties by token ascending.
func exportCounts(path string, counts models.FrequencyTable) error {
	type tokenCount struct {
		token string
		count int
	}
	sorted := make([]tokenCount, 0, len(counts))
	for token, count := range counts {
		sorted = append(sorted, tokenCount{token, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].token < sorted[j].token
	})

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create frequency file %s: %w", path, err)
	}
	writer := bufio.NewWriter(file)
	for _, tc := range sorted {
		if _, err := fmt.Fprintf(writer, "%s: %d\n", tc.token, tc.count); err != nil {
			file.Close()
			return fmt.Errorf("failed to write frequency file %s: %w", path, err)
		}
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush frequency file %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close frequency file %s: %w", path, err)
	}
	return nil
}
