package weighting

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/joshuahur/term_weight_engine/config"
	"github.com/joshuahur/term_weight_engine/pkg"
)

// Pipeline runs the weighting stage end to end: stoplist and frequency
// files in, ranked term weight files out.
type Pipeline struct {
	importDir string
	exportDir string
	stoplist  string
	cfg       *config.WeightingConfig
}

func NewPipeline(importDir, exportDir, stoplist string, cfg *config.WeightingConfig) *Pipeline {
	return &Pipeline{
		importDir: importDir,
		exportDir: exportDir,
		stoplist:  stoplist,
		cfg:       cfg,
	}
}

func (p *Pipeline) Run(ctx context.Context) error {
	stopwords, err := LoadStopwords(p.stoplist)
	if err != nil {
		return err
	}

	corpus, err := LoadFrequencyTables(p.importDir, p.cfg.Suffix, stopwords, p.cfg.Strict)
	if err != nil {
		return err
	}
	if len(corpus) == 0 {
		log.Printf("No %s files found in %s, nothing to weight", p.cfg.Suffix, p.importDir)
		return nil
	}

	// Document frequencies must cover the whole corpus before any idf value
	// can be computed.
	df := DocumentFrequencies(corpus)
	scored := ComputeWeights(corpus, df, len(corpus))

	if err := pkg.EnsureDir(p.exportDir); err != nil {
		return err
	}
	names := make([]string, 0, len(scored))
	for name := range scored {
		names = append(names, name)
	}
	sort.Strings(names)

	used := make(map[string]struct{}, len(names))
	for _, name := range names {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		outName := pkg.WeightFileName(name, p.cfg.OutputExt)
		if _, ok := used[outName]; ok {
			// Two inputs share the prefix before the first underscore. Fall
			// back to the full input name so neither output is overwritten.
			outName = strings.TrimSuffix(name, p.cfg.Suffix) + pkg.SortByTermWeightMarker + p.cfg.OutputExt
			log.Printf("Weight file name for %s collides, writing %s instead", name, outName)
		}
		used[outName] = struct{}{}
		if err := ExportDocument(p.exportDir, outName, scored[name]); err != nil {
			return err
		}
	}

	log.Printf("TXT files from %s are now weighted and exported to %s", p.importDir, p.exportDir)
	return nil
}
