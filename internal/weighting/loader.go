package weighting

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/joshuahur/term_weight_engine/models"
	"github.com/joshuahur/term_weight_engine/pkg"
)

// ErrMalformedLine marks a frequency file line that does not parse as a
// single "token: count" pair. Tolerant mode skips such lines silently,
// strict mode surfaces them wrapped in this error.
var ErrMalformedLine = errors.New("malformed frequency line")

// LoadFrequencyTables reads every file in dir whose name ends with suffix
// into a per-document frequency table. Tokens found in the stoplist or
// shorter than two characters are dropped; counts of a token repeated
// across lines of the same file are summed. A file that cannot be read
// aborts the whole load.
func LoadFrequencyTables(dir, suffix string, stopwords Stopwords, strict bool) (models.CorpusFrequencies, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read import directory %s: %w", dir, err)
	}

	corpus := make(models.CorpusFrequencies)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		if entry.Name() == pkg.CombinedFrequencyFile {
			// The corpus-wide roll-up written by the extraction stage is
			// not a document; counting it would inflate the corpus size and
			// every token's document frequency.
			continue
		}
		table, err := loadFrequencyFile(filepath.Join(dir, entry.Name()), stopwords, strict)
		if err != nil {
			return nil, err
		}
		corpus[entry.Name()] = table
	}
	return corpus, nil
}

func loadFrequencyFile(path string, stopwords Stopwords, strict bool) (models.FrequencyTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open frequency file %s: %w", path, err)
	}
	defer file.Close()

	table := make(models.FrequencyTable)
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		parts := strings.Split(strings.TrimSpace(scanner.Text()), ":")
		if len(parts) != 2 {
			if strict {
				return nil, fmt.Errorf("%s:%d: %w", path, lineNo, ErrMalformedLine)
			}
			continue
		}
		token := strings.TrimSpace(parts[0])
		count, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || count < 0 {
			// A negative count would feed ln a negative argument later and
			// leak NaN into the output.
			if strict {
				return nil, fmt.Errorf("%s:%d: %w", path, lineNo, ErrMalformedLine)
			}
			continue
		}
		if stopwords.Contains(token) || utf8.RuneCountInString(token) <= 1 {
			continue
		}
		table[token] += count
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read frequency file %s: %w", path, err)
	}
	return table, nil
}
