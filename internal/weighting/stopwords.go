package weighting

import (
	"fmt"
	"os"
	"strings"
)

// Stopwords is the set of tokens excluded from weighting.
type Stopwords map[string]struct{}

func NewStopwords(words []string) Stopwords {
	s := make(Stopwords, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s Stopwords) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// LoadStopwords reads a whitespace separated word list into a set. Words are
// taken as-is, no case folding happens here; the stoplist must match the
// case convention of the corpus.
func LoadStopwords(path string) (Stopwords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stoplist %s: %w", path, err)
	}
	return NewStopwords(strings.Fields(string(data))), nil
}
