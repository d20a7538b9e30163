package models

// FrequencyTable holds the token counts of a single document.
type FrequencyTable map[string]int

// TotalTerms returns the sum of all token counts in the table.
func (t FrequencyTable) TotalTerms() int {
	total := 0
	for _, count := range t {
		total += count
	}
	return total
}

// CorpusFrequencies maps each document name to its frequency table.
type CorpusFrequencies map[string]FrequencyTable

// DocumentFrequencies counts, per token, the number of documents in the
// corpus that contain the token at least once.
type DocumentFrequencies map[string]int

// ScoredDocument maps each token of a document to its normalized term weight.
type ScoredDocument map[string]float64
