package weighting

import "github.com/joshuahur/term_weight_engine/models"

// DocumentFrequencies counts, for every token in the corpus, the number of
// documents containing it at least once. A token repeated fifty times in one
// document still contributes a single increment.
func DocumentFrequencies(corpus models.CorpusFrequencies) models.DocumentFrequencies {
	df := make(models.DocumentFrequencies)
	for _, table := range corpus {
		for token := range table {
			df[token]++
		}
	}
	return df
}
