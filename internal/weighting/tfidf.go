package weighting

import (
	"math"

	"github.com/joshuahur/term_weight_engine/models"
)

// ComputeWeights turns raw token counts into normalized TF-IDF weights,
// one ScoredDocument per input document.
//
// tf is dampened as ln(1 + count/totalTerms). idf is ln(totalDocs/df);
// when a token appears in every document (which includes a single-file
// corpus) that would collapse to ln(1) = 0 and erase the tf signal, so 1
// is added in that case. Each document's score vector is L2-normalized to
// unit length.
func ComputeWeights(corpus models.CorpusFrequencies, df models.DocumentFrequencies, totalDocs int) map[string]models.ScoredDocument {
	scored := make(map[string]models.ScoredDocument, len(corpus))
	for name, table := range corpus {
		scored[name] = scoreDocument(table, df, totalDocs)
	}
	return scored
}

func scoreDocument(table models.FrequencyTable, df models.DocumentFrequencies, totalDocs int) models.ScoredDocument {
	doc := make(models.ScoredDocument, len(table))

	totalTerms := table.TotalTerms()
	if totalTerms == 0 {
		// Either an empty table or one holding only zero counts. There is
		// nothing to weight, but the token set must survive unchanged.
		for token := range table {
			doc[token] = 0
		}
		return doc
	}

	var sumOfSquares float64
	for token, count := range table {
		tf := math.Log(1 + float64(count)/float64(totalTerms))
		var idf float64
		if df[token] == totalDocs {
			idf = math.Log(float64(totalDocs)/float64(df[token])) + 1
		} else {
			idf = math.Log(float64(totalDocs) / float64(df[token]))
		}
		score := tf * idf
		doc[token] = score
		sumOfSquares += score * score
	}

	norm := math.Sqrt(sumOfSquares)
	if norm == 0 {
		// Degenerate input where every score vanished. Zero weights keep the
		// output finite instead of dividing into NaN.
		for token := range doc {
			doc[token] = 0
		}
		return doc
	}
	for token, score := range doc {
		doc[token] = score / norm
	}
	return doc
}
