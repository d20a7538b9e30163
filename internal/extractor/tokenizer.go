package extractor

import (
	"log"

	"github.com/reiver/go-porterstemmer"
)

// stemTokens reduces tokens to their Porter stems. The stemmer is known to
// panic on some malformed inputs, so every token is stemmed inside a recover.
func stemTokens(tokens []string) []string {
	res := make([]string, 0, len(tokens))
	for _, token := range tokens {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("WARNING: Recovered from panic while stemming token '%s': %v", token, r)
				}
			}()
			stemmed := porterstemmer.StemString(token)
			if stemmed == "" {
				return
			}
			res = append(res, stemmed)
		}()
	}
	return res
}
