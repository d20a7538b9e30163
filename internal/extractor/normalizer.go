package extractor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

var (
	curlyQuoteRe  = regexp.MustCompile(`[\x{2019}\x{2018}\x{201B}\x{02BC}\x{02BB}]`)
	tagRe         = regexp.MustCompile(`<[^>]+>`)
	apostropheRe  = regexp.MustCompile(`([\p{L}\p{N}_]+)'(\s|$)`)
	possessiveRe  = regexp.MustCompile(`\b([\p{L}\p{N}_]+)'s\b`)
	numberCommaRe = regexp.MustCompile(`(\d),(\d)`)
	nonAlnumRe    = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
)

// Normalizer reduces raw HTML to a stream of lowercase tokens. Script, style
// and noscript subtrees are dropped entirely, remaining tags are stripped
// with a space inserted on each side so adjacent words never fuse, entities
// are decoded, trailing apostrophes and possessive endings are removed,
// commas inside numbers are deleted and every other non-alphanumeric
// character collapses to whitespace.
type Normalizer struct{}

func (n Normalizer) Tokenize(rawHTML string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	doc.Find("script, style, noscript").Remove()
	markup, err := doc.Html()
	if err != nil {
		return nil, fmt.Errorf("failed to render html: %w", err)
	}

	text := strings.ReplaceAll(markup, "<", " <")
	text = strings.ReplaceAll(text, ">", "> ")
	text = tagRe.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	text = curlyQuoteRe.ReplaceAllString(text, "'")
	text = apostropheRe.ReplaceAllString(text, "${1}${2}")
	text = possessiveRe.ReplaceAllString(text, "${1}")
	// A single pass can leave a comma behind when one digit sits between two
	// commas, so repeat until stable.
	for numberCommaRe.MatchString(text) {
		text = numberCommaRe.ReplaceAllString(text, "${1}${2}")
	}
	text = nonAlnumRe.ReplaceAllString(text, " ")
	text = norm.NFC.String(strings.ToLower(text))

	return strings.Fields(text), nil
}
