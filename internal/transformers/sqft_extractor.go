package transformers

import (
	"regexp"
	"strconv"
	"strings"
)

// a 3-6 character run of digits and commas in one span, followed by a span holding "sqft"
var squareFootagePattern = regexp.MustCompile(`(?i)<span[^>]*>([0-9,]{3,6})</span>\s*<span[^>]*>\s*sqft\s*</span>`)

type patternExtractor struct{}

// NewPatternExtractor returns the regular-expression extractor used for listing pages.
func NewPatternExtractor() SquareFootageExtractor {
	return patternExtractor{}
}

func (patternExtractor) Extract(html string) (int, bool) {
	return ExtractSquareFootage(html)
}

// ExtractSquareFootage returns the first number rendered right before a "sqft"
// label. The match is heuristic and can pick the wrong figure on busy pages.
func ExtractSquareFootage(html string) (int, bool) {
	match := squareFootagePattern.FindStringSubmatch(html)
	if len(match) < 2 {
		return 0, false
	}
	sqft, err := strconv.Atoi(strings.ReplaceAll(match[1], ",", ""))
	if err != nil {
		return 0, false
	}
	return sqft, true
}
