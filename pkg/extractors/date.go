package extractors

import (
	"regexp"

	"github.com/getzep/pdffacts/pkg/models"
)

// Force compiler to validate that the Extractor implements the Extractor interface.
var _ models.Extractor = &DateExtractor{}

var (
	// 1/2/2024, 12/31/2024. Not validated as a calendar date.
	reNumericDate = regexp.MustCompile(digit + `{1,2}/` + digit + `{1,2}/` + digit + `{4}`)
	// January 15, 2024 and January 15 2024
	reMonthNameDate = regexp.MustCompile(
		`(?i)(January|February|March|April|May|June|July|August|September|October|November|December)` +
			space + `+` + digit + `{1,2},?` + space + `+` + digit + `{4}`,
	)
)

// datePatterns is ordered: all numeric dates of a page are reported before its month-name dates.
// Both are matched on word boundaries.
var datePatterns = []*regexp.Regexp{reNumericDate, reMonthNameDate}

type DateExtractor struct{}

func NewDateExtractor() *DateExtractor {
	return &DateExtractor{}
}

func (*DateExtractor) Extract(pages []models.PageBlock) []models.Match {
	var matches []models.Match
	for _, page := range pages {
		for _, re := range datePatterns {
			matches = append(matches, scanPage(page, re, 0, true)...)
		}
	}
	return matches
}
