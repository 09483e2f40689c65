package extractors

import (
	"strings"
	"unicode/utf8"

	"github.com/getzep/pdffacts/pkg/models"
)

var _ models.Extractor = &SubstringExtractor{}

// SubstringExtractor is the fallback for pointers no pattern extractor claims. It reports at
// most one match per page containing the term. The offsets are 0 and the length of the term,
// not the position of the term on the page.
type SubstringExtractor struct {
	term string
}

// NewSubstringExtractor expects an already lowercased term, see SearchTerm.
func NewSubstringExtractor(term string) *SubstringExtractor {
	return &SubstringExtractor{term: term}
}

// SearchTerm derives the fallback search term from a pointer: lowercased, every "?" removed,
// surrounding whitespace trimmed.
func SearchTerm(pointer string) string {
	return strings.TrimSpace(strings.ReplaceAll(strings.ToLower(pointer), "?", ""))
}

func (e *SubstringExtractor) Extract(pages []models.PageBlock) []models.Match {
	var matches []models.Match
	termLen := utf8.RuneCountInString(e.term)
	for _, page := range pages {
		if !strings.Contains(strings.ToLower(page.Text), e.term) {
			continue
		}
		matches = append(matches, models.Match{
			Snippet:     "Found: " + e.term,
			Page:        page.Page,
			StartOffset: 0,
			EndOffset:   termLen,
		})
	}
	return matches
}
