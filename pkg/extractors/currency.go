package extractors

import (
	"regexp"

	"github.com/getzep/pdffacts/pkg/models"
)

var _ models.Extractor = &CurrencyExtractor{}

// $5, $5,000, $1,250,000.99
var reDollarAmount = regexp.MustCompile(`\$` + digit + `{1,3}(?:,` + digit + `{3})*(?:\.` + digit + `{2})?`)

type CurrencyExtractor struct{}

func NewCurrencyExtractor() *CurrencyExtractor {
	return &CurrencyExtractor{}
}

func (*CurrencyExtractor) Extract(pages []models.PageBlock) []models.Match {
	return scanPages(pages, reDollarAmount, 0, false)
}
