package extractors

import (
	"regexp"

	"github.com/getzep/pdffacts/pkg/models"
)

var _ models.Extractor = &SignerExtractor{}

// The case-insensitive flag covers the name as well, so "signed by jane roe" matches too.
var reSignedBy = regexp.MustCompile(`(?i)Signed by` + space + `+([A-Z][a-z]+ [A-Z][a-z]+)`)

// SignerExtractor finds "Signed by Firstname Lastname". The snippet is the name only, the
// offsets span the whole "Signed by ..." phrase.
type SignerExtractor struct{}

func NewSignerExtractor() *SignerExtractor {
	return &SignerExtractor{}
}

func (*SignerExtractor) Extract(pages []models.PageBlock) []models.Match {
	return scanPages(pages, reSignedBy, 1, false)
}
