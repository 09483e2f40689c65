package textsource

import (
	"context"

	"github.com/getzep/pdffacts/pkg/models"
)

var _ models.TextSource = &StubSource{}

// SampleText is served by StubSource regardless of the upload.
const SampleText = "Sample PDF content. Signed by John Doe on January 15, 2024. Total amount: $5,000.00"

// StubSource ignores the document and returns a single page of SampleText. It is a
// placeholder for demos and wiring tests, not a parser.
type StubSource struct{}

func NewStubSource() *StubSource {
	return &StubSource{}
}

func (*StubSource) Extract(_ context.Context, _ models.Document) ([]models.PageBlock, error) {
	return []models.PageBlock{models.NewPageBlock(1, SampleText)}, nil
}
