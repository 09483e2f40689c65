// Package textsource turns uploaded documents into per-page text.
package textsource

import (
	"errors"
	"fmt"
	"io"

	"github.com/getzep/pdffacts/config"
	"github.com/getzep/pdffacts/internal"
	"github.com/getzep/pdffacts/pkg/models"
)

var log = internal.GetLogger()

var (
	ErrEmptyDocument       = errors.New("document is empty")
	ErrUnsupportedDocument = errors.New("unsupported document type")
	ErrNoPages             = errors.New("document has no pages")
)

// New returns the TextSource selected by extraction.source.
func New(cfg *config.Config) (models.TextSource, error) {
	maxPages := cfg.Extraction.MaxPages

	switch cfg.Extraction.Source {
	case config.SourceAuto, "":
		return NewAutoSource(maxPages), nil
	case config.SourcePDF:
		return NewPDFSource(maxPages), nil
	case config.SourceText:
		return NewPlainTextSource(maxPages), nil
	case config.SourceStub:
		return NewStubSource(), nil
	default:
		return nil, fmt.Errorf("extraction.source (%s) is not supported", cfg.Extraction.Source)
	}
}

// readAll reads the whole document, rejecting empty uploads.
func readAll(doc models.Document) ([]byte, error) {
	if doc.Size <= 0 {
		return nil, models.NewDocumentParseError(doc.Filename, ErrEmptyDocument)
	}
	data, err := io.ReadAll(io.NewSectionReader(doc.Reader, 0, doc.Size))
	if err != nil {
		return nil, models.NewDocumentParseError(doc.Filename, err)
	}
	return data, nil
}

// capPages trims pages to maxPages when a limit is set.
func capPages(pages []models.PageBlock, maxPages int) []models.PageBlock {
	if maxPages > 0 && len(pages) > maxPages {
		return pages[:maxPages]
	}
	return pages
}
