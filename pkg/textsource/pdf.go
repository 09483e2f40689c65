package textsource

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/getzep/pdffacts/pkg/models"
)

var _ models.TextSource = &PDFSource{}

// PDFSource extracts the plain text of every page of a PDF.
type PDFSource struct {
	maxPages int
}

func NewPDFSource(maxPages int) *PDFSource {
	return &PDFSource{maxPages: maxPages}
}

func (s *PDFSource) Extract(ctx context.Context, doc models.Document) ([]models.PageBlock, error) {
	data, err := readAll(doc)
	if err != nil {
		return nil, err
	}
	return s.extract(ctx, doc.Filename, data)
}

func (s *PDFSource) extract(
	ctx context.Context,
	filename string,
	data []byte,
) (pages []models.PageBlock, err error) {
	// the pdf package panics on some malformed object graphs
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = models.NewDocumentParseError(filename, fmt.Errorf("malformed pdf: %v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, models.NewDocumentParseError(filename, err)
	}

	numPages := reader.NumPage()
	if s.maxPages > 0 && numPages > s.maxPages {
		log.Debugf("%s has %d pages, reading the first %d", filename, numPages, s.maxPages)
		numPages = s.maxPages
	}

	pages = make([]models.PageBlock, 0, numPages)
	for i := 1; i <= numPages; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		p := reader.Page(i)
		if p.V.IsNull() {
			continue
		}

		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, models.NewDocumentParseError(
				filename,
				fmt.Errorf("unable to read page %d: %w", i, err),
			)
		}

		pages = append(pages, models.NewPageBlock(i, Normalize(text)))
	}

	if len(pages) == 0 {
		return nil, models.NewDocumentParseError(filename, ErrNoPages)
	}

	log.Debugf("read %d pdf pages from %s", len(pages), filename)

	return pages, nil
}
