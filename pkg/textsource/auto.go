package textsource

import (
	"context"

	"github.com/gabriel-vasile/mimetype"

	"github.com/getzep/pdffacts/pkg/models"
)

var _ models.TextSource = &AutoSource{}

// AutoSource sniffs the uploaded bytes and hands PDFs and text documents to the matching
// source. The client supplied content type is not trusted.
type AutoSource struct {
	pdf  *PDFSource
	text *PlainTextSource
}

func NewAutoSource(maxPages int) *AutoSource {
	return &AutoSource{
		pdf:  NewPDFSource(maxPages),
		text: NewPlainTextSource(maxPages),
	}
}

func (s *AutoSource) Extract(ctx context.Context, doc models.Document) ([]models.PageBlock, error) {
	data, err := readAll(doc)
	if err != nil {
		return nil, err
	}

	mtype := mimetype.Detect(data)
	log.Debugf("detected %s for %s (declared %q)", mtype.String(), doc.Filename, doc.ContentType)

	switch {
	case mtype.Is("application/pdf"):
		return s.pdf.extract(ctx, doc.Filename, data)
	case isText(mtype):
		return s.text.split(doc.Filename, data)
	default:
		return nil, models.NewDocumentParseError(doc.Filename, ErrUnsupportedDocument)
	}
}

// isText reports whether m is text/plain or one of its descendants (csv, html, json...).
func isText(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
