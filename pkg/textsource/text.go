package textsource

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/getzep/pdffacts/pkg/models"
)

var _ models.TextSource = &PlainTextSource{}

// PageSeparator is the form feed pdftotext emits between pages.
const PageSeparator = "\f"

var ErrInvalidUTF8 = errors.New("text is not valid UTF-8")

// PlainTextSource reads UTF-8 text documents, one page per form-feed separated section.
type PlainTextSource struct {
	maxPages int
}

func NewPlainTextSource(maxPages int) *PlainTextSource {
	return &PlainTextSource{maxPages: maxPages}
}

func (s *PlainTextSource) Extract(_ context.Context, doc models.Document) ([]models.PageBlock, error) {
	data, err := readAll(doc)
	if err != nil {
		return nil, err
	}
	return s.split(doc.Filename, data)
}

func (s *PlainTextSource) split(filename string, data []byte) ([]models.PageBlock, error) {
	if !utf8.Valid(data) {
		return nil, models.NewDocumentParseError(filename, ErrInvalidUTF8)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	sections := strings.Split(text, PageSeparator)

	pages := make([]models.PageBlock, 0, len(sections))
	for i, section := range sections {
		pages = append(pages, models.NewPageBlock(i+1, section))
	}

	log.Debugf("read %d text pages from %s", len(pages), filename)

	return capPages(pages, s.maxPages), nil
}
