package models

import (
	"io"
	"unicode/utf8"
)

// PageBlock is one page's worth of extracted document text.
type PageBlock struct {
	Page      int    `json:"page"`
	Text      string `json:"text"`
	CharCount int    `json:"char_count"`
}

// NewPageBlock creates a PageBlock, counting characters rather than bytes.
func NewPageBlock(page int, text string) PageBlock {
	return PageBlock{
		Page:      page,
		Text:      text,
		CharCount: utf8.RuneCountInString(text),
	}
}

// Match is a single extractor hit. Offsets are character offsets into the PageBlock's text.
type Match struct {
	Snippet     string
	Page        int
	StartOffset int
	EndOffset   int
}

type CharacterOffset struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ExtractionResult is the answer to one pointer. Snippets, PageNumbers and CharacterOffsets
// are index aligned.
type ExtractionResult struct {
	Pointer          string            `json:"pointer"`
	Snippets         []string          `json:"snippets"`
	PageNumbers      []int             `json:"page_numbers"`
	CharacterOffsets []CharacterOffset `json:"character_offsets"`
	Rationale        string            `json:"rationale"`
}

// NewExtractionResult builds a result from matches, keeping the parallel slices aligned and
// non-nil so that they serialize as empty arrays.
func NewExtractionResult(pointer string, matches []Match, rationale string) ExtractionResult {
	result := ExtractionResult{
		Pointer:          pointer,
		Snippets:         make([]string, 0, len(matches)),
		PageNumbers:      make([]int, 0, len(matches)),
		CharacterOffsets: make([]CharacterOffset, 0, len(matches)),
		Rationale:        rationale,
	}
	for _, m := range matches {
		result.Snippets = append(result.Snippets, m.Snippet)
		result.PageNumbers = append(result.PageNumbers, m.Page)
		result.CharacterOffsets = append(
			result.CharacterOffsets,
			CharacterOffset{Start: m.StartOffset, End: m.EndOffset},
		)
	}
	return result
}

type AnalyzeResponse struct {
	Filename string             `json:"filename"`
	Results  []ExtractionResult `json:"results"`
}

// Document is an uploaded file handed to a TextSource.
type Document struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.ReaderAt
}
