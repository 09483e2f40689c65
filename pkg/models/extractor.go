package models

import "context"

// Extractor scans page text for one kind of fact. Implementations must be pure: the same
// pages always yield the same matches, and pages are never modified.
type Extractor interface {
	Extract(pages []PageBlock) []Match
}

// TextSource turns an uploaded document into an ordered sequence of PageBlocks.
// Undecodable input is reported as a DocumentParseError.
type TextSource interface {
	Extract(ctx context.Context, doc Document) ([]PageBlock, error)
}
