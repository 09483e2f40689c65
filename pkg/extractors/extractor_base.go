package extractors

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/getzep/pdffacts/internal"
	"github.com/getzep/pdffacts/pkg/models"
)

var log = internal.GetLogger()

// RE2 classes are ASCII only. These fragments widen them to the Unicode sets extracted text
// actually contains (no-break spaces, ideographic spaces, non-ASCII decimal digits).
const (
	// \s plus every separator and the C0/C1 controls Unicode treats as whitespace
	space = `[\t\n\v\f\r\x{1c}-\x{1f}\x{85}\p{Z}]`
	digit = `\p{Nd}`
)

// scanPages applies re to every page in order.
func scanPages(pages []models.PageBlock, re *regexp.Regexp, group int, bounded bool) []models.Match {
	var matches []models.Match
	for _, page := range pages {
		matches = append(matches, scanPage(page, re, group, bounded)...)
	}
	return matches
}

// scanPage returns one Match per non-overlapping hit of re, left to right. The snippet is the
// text of submatch group (0 for the whole match) while the offsets always cover the whole
// match.
//
// When bounded is set a hit must start and end on a word boundary, where letters and digits
// of any script count as word characters. A rejected hit resumes the scan one character past
// its start, so a valid hit overlapping it is still found.
func scanPage(page models.PageBlock, re *regexp.Regexp, group int, bounded bool) []models.Match {
	text := page.Text

	var matches []models.Match
	for pos := 0; pos < len(text); {
		loc := re.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]

		if bounded && !onWordBoundaries(text, start, end) {
			_, size := utf8.DecodeRuneInString(text[start:])
			pos = start + max(size, 1)
			continue
		}

		matches = append(matches, models.Match{
			Snippet:     text[pos+loc[2*group] : pos+loc[2*group+1]],
			Page:        page.Page,
			StartOffset: charOffset(text, start),
			EndOffset:   charOffset(text, end),
		})

		if end == start {
			_, size := utf8.DecodeRuneInString(text[end:])
			end += max(size, 1)
		}
		pos = end
	}
	return matches
}

// onWordBoundaries reports whether text[start:end] is not glued to a word character on either
// side.
func onWordBoundaries(text string, start, end int) bool {
	if before, _ := utf8.DecodeLastRuneInString(text[:start]); start > 0 && isWordRune(before) {
		return false
	}
	if after, _ := utf8.DecodeRuneInString(text[end:]); end < len(text) && isWordRune(after) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// charOffset converts a byte offset into text to a character offset.
func charOffset(text string, byteOffset int) int {
	return utf8.RuneCountInString(text[:byteOffset])
}
