// Package text holds the small string helpers the site extractors are built
// on: marker-bounded extraction, HTML unescaping and tag stripping, and
// tolerant number parsing. Every function here is total.
package text

import (
	"iter"
	"strings"
)

// Extr returns the text between the first occurrence of begin and the next
// occurrence of end after it, or "" if either marker is missing.
func Extr(s, begin, end string) string {
	v, _ := Extract(s, begin, end, 0)
	return v
}

// Extract works like Extr but starts searching at byte offset pos. It returns
// the value together with the offset just past the closing marker. When
// either marker is missing it returns ("", pos).
func Extract(s, begin, end string, pos int) (string, int) {
	if pos < 0 || pos > len(s) {
		return "", pos
	}

	i := strings.Index(s[pos:], begin)
	if i < 0 {
		return "", pos
	}
	first := pos + i + len(begin)

	j := strings.Index(s[first:], end)
	if j < 0 {
		return "", pos
	}
	last := first + j

	return s[first:last], last + len(end)
}

// ExtractIter yields every bounded value of s in document order.
func ExtractIter(s, begin, end string) iter.Seq[string] {
	return func(yield func(string) bool) {
		pos := 0
		for {
			i := strings.Index(s[pos:], begin)
			if i < 0 {
				return
			}
			first := pos + i + len(begin)

			j := strings.Index(s[first:], end)
			if j < 0 {
				return
			}
			last := first + j

			if !yield(s[first:last]) {
				return
			}
			pos = last + len(end)
		}
	}
}

// Extractor walks one text with a cursor, so consecutive fields can be pulled
// out in the order they appear on the page.
type Extractor struct {
	s   string
	pos int
}

func NewExtractor(s string) *Extractor {
	return &Extractor{s: s}
}

// Extr extracts the next bounded value after the cursor. A miss returns "" and
// leaves the cursor where it was, so later fields are still found.
func (e *Extractor) Extr(begin, end string) string {
	v, pos := Extract(e.s, begin, end, e.pos)
	e.pos = pos
	return v
}
