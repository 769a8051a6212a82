package mangaread

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/brogergvhs/mangaread/internal/text"
)

var reChapterString = regexp.MustCompile(`^(?:(.+)\s*-\s*)?(?i:chapter)\s*(\d+)(\.\d+)?(?:\s*-\s*(.+))?`)

// ParseChapterString decodes a chapter heading of the form
//
//	[manga -] Chapter N[.M] [- title]
//
// The input may still contain HTML entities and surrounding whitespace.
func ParseChapterString(s string) (ChapterIdentifier, error) {
	clean := cleanChapterString(s)

	id, ok := matchChapterString(clean)
	if !ok {
		return ChapterIdentifier{}, &ChapterTitleError{Input: clean}
	}

	return id, nil
}

func cleanChapterString(s string) string {
	return strings.TrimSpace(text.Unescape(s))
}

func matchChapterString(s string) (ChapterIdentifier, bool) {
	m := reChapterString.FindStringSubmatch(s)
	if m == nil {
		return ChapterIdentifier{}, false
	}

	// out of int range
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return ChapterIdentifier{}, false
	}

	return ChapterIdentifier{
		Manga:        strings.TrimSpace(m[1]),
		Chapter:      n,
		ChapterMinor: m[3],
		Title:        strings.TrimSpace(m[4]),
	}, true
}
