package chapters

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/brogergvhs/mangaread/internal/providers"
)

type Chapter struct {
	providers.Chapter
}

var reUnderscore = regexp.MustCompile(`_+`)

var sanitizer = strings.NewReplacer(
	"•", "_",
	"-", "_",
	"—", "_",
	"–", "_",
	"/", "_",
	"\\", "_",
	".", "_",
	" ", "_",
	"(", "",
	")", "",
)

func sanitize(s string) string {
	s = sanitizer.Replace(strings.ToLower(s))

	clean := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			clean = append(clean, r)
		}
	}

	return strings.Trim(reUnderscore.ReplaceAllString(string(clean), "_"), "_")
}

// baseName is "ch_<label>[_<title>]", e.g. "ch_1053_3" or "ch_3_the_date".
func (c Chapter) baseName() string {
	name := "ch_" + sanitize(c.Label)

	if title := sanitize(c.Title); title != "" {
		name += "_" + title
	}

	return name
}

// MangaFolder is the per-manga output directory name.
func (c Chapter) MangaFolder() string {
	if m := sanitize(c.Manga); m != "" {
		return m
	}
	return "unknown"
}

func (c Chapter) TempFolder(out string) string {
	return filepath.Join(out, c.MangaFolder(), c.baseName()+"_tmp")
}

func (c Chapter) OutputCBZ() string {
	return c.baseName() + ".cbz"
}

func (c Chapter) OutputCBZPath(out string) string {
	return filepath.Join(out, c.MangaFolder(), c.OutputCBZ())
}

// ArchiveKey identifies the chapter in the download archive.
func (c Chapter) ArchiveKey() string {
	return "mangaread:" + strings.ToLower(c.Manga) + ":" + c.Label
}

func Wrap(all []providers.Chapter) []Chapter {
	out := make([]Chapter, len(all))
	for i, c := range all {
		out[i] = Chapter{Chapter: c}
	}
	return out
}
