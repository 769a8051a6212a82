package mangaread

import (
	"slices"
	"strconv"
)

// ChapterIdentifier is what a chapter heading such as
// "One Piece - Chapter 1053.3" decodes to.
type ChapterIdentifier struct {
	Manga        string
	Chapter      int
	ChapterMinor string
	Title        string
}

// MangaRecord is the manga-level metadata from a manga's listing page.
type MangaRecord struct {
	Manga       string   `yaml:"manga,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Rating      float64  `yaml:"rating,omitempty"`
	MangaAlt    []string `yaml:"manga_alt,omitempty"`
	Author      []string `yaml:"author,omitempty"`
	Artist      []string `yaml:"artist,omitempty"`
	Genres      []string `yaml:"genres,omitempty"`
	Type        string   `yaml:"type,omitempty"`
	Release     int      `yaml:"release,omitempty"`
	Status      string   `yaml:"status,omitempty"`
}

// clone returns a copy that shares no slice storage with m.
func (m MangaRecord) clone() MangaRecord {
	m.MangaAlt = slices.Clone(m.MangaAlt)
	m.Author = slices.Clone(m.Author)
	m.Artist = slices.Clone(m.Artist)
	m.Genres = slices.Clone(m.Genres)
	return m
}

// ChapterRecord is the full metadata of one chapter. The embedded MangaRecord
// is only populated for chapters produced from a manga page.
type ChapterRecord struct {
	MangaRecord  `yaml:",inline"`
	Chapter      int      `yaml:"chapter"`
	ChapterMinor string   `yaml:"chapter_minor"`
	Title        string   `yaml:"title"`
	Tags         []string `yaml:"tags"`
	Lang         string   `yaml:"lang"`
	Language     string   `yaml:"language"`
}

// Label is the chapter number as shown on the site, e.g. "1053.3".
func (r ChapterRecord) Label() string {
	return strconv.Itoa(r.Chapter) + r.ChapterMinor
}

// ChapterEntry pairs a chapter link from a manga page with its record.
type ChapterEntry struct {
	URL    string
	Record ChapterRecord
}

// newChapterRecord builds a fresh record from base with the chapter fields of
// id applied. A manga name already known from base wins over the one parsed
// from the heading.
func newChapterRecord(base MangaRecord, id ChapterIdentifier, tags []string, loc Locale) ChapterRecord {
	rec := ChapterRecord{
		MangaRecord:  base.clone(),
		Chapter:      id.Chapter,
		ChapterMinor: id.ChapterMinor,
		Title:        id.Title,
		Tags:         slices.Clone(tags),
		Lang:         loc.Lang,
		Language:     loc.Language,
	}
	if rec.Manga == "" {
		rec.Manga = id.Manga
	}

	return rec
}
