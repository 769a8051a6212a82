package mangaread

import (
	"strings"

	"github.com/brogergvhs/mangaread/internal/text"
)

// Parser turns mangaread.org pages into records. It holds no state besides
// its locale and is safe for concurrent use.
type Parser struct {
	locale Locale
}

func NewParser(loc Locale) *Parser {
	return &Parser{locale: loc}
}

// ChapterMetadata reads the heading and tag labels of a chapter page. A page
// without a chapter heading yields a NotFoundError of kind "chapter".
func (p *Parser) ChapterMetadata(page string) (ChapterRecord, error) {
	var tags []string
	for tag := range text.ExtractIter(page, markTagOpen, markTagClose) {
		tags = append(tags, strings.TrimSpace(tag))
	}

	heading := text.Extr(page, markChapterHeadingOpen, markChapterHeadingClose)
	if strings.TrimSpace(heading) == "" {
		return ChapterRecord{}, &NotFoundError{Kind: KindChapter}
	}

	id, err := ParseChapterString(heading)
	if err != nil {
		return ChapterRecord{}, err
	}

	return newChapterRecord(MangaRecord{}, id, tags, p.locale), nil
}

// ChapterImages returns the page image URLs of a chapter in reading order.
// Only images inside the reading-content block are considered.
func (p *Parser) ChapterImages(page string) []string {
	region := text.Extr(page, markReadingOpen, markReadingClose)

	var urls []string
	for u := range text.ExtractIter(region, markImageOpen, markImageClose) {
		urls = append(urls, strings.TrimSpace(u))
	}

	return urls
}

// MangaMetadata reads the manga-level fields of a listing page. Missing
// fields are left empty.
func (p *Parser) MangaMetadata(page string) MangaRecord {
	var m MangaRecord

	m.Manga = strings.TrimSpace(text.Unescape(text.Extr(page, markTitleOpen, markTitleClose)))

	if i := strings.Index(page, markDescription); i >= 0 {
		desc, _ := text.Extract(page, ">", markDivClose, i)
		m.Description = text.RemoveHTML(desc)
	}

	ex := text.NewExtractor(text.Extr(page, markSummaryOpen, markSummaryClose))
	m.Rating = text.ParseFloat(ex.Extr(markRatingOpen, markRatingClose))
	m.MangaAlt = splitAltTitles(text.RemoveHTML(ex.Extr(markAlternative, markDivClose)))
	m.Author = tagLinks(ex.Extr(markAuthor, markDivClose))
	m.Artist = tagLinks(ex.Extr(markArtist, markDivClose))
	m.Genres = tagLinks(ex.Extr(markGenres, markDivClose))
	m.Type = text.RemoveHTML(ex.Extr(markType, markDivClose))
	m.Release = text.ParseInt(text.RemoveHTML(ex.Extr(markRelease, markDivClose)))
	m.Status = text.RemoveHTML(ex.Extr(markStatus, markDivClose))

	return m
}

// MangaChapters lists the chapters of a manga page in page order, each with
// its own copy of the manga metadata. The site's 404 page yields a
// NotFoundError of kind "manga". A chapter link whose text cannot be parsed
// aborts the whole listing.
func (p *Parser) MangaChapters(page string) ([]ChapterEntry, error) {
	if strings.Contains(page, markError404) {
		return nil, &NotFoundError{Kind: KindManga}
	}

	base := p.MangaMetadata(page)

	var entries []ChapterEntry
	for item := range text.ExtractIter(page, markChapterItemOpen, markChapterItemClose) {
		url, pos := text.Extract(item, markHrefOpen, markHrefClose, 0)
		info, _ := text.Extract(item, markLinkTextOpen, markLinkTextClose, pos)
		url = strings.TrimSpace(url)

		clean := cleanChapterString(info)
		id, ok := matchChapterString(clean)
		if !ok {
			return nil, &ChapterTitleError{Input: clean, URL: url}
		}

		entries = append(entries, ChapterEntry{
			URL:    url,
			Record: newChapterRecord(base, id, nil, p.locale),
		})
	}

	return entries, nil
}

// splitAltTitles expects text already passed through RemoveHTML.
func splitAltTitles(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return strings.Split(s, altTitleSeparator)
}

func tagLinks(block string) []string {
	var out []string
	for v := range text.ExtractIter(block, markTagLinkOpen, markTagLinkClose) {
		out = append(out, strings.TrimSpace(text.Unescape(v)))
	}

	return out
}
