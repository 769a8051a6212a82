package mangaread

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/brogergvhs/mangaread/internal/providers"
	"github.com/brogergvhs/mangaread/internal/util"
)

type Logger interface {
	Debugf(string, ...any)
}

// Scraper fetches mangaread.org pages and runs the Parser over them.
type Scraper struct {
	client *http.Client
	parser *Parser
	log    Logger
}

var _ providers.Scraper = (*Scraper)(nil)

func NewScraper(c *http.Client, log Logger, loc Locale) *Scraper {
	return &Scraper{
		client: c,
		parser: NewParser(loc),
		log:    log,
	}
}

func (s *Scraper) fetch(ctx context.Context, target string) (string, error) {
	page, err := util.FetchPage(ctx, s.client, target)
	if err != nil {
		return "", err
	}

	s.log.Debugf("fetched %s (%d bytes)", target, len(page))
	return page, nil
}

// Manga returns the metadata of the manga page at mangaURL.
func (s *Scraper) Manga(ctx context.Context, mangaURL string) (MangaRecord, error) {
	if _, ok := MatchMangaURL(mangaURL); !ok {
		return MangaRecord{}, fmt.Errorf("%w: %s", ErrUnsupportedURL, mangaURL)
	}

	page, err := s.fetch(ctx, mangaURL)
	if err != nil {
		return MangaRecord{}, err
	}

	if strings.Contains(page, markError404) {
		return MangaRecord{}, &NotFoundError{Kind: KindManga}
	}

	return s.parser.MangaMetadata(page), nil
}

// MangaChapters returns the chapter list of the manga page at mangaURL in
// page order (newest first on this site), with absolute URLs.
func (s *Scraper) MangaChapters(ctx context.Context, mangaURL string) ([]ChapterEntry, error) {
	if _, ok := MatchMangaURL(mangaURL); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedURL, mangaURL)
	}

	page, err := s.fetch(ctx, mangaURL)
	if err != nil {
		return nil, err
	}

	entries, err := s.parser.MangaChapters(page)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", mangaURL, err)
	}

	for i := range entries {
		entries[i].URL = resolveURL(mangaURL, entries[i].URL)
	}

	s.log.Debugf("%s: %d chapters", mangaURL, len(entries))
	return entries, nil
}

// Chapter returns the metadata and image URLs of the chapter page at
// chapterURL.
func (s *Scraper) Chapter(ctx context.Context, chapterURL string) (ChapterRecord, []string, error) {
	if _, ok := MatchChapterURL(chapterURL); !ok {
		return ChapterRecord{}, nil, fmt.Errorf("%w: %s", ErrUnsupportedURL, chapterURL)
	}

	page, err := s.fetch(ctx, chapterURL)
	if err != nil {
		return ChapterRecord{}, nil, err
	}

	rec, err := s.parser.ChapterMetadata(page)
	if err != nil {
		return ChapterRecord{}, nil, fmt.Errorf("%s: %w", chapterURL, err)
	}

	var images []string
	for _, u := range s.parser.ChapterImages(page) {
		// lazy-load placeholders
		if u == "" {
			continue
		}
		images = append(images, resolveURL(chapterURL, u))
	}

	return rec, images, nil
}

// GetChapters accepts either a manga URL, returning all of its chapters
// oldest first, or a single chapter URL.
func (s *Scraper) GetChapters(ctx context.Context, pageURL string) ([]providers.Chapter, error) {
	if _, ok := MatchChapterURL(pageURL); ok {
		rec, _, err := s.Chapter(ctx, pageURL)
		if err != nil {
			return nil, err
		}
		return []providers.Chapter{toProviderChapter(pageURL, rec)}, nil
	}

	entries, err := s.MangaChapters(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	out := make([]providers.Chapter, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = toProviderChapter(e.URL, e.Record)
	}

	return out, nil
}

func (s *Scraper) GetImages(ctx context.Context, chapterURL string) ([]string, error) {
	_, images, err := s.Chapter(ctx, chapterURL)
	return images, err
}

func toProviderChapter(u string, rec ChapterRecord) providers.Chapter {
	return providers.Chapter{
		URL:   u,
		Manga: rec.Manga,
		Title: rec.Title,
		Label: rec.Label(),
	}
}
