package mangaread

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brogergvhs/mangaread/internal/util"
)

// handlerTransport serves every request from h without touching the network.
type handlerTransport struct {
	h http.Handler
}

func (t handlerTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	rec := httptest.NewRecorder()
	t.h.ServeHTTP(rec, r)
	return rec.Result(), nil
}

func newTestScraper(t *testing.T, pages map[string]string) *Scraper {
	t.Helper()

	mux := http.NewServeMux()
	for path, body := range pages {
		mux.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(body))
		})
	}

	client := &http.Client{Transport: handlerTransport{h: mux}}
	return NewScraper(client, zap.NewNop().Sugar(), English)
}

func TestScraperGetChaptersManga(t *testing.T) {
	s := newTestScraper(t, map[string]string{
		"/manga/kanan-sama-wa-akumade-choroi/": mangaPage,
	})

	chapters, err := s.GetChapters(context.Background(), "https://www.mangaread.org/manga/kanan-sama-wa-akumade-choroi/")
	require.NoError(t, err)
	require.Len(t, chapters, 3)

	// oldest first
	assert.Equal(t, "1", chapters[0].Label)
	assert.Equal(t, "https://www.mangaread.org/manga/kanan-sama-wa-akumade-choroi/chapter-1/", chapters[0].URL)
	assert.Equal(t, "2.5", chapters[1].Label)
	assert.Equal(t, "3", chapters[2].Label)
	assert.Equal(t, "The Date", chapters[2].Title)

	for _, ch := range chapters {
		assert.Equal(t, "Kanan-sama wa Akumade Choroi", ch.Manga)
	}
}

func TestScraperGetChaptersSingleChapter(t *testing.T) {
	s := newTestScraper(t, map[string]string{
		"/manga/one-piece/chapter-1053-3/": chapterPage,
	})

	chapters, err := s.GetChapters(context.Background(), "https://www.mangaread.org/manga/one-piece/chapter-1053-3/")
	require.NoError(t, err)
	require.Len(t, chapters, 1)
	assert.Equal(t, "One Piece", chapters[0].Manga)
	assert.Equal(t, "1053.3", chapters[0].Label)
}

func TestScraperGetImages(t *testing.T) {
	s := newTestScraper(t, map[string]string{
		"/manga/one-piece/chapter-1053-3/": chapterPage,
	})

	images, err := s.GetImages(context.Background(), "https://www.mangaread.org/manga/one-piece/chapter-1053-3/")
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, "https://www.mangaread.org/wp-content/uploads/WP-manga/data/manga_1/ch1053/03.jpg", images[2])
}

func TestScraperGetImagesSkipsEmptySources(t *testing.T) {
	page := strings.Replace(chapterPage,
		`<div class="page-break no-gaps"><img id="image-1"`,
		`<div class="page-break no-gaps"><img id="image-x" data-src="  " class="wp-manga-chapter-img"></div>
<div class="page-break no-gaps"><img id="image-1"`, 1)
	s := newTestScraper(t, map[string]string{
		"/manga/one-piece/chapter-1053-3/": page,
	})

	images, err := s.GetImages(context.Background(), "https://www.mangaread.org/manga/one-piece/chapter-1053-3/")
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.NotContains(t, images, "https://www.mangaread.org/manga/one-piece/chapter-1053-3/")
}

func TestScraperRemovedChapter(t *testing.T) {
	s := newTestScraper(t, map[string]string{
		"/manga/one-piece/chapter-1000000/": removedChapterPage,
	})

	_, err := s.GetImages(context.Background(), "https://www.mangaread.org/manga/one-piece/chapter-1000000/")
	require.Error(t, err)
	assert.True(t, IsNotFound(err, KindChapter))
}

func TestScraperMissingManga(t *testing.T) {
	s := newTestScraper(t, map[string]string{
		"/manga/doesnotexist": notFoundPage,
	})

	chapters, err := s.GetChapters(context.Background(), "https://www.mangaread.org/manga/doesnotexist")
	require.Error(t, err)
	assert.True(t, IsNotFound(err, KindManga))
	assert.Nil(t, chapters)

	_, err = s.Manga(context.Background(), "https://www.mangaread.org/manga/doesnotexist")
	assert.True(t, IsNotFound(err, KindManga))
}

func TestScraperTransportErrorIsNotNotFound(t *testing.T) {
	s := newTestScraper(t, map[string]string{})

	_, err := s.GetChapters(context.Background(), "https://www.mangaread.org/manga/gone")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))

	var se *util.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.Code)
}

func TestScraperManga(t *testing.T) {
	s := newTestScraper(t, map[string]string{
		"/manga/kanan-sama-wa-akumade-choroi": mangaPage,
	})

	m, err := s.Manga(context.Background(), "https://www.mangaread.org/manga/kanan-sama-wa-akumade-choroi")
	require.NoError(t, err)
	assert.Equal(t, "Kanan-sama wa Akumade Choroi", m.Manga)
	assert.Equal(t, "OnGoing", m.Status)
}

func TestScraperUnsupportedURL(t *testing.T) {
	s := newTestScraper(t, nil)

	_, err := s.GetChapters(context.Background(), "https://example.org/manga/one-piece")
	assert.True(t, errors.Is(err, ErrUnsupportedURL))

	_, err = s.Manga(context.Background(), "https://www.mangaread.org/manga/one-piece/chapter-1/")
	assert.True(t, errors.Is(err, ErrUnsupportedURL))
}
