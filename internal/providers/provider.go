package providers

import "context"

// Chapter is the site-neutral view of one chapter that the download pipeline
// works with.
type Chapter struct {
	URL   string
	Manga string
	Title string
	// Label is the chapter number as printed by the site, e.g. "1053.3".
	Label string
}

type Scraper interface {
	GetChapters(ctx context.Context, url string) ([]Chapter, error)
	GetImages(ctx context.Context, chapterURL string) ([]string, error)
}
