package mangaread

import (
	"net/url"
	"regexp"
)

const Root = "https://www.mangaread.org"

var (
	reChapterURL = regexp.MustCompile(`^(?:https?://)?(?:www\.)?mangaread\.org(/manga/[^/?#]+/[^/?#]+)`)
	reMangaURL   = regexp.MustCompile(`^(?:https?://)?(?:www\.)?mangaread\.org(/manga/[^/?#]+)/?$`)
)

// MatchChapterURL reports whether u points at a chapter page and returns its
// "/manga/<slug>/<chapter>" path.
func MatchChapterURL(u string) (string, bool) {
	m := reChapterURL.FindStringSubmatch(u)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// MatchMangaURL reports whether u points at a manga page and returns its
// "/manga/<slug>" path.
func MatchMangaURL(u string) (string, bool) {
	m := reMangaURL.FindStringSubmatch(u)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func resolveURL(baseURL, href string) string {
	if href == "" {
		return baseURL
	}

	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if u.IsAbs() {
		return u.String()
	}

	b, err := url.Parse(baseURL)
	if err != nil {
		return href
	}

	return b.ResolveReference(u).String()
}
