package text

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Unescape decodes HTML character references such as "&amp;" and "&#8217;".
func Unescape(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return html.UnescapeString(s)
}

// RemoveHTML returns the text of the HTML fragment s: markup is dropped,
// character references are decoded once and runs of whitespace collapse into
// a single space. Adjacent text nodes are separated by a space, so
// "<p>a</p><p>b</p>" becomes "a b". The result must not be unescaped again.
func RemoveHTML(s string) string {
	if !strings.Contains(s, "<") {
		return collapse(Unescape(s))
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapse(Unescape(s))
	}

	var parts []string
	for _, n := range doc.Nodes {
		collectText(n, &parts)
	}

	return collapse(strings.Join(parts, " "))
}

func collectText(n *html.Node, out *[]string) {
	switch n.Type {
	case html.TextNode:
		*out = append(*out, n.Data)
		return
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, out)
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
