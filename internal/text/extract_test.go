package text

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtr(t *testing.T) {
	tests := []struct {
		name       string
		s          string
		begin, end string
		want       string
	}{
		{"simple", "<h1>One Piece</h1>", "<h1>", "</h1>", "One Piece"},
		{"first occurrence", "<b>a</b><b>b</b>", "<b>", "</b>", "a"},
		{"missing begin", "<h2>x</h2>", "<h1>", "</h1>", ""},
		{"missing end", "<h1>x", "<h1>", "</h1>", ""},
		{"empty value", "<h1></h1>", "<h1>", "</h1>", ""},
		{"end before begin is ignored", "</h1><h1>x</h1>", "<h1>", "</h1>", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extr(tt.s, tt.begin, tt.end))
		})
	}
}

func TestExtract(t *testing.T) {
	s := `<a href="u1">one</a><a href="u2">two</a>`

	v, pos := Extract(s, `href="`, `"`, 0)
	assert.Equal(t, "u1", v)
	assert.Equal(t, len(`<a href="u1"`), pos)

	v, pos = Extract(s, ">", "</a>", pos)
	assert.Equal(t, "one", v)

	v, _ = Extract(s, `href="`, `"`, pos)
	assert.Equal(t, "u2", v)

	v, got := Extract(s, "<img", ">", 5)
	assert.Equal(t, "", v)
	assert.Equal(t, 5, got)

	v, got = Extract(s, "<a", ">", len(s)+10)
	assert.Equal(t, "", v)
	assert.Equal(t, len(s)+10, got)
}

func TestExtractIter(t *testing.T) {
	s := `<i data-src="a"><i data-src=" b "><i data-src="c`

	assert.Equal(t, []string{"a", " b "}, slices.Collect(ExtractIter(s, `data-src="`, `"`)))
	assert.Empty(t, slices.Collect(ExtractIter(s, "<p>", "</p>")))

	var first []string
	for v := range ExtractIter(s, `data-src="`, `"`) {
		first = append(first, v)
		break
	}
	assert.Equal(t, []string{"a"}, first)
}

func TestExtractor(t *testing.T) {
	e := NewExtractor("<b>1</b><i>2</i><b>3</b>")

	assert.Equal(t, "1", e.Extr("<b>", "</b>"))
	assert.Equal(t, "", e.Extr("<u>", "</u>"))
	assert.Equal(t, "2", e.Extr("<i>", "</i>"))
	assert.Equal(t, "3", e.Extr("<b>", "</b>"))
	assert.Equal(t, "", e.Extr("<i>", "</i>"))
}
