package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnescape(t *testing.T) {
	assert.Equal(t, "Tom & Jerry", Unescape("Tom &amp; Jerry"))
	assert.Equal(t, "It’s", Unescape("It&#8217;s"))
	assert.Equal(t, "plain", Unescape("plain"))
}

func TestRemoveHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "  Manga \n ", "Manga"},
		{"paragraphs", "<p>first</p><p>second</p>", "first second"},
		{"nested", "<div>\n<a href=\"x\">Kanan</a>; <b>Choroi</b>\n</div>", "Kanan ; Choroi"},
		{"script dropped", "<p>text</p><script>var a = 1;</script>", "text"},
		{"empty", "", ""},
		{"entities", "<span>A &amp; B</span>", "A & B"},
		{"entities without tags", " A &amp; B ", "A & B"},
		{"decoded once", "<p>Use &amp;lt;b&amp;gt; tags</p>", "Use &lt;b&gt; tags"},
		{"decoded once without tags", "Manga&amp;amp;", "Manga&amp;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemoveHTML(tt.in))
		})
	}
}

func TestParseNumbers(t *testing.T) {
	assert.Equal(t, 2022, ParseInt(" 2022 "))
	assert.Equal(t, 0, ParseInt(""))
	assert.Equal(t, 0, ParseInt("soon"))

	assert.InDelta(t, 4.5, ParseFloat("4.5"), 1e-9)
	assert.InDelta(t, 0, ParseFloat(""), 1e-9)
	assert.InDelta(t, 0, ParseFloat("N/A"), 1e-9)
}
