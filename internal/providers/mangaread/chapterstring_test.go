package mangaread

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChapterString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ChapterIdentifier
	}{
		{
			name:  "manga and minor",
			input: "One Piece - Chapter 1053.3",
			want:  ChapterIdentifier{Manga: "One Piece", Chapter: 1053, ChapterMinor: ".3"},
		},
		{
			name:  "bare chapter",
			input: "Chapter 10",
			want:  ChapterIdentifier{Chapter: 10},
		},
		{
			name:  "no space after literal",
			input: "Chapter146.5",
			want:  ChapterIdentifier{Chapter: 146, ChapterMinor: ".5"},
		},
		{
			name:  "title",
			input: "Chapter 3 - The Date",
			want:  ChapterIdentifier{Chapter: 3, Title: "The Date"},
		},
		{
			name:  "title containing dashes",
			input: "Chapter 7 - Part - Two",
			want:  ChapterIdentifier{Chapter: 7, Title: "Part - Two"},
		},
		{
			name:  "hyphenated manga name",
			input: "Kanan-sama wa Akumade Choroi - Chapter 5",
			want:  ChapterIdentifier{Manga: "Kanan-sama wa Akumade Choroi", Chapter: 5},
		},
		{
			name:  "lower case literal",
			input: "chapter 42",
			want:  ChapterIdentifier{Chapter: 42},
		},
		{
			name:  "upper case literal",
			input: "CHAPTER 42.01",
			want:  ChapterIdentifier{Chapter: 42, ChapterMinor: ".01"},
		},
		{
			name:  "entities and whitespace",
			input: "\n  Tom &amp; Jerry - Chapter 2 - Cat &amp; Mouse \t",
			want:  ChapterIdentifier{Manga: "Tom & Jerry", Chapter: 2, Title: "Cat & Mouse"},
		},
		{
			name:  "dangling separator",
			input: "Chapter 8 -",
			want:  ChapterIdentifier{Chapter: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseChapterString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChapterStringRejects(t *testing.T) {
	for _, input := range []string{"", "Extra Story", "Vol.1 Chapter 3", "Chapter", "Chapter one", "Chapter 99999999999999999999"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseChapterString(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnparseableChapterTitle))

			var cte *ChapterTitleError
			require.ErrorAs(t, err, &cte)
			assert.Empty(t, cte.URL)
		})
	}
}

func TestChapterMinorShape(t *testing.T) {
	minor := regexp.MustCompile(`^(\.\d+)?$`)

	for _, input := range []string{"Chapter 1.2.3", "Chapter 5..5", "Chapter 9.", "Chapter 11.25 - x.y"} {
		id, err := ParseChapterString(input)
		require.NoError(t, err, input)
		assert.Regexp(t, minor, id.ChapterMinor, input)
	}
}

func TestNewChapterRecordPrefersKnownManga(t *testing.T) {
	id := ChapterIdentifier{Manga: "Parsed", Chapter: 4, ChapterMinor: ".5", Title: "T"}

	rec := newChapterRecord(MangaRecord{Manga: "Known"}, id, nil, English)
	assert.Equal(t, "Known", rec.Manga)

	rec = newChapterRecord(MangaRecord{}, id, nil, English)
	assert.Equal(t, "Parsed", rec.Manga)
	assert.Equal(t, 4, rec.Chapter)
	assert.Equal(t, ".5", rec.ChapterMinor)
	assert.Equal(t, "T", rec.Title)
	assert.Equal(t, "4.5", rec.Label())
	assert.Equal(t, "en", rec.Lang)
	assert.Equal(t, "English", rec.Language)
}

func TestNewChapterRecordUsesLocale(t *testing.T) {
	rec := newChapterRecord(MangaRecord{}, ChapterIdentifier{Chapter: 1}, nil, Locale{Lang: "es", Language: "Spanish"})
	assert.Equal(t, "es", rec.Lang)
	assert.Equal(t, "Spanish", rec.Language)
}
