package mangaread

import (
	"errors"
	"fmt"
)

const (
	KindChapter = "chapter"
	KindManga   = "manga"
)

var (
	ErrNotFound                = errors.New("not found")
	ErrUnparseableChapterTitle = errors.New("unparseable chapter title")
	ErrUnsupportedURL          = errors.New("unsupported mangaread URL")
)

// NotFoundError reports a page that was served but holds no content of the
// given kind: a chapter page without a heading, or the site's 404 page in
// place of a manga.
type NotFoundError struct {
	Kind string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Kind)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IsNotFound reports whether err is a NotFoundError of the given kind.
func IsNotFound(err error, kind string) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) && nf.Kind == kind
}

// ChapterTitleError is returned when a chapter heading does not follow the
// "[manga -] Chapter N[.M] [- title]" form.
type ChapterTitleError struct {
	Input string
	URL   string
}

func (e *ChapterTitleError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("unparseable chapter title %q (%s)", e.Input, e.URL)
	}
	return fmt.Sprintf("unparseable chapter title %q", e.Input)
}

func (e *ChapterTitleError) Is(target error) bool {
	return target == ErrUnparseableChapterTitle
}
