package mangaread

// Literal markers from the site's HTML templates.
const (
	markChapterHeadingOpen  = `<h1 id="chapter-heading">`
	markChapterHeadingClose = `</h1>`

	markTagOpen  = `class>`
	markTagClose = `<`

	markReadingOpen  = `<div class="reading-content">`
	markReadingClose = `<div class="entry-header`
	markImageOpen    = `data-src="`
	markImageClose   = `"`

	markError404 = `class="error404`

	markTitleOpen  = `<h1>`
	markTitleClose = `</h1>`

	markDescription = `summary__content`

	markSummaryOpen  = `class="summary_content">`
	markSummaryClose = `class="manga-action"`

	markRatingOpen  = `total_votes">`
	markRatingClose = `</span>`

	markAlternative = "Alternative </h5>\n</div>"
	markAuthor      = `class="author-content">`
	markArtist      = `class="artist-content">`
	markGenres      = `class="genres-content">`
	markType        = "Type </h5>\n</div>"
	markRelease     = "Release </h5>\n</div>"
	markStatus      = "Status </h5>\n</div>"
	markDivClose    = `</div>`

	markTagLinkOpen  = `"tag">`
	markTagLinkClose = `</a>`

	markChapterItemOpen  = `<li class="wp-manga-chapter`
	markChapterItemClose = `</li>`
	markHrefOpen         = `<a href="`
	markHrefClose        = `"`
	markLinkTextOpen     = `>`
	markLinkTextClose    = `</a>`

	altTitleSeparator = "; "
)
