package mangaread

const chapterPage = `<!DOCTYPE html>
<html><head><title>One Piece - Chapter 1053.3</title></head>
<body>
<header class="site-header"><img data-src="https://www.mangaread.org/logo.png"></header>
<div class="c-breadcrumb-wrapper">
<div class="wp-manga-tags-list"><a href="https://www.mangaread.org/manga-tag/oda-eiichiro/" class>Oda Eiichiro</a></div>
</div>
<h1 id="chapter-heading">One Piece - Chapter 1053.3</h1>
<div class="reading-content">
<div class="page-break no-gaps"><img id="image-0" data-src="
	https://www.mangaread.org/wp-content/uploads/WP-manga/data/manga_1/ch1053/01.jpg " class="wp-manga-chapter-img"></div>
<div class="page-break no-gaps"><img id="image-1" data-src="https://www.mangaread.org/wp-content/uploads/WP-manga/data/manga_1/ch1053/02.jpg" class="wp-manga-chapter-img"></div>
<div class="page-break no-gaps"><img id="image-2" data-src="/wp-content/uploads/WP-manga/data/manga_1/ch1053/03.jpg" class="wp-manga-chapter-img"></div>
</div>
<div class="entry-header footer">
<img data-src="https://www.mangaread.org/ads/banner.jpg">
</div>
</body></html>`

const removedChapterPage = `<!DOCTYPE html>
<html><body>
<div class="wp-manga-tags-list"><a href="/manga-tag/oda-eiichiro/" class>Oda Eiichiro</a></div>
<div class="reading-content"></div>
<div class="entry-header footer"></div>
</body></html>`

const mangaPage = `<!DOCTYPE html>
<html><body>
<div class="post-title">
<h1>Kanan-sama wa Akumade Choroi</h1>
</div>
<div class="tab-summary">
<div class="summary_image"><img data-src="https://www.mangaread.org/cover.jpg"></div>
<div class="summary_content_wrap">
<div class="summary_content">
<div class="post-rating"><span class="score font-meta total_votes"> 4.6 </span></div>
<div class="post-content_item">
<div class="summary-heading">
<h5>Alternative </h5>
</div>
<div class="summary-content">
Kanan-sama Is Easy as Pie; 花鳴様はあくまでチョロい
</div>
</div>
<div class="post-content_item">
<div class="summary-heading"><h5>Author(s)</h5></div>
<div class="summary-content"><div class="author-content">
<a href="https://www.mangaread.org/manga-author/nonco/" rel="tag">nonco</a>
</div></div>
</div>
<div class="post-content_item">
<div class="summary-heading"><h5>Artist(s)</h5></div>
<div class="summary-content"><div class="artist-content">
<a href="https://www.mangaread.org/manga-artist/nonco/" rel="tag">nonco</a>
</div></div>
</div>
<div class="post-content_item">
<div class="summary-heading"><h5>Genre(s)</h5></div>
<div class="summary-content"><div class="genres-content">
<a href="/genres/comedy/" rel="tag">Comedy</a>, <a href="/genres/romance/" rel="tag">Romance</a>, <a href="/genres/shounen/" rel="tag">Shounen</a>, <a href="/genres/supernatural/" rel="tag">Supernatural</a>
</div></div>
</div>
<div class="post-content_item">
<div class="summary-heading">
<h5>Type </h5>
</div>
<div class="summary-content">
Manga
</div>
</div>
<div class="post-status">
<div class="post-content_item">
<div class="summary-heading">
<h5>Release </h5>
</div>
<div class="summary-content">
<a href="/manga-release/2022/" rel="tag">2022</a>
</div>
</div>
<div class="post-content_item">
<div class="summary-heading">
<h5>Status </h5>
</div>
<div class="summary-content">
OnGoing
</div>
</div>
</div>
<div class="manga-action"></div>
</div>
</div>
</div>
<div class="description-summary">
<div class="summary__content show-more"><p>Kanan is a &quot;god&quot;.</p><p>But an easy one.</p></div>
</div>
<div class="page-content-listing single-page">
<ul class="main version-chap no-volumn">
<li class="wp-manga-chapter    ">
<a href="https://www.mangaread.org/manga/kanan-sama-wa-akumade-choroi/chapter-3/">
Chapter 3 - The Date </a>
<span class="chapter-release-date"><i>3 days ago</i></span>
</li>
<li class="wp-manga-chapter    ">
<a href="https://www.mangaread.org/manga/kanan-sama-wa-akumade-choroi/chapter-2-5/">
Kanan-sama &amp; Friends - Chapter 2.5 </a>
<span class="chapter-release-date"><i>April 1, 2022</i></span>
</li>
<li class="wp-manga-chapter    ">
<a href="/manga/kanan-sama-wa-akumade-choroi/chapter-1/">
Chapter1 </a>
</li>
</ul>
</div>
</body></html>`

const bareMangaPage = `<!DOCTYPE html>
<html><body>
<div class="summary_content">
<div class="manga-action"></div>
</div>
<ul>
<li class="wp-manga-chapter"><a href="https://www.mangaread.org/manga/x/chapter-1/">Chapter 1</a></li>
</ul>
</body></html>`

const brokenListMangaPage = `<!DOCTYPE html>
<html><body>
<h1>Broken</h1>
<ul>
<li class="wp-manga-chapter"><a href="https://www.mangaread.org/manga/broken/chapter-2/">Chapter 2</a></li>
<li class="wp-manga-chapter"><a href="https://www.mangaread.org/manga/broken/extra/">Extra Story</a></li>
</ul>
</body></html>`

const notFoundPage = `<!DOCTYPE html>
<html><body class="error404 wp-embed-responsive">
<h1>Oops! Page not found.</h1>
<ul>
<li class="wp-manga-chapter"><a href="https://www.mangaread.org/manga/x/chapter-1/">Chapter 1</a></li>
</ul>
</body></html>`
