// Package mangaread implements a providers.Scraper for mangaread.org.
//
// The extraction works on raw page HTML with literal start/end markers taken
// from the site's current markup. When the site changes its templates, the
// markers in markers.go are the only place that should need updating.
package mangaread
