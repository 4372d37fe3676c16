// Package cli implements the khl-results command line interface.
//
// A run is fetch, extract, export: download the calendar page, run the
// extraction pipeline, write the spreadsheet. Progress lines go to stdout
// and diagnostics to stderr. Transport failures exit 1; a page that yields
// zero matches exits 2, since that usually means the site's structure
// changed rather than that the network failed.
package cli
