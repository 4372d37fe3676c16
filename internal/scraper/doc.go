// Package scraper fetches the public KHL calendar page.
//
// The fetch is a single GET with a browser-like identity: khl.ru serves a
// reduced page to clients it does not recognize, so the request carries a
// desktop Chrome User-Agent and Russian-first Accept-Language headers. One
// bounded request per run, no retries.
package scraper
