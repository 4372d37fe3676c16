package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/SubFearix/khl-results/internal/match"
)

// TableExtractor reads one match per table row. It runs when the page
// renders results as a plain table instead of cards.
type TableExtractor struct {
	team string
}

// NewTableExtractor creates a TableExtractor for the tracked team.
func NewTableExtractor(team string) *TableExtractor {
	return &TableExtractor{team: team}
}

// Name identifies the strategy in logs.
func (e *TableExtractor) Name() string { return "table" }

// Extract scans every row of every table on the page.
func (e *TableExtractor) Extract(doc *goquery.Document) []match.Match {
	var matches []match.Match
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			if m, ok := e.parseRow(row); ok {
				matches = append(matches, m)
			}
		})
	})
	return matches
}

// parseRow scans the row's cells for the first one holding a score; the
// cells on either side of it are the team names.
func (e *TableExtractor) parseRow(row *goquery.Selection) (match.Match, bool) {
	var cells []string
	row.Find("td,th").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, strings.TrimSpace(flatten(cell, " ")))
	})
	if len(cells) < 3 {
		return match.Match{}, false
	}

	for i, cell := range cells {
		score, ok := match.FindFinalScore(cell)
		if !ok {
			continue
		}

		var home, away, date string
		if i > 0 {
			home = cells[i-1]
		}
		if i+1 < len(cells) {
			away = cells[i+1]
		}
		// The first cell is the date only when the score sits further
		// right; on short rows position 0 or 1 may be the score itself.
		if i > 1 {
			date = cells[0]
		}

		// Shared league tables list every pairing; keep only rows that
		// mention the tracked team.
		if !strings.Contains(home, e.team) && !strings.Contains(away, e.team) {
			continue
		}

		return match.Resolve(e.team, date, home, away, score.Home, score.Away)
	}

	return match.Match{}, false
}
