package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/SubFearix/khl-results/internal/match"
)

// OutputFormat specifies the match listing format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteOutput writes the extracted matches in the specified format
func WriteOutput(w io.Writer, matches []match.Match, format OutputFormat) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(matches)
	case FormatText:
		return writeText(w, matches)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeText outputs one human-readable line per match
func writeText(w io.Writer, matches []match.Match) error {
	for _, m := range matches {
		date := m.Date
		if date == "" {
			date = "?"
		}
		fmt.Fprintf(w, "  %s  %s (%s): %s %d:%d\n",
			date, m.Opponent, m.Venue, m.Outcome, m.GoalsFor, m.GoalsAgainst)
	}
	return nil
}
