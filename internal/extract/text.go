package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/SubFearix/khl-results/internal/match"
)

// textDateRe recognizes the date expressions the calendar renders as plain
// text: "12 октября 2024" style headings (year optional) and bare
// dd.mm.yyyy dates.
var textDateRe = regexp.MustCompile(
	`(\d{1,2}\s+` +
		`(?:января|февраля|марта|апреля|мая|июня|` +
		`июля|августа|сентября|октября|ноября|декабря)` +
		`(?:\s+\d{4})?)` +
		`|(\d{2}\.\d{2}\.\d{4})`)

// gameLineRe matches "<home> <score> [<OT/SO marker> <score>] <away>". The
// optional second score is the overtime or shootout result.
var gameLineRe = regexp.MustCompile(
	`(.+?)\s+(\d+)\s*[:–-]\s*(\d+)` +
		`(?:\s*(?:ОТ|OT|Б|SO|БУЛ)\s+(\d+)\s*[:–-]\s*(\d+))?` +
		`\s+(.+)`)

// TextExtractor is the last-resort strategy: it scans the flattened page
// text line by line, carrying the most recent date heading as context for
// the match lines below it.
type TextExtractor struct {
	team string
}

// NewTextExtractor creates a TextExtractor for the tracked team.
func NewTextExtractor(team string) *TextExtractor {
	return &TextExtractor{team: team}
}

// Name identifies the strategy in logs.
func (e *TextExtractor) Name() string { return "text" }

// Extract flattens the document to newline-separated text and scans it.
func (e *TextExtractor) Extract(doc *goquery.Document) []match.Match {
	return e.scan(flatten(doc.Selection, "\n"))
}

func (e *TextExtractor) scan(text string) []match.Match {
	var matches []match.Match

	currentDate := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// A line may both carry a date and describe a match; the date is
		// taken first so a match on the same line already uses it.
		if d := textDateRe.FindString(line); d != "" {
			currentDate = strings.TrimSpace(d)
		}

		gm := gameLineRe.FindStringSubmatch(line)
		if gm == nil {
			continue
		}

		home := strings.TrimSpace(gm[1])
		away := strings.TrimSpace(gm[6])
		scoreHome, _ := strconv.Atoi(gm[2])
		scoreAway, _ := strconv.Atoi(gm[3])
		if gm[4] != "" && gm[5] != "" {
			// Extended play decides the game; its score is the final one.
			scoreHome, _ = strconv.Atoi(gm[4])
			scoreAway, _ = strconv.Atoi(gm[5])
		}

		if !strings.Contains(home, e.team) && !strings.Contains(away, e.team) {
			continue
		}
		if m, ok := match.Resolve(e.team, currentDate, home, away, scoreHome, scoreAway); ok {
			matches = append(matches, m)
		}
	}

	return matches
}
