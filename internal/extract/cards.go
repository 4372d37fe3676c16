package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/SubFearix/khl-results/internal/match"
)

// cardSelectors identify repeated match-card fragments. They are tried in
// priority order and the first selector that matches anything on the page is
// used exclusively; selector hits are never merged.
var cardSelectors = compileSelectors(
	"li[class*='game']",
	"div[class*='game-card']",
	"div[class*='match-card']",
	"div[class*='GameCard']",
	"div[class*='calendar-game']",
	"a[class*='game']",
	"a[href*='/game/']",
)

// Class-attribute patterns for locating date and team sub-elements inside a
// card. Kept as data so new page markup only needs a pattern added here.
var (
	dateClassRe = regexp.MustCompile(`(?i)date|time|day`)
	teamClassRe = regexp.MustCompile(`(?i)team|club`)

	literalDateRe = regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}`)
)

func compileSelectors(exprs ...string) []cascadia.Selector {
	compiled := make([]cascadia.Selector, 0, len(exprs))
	for _, expr := range exprs {
		sel, err := cascadia.Compile(expr)
		if err != nil {
			continue
		}
		compiled = append(compiled, sel)
	}
	return compiled
}

// CardExtractor reads repeated match-card fragments, one match per card.
// This is the primary strategy: the calendar page normally renders each game
// as a self-contained card.
type CardExtractor struct {
	team string
}

// NewCardExtractor creates a CardExtractor for the tracked team.
func NewCardExtractor(team string) *CardExtractor {
	return &CardExtractor{team: team}
}

// Name identifies the strategy in logs.
func (e *CardExtractor) Name() string { return "cards" }

// Extract returns one match per readable card, in page order.
func (e *CardExtractor) Extract(doc *goquery.Document) []match.Match {
	var cards *goquery.Selection
	for _, sel := range cardSelectors {
		if found := doc.FindMatcher(sel); found.Length() > 0 {
			cards = found
			break
		}
	}
	if cards == nil {
		return nil
	}

	var matches []match.Match
	// Dates are often rendered once per day group; a card without its own
	// date inherits the most recent one seen.
	currentDate := ""
	cards.Each(func(_ int, card *goquery.Selection) {
		m, ok := e.parseCard(card, currentDate)
		if !ok {
			return
		}
		if m.Date != "" {
			currentDate = m.Date
		}
		matches = append(matches, m)
	})
	return matches
}

// parseCard pulls the raw fields out of a single card fragment. A card
// without a locatable score is not a played match and is skipped silently.
func (e *CardExtractor) parseCard(card *goquery.Selection, fallbackDate string) (match.Match, bool) {
	text := flatten(card, " ")

	score, ok := match.FindFinalScore(text)
	if !ok {
		return match.Match{}, false
	}

	date := firstTextByClass(card, dateClassRe)
	if date == "" {
		date = literalDateRe.FindString(text)
	}
	if date == "" {
		date = fallbackDate
	}

	teams := allTextByClass(card, teamClassRe)
	if len(teams) < 2 {
		// No usable team elements: split the card's text around the score,
		// home side before it and the visitor after.
		teams = []string{
			strings.TrimSpace(text[:score.Start]),
			strings.TrimSpace(text[score.End:]),
		}
	}

	return match.Resolve(e.team, date, teams[0], teams[1], score.Home, score.Away)
}

// firstTextByClass returns the flattened text of the first descendant whose
// class attribute matches re.
func firstTextByClass(sel *goquery.Selection, re *regexp.Regexp) string {
	var out string
	sel.Find("*").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if class, ok := s.Attr("class"); ok && re.MatchString(class) {
			out = strings.TrimSpace(flatten(s, " "))
			return false
		}
		return true
	})
	return out
}

// allTextByClass returns the non-empty flattened texts of every descendant
// whose class attribute matches re, in document order.
func allTextByClass(sel *goquery.Selection, re *regexp.Regexp) []string {
	var out []string
	sel.Find("*").Each(func(_ int, s *goquery.Selection) {
		class, ok := s.Attr("class")
		if !ok || !re.MatchString(class) {
			return
		}
		if t := strings.TrimSpace(flatten(s, " ")); t != "" {
			out = append(out, t)
		}
	})
	return out
}
