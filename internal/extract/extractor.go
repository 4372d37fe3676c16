package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/SubFearix/khl-results/internal/logger"
	"github.com/SubFearix/khl-results/internal/match"
)

// Extractor is one parsing strategy over the calendar page.
type Extractor interface {
	// Name identifies the strategy in logs.
	Name() string

	// Extract returns the matches the strategy can read from doc, in page
	// order. An empty result means the page does not fit this strategy.
	Extract(doc *goquery.Document) []match.Match
}

// Pipeline runs extractors in priority order and keeps the first non-empty
// result. Results are never merged: each strategy reads the same page under
// a different structural assumption and mixing them would duplicate matches.
type Pipeline struct {
	extractors []Extractor
}

// NewPipeline builds the default strategy cascade for the tracked team,
// most structured strategy first.
func NewPipeline(team string) *Pipeline {
	return &Pipeline{
		extractors: []Extractor{
			NewCardExtractor(team),
			NewTableExtractor(team),
			NewTextExtractor(team),
		},
	}
}

// Run parses html and extracts match records from it. A nil slice with a nil
// error means no strategy could read anything from the page.
func (p *Pipeline) Run(html string) ([]match.Match, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	for _, e := range p.extractors {
		matches := e.Extract(doc)
		logger.Debug("extraction strategy finished", logger.Fields{
			"strategy": e.Name(),
			"matches":  len(matches),
		})
		if len(matches) > 0 {
			return matches, nil
		}
	}

	return nil, nil
}
