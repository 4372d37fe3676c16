package match

import (
	"regexp"
	"strconv"
)

// scoreRe matches "3:2", "3 : 2", "3 - 2" and the en-dash variant.
var scoreRe = regexp.MustCompile(`(\d+)\s*[:–-]\s*(\d+)`)

// Score is a located score together with its byte span in the scanned text.
// The span lets the card extractor split a card's text into the team name
// before the score and the one after it.
type Score struct {
	Home  int
	Away  int
	Start int
	End   int
}

// Tied reports whether both sides have the same number of goals.
func (s Score) Tied() bool { return s.Home == s.Away }

// FindFinalScore locates the final score inside a text fragment.
//
// Noisy markup often carries per-period scores before the final one, and a
// KHL final is never level, so candidates are scanned from last to first and
// the first unequal one wins. If every candidate is tied the last one is
// returned as a best effort on malformed input.
func FindFinalScore(text string) (Score, bool) {
	spans := scoreRe.FindAllStringSubmatchIndex(text, -1)
	if len(spans) == 0 {
		return Score{}, false
	}

	for i := len(spans) - 1; i >= 0; i-- {
		if s := scoreAt(text, spans[i]); !s.Tied() {
			return s, true
		}
	}

	return scoreAt(text, spans[len(spans)-1]), true
}

func scoreAt(text string, span []int) Score {
	home, _ := strconv.Atoi(text[span[2]:span[3]])
	away, _ := strconv.Atoi(text[span[4]:span[5]])
	return Score{Home: home, Away: away, Start: span[0], End: span[1]}
}
