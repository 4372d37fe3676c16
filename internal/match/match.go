package match

import "strings"

// Venue says where the tracked team played.
type Venue string

// Outcome is the result of a game from the tracked team's point of view.
type Outcome string

// Labels match the wording used in the exported spreadsheet.
const (
	VenueHome Venue = "Домашний"
	VenueAway Venue = "Гостевой"

	OutcomeWin  Outcome = "Победа"
	OutcomeLoss Outcome = "Поражение"
)

// Match represents one played game from the tracked team's point of view.
type Match struct {
	// Date is kept as rendered on the page; the source mixes formats like
	// "12.10.2024" and "12 октября 2024", so it is not normalized.
	Date         string  `json:"date"`
	Opponent     string  `json:"opponent"`
	Venue        Venue   `json:"venue"`
	Outcome      Outcome `json:"outcome"`
	GoalsFor     int     `json:"goals_for"`
	GoalsAgainst int     `json:"goals_against"`
}

// Resolve builds a Match from the raw fields an extractor pulled out of the
// page. The side whose name contains tracked is the tracked team; when
// neither side does, the fragment belongs to some other pairing on a shared
// page and ok is false. A tied score is recorded as a loss.
func Resolve(tracked, date, home, away string, scoreHome, scoreAway int) (Match, bool) {
	m := Match{Date: date}

	switch {
	case strings.Contains(home, tracked):
		m.Venue = VenueHome
		m.Opponent = away
		m.GoalsFor = scoreHome
		m.GoalsAgainst = scoreAway
	case strings.Contains(away, tracked):
		m.Venue = VenueAway
		m.Opponent = home
		m.GoalsFor = scoreAway
		m.GoalsAgainst = scoreHome
	default:
		return Match{}, false
	}

	if m.GoalsFor > m.GoalsAgainst {
		m.Outcome = OutcomeWin
	} else {
		m.Outcome = OutcomeLoss
	}

	return m, true
}
