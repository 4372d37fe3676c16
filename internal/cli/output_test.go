package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/SubFearix/khl-results/internal/match"
)

var sampleMatches = []match.Match{
	{
		Date:         "12.10.2024",
		Opponent:     "ЦСКА",
		Venue:        match.VenueHome,
		Outcome:      match.OutcomeWin,
		GoalsFor:     5,
		GoalsAgainst: 1,
	},
}

func TestWriteOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleMatches, FormatJSON); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	var decoded []match.Match
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0] != sampleMatches[0] {
		t.Errorf("decoded = %+v, expected %+v", decoded, sampleMatches)
	}
}

func TestWriteOutputText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleMatches, FormatText); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"12.10.2024", "ЦСКА", "Победа", "5:1"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteOutputUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleMatches, "yaml"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
