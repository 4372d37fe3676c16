package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/SubFearix/khl-results/internal/match"
)

func TestWriteFile(t *testing.T) {
	matches := []match.Match{
		{
			Date:         "12.10.2024",
			Opponent:     "ЦСКА",
			Venue:        match.VenueHome,
			Outcome:      match.OutcomeWin,
			GoalsFor:     5,
			GoalsAgainst: 1,
		},
		{
			Date:         "15.10.2024",
			Opponent:     "Локомотив",
			Venue:        match.VenueAway,
			Outcome:      match.OutcomeLoss,
			GoalsFor:     2,
			GoalsAgainst: 4,
		},
	}

	path := filepath.Join(t.TempDir(), "results.xlsx")
	if err := WriteFile(matches, path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening workbook failed: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetName(0); got != SheetName {
		t.Errorf("sheet name = %q, expected %q", got, SheetName)
	}

	for col, h := range Headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		got, err := f.GetCellValue(SheetName, cell)
		if err != nil {
			t.Fatalf("reading header %s: %v", cell, err)
		}
		if got != h {
			t.Errorf("header %s = %q, expected %q", cell, got, h)
		}
	}

	wantRows := [][]string{
		{"12.10.2024", "ЦСКА", "Домашний", "Победа", "5", "1"},
		{"15.10.2024", "Локомотив", "Гостевой", "Поражение", "2", "4"},
	}
	for r, wantRow := range wantRows {
		for c, want := range wantRow {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			got, err := f.GetCellValue(SheetName, cell)
			if err != nil {
				t.Fatalf("reading cell %s: %v", cell, err)
			}
			if got != want {
				t.Errorf("cell %s = %q, expected %q", cell, got, want)
			}
		}
	}

	// Win and loss rows carry different fills.
	winStyle, err := f.GetCellStyle(SheetName, "A2")
	if err != nil {
		t.Fatalf("reading win row style: %v", err)
	}
	lossStyle, err := f.GetCellStyle(SheetName, "A3")
	if err != nil {
		t.Fatalf("reading loss row style: %v", err)
	}
	if winStyle == lossStyle {
		t.Error("win and loss rows should have different styles")
	}

	// Columns are sized to content.
	width, err := f.GetColWidth(SheetName, "B")
	if err != nil {
		t.Fatalf("reading column width: %v", err)
	}
	if width < float64(runeLen("Локомотив")) {
		t.Errorf("column B width %.1f is narrower than its longest value", width)
	}
}

func TestWriteFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := WriteFile(nil, path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("workbook was not written: %v", err)
	}
}

func TestRuneLen(t *testing.T) {
	if got := runeLen("Пропустили"); got != 10 {
		t.Errorf("runeLen = %d, expected 10", got)
	}
}
