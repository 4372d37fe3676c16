// Package export renders match records to a styled xlsx workbook.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/SubFearix/khl-results/internal/match"
)

// SheetName is the single sheet the workbook contains.
const SheetName = "Результаты Сибири 24-25"

// Headers is the fixed column order of the sheet.
var Headers = []string{"Дата", "Соперник", "Дома/В гостях", "Результат", "Забили", "Пропустили"}

const (
	headerColor = "4472C4"
	winColor    = "C6EFCE"
	lossColor   = "FFC7CE"
)

// WriteFile renders matches into a styled workbook at path: bold white
// header row on blue, green fill for wins, red for losses, thin borders and
// centered cells throughout, column widths sized to content.
func WriteFile(matches []match.Match, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerColor}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	winStyle, err := rowStyle(f, winColor)
	if err != nil {
		return fmt.Errorf("creating win style: %w", err)
	}
	lossStyle, err := rowStyle(f, lossColor)
	if err != nil {
		return fmt.Errorf("creating loss style: %w", err)
	}

	widths := make([]int, len(Headers))
	for col, h := range Headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fmt.Errorf("writing header %s: %w", cell, err)
		}
		if err := f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("styling header %s: %w", cell, err)
		}
		widths[col] = runeLen(h)
	}

	for i, m := range matches {
		values := []interface{}{
			m.Date,
			m.Opponent,
			string(m.Venue),
			string(m.Outcome),
			m.GoalsFor,
			m.GoalsAgainst,
		}
		style := lossStyle
		if m.Outcome == match.OutcomeWin {
			style = winStyle
		}

		row := i + 2
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return fmt.Errorf("writing cell %s: %w", cell, err)
			}
			if err := f.SetCellStyle(SheetName, cell, cell, style); err != nil {
				return fmt.Errorf("styling cell %s: %w", cell, err)
			}
			if l := runeLen(fmt.Sprint(v)); l > widths[col] {
				widths[col] = l
			}
		}
	}

	for col := range Headers {
		name, _ := excelize.ColumnNumberToName(col + 1)
		if err := f.SetColWidth(SheetName, name, name, float64(widths[col]+4)); err != nil {
			return fmt.Errorf("sizing column %s: %w", name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func rowStyle(f *excelize.File, color string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})
}

func thinBorder() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	borders := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		borders = append(borders, excelize.Border{Type: side, Style: 1, Color: "000000"})
	}
	return borders
}

// runeLen measures display length in runes; the headers and team names are
// Cyrillic, so byte length would oversize every column.
func runeLen(s string) int { return len([]rune(s)) }
