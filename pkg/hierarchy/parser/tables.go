package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// TableDetectionParams tunes how a sheet's data region is located.
type TableDetectionParams struct {
	// DensityMin is the smallest filled/total cell ratio accepted.
	DensityMin float64
	// MinNonemptyCells rejects regions with fewer filled cells.
	MinNonemptyCells int
}

// DefaultTableParams returns the detection thresholds used when a sheet
// has no explicit range.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{DensityMin: 0.04, MinNonemptyCells: 3}
}

// Area is a cell rectangle with 1-based inclusive bounds.
type Area struct {
	R1, C1, R2, C2 int
}

// String renders the area in A1 notation.
func (a Area) String() string {
	start, _ := excelize.CoordinatesToCellName(a.C1, a.R1)
	end, _ := excelize.CoordinatesToCellName(a.C2, a.R2)
	return fmt.Sprintf("%s:%s", start, end)
}

// Size returns the number of cells the area spans.
func (a Area) Size() int {
	return (a.R2 - a.R1 + 1) * (a.C2 - a.C1 + 1)
}

// DetectTable returns the smallest area holding every filled cell of rows.
// It reports false when the filled cells are too few or too sparse.
func DetectTable(rows [][]string, params TableDetectionParams) (Area, bool) {
	area, ok := filledBounds(rows)
	if !ok {
		return Area{}, false
	}

	filled := countFilled(rows, area)
	if filled < params.MinNonemptyCells {
		return Area{}, false
	}
	if float64(filled)/float64(area.Size()) < params.DensityMin {
		return Area{}, false
	}
	return area, true
}

func isFilled(cell string) bool {
	return strings.TrimSpace(cell) != ""
}

func filledBounds(rows [][]string) (Area, bool) {
	var a Area
	found := false
	for r, row := range rows {
		for c, cell := range row {
			if !isFilled(cell) {
				continue
			}
			row1, col1 := r+1, c+1
			if !found {
				a = Area{R1: row1, C1: col1, R2: row1, C2: col1}
				found = true
				continue
			}
			a.R1 = min(a.R1, row1)
			a.R2 = max(a.R2, row1)
			a.C1 = min(a.C1, col1)
			a.C2 = max(a.C2, col1)
		}
	}
	return a, found
}

func countFilled(rows [][]string, a Area) int {
	n := 0
	for r := a.R1 - 1; r < a.R2 && r < len(rows); r++ {
		row := rows[r]
		for c := a.C1 - 1; c < a.C2 && c < len(row); c++ {
			if isFilled(row[c]) {
				n++
			}
		}
	}
	return n
}
