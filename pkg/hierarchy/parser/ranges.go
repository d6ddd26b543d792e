package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseRangeRef parses a range reference such as 'Sheet 1'!$A$1:$D$10 or
// B2:E40. The sheet name is empty when the reference carries none.
func ParseRangeRef(ref string) (string, Area, error) {
	ref = strings.TrimSpace(ref)

	var sheet string
	rangeStr := ref
	// Split by ! to separate sheet name and range
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = strings.Trim(ref[:idx], "'")
		rangeStr = ref[idx+1:]
	}

	area, err := parseRangeToArea(rangeStr)
	if err != nil {
		return "", Area{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	return sheet, area, nil
}

// parseRangeToArea parses a range string like $A$1:$D$10.
func parseRangeToArea(rangeStr string) (Area, error) {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return Area{}, fmt.Errorf("expected START:END")
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return Area{}, err
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return Area{}, err
	}
	if endRow < startRow || endCol < startCol {
		return Area{}, fmt.Errorf("end precedes start")
	}

	return Area{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, nil
}
