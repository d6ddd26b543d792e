// Package parser loads datasets and requests from files.
package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/models"
)

// parseValue interprets a cell string as a number when it parses as a
// finite one. NaN and infinities stay text.
func parseValue(s string) models.Value {
	t := strings.TrimSpace(s)
	// Try integer first
	if i, err := strconv.ParseInt(t, 10, 64); err == nil {
		return models.NumberValue(float64(i))
	}
	// Try float
	if f, err := strconv.ParseFloat(t, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return models.NumberValue(f)
	}
	// Return as string
	return models.TextValue(s)
}

// rowToRecord pairs header names with row cells. Blank cells are left out
// of the record, the way a sparse sheet row reads.
func rowToRecord(header []string, row []string, from int) models.Record {
	rec := make(models.Record, 0, len(header))
	for i, name := range header {
		col := from + i
		if name == "" || col >= len(row) || !isFilled(row[col]) {
			continue
		}
		rec = append(rec, models.Cell{Name: name, Value: parseValue(row[col])})
	}
	return rec
}
