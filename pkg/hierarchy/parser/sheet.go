package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoTable indicates no table-like region was found on the sheet.
var ErrNoTable = errors.New("no table found")

// ErrNoSheets indicates the workbook has no sheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// SheetOptions selects the dataset within a workbook.
type SheetOptions struct {
	// Sheet names the sheet to read. If empty, the first sheet is used.
	Sheet string
	// Range is an explicit range reference, optionally sheet-qualified.
	// If empty, the table is detected from the populated cells.
	Range string
	// Table tunes table detection. The zero value means DefaultTableParams().
	Table TableDetectionParams
}

// ReadWorkbook opens an xlsx file and reads one sheet as a dataset.
func ReadWorkbook(path string, opts SheetOptions) (models.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadSheet(f, opts)
}

// ReadSheet reads a table from an open workbook. The first row of the table
// holds the field names; every following non-empty row becomes a record.
func ReadSheet(f *excelize.File, opts SheetOptions) (models.Dataset, error) {
	sheetName := opts.Sheet

	var area Area
	explicit := opts.Range != ""
	if explicit {
		s, a, err := ParseRangeRef(opts.Range)
		if err != nil {
			return nil, err
		}
		if s != "" {
			sheetName = s
		}
		area = a
	}

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoSheets
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	if !explicit {
		params := opts.Table
		if params == (TableDetectionParams{}) {
			params = DefaultTableParams()
		}
		a, ok := DetectTable(rows, params)
		if !ok {
			return nil, fmt.Errorf("sheet %q: %w", sheetName, ErrNoTable)
		}
		area = a
	}

	return readArea(rows, area), nil
}

func readArea(rows [][]string, area Area) models.Dataset {
	headerIdx := area.R1 - 1
	if headerIdx >= len(rows) {
		return nil
	}

	from := area.C1 - 1
	width := area.C2 - area.C1 + 1
	header := make([]string, width)
	for i := range header {
		if col := from + i; col < len(rows[headerIdx]) {
			header[i] = strings.TrimSpace(rows[headerIdx][col])
		}
	}

	var ds models.Dataset
	for rowIdx := headerIdx + 1; rowIdx < area.R2 && rowIdx < len(rows); rowIdx++ {
		rec := rowToRecord(header, rows[rowIdx], from)
		if len(rec) > 0 {
			ds = append(ds, rec)
		}
	}
	return ds
}
