package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/models"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves a workbook whose "Data" sheet holds cells keyed by A1 name.
func writeWorkbook(t *testing.T, cells map[string]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Data"); err != nil {
		t.Fatalf("Failed to rename sheet: %v", err)
	}
	for cell, v := range cells {
		if err := f.SetCellValue("Data", cell, v); err != nil {
			t.Fatalf("Failed to set %s: %v", cell, err)
		}
	}

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return tmpFile
}

func TestReadWorkbookDetectsTable(t *testing.T) {
	path := writeWorkbook(t, map[string]interface{}{
		"B2": "country", "C2": "region", "D2": "value",
		"B3": "A", "C3": 1, "D3": 824,
		"B4": "A", "C4": 2, "D4": 345.5,
		"B5": "B", "C5": 1, "D5": 650,
	})

	ds, err := ReadWorkbook(path, SheetOptions{})
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}
	if len(ds) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(ds))
	}

	want := models.MustRecord("country", "A", "region", 2, "value", 345.5)
	for i, c := range want {
		if ds[1][i] != c {
			t.Errorf("record 1 cell %d = %+v, expected %+v", i, ds[1][i], c)
		}
	}
}

func TestReadWorkbookExplicitRange(t *testing.T) {
	path := writeWorkbook(t, map[string]interface{}{
		"A1": "notes",
		"A3": "g", "B3": "v",
		"A4": "x", "B4": 10,
		"A5": "y", "B5": 7,
		"A6": "z", "B6": 1,
	})

	ds, err := ReadWorkbook(path, SheetOptions{Range: "'Data'!$A$3:$B$5"})
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}
	if len(ds) != 2 {
		t.Fatalf("Expected 2 records, got %d: %v", len(ds), ds)
	}
	if v, _ := ds[1].Get("g"); v != models.TextValue("y") {
		t.Errorf("Expected g=y, got %+v", v)
	}
}

func TestReadWorkbookNoTable(t *testing.T) {
	path := writeWorkbook(t, map[string]interface{}{"A1": "lonely"})

	_, err := ReadWorkbook(path, SheetOptions{})
	if !errors.Is(err, ErrNoTable) {
		t.Errorf("Expected ErrNoTable, got %v", err)
	}
}

func TestReadWorkbookUnknownSheet(t *testing.T) {
	path := writeWorkbook(t, map[string]interface{}{"A1": "g"})

	if _, err := ReadWorkbook(path, SheetOptions{Sheet: "Missing"}); err == nil {
		t.Error("Expected error for missing sheet")
	}
}

func TestDetectTable(t *testing.T) {
	rows := [][]string{
		{},
		{"", "a", "b"},
		{"", "1", "2"},
	}
	area, ok := DetectTable(rows, DefaultTableParams())
	if !ok {
		t.Fatal("Expected a table")
	}
	if area != (Area{R1: 2, C1: 2, R2: 3, C2: 3}) {
		t.Errorf("Unexpected area %+v", area)
	}
	if area.String() != "B2:C3" {
		t.Errorf("Expected B2:C3, got %s", area.String())
	}
	if area.Size() != 4 {
		t.Errorf("Expected 4 cells, got %d", area.Size())
	}

	sparse := make([][]string, 30)
	sparse[0] = []string{"a", "b"}
	sparse[29] = []string{"", "", "", "", "", "", "", "", "", "c"}
	if _, ok := DetectTable(sparse, DefaultTableParams()); ok {
		t.Error("Expected sparse sheet to be rejected")
	}
	if _, ok := DetectTable([][]string{{"a", " "}}, DefaultTableParams()); ok {
		t.Error("Expected too few cells to be rejected")
	}

	if _, ok := DetectTable(nil, DefaultTableParams()); ok {
		t.Error("Expected no table for empty rows")
	}
}

func TestParseRangeRef(t *testing.T) {
	tests := []struct {
		ref       string
		wantSheet string
		wantArea  Area
		wantErr   bool
	}{
		{"'Sheet 1'!$A$1:$D$10", "Sheet 1", Area{R1: 1, C1: 1, R2: 10, C2: 4}, false},
		{"Data!B2:C3", "Data", Area{R1: 2, C1: 2, R2: 3, C2: 3}, false},
		{"A1:B2", "", Area{R1: 1, C1: 1, R2: 2, C2: 2}, false},
		{"A1", "", Area{}, true},
		{"B2:A1", "", Area{}, true},
		{"!!:", "", Area{}, true},
	}

	for _, tt := range tests {
		sheet, area, err := ParseRangeRef(tt.ref)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseRangeRef(%q) expected error", tt.ref)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRangeRef(%q) failed: %v", tt.ref, err)
			continue
		}
		if sheet != tt.wantSheet || area != tt.wantArea {
			t.Errorf("ParseRangeRef(%q) = %q %+v, expected %q %+v",
				tt.ref, sheet, area, tt.wantSheet, tt.wantArea)
		}
	}
}
