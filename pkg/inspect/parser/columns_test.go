package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestColumns(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	// A1 left empty on purpose.
	f.SetCellValue(sheetName, "B1", "Name")
	f.SetCellValue(sheetName, "A2", "x")

	f2 := openWorkbook(t, saveWorkbook(t, f))

	columns, err := Columns(f2, sheetName, 2)
	if err != nil {
		t.Fatalf("Columns failed: %v", err)
	}
	if len(columns) != 2 {
		t.Fatalf("Expected 2 columns, got %d", len(columns))
	}
	if columns[0].Index != 1 || columns[0].Letter != "A" {
		t.Errorf("Unexpected first column: %+v", columns[0])
	}
	if columns[0].Header != "Column A" {
		t.Errorf("Expected fallback header 'Column A', got %q", columns[0].Header)
	}
	if columns[1].Header != "Name" {
		t.Errorf("Expected header 'Name', got %q", columns[1].Header)
	}
}

func TestColumnsEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f2 := openWorkbook(t, saveWorkbook(t, f))

	// An empty sheet scans as one column, so one fallback entry comes back.
	columns, err := Columns(f2, "Sheet1", 1)
	if err != nil {
		t.Fatalf("Columns failed: %v", err)
	}
	if len(columns) != 1 {
		t.Fatalf("Expected 1 column, got %d", len(columns))
	}
	if columns[0].Header != "Column A" {
		t.Errorf("Expected fallback header 'Column A', got %q", columns[0].Header)
	}
}
