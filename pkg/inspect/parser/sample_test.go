package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestBuildSample(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "x")
	f.SetCellValue(sheetName, "B2", 42)
	styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "A1", styleID); err != nil {
		t.Fatalf("SetCellStyle failed: %v", err)
	}

	path := saveWorkbook(t, f)
	xl := openReader(t, path)
	f2 := openWorkbook(t, path)

	scan, err := ScanSheet(xl, sheetName, 10)
	if err != nil {
		t.Fatalf("ScanSheet failed: %v", err)
	}

	sample, err := BuildSample(f2, sheetName, scan, true)
	if err != nil {
		t.Fatalf("BuildSample failed: %v", err)
	}
	if len(sample) != 2 {
		t.Fatalf("Expected 2 sampled rows, got %d", len(sample))
	}
	for i, row := range sample {
		if len(row) != scan.ColCount {
			t.Errorf("Row %d has %d cells, expected %d", i+1, len(row), scan.ColCount)
		}
	}

	a1 := sample[0][0]
	if a1.Value == nil || *a1.Value != "x" {
		t.Errorf("Expected A1 value 'x', got %v", a1.Value)
	}
	if a1.Format == nil || a1.Format.Font == nil || !a1.Format.Font.Bold {
		t.Errorf("Expected bold format on A1, got %+v", a1.Format)
	}
	if sample[0][1].Value != nil {
		t.Errorf("Expected empty B1, got %v", *sample[0][1].Value)
	}
	if sample[1][1].Value == nil || *sample[1][1].Value != "42" {
		t.Errorf("Expected B2 value '42', got %v", sample[1][1].Value)
	}
}

func TestBuildSampleWithoutFormats(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "x")
	styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "A1", styleID); err != nil {
		t.Fatalf("SetCellStyle failed: %v", err)
	}

	path := saveWorkbook(t, f)
	xl := openReader(t, path)
	f2 := openWorkbook(t, path)

	scan, err := ScanSheet(xl, sheetName, 10)
	if err != nil {
		t.Fatalf("ScanSheet failed: %v", err)
	}
	sample, err := BuildSample(f2, sheetName, scan, false)
	if err != nil {
		t.Fatalf("BuildSample failed: %v", err)
	}
	if sample[0][0].Format != nil {
		t.Errorf("Expected no format descriptor, got %+v", sample[0][0].Format)
	}
}
