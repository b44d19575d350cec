package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestDataRegions(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "B2", "start")
	f.SetCellValue(sheetName, "D5", "end")

	xl := openReader(t, saveWorkbook(t, f))

	scan, err := ScanSheet(xl, sheetName, 10)
	if err != nil {
		t.Fatalf("ScanSheet failed: %v", err)
	}

	regions := DataRegions(scan)
	if len(regions) != 1 {
		t.Fatalf("Expected 1 region, got %d", len(regions))
	}
	if regions[0] != "B2:D5" {
		t.Errorf("Expected region B2:D5, got %s", regions[0])
	}
}
