package parser

import (
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestCellFormat(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "styled")
	styleID, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFFF00"}},
	})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "A1", styleID); err != nil {
		t.Fatalf("SetCellStyle failed: %v", err)
	}

	f2 := openWorkbook(t, saveWorkbook(t, f))

	desc, err := CellFormat(f2, sheetName, "A1")
	if err != nil {
		t.Fatalf("CellFormat failed: %v", err)
	}
	if desc == nil {
		t.Fatal("Expected a format descriptor, got nil")
	}
	if desc.Fill != "solid" {
		t.Errorf("Expected solid fill, got %q", desc.Fill)
	}
	if desc.FillColor == "" || desc.FillColor == "default" {
		t.Errorf("Expected a fill color, got %q", desc.FillColor)
	}
	if !strings.Contains(desc.FillColor, "FFFF00") {
		t.Errorf("Expected fill color FFFF00, got %q", desc.FillColor)
	}
	if desc.Font == nil {
		t.Fatal("Expected font attributes, got nil")
	}
	if !desc.Font.Bold {
		t.Error("Expected bold font")
	}
	if desc.Font.Size != 12 {
		t.Errorf("Expected size 12, got %v", desc.Font.Size)
	}
}

func TestCellFormatDefault(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "B1", "plain")

	f2 := openWorkbook(t, saveWorkbook(t, f))

	desc, err := CellFormat(f2, "Sheet1", "B1")
	if err != nil {
		t.Fatalf("CellFormat failed: %v", err)
	}
	if desc != nil {
		t.Errorf("Expected nil descriptor for a default cell, got %+v", desc)
	}
}
