package parser

import (
	"github.com/xuri/excelize/v2"

	"github.com/xlsxinspect/xlsxinspect-go/pkg/inspect/models"
)

// fillPatternNames maps the numeric fill pattern index used by the style
// table to the OOXML pattern name, in index order.
var fillPatternNames = []string{
	"none", "solid", "mediumGray", "darkGray", "lightGray",
	"darkHorizontal", "darkVertical", "darkDown", "darkUp", "darkGrid",
	"darkTrellis", "lightHorizontal", "lightVertical", "lightDown",
	"lightUp", "lightGrid", "lightTrellis", "gray125", "gray0625",
}

// CellFormat describes the non-default formatting of a cell, combining fill
// pattern/color and font attributes. Returns nil when the cell carries no
// non-default formatting.
func CellFormat(f *excelize.File, sheet, cell string) (*models.CellFormat, error) {
	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return nil, err
	}
	if styleID == 0 {
		return nil, nil
	}
	style, err := f.GetStyle(styleID)
	if err != nil {
		return nil, err
	}

	desc := &models.CellFormat{}
	if style.Fill.Type == "pattern" && style.Fill.Pattern > 0 && style.Fill.Pattern < len(fillPatternNames) {
		desc.Fill = fillPatternNames[style.Fill.Pattern]
		desc.FillColor = "default"
		if len(style.Fill.Color) > 0 && style.Fill.Color[0] != "" {
			desc.FillColor = style.Fill.Color[0]
		}
	}
	if font := style.Font; font != nil && (font.Bold || font.Italic || font.Size > 0) {
		desc.Font = &models.FontInfo{
			Bold:   font.Bold,
			Italic: font.Italic,
			Size:   font.Size,
			Color:  font.Color,
		}
	}

	if desc.Fill == "" && desc.Font == nil {
		return nil, nil
	}
	return desc, nil
}
