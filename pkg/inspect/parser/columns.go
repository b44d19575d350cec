package parser

import (
	"github.com/xuri/excelize/v2"

	"github.com/xlsxinspect/xlsxinspect-go/pkg/inspect/models"
)

// Columns describes columns 1..colCount of a sheet. The header is the row-1
// cell value; an empty header cell falls back to "Column {letter}".
func Columns(f *excelize.File, sheet string, colCount int) ([]models.ColumnInfo, error) {
	columns := make([]models.ColumnInfo, 0, colCount)
	for idx := 1; idx <= colCount; idx++ {
		letter, err := excelize.ColumnNumberToName(idx)
		if err != nil {
			return nil, err
		}
		header, err := f.GetCellValue(sheet, letter+"1")
		if err != nil {
			return nil, err
		}
		if header == "" {
			header = "Column " + letter
		}
		columns = append(columns, models.ColumnInfo{
			Index:  idx,
			Letter: letter,
			Header: header,
		})
	}
	return columns, nil
}
