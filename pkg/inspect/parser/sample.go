package parser

import (
	"github.com/xuri/excelize/v2"

	"github.com/xlsxinspect/xlsxinspect-go/pkg/inspect/models"
)

// BuildSample renders the scanned sample rows as CellInfo values. Empty
// cells carry no value; when includeFormats is set, each cell also gets a
// formatting descriptor unless its formatting is default.
func BuildSample(f *excelize.File, sheet string, scan *SheetScan, includeFormats bool) ([][]models.CellInfo, error) {
	sample := make([][]models.CellInfo, 0, len(scan.Sample))
	for rowIdx, rawRow := range scan.Sample {
		row := make([]models.CellInfo, scan.ColCount)
		for col := 1; col <= scan.ColCount; col++ {
			var cell models.CellInfo
			if v := rawRow[col-1]; v != "" {
				value := v
				cell.Value = &value
			}
			if includeFormats {
				ref, err := excelize.CoordinatesToCellName(col, rowIdx+1)
				if err != nil {
					return nil, err
				}
				format, err := CellFormat(f, sheet, ref)
				if err != nil {
					return nil, err
				}
				cell.Format = format
			}
			row[col-1] = cell
		}
		sample = append(sample, row)
	}
	return sample, nil
}
