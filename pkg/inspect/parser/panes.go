package parser

import (
	"github.com/xuri/excelize/v2"
)

// FreezePanes reports the frozen row and column counts of a sheet, or
// (nil, nil) when no freeze is declared. The counts are derived from the
// freeze top-left coordinate: a freeze at B2 pins 1 row and 1 column.
func FreezePanes(f *excelize.File, sheet string) (frozenRows, frozenCols *int, err error) {
	panes, err := f.GetPanes(sheet)
	if err != nil {
		return nil, nil, err
	}
	if !panes.Freeze {
		return nil, nil, nil
	}

	rows, cols := panes.YSplit, panes.XSplit
	if panes.TopLeftCell != "" {
		if col, row, err := excelize.CellNameToCoordinates(panes.TopLeftCell); err == nil {
			rows, cols = row-1, col-1
		}
	}
	return &rows, &cols, nil
}
