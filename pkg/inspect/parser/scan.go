// Package parser provides the per-concern readers used by workbook inspection.
package parser

import (
	"github.com/thedatashed/xlsxreader"
	"github.com/xuri/excelize/v2"
)

// SheetScan holds the result of a single streaming pass over a sheet.
type SheetScan struct {
	// RowCount is the highest row index carrying any cell record, floored
	// at 1 so an empty sheet reads as a single empty cell.
	RowCount int
	// ColCount is the highest column index carrying any cell record,
	// floored at 1.
	ColCount int
	// Sample holds the raw values of the first min(cap, RowCount) rows,
	// each row dense with ColCount entries ("" for empty cells).
	Sample [][]string

	// Bounds of the non-empty value region, 1-based. Zero when the sheet
	// holds no values.
	dataMinRow, dataMinCol int
	dataMaxRow, dataMaxCol int
}

// ScanSheet streams the sheet once, counting rows and columns and retaining
// the raw values of the first sampleCap rows. Streaming keeps memory bounded
// by the sample cap rather than the sheet size.
func ScanSheet(xl *xlsxreader.XlsxFileCloser, sheet string, sampleCap int) (*SheetScan, error) {
	if sampleCap < 0 {
		sampleCap = 0
	}

	scan := &SheetScan{}
	kept := make(map[int]map[int]string, sampleCap)

	// The channel must be drained even after a failure, or the reader
	// goroutine stays blocked on its next send.
	var firstErr error
	for row := range xl.ReadRows(sheet) {
		if firstErr != nil {
			continue
		}
		if row.Error != nil {
			firstErr = row.Error
			continue
		}
		if row.Index > scan.RowCount {
			scan.RowCount = row.Index
		}
		for _, cell := range row.Cells {
			col, err := excelize.ColumnNameToNumber(cell.Column)
			if err != nil {
				firstErr = err
				break
			}
			if col > scan.ColCount {
				scan.ColCount = col
			}
			if cell.Value != "" {
				scan.growDataBounds(row.Index, col)
			}
			if row.Index <= sampleCap {
				if kept[row.Index] == nil {
					kept[row.Index] = make(map[int]string)
				}
				kept[row.Index][col] = cell.Value
			}
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	// An empty sheet counts as one empty cell, matching how spreadsheet
	// applications report the extent of a sheet with no records.
	if scan.RowCount == 0 {
		scan.RowCount = 1
	}
	if scan.ColCount == 0 {
		scan.ColCount = 1
	}

	rows := scan.RowCount
	if rows > sampleCap {
		rows = sampleCap
	}
	scan.Sample = make([][]string, rows)
	for r := 1; r <= rows; r++ {
		values := make([]string, scan.ColCount)
		for col, v := range kept[r] {
			values[col-1] = v
		}
		scan.Sample[r-1] = values
	}
	return scan, nil
}

func (s *SheetScan) growDataBounds(row, col int) {
	if s.dataMinRow == 0 || row < s.dataMinRow {
		s.dataMinRow = row
	}
	if row > s.dataMaxRow {
		s.dataMaxRow = row
	}
	if s.dataMinCol == 0 || col < s.dataMinCol {
		s.dataMinCol = col
	}
	if col > s.dataMaxCol {
		s.dataMaxCol = col
	}
}
