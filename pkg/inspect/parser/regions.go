package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// DataRegions returns the bounding range(s) of non-empty cells observed by a
// sheet scan, in A1 notation (e.g. "B2:F40"). A sheet with no values yields
// an empty slice.
func DataRegions(scan *SheetScan) []string {
	regions := make([]string, 0, 1)
	if scan.dataMinRow == 0 {
		return regions
	}

	start, err := excelize.CoordinatesToCellName(scan.dataMinCol, scan.dataMinRow)
	if err != nil {
		return regions
	}
	end, err := excelize.CoordinatesToCellName(scan.dataMaxCol, scan.dataMaxRow)
	if err != nil {
		return regions
	}
	return append(regions, fmt.Sprintf("%s:%s", start, end))
}
