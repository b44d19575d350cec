package inspect

import (
	"fmt"
	"os"
	"strings"

	"github.com/thedatashed/xlsxreader"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/xlsxinspect/xlsxinspect-go/pkg/inspect/models"
	"github.com/xlsxinspect/xlsxinspect-go/pkg/inspect/parser"
)

// Inspect opens a workbook and produces a structural report for every sheet,
// in workbook sheet order. Any failure outside tolerated validation and
// conditional-formatting metadata aborts the whole inspection; no partial
// report is returned.
func Inspect(path string, opts Options) (*models.Report, error) {
	logger := opts.logger()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	xl, err := xlsxreader.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer xl.Close()

	sheetNames := f.GetSheetList()
	report := &models.Report{
		Filename:   path,
		SheetNames: sheetNames,
		Sheets:     make(map[string]*models.SheetInfo, len(sheetNames)),
	}

	for _, name := range sheetNames {
		logger.Debug("inspecting sheet", zap.String("sheet", name))
		info, err := inspectSheet(f, xl, name, opts, logger)
		if err != nil {
			return nil, err
		}
		report.Sheets[name] = info
	}
	return report, nil
}

// sheetDimensions returns the declared dimension when it reaches the scanned
// bounds, and otherwise synthesizes A1:{last} from the scan. Writers commonly
// leave the dimension element at its initial "A1" instead of updating it as
// cells are written, so an under-covering declaration is treated as stale.
func sheetDimensions(declared string, rowCount, colCount int) (string, error) {
	if declared != "" && dimensionCovers(declared, rowCount, colCount) {
		return declared, nil
	}
	if rowCount <= 0 || colCount <= 0 {
		return "A1:A1", nil
	}
	end, err := excelize.CoordinatesToCellName(colCount, rowCount)
	if err != nil {
		return "", err
	}
	return "A1:" + end, nil
}

func dimensionCovers(declared string, rowCount, colCount int) bool {
	parts := strings.Split(declared, ":")
	col, row, err := excelize.CellNameToCoordinates(parts[len(parts)-1])
	if err != nil {
		return false
	}
	return row >= rowCount && col >= colCount
}

func inspectSheet(f *excelize.File, xl *xlsxreader.XlsxFileCloser, name string, opts Options, logger *zap.Logger) (*models.SheetInfo, error) {
	scan, err := parser.ScanSheet(xl, name, opts.SampleCap())
	if err != nil {
		return nil, NewSheetError(name, "scan", err)
	}

	declared, err := f.GetSheetDimension(name)
	if err != nil {
		return nil, NewSheetError(name, "dimensions", err)
	}
	dimensions, err := sheetDimensions(declared, scan.RowCount, scan.ColCount)
	if err != nil {
		return nil, NewSheetError(name, "dimensions", err)
	}

	frozenRows, frozenCols, err := parser.FreezePanes(f, name)
	if err != nil {
		return nil, NewSheetError(name, "panes", err)
	}

	columns, err := parser.Columns(f, name, scan.ColCount)
	if err != nil {
		return nil, NewSheetError(name, "columns", err)
	}

	mergeCells, err := f.GetMergeCells(name)
	if err != nil {
		return nil, NewSheetError(name, "merges", err)
	}
	merged := make([]string, 0, len(mergeCells))
	for _, mc := range mergeCells {
		merged = append(merged, mc.GetStartAxis()+":"+mc.GetEndAxis())
	}

	validations := parser.Validations(f, name, logger)

	conditional := false
	if formats, err := f.GetConditionalFormats(name); err != nil {
		logger.Debug("conditional formatting metadata unreadable",
			zap.String("sheet", name), zap.Error(err))
	} else {
		conditional = len(formats) > 0
	}

	sample, err := parser.BuildSample(f, name, scan, opts.ShouldIncludeFormats())
	if err != nil {
		return nil, NewSheetError(name, "sample", err)
	}

	return &models.SheetInfo{
		Name:                  name,
		Dimensions:            dimensions,
		FrozenRows:            frozenRows,
		FrozenCols:            frozenCols,
		Columns:               columns,
		MergedCells:           merged,
		DataValidation:        validations,
		ConditionalFormatting: conditional,
		RowCount:              scan.RowCount,
		ColCount:              scan.ColCount,
		DataRegions:           parser.DataRegions(scan),
		DataSample:            sample,
	}, nil
}
