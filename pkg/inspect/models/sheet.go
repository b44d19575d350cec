package models

// SheetInfo represents the structural summary of a single sheet.
type SheetInfo struct {
	// Name is the sheet title.
	Name string `json:"name"`
	// Dimensions is the sheet range in A1 notation (e.g. "A1:D20").
	Dimensions string `json:"dimensions"`
	// FrozenRows is the number of frozen leading rows (null when no freeze).
	FrozenRows *int `json:"frozen_rows"`
	// FrozenCols is the number of frozen leading columns (null when no freeze).
	FrozenCols *int `json:"frozen_cols"`
	// Columns describes each column up to col_count.
	Columns []ColumnInfo `json:"columns"`
	// MergedCells lists merged ranges in A1 notation (e.g. "B2:C3").
	MergedCells []string `json:"merged_cells"`
	// DataValidation lists the sheet's data-validation rules.
	DataValidation []ValidationRule `json:"data_validation"`
	// ConditionalFormatting reports whether any conditional-formatting rule
	// is declared on the sheet.
	ConditionalFormatting bool `json:"conditional_formatting"`
	// RowCount is the highest populated row index, at least 1.
	RowCount int `json:"row_count"`
	// ColCount is the highest populated column index, at least 1.
	ColCount int `json:"col_count"`
	// DataRegions lists the bounding range(s) of non-empty cells.
	DataRegions []string `json:"data_regions"`
	// DataSample holds the first rows of the sheet, one CellInfo per column.
	DataSample [][]CellInfo `json:"data_sample"`
}
