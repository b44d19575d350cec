package models

// ColumnInfo describes one column of a sheet.
type ColumnInfo struct {
	// Index is the 1-based column index.
	Index int `json:"index"`
	// Letter is the column letter (A, B, ..., AA, ...).
	Letter string `json:"letter"`
	// Header is the row-1 cell text, or "Column {letter}" when empty.
	Header string `json:"header"`
}
