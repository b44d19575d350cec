package models

// CellInfo represents one sampled cell.
type CellInfo struct {
	// Value is the cell value rendered as text (omitted when the cell is empty).
	Value *string `json:"value,omitempty"`
	// Format describes non-default formatting (omitted when default).
	Format *CellFormat `json:"format,omitempty"`
}

// CellFormat describes the visible formatting of a cell.
type CellFormat struct {
	// Fill is the fill pattern name (e.g. "solid"), empty when unfilled.
	Fill string `json:"fill,omitempty"`
	// FillColor is the fill foreground color, or "default" when the pattern
	// declares no color.
	FillColor string `json:"fill_color,omitempty"`
	// Font holds font attributes when any differ from the default.
	Font *FontInfo `json:"font,omitempty"`
}

// FontInfo holds the font attributes captured for a sampled cell.
type FontInfo struct {
	// Bold reports whether the font is bold.
	Bold bool `json:"bold"`
	// Italic reports whether the font is italic.
	Italic bool `json:"italic"`
	// Size is the font size in points.
	Size float64 `json:"size"`
	// Color is the font color, when set.
	Color string `json:"color,omitempty"`
}
