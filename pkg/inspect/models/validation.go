package models

// ValidationRule describes one data-validation rule on a sheet.
type ValidationRule struct {
	// Range is the target range the rule applies to (sqref, verbatim).
	Range string `json:"range"`
	// Type is the validation type tag (list, whole, decimal, date, ...).
	Type string `json:"type"`
	// Formula1 is the first constraint expression, when present.
	Formula1 string `json:"formula1,omitempty"`
	// Formula2 is the second constraint expression, when present.
	Formula2 string `json:"formula2,omitempty"`
}
