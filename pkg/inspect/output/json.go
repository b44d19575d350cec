// Package output renders inspection reports as JSON, TOON, or Markdown.
package output

import (
	"encoding/json"

	"github.com/xlsxinspect/xlsxinspect-go/pkg/inspect/models"
)

// ToJSON serializes a report to JSON, indented when pretty is set.
func ToJSON(r *models.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}

// SheetToJSON serializes a single sheet summary to JSON.
func SheetToJSON(s *models.SheetInfo, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(s, "", "  ")
	}
	return json.Marshal(s)
}
