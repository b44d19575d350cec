package output

import (
	toon "github.com/mateuszkardas/toon-go"

	"github.com/xlsxinspect/xlsxinspect-go/pkg/inspect/models"
)

// ToTOON serializes a report to the TOON text format.
func ToTOON(r *models.Report) (string, error) {
	return toon.Marshal(r, nil)
}
