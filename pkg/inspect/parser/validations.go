package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/xlsxinspect/xlsxinspect-go/pkg/inspect/models"
)

// Validations lists the data-validation rules declared on a sheet. Absent or
// malformed validation metadata yields an empty list rather than an error.
func Validations(f *excelize.File, sheet string, logger *zap.Logger) []models.ValidationRule {
	rules := make([]models.ValidationRule, 0)

	dvs, err := f.GetDataValidations(sheet)
	if err != nil {
		logger.Debug("data validation metadata unreadable",
			zap.String("sheet", sheet), zap.Error(err))
		return rules
	}

	for _, dv := range dvs {
		if dv == nil || dv.Sqref == "" {
			continue
		}
		rules = append(rules, models.ValidationRule{
			Range:    dv.Sqref,
			Type:     dv.Type,
			Formula1: unwrapFormula(dv.Formula1, "formula1"),
			Formula2: unwrapFormula(dv.Formula2, "formula2"),
		})
	}
	return rules
}

// unwrapFormula strips the serialized <formulaN> element wrapper that
// excelize keeps around validation formulas.
func unwrapFormula(s, tag string) string {
	s = strings.TrimSpace(s)
	open, closing := "<"+tag+">", "</"+tag+">"
	if strings.HasPrefix(s, open) && strings.HasSuffix(s, closing) {
		s = s[len(open) : len(s)-len(closing)]
	}
	return s
}
