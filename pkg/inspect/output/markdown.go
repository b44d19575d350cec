package output

import (
	"fmt"
	"strings"

	"github.com/xlsxinspect/xlsxinspect-go/pkg/inspect/models"
)

// ToMarkdown renders a report as a human-readable Markdown document.
func ToMarkdown(r *models.Report) string {
	var b strings.Builder

	b.WriteString("# Workbook Inspection Report\n\n")
	fmt.Fprintf(&b, "File: `%s`\n\n", r.Filename)

	b.WriteString("## Sheets\n\n")
	b.WriteString("| Name | Dimensions | Rows | Columns | Frozen |\n")
	b.WriteString("| --- | --- | ---: | ---: | --- |\n")
	for _, name := range r.SheetNames {
		s := r.Sheets[name]
		fmt.Fprintf(&b, "| %s | %s | %d | %d | %s |\n",
			escapeMarkdownCell(s.Name), s.Dimensions, s.RowCount, s.ColCount, freezeLabel(s))
	}

	for _, name := range r.SheetNames {
		writeSheetSection(&b, r.Sheets[name])
	}
	return b.String()
}

func writeSheetSection(b *strings.Builder, s *models.SheetInfo) {
	fmt.Fprintf(b, "\n## %s\n\n", escapeMarkdownCell(s.Name))

	if len(s.Columns) > 0 {
		b.WriteString("### Columns\n\n")
		b.WriteString("| # | Letter | Header |\n")
		b.WriteString("| ---: | --- | --- |\n")
		for _, c := range s.Columns {
			fmt.Fprintf(b, "| %d | %s | %s |\n", c.Index, c.Letter, escapeMarkdownCell(c.Header))
		}
		b.WriteString("\n")
	}

	if len(s.MergedCells) > 0 {
		b.WriteString("### Merged ranges\n\n")
		for _, m := range s.MergedCells {
			fmt.Fprintf(b, "- %s\n", m)
		}
		b.WriteString("\n")
	}

	if len(s.DataValidation) > 0 {
		b.WriteString("### Data validation\n\n")
		b.WriteString("| Range | Type | Formula 1 | Formula 2 |\n")
		b.WriteString("| --- | --- | --- | --- |\n")
		for _, v := range s.DataValidation {
			fmt.Fprintf(b, "| %s | %s | %s | %s |\n",
				escapeMarkdownCell(v.Range), escapeMarkdownCell(v.Type),
				escapeMarkdownCell(v.Formula1), escapeMarkdownCell(v.Formula2))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(b, "- Conditional formatting: %v\n", s.ConditionalFormatting)
	if len(s.DataRegions) > 0 {
		fmt.Fprintf(b, "- Data regions: %s\n", strings.Join(s.DataRegions, ", "))
	}

	if len(s.DataSample) > 0 && len(s.Columns) > 0 {
		b.WriteString("\n### Sample\n\n")
		b.WriteString("| ")
		for i, c := range s.Columns {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(c.Letter)
		}
		b.WriteString(" |\n| ")
		for i := range s.Columns {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString("---")
		}
		b.WriteString(" |\n")
		for _, row := range s.DataSample {
			b.WriteString("| ")
			for i, cell := range row {
				if i > 0 {
					b.WriteString(" | ")
				}
				if cell.Value != nil {
					b.WriteString(escapeMarkdownCell(*cell.Value))
				}
			}
			b.WriteString(" |\n")
		}
	}
}

func freezeLabel(s *models.SheetInfo) string {
	if s.FrozenRows == nil && s.FrozenCols == nil {
		return "-"
	}
	rows, cols := 0, 0
	if s.FrozenRows != nil {
		rows = *s.FrozenRows
	}
	if s.FrozenCols != nil {
		cols = *s.FrozenCols
	}
	return fmt.Sprintf("%d rows, %d cols", rows, cols)
}

func escapeMarkdownCell(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "\\", "\\\\")
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", " ")
	return v
}
