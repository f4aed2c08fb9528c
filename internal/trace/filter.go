package trace

import (
	"strings"

	"github.com/programmedesign/core/internal/models"
)

// RowFilter narrows a row set for table display. Zero-valued fields match
// every row.
type RowFilter struct {
	Status     models.Status
	StandardID string
	Query      string
}

func (f RowFilter) IsZero() bool {
	return f.Status == "" && f.StandardID == "" && strings.TrimSpace(f.Query) == ""
}

// Match reports whether the row satisfies every set criterion. Query is a
// case-insensitive substring test over the row's descriptive text.
func (f RowFilter) Match(row models.TraceRow) bool {
	if f.Status != "" && row.Status != f.Status {
		return false
	}
	if f.StandardID != "" && row.AwardStandardID != f.StandardID {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	for _, field := range []string{
		row.StandardLabel,
		row.PLOText,
		row.ModuleCode,
		row.ModuleTitle,
		row.MIMLOText,
		row.AssessmentTitle,
		row.AssessmentType,
	} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// FilterRows returns the rows matching f, preserving order.
func FilterRows(rows []models.TraceRow, f RowFilter) []models.TraceRow {
	if f.IsZero() {
		return rows
	}
	out := []models.TraceRow{}
	for _, row := range rows {
		if f.Match(row) {
			out = append(out, row)
		}
	}
	return out
}
