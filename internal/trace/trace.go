package trace

import "github.com/programmedesign/core/internal/models"

// Trace runs the row builder and the coverage analyzer over one snapshot.
func Trace(p *models.Programme, standards models.StandardsMap) *models.Traceability {
	if p == nil {
		return &models.Traceability{Rows: []models.TraceRow{}, Coverage: []models.CoverageRecord{}}
	}
	rows, touched := build(p, standards)
	return &models.Traceability{
		Rows:     rows,
		Stats:    CountStatuses(rows),
		Coverage: Analyze(p, standards, touched),
	}
}
