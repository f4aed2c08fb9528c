package trace

import (
	"slices"
	"strconv"

	"github.com/programmedesign/core/internal/models"
)

// TouchedThreads records, per award standard id, which indicator threads at
// least one PLO mapping addresses.
type TouchedThreads map[string]map[string]struct{}

// NewTouchedThreads returns a set with an empty entry for every id.
func NewTouchedThreads(standardIDs []string) TouchedThreads {
	t := make(TouchedThreads, len(standardIDs))
	for _, id := range standardIDs {
		t[id] = map[string]struct{}{}
	}
	return t
}

func (t TouchedThreads) Add(standardID, thread string) {
	set, ok := t[standardID]
	if !ok {
		set = map[string]struct{}{}
		t[standardID] = set
	}
	set[thread] = struct{}{}
}

func (t TouchedThreads) Has(standardID, thread string) bool {
	_, ok := t[standardID][thread]
	return ok
}

type mimloRef struct {
	module *models.Module
	mimlo  models.MIMLO
	index  int
}

// Build walks the programme's PLOs and emits one trace row per observed link
// or detected gap. Standard-gap rows for indicator threads no PLO touches are
// prepended one at a time, so they lead the list with the last award
// standard's last indicator first.
func Build(p *models.Programme, standards models.StandardsMap) ([]models.TraceRow, models.TraceStats) {
	if p == nil {
		return []models.TraceRow{}, models.TraceStats{}
	}
	rows, _ := build(p, standards)
	return rows, CountStatuses(rows)
}

func build(p *models.Programme, standards models.StandardsMap) ([]models.TraceRow, TouchedThreads) {
	rows, touched := buildChainRows(p)

	var uncovered []models.TraceRow
	for _, id := range p.AwardStandardIDs {
		_, missing := analyzeStandard(id, IndicatorsAt(standards, id, p.NFQLevel), touched)
		for _, ind := range missing {
			uncovered = append(uncovered, uncoveredRow(id, ind))
		}
	}
	if len(uncovered) == 0 {
		return rows, touched
	}

	// Each uncovered row is prepended in turn, so the block ends up reversed.
	slices.Reverse(uncovered)
	return append(uncovered, rows...), touched
}

// CollectTouched returns the threads each award standard has mapped to it by
// the programme's PLOs.
func CollectTouched(p *models.Programme) TouchedThreads {
	if p == nil {
		return TouchedThreads{}
	}
	_, touched := buildChainRows(p)
	return touched
}

// CountStatuses tallies rows by status.
func CountStatuses(rows []models.TraceRow) models.TraceStats {
	var s models.TraceStats
	for _, r := range rows {
		switch r.Status {
		case models.StatusOK:
			s.CoveredCount++
		case models.StatusWarning:
			s.WarningCount++
		case models.StatusGap:
			s.GapCount++
		case models.StatusUncovered:
			s.UncoveredCount++
		}
	}
	return s
}

func buildChainRows(p *models.Programme) ([]models.TraceRow, TouchedThreads) {
	lookup := indexMIMLOs(p.Modules)
	touched := NewTouchedThreads(p.AwardStandardIDs)
	rows := []models.TraceRow{}

	for i, plo := range p.PLOs {
		ploNum := strconv.Itoa(i + 1)
		mimloIDs := p.PLOToMIMLOs[plo.ID]

		for _, mapping := range EffectiveMappings(plo) {
			standardID := ResolveStandardID(mapping, p)
			if mapping.Thread != "" && standardID != "" {
				touched.Add(standardID, mapping.Thread)
			}

			base := models.TraceRow{
				AwardStandardID: standardID,
				StandardLabel:   StandardLabel(mapping.Criteria, mapping.Thread),
				PLONum:          ploNum,
				PLOText:         plo.Text,
			}

			if len(mimloIDs) == 0 {
				rows = append(rows, gapRow(base))
				continue
			}

			for _, mimloID := range mimloIDs {
				ref, ok := lookup[mimloID]
				if !ok {
					continue
				}
				rows = append(rows, mimloRows(base, ref)...)
			}
		}
	}

	return rows, touched
}

// indexMIMLOs maps every MIMLO id to its owning module and 0-based position.
// A MIMLO id repeated across modules resolves to the last occurrence.
func indexMIMLOs(modules []models.Module) map[string]mimloRef {
	lookup := make(map[string]mimloRef)
	for i := range modules {
		mod := &modules[i]
		for j, mimlo := range mod.MIMLOs {
			lookup[mimlo.ID] = mimloRef{module: mod, mimlo: mimlo, index: j}
		}
	}
	return lookup
}

func mimloRows(base models.TraceRow, ref mimloRef) []models.TraceRow {
	base.ModuleCode = ref.module.Code
	base.ModuleTitle = ref.module.Title
	base.MIMLONum = strconv.Itoa(ref.index + 1)
	base.MIMLOText = ref.mimlo.Text

	var rows []models.TraceRow
	for _, a := range ref.module.Assessments {
		if !a.Assesses(ref.mimlo.ID) {
			continue
		}
		row := base
		row.AssessmentTitle = a.Title
		row.AssessmentType = a.Type
		row.AssessmentWeight = FormatWeight(a.Weighting)
		rows = append(rows, withStatus(row, models.StatusOK))
	}

	if len(rows) == 0 {
		base.AssessmentTitle = models.NotAssessed
		rows = append(rows, withStatus(base, models.StatusWarning))
	}
	return rows
}

func gapRow(base models.TraceRow) models.TraceRow {
	base.ModuleCode = models.NoValue
	base.ModuleTitle = models.NotMappedToMIMLO
	base.MIMLONum = models.NoValue
	base.AssessmentTitle = models.NoValue
	return withStatus(base, models.StatusGap)
}

func uncoveredRow(standardID string, ind models.Indicator) models.TraceRow {
	return withStatus(models.TraceRow{
		AwardStandardID: standardID,
		StandardLabel:   StandardLabel(ind.Criteria, ind.Thread),
		PLONum:          models.NoValue,
		PLOText:         models.NoPLOCovers,
		ModuleCode:      models.NoValue,
		MIMLONum:        models.NoValue,
		AssessmentTitle: models.NoValue,
	}, models.StatusUncovered)
}

func withStatus(row models.TraceRow, status models.Status) models.TraceRow {
	row.Status = status
	row.StatusLabel = status.Label()
	return row
}
