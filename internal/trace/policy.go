// Package trace derives the curriculum alignment chain
// Award Standard -> PLO -> Module -> MIMLO -> Assessment from a programme
// snapshot, measures award-standard coverage, and folds the result into a
// weighted graph for flow diagrams.
//
// Every function in this package is pure: inputs are read, never mutated, and
// missing or dangling references degrade to an empty result instead of an
// error.
package trace

import (
	"strconv"

	"github.com/programmedesign/core/internal/models"
)

// EffectiveMappings returns the standard mappings a PLO contributes. A PLO
// with no mappings still yields one synthetic "(Not mapped)" mapping so it
// appears in the trace.
func EffectiveMappings(plo models.PLO) []models.StandardMapping {
	if len(plo.StandardMappings) == 0 {
		return []models.StandardMapping{{Criteria: models.NotMapped}}
	}
	return plo.StandardMappings
}

// ResolveStandardID returns the award standard a mapping belongs to: its own
// standard id, else the programme's first award standard, else "".
func ResolveStandardID(m models.StandardMapping, p *models.Programme) string {
	if m.StandardID != "" {
		return m.StandardID
	}
	if p != nil && len(p.AwardStandardIDs) > 0 {
		return p.AwardStandardIDs[0]
	}
	return ""
}

// IndicatorsAt returns the indicator list of a standard at an NFQ level. An
// unknown standard or level yields nil.
func IndicatorsAt(standards models.StandardsMap, standardID string, level int) []models.Indicator {
	def, ok := standards[standardID]
	if !ok {
		return nil
	}
	return def.Levels[level]
}

// StandardName returns the display name of a standard, falling back to its id.
func StandardName(standards models.StandardsMap, standardID string) string {
	if def, ok := standards[standardID]; ok && def.Name != "" {
		return def.Name
	}
	return standardID
}

// StandardLabel renders a criteria/thread pair for a trace row.
func StandardLabel(criteria, thread string) string {
	if thread == "" {
		return criteria
	}
	return criteria + " / " + thread
}

// FormatWeight renders an assessment weighting as a percentage. A zero
// weighting renders as "".
func FormatWeight(weighting float64) string {
	if weighting == 0 {
		return ""
	}
	return strconv.FormatFloat(weighting, 'f', -1, 64) + "%"
}
