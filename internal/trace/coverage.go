package trace

import "github.com/programmedesign/core/internal/models"

// Analyze reports, for every award standard of the programme and in the
// programme's order, how many of the standard's indicators at the programme's
// NFQ level are touched by some PLO mapping. A standard missing from
// standards, or without data at the level, reports zero indicators.
func Analyze(p *models.Programme, standards models.StandardsMap, touched TouchedThreads) []models.CoverageRecord {
	records := []models.CoverageRecord{}
	if p == nil {
		return records
	}

	for _, id := range p.AwardStandardIDs {
		record, _ := analyzeStandard(id, IndicatorsAt(standards, id, p.NFQLevel), touched)
		record.StandardName = StandardName(standards, id)
		records = append(records, record)
	}
	return records
}

// analyzeStandard compares one indicator list against the touched set and
// returns the coverage record plus the indicators left uncovered, in the
// indicator list's order.
func analyzeStandard(standardID string, indicators []models.Indicator, touched TouchedThreads) (models.CoverageRecord, []models.Indicator) {
	var missing []models.Indicator
	threads := []string{}
	for _, ind := range indicators {
		if touched.Has(standardID, ind.Thread) {
			continue
		}
		missing = append(missing, ind)
		threads = append(threads, ind.Thread)
	}

	return models.CoverageRecord{
		StandardID:        standardID,
		StandardName:      standardID,
		TotalIndicators:   len(indicators),
		CoveredIndicators: len(indicators) - len(missing),
		UncoveredThreads:  threads,
	}, missing
}
