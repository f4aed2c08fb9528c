package models

// Status classifies a trace row.
type Status string

const (
	StatusOK        Status = "ok"
	StatusWarning   Status = "warning"
	StatusGap       Status = "gap"
	StatusUncovered Status = "uncovered"
)

// Label returns the human-readable badge text for the status.
func (s Status) Label() string {
	switch s {
	case StatusOK:
		return "Covered"
	case StatusWarning:
		return "Assessment Gap"
	case StatusGap:
		return "PLO Gap"
	case StatusUncovered:
		return "Standard Gap"
	default:
		return ""
	}
}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	return s.Label() != ""
}

// Placeholder strings used in trace rows for absent fields.
const (
	NoValue          = "—"
	NotMappedToMIMLO = "(Not mapped to MIMLO)"
	NotAssessed      = "(Not assessed)"
	NoPLOCovers      = "(No PLO covers this standard)"
	NotMapped        = "(Not mapped)"
)

// TraceRow is one observed link, or one detected gap, in the alignment chain
// Award Standard -> PLO -> Module -> MIMLO -> Assessment.
type TraceRow struct {
	AwardStandardID  string `json:"awardStandardId"`
	StandardLabel    string `json:"standardLabel"`
	PLONum           string `json:"ploNum"`
	PLOText          string `json:"ploText"`
	ModuleCode       string `json:"moduleCode"`
	ModuleTitle      string `json:"moduleTitle"`
	MIMLONum         string `json:"mimloNum"`
	MIMLOText        string `json:"mimloText"`
	AssessmentTitle  string `json:"assessmentTitle"`
	AssessmentType   string `json:"assessmentType"`
	AssessmentWeight string `json:"assessmentWeight"`
	Status           Status `json:"status"`
	StatusLabel      string `json:"statusLabel"`
}

// HasPLO reports whether the row is attached to a real PLO.
func (r TraceRow) HasPLO() bool {
	return present(r.PLONum)
}

// HasModule reports whether the row is attached to a real module.
func (r TraceRow) HasModule() bool {
	return present(r.ModuleCode)
}

// HasMIMLO reports whether the row is attached to a real module outcome.
func (r TraceRow) HasMIMLO() bool {
	return present(r.MIMLONum)
}

// HasAssessment reports whether the row names a real assessment rather than
// a placeholder.
func (r TraceRow) HasAssessment() bool {
	return present(r.AssessmentTitle) && r.AssessmentTitle != NotAssessed
}

func present(v string) bool {
	return v != "" && v != NoValue
}

// TraceStats counts trace rows by status.
type TraceStats struct {
	CoveredCount   int `json:"coveredCount"`
	WarningCount   int `json:"warningCount"`
	GapCount       int `json:"gapCount"`
	UncoveredCount int `json:"uncoveredCount"`
}

// Total returns the number of rows counted.
func (s TraceStats) Total() int {
	return s.CoveredCount + s.WarningCount + s.GapCount + s.UncoveredCount
}

// CoverageRecord summarises how much of one award standard's indicator set
// the programme's PLOs touch.
type CoverageRecord struct {
	StandardID        string   `json:"standardId"`
	StandardName      string   `json:"standardName"`
	TotalIndicators   int      `json:"totalIndicators"`
	CoveredIndicators int      `json:"coveredIndicators"`
	UncoveredThreads  []string `json:"uncoveredThreads"`
}

// Traceability bundles the rows, summary counts and per-standard coverage
// derived from one programme snapshot.
type Traceability struct {
	Rows     []TraceRow       `json:"rows"`
	Stats    TraceStats       `json:"stats"`
	Coverage []CoverageRecord `json:"coverage"`
}
