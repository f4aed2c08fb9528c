// Package models defines the curriculum data structures the traceability
// engine reads and the derived records it produces.
package models

// Programme is a snapshot of the editor's programme state.
type Programme struct {
	NFQLevel         int                 `json:"nfqLevel" validate:"omitempty,min=6,max=9"`
	AwardStandardIDs []string            `json:"awardStandardIds" validate:"unique,dive,required"`
	PLOs             []PLO               `json:"plos" validate:"dive"`
	PLOToMIMLOs      map[string][]string `json:"ploToMimlos,omitempty"`
	Modules          []Module            `json:"modules" validate:"dive"`
}

// PLO is a programme learning outcome.
type PLO struct {
	ID               string            `json:"id" validate:"required"`
	Text             string            `json:"text"`
	StandardMappings []StandardMapping `json:"standardMappings,omitempty"`
}

// StandardMapping links a PLO to one criteria/thread indicator. An empty
// StandardID means the programme's default award standard applies.
type StandardMapping struct {
	Criteria   string `json:"criteria"`
	Thread     string `json:"thread"`
	StandardID string `json:"standardId,omitempty"`
}

type Module struct {
	ID          string       `json:"id" validate:"required"`
	Code        string       `json:"code"`
	Title       string       `json:"title"`
	MIMLOs      []MIMLO      `json:"mimlos" validate:"dive"`
	Assessments []Assessment `json:"assessments" validate:"dive"`
}

// MIMLO is a module intended minimum learning outcome.
type MIMLO struct {
	ID   string `json:"id" validate:"required"`
	Text string `json:"text"`
}

type Assessment struct {
	ID        string   `json:"id" validate:"required"`
	Title     string   `json:"title"`
	Type      string   `json:"type"`
	Weighting float64  `json:"weighting" validate:"min=0,max=100"`
	MIMLOIDs  []string `json:"mimloIds,omitempty"`
}

// Assesses reports whether the assessment claims the given MIMLO.
func (a Assessment) Assesses(mimloID string) bool {
	for _, id := range a.MIMLOIDs {
		if id == mimloID {
			return true
		}
	}
	return false
}
