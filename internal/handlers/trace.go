package handlers

import (
	"net/http"

	"github.com/programmedesign/core/internal/cache"
	"github.com/programmedesign/core/internal/models"
	"github.com/programmedesign/core/internal/trace"
)

type TraceResponse struct {
	Rows     []models.TraceRow       `json:"rows"`
	Stats    models.TraceStats       `json:"stats"`
	Coverage []models.CoverageRecord `json:"coverage"`
}

type SankeyResponse struct {
	Graph   *models.SankeyGraph  `json:"graph"`
	Payload models.SankeyPayload `json:"payload"`
}

// analyze returns the traceability of a programme snapshot, memoized on the
// raw request body.
func (a *API) analyze(r *http.Request, body []byte, p *models.Programme) *models.Traceability {
	result, cached, _ := a.traces.Get(cache.Key(body), func() (*models.Traceability, error) {
		return trace.Trace(p, a.standards), nil
	})
	a.requestLogger(r).Debug("traceability derived",
		"rows", len(result.Rows),
		"standards", len(result.Coverage),
		"cached", cached,
	)
	return result
}

// TraceHandler returns the trace rows, status counts and per-standard
// coverage of the posted programme. Query parameters status, standard and q
// narrow the returned rows; stats and coverage always describe every row.
func (a *API) TraceHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	filter := trace.RowFilter{
		Status:     models.Status(query.Get("status")),
		StandardID: query.Get("standard"),
		Query:      query.Get("q"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		http.Error(w, "Invalid status filter: "+string(filter.Status), http.StatusBadRequest)
		return
	}

	body, programme, ok := a.readProgramme(w, r)
	if !ok {
		return
	}

	result := a.analyze(r, body, programme)

	a.writeJSON(w, r, TraceResponse{
		Rows:     trace.FilterRows(result.Rows, filter),
		Stats:    result.Stats,
		Coverage: result.Coverage,
	})
}

// SankeyHandler returns the flow graph of the posted programme, both as the
// aggregated graph and in the renderer's column layout.
func (a *API) SankeyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, programme, ok := a.readProgramme(w, r)
	if !ok {
		return
	}

	graph := trace.Aggregate(a.analyze(r, body, programme).Rows)

	a.writeJSON(w, r, SankeyResponse{
		Graph:   graph,
		Payload: models.NewSankeyPayload(graph),
	})
}
