// Package handlers provides HTTP request handlers for the traceability API.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/programmedesign/core/internal/cache"
	"github.com/programmedesign/core/internal/logger"
	"github.com/programmedesign/core/internal/models"
	"github.com/programmedesign/core/internal/parser"
)

const maxBodyBytes = 10 << 20

// API serves the traceability engine over HTTP against one pre-loaded set of
// standard definitions.
type API struct {
	standards models.StandardsMap
	log       *logger.Logger
	traces    *cache.Memo[*models.Traceability]
	started   time.Time
}

func New(standards models.StandardsMap, log *logger.Logger, cacheSize int) *API {
	if standards == nil {
		standards = models.StandardsMap{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &API{
		standards: standards,
		log:       log,
		traces:    cache.NewMemo[*models.Traceability](cacheSize),
		started:   time.Now(),
	}
}

// Register mounts every endpoint on mux.
func (a *API) Register(mux *http.ServeMux) {
	mux.HandleFunc("/health", a.HealthHandler)
	mux.HandleFunc("/standards", a.StandardsHandler)
	mux.HandleFunc("/trace", a.TraceHandler)
	mux.HandleFunc("/sankey", a.SankeyHandler)
}

func (a *API) requestLogger(r *http.Request) *logger.Logger {
	if id := r.Header.Get("X-Request-ID"); id != "" {
		return a.log.With("request_id", id)
	}
	return a.log
}

// readProgramme reads and parses a programme snapshot from the request body,
// writing the error response itself when it fails.
func (a *API) readProgramme(w http.ResponseWriter, r *http.Request) ([]byte, *models.Programme, bool) {
	defer r.Body.Close()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return nil, nil, false
	}

	programme, err := parser.ParseProgramme(body)
	if err != nil {
		var verr *parser.ValidationError
		if errors.As(err, &verr) {
			a.requestLogger(r).Warn("programme failed validation", "fields", verr.Fields)
		}
		http.Error(w, "Invalid programme: "+err.Error(), http.StatusBadRequest)
		return nil, nil, false
	}
	return body, programme, true
}

func (a *API) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")

	encoder := json.NewEncoder(w)
	if r.URL.Query().Get("pretty") == "true" {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(v); err != nil {
		a.requestLogger(r).Error("encoding response", "error", err)
	}
}
