package handlers

import (
	"net/http"
	"runtime"
	"strconv"
	"time"
)

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Service   string            `json:"service"`
	Uptime    string            `json:"uptime,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}

func (a *API) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	a.writeJSON(w, r, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   "tracer-api",
		Uptime:    time.Since(a.started).String(),
		Details: map[string]string{
			"go_version": runtime.Version(),
			"standards":  strconv.Itoa(len(a.standards)),
			"cached":     strconv.Itoa(a.traces.Len()),
		},
	})
}
