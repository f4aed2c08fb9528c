package handlers

import "net/http"

type StandardSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Levels []int  `json:"levels"`
}

// StandardsHandler lists the loaded award standards and the NFQ levels each
// one has reference data for.
func (a *API) StandardsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summaries := make([]StandardSummary, 0, len(a.standards))
	for _, id := range a.standards.IDs() {
		def := a.standards[id]
		summaries = append(summaries, StandardSummary{
			ID:     id,
			Name:   def.Name,
			Levels: def.LevelNumbers(),
		})
	}

	a.writeJSON(w, r, summaries)
}
