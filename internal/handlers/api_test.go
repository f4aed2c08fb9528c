package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/programmedesign/core/internal/logger"
	"github.com/programmedesign/core/internal/models"
)

const coveredChainJSON = `{
	"nfqLevel": 8,
	"awardStandardIds": ["qqi-computing"],
	"plos": [
		{"id": "plo_1", "text": "Design software systems", "standardMappings": [{"criteria": "Knowledge", "thread": "Breadth"}]},
		{"id": "plo_2", "text": "Analyse problems"}
	],
	"ploToMimlos": {"plo_1": ["m1"]},
	"modules": [
		{
			"id": "mod_1",
			"code": "COMP101",
			"title": "Programming Fundamentals",
			"mimlos": [{"id": "m1", "text": "Write structured programs"}],
			"assessments": [{"id": "a1", "title": "Assignment 1", "type": "Project", "weighting": 40, "mimloIds": ["m1"]}]
		}
	]
}`

func testStandards() models.StandardsMap {
	return models.StandardsMap{
		"qqi-computing": {
			ID:   "qqi-computing",
			Name: "QQI Computing Awards Standards",
			Levels: map[int][]models.Indicator{
				8: {
					{Criteria: "Knowledge", Thread: "Breadth"},
					{Criteria: "Competence", Thread: "Context"},
				},
				9: {{Criteria: "Knowledge", Thread: "Breadth"}},
			},
		},
	}
}

func newTestAPI() *API {
	return New(testStandards(), logger.NewNop(), 16)
}

func serve(a *API, method, target, body string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	a.Register(mux)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}
