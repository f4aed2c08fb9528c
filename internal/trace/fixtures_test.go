package trace

import "github.com/programmedesign/core/internal/models"

func coveredChainProgramme() *models.Programme {
	return &models.Programme{
		NFQLevel: 8,
		PLOs: []models.PLO{
			{ID: "plo_1", Text: "Design software systems"},
		},
		PLOToMIMLOs: map[string][]string{"plo_1": {"m1"}},
		Modules: []models.Module{
			{
				ID:     "mod_1",
				Code:   "COMP101",
				Title:  "Programming Fundamentals",
				MIMLOs: []models.MIMLO{{ID: "m1", Text: "Write structured programs"}},
				Assessments: []models.Assessment{
					{ID: "a1", Title: "Assignment 1", Type: "Project", Weighting: 40, MIMLOIDs: []string{"m1"}},
				},
			},
		},
	}
}

func computingStandards() models.StandardsMap {
	return models.StandardsMap{
		"qqi-computing": {
			ID:   "qqi-computing",
			Name: "QQI Computing Awards Standards",
			Levels: map[int][]models.Indicator{
				8: {
					{Criteria: "Knowledge", Thread: "Breadth"},
					{Criteria: "Knowledge", Thread: "Kind"},
					{Criteria: "Know-How & Skill", Thread: "Range"},
					{Criteria: "Competence", Thread: "Context"},
				},
				9: {
					{Criteria: "Knowledge", Thread: "Breadth"},
				},
			},
		},
	}
}

// mixedProgramme exercises every row status against computingStandards.
func mixedProgramme() *models.Programme {
	return &models.Programme{
		NFQLevel:         8,
		AwardStandardIDs: []string{"qqi-computing"},
		PLOs: []models.PLO{
			{
				ID:   "plo_1",
				Text: "Analyse computing problems",
				StandardMappings: []models.StandardMapping{
					{Criteria: "Knowledge", Thread: "Breadth"},
				},
			},
			{
				ID:   "plo_2",
				Text: "Build working systems",
				StandardMappings: []models.StandardMapping{
					{Criteria: "Know-How & Skill", Thread: "Range", StandardID: "qqi-computing"},
				},
			},
			{ID: "plo_3", Text: "Reflect on practice"},
		},
		PLOToMIMLOs: map[string][]string{
			"plo_1": {"m1", "m2", "gone"},
			"plo_2": {"m3"},
		},
		Modules: []models.Module{
			{
				ID:     "mod_1",
				Code:   "COMP101",
				Title:  "Programming Fundamentals",
				MIMLOs: []models.MIMLO{{ID: "m1", Text: "Write programs"}, {ID: "m2", Text: "Debug programs"}},
				Assessments: []models.Assessment{
					{ID: "a1", Title: "Assignment 1", Type: "Project", Weighting: 40, MIMLOIDs: []string{"m1"}},
					{ID: "a2", Title: "Exam", Type: "Exam", Weighting: 60, MIMLOIDs: []string{"m1"}},
				},
			},
			{
				ID:     "mod_2",
				Code:   "COMP202",
				Title:  "Systems Project",
				MIMLOs: []models.MIMLO{{ID: "m3", Text: "Deliver a system"}},
				Assessments: []models.Assessment{
					{ID: "a3", Title: "Capstone", Type: "Project", MIMLOIDs: []string{"m3"}},
				},
			},
		},
	}
}
