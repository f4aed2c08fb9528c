package trace

import (
	"fmt"

	"github.com/programmedesign/core/internal/models"
)

// Node colours per graph tier.
const (
	ColorPLO    = "#0d6efd"
	ColorModule = "#6f42c1"
)

var statusNodeColors = map[models.Status]string{
	models.StatusOK:        "#198754",
	models.StatusWarning:   "#ffc107",
	models.StatusGap:       "#dc3545",
	models.StatusUncovered: "#212529",
}

var statusLinkColors = map[models.Status]string{
	models.StatusOK:        "rgba(25,135,84,0.4)",
	models.StatusWarning:   "rgba(255,193,7,0.4)",
	models.StatusGap:       "rgba(220,53,69,0.4)",
	models.StatusUncovered: "rgba(33,37,41,0.4)",
}

const fallbackLinkColor = "rgba(108,117,125,0.4)"

// NodeColor returns the node colour used for MIMLO and assessment nodes of a
// row with the given status.
func NodeColor(s models.Status) string {
	if c, ok := statusNodeColors[s]; ok {
		return c
	}
	return statusNodeColors[models.StatusUncovered]
}

// LinkColor returns the translucent link colour for a row status.
func LinkColor(s models.Status) string {
	if c, ok := statusLinkColors[s]; ok {
		return c
	}
	return fallbackLinkColor
}

type linkKey struct {
	source, target int
}

type sankeyBuilder struct {
	graph     *models.SankeyGraph
	nodeIndex map[string]int
	linkIndex map[linkKey]int
}

func newSankeyBuilder() *sankeyBuilder {
	return &sankeyBuilder{
		graph: &models.SankeyGraph{
			NodeLabels: []string{},
			NodeColors: []string{},
			Links:      []models.SankeyLink{},
		},
		nodeIndex: make(map[string]int),
		linkIndex: make(map[linkKey]int),
	}
}

// node returns the index of the node with label, creating it with color if
// it does not exist yet. An existing node keeps its first colour.
func (b *sankeyBuilder) node(label, color string) int {
	if idx, ok := b.nodeIndex[label]; ok {
		return idx
	}
	idx := len(b.graph.NodeLabels)
	b.graph.NodeLabels = append(b.graph.NodeLabels, label)
	b.graph.NodeColors = append(b.graph.NodeColors, color)
	b.nodeIndex[label] = idx
	return idx
}

// link adds one unit of weight to the source->target link. The colour is
// fixed by the first row that creates the link.
func (b *sankeyBuilder) link(source, target int, color string) {
	key := linkKey{source, target}
	if idx, ok := b.linkIndex[key]; ok {
		b.graph.Links[idx].Weight++
		return
	}
	b.linkIndex[key] = len(b.graph.Links)
	b.graph.Links = append(b.graph.Links, models.SankeyLink{
		Source: source,
		Target: target,
		Weight: 1,
		Color:  color,
	})
}

// Aggregate folds trace rows into a deduplicated PLO -> Module -> MIMLO ->
// Assessment graph. Node indices follow first-seen row order and link weights
// count the rows collapsing onto each link. Which nodes a row contributes is
// decided by the fields it carries, not by its status.
func Aggregate(rows []models.TraceRow) *models.SankeyGraph {
	b := newSankeyBuilder()

	for _, row := range rows {
		if !row.HasPLO() {
			continue
		}
		plo := b.node("PLO "+row.PLONum, ColorPLO)

		if !row.HasModule() {
			continue
		}
		linkColor := LinkColor(row.Status)
		mod := b.node(row.ModuleCode, ColorModule)
		b.link(plo, mod, linkColor)

		if !row.HasMIMLO() {
			continue
		}
		mimlo := b.node(fmt.Sprintf("%s MIMLO %s", row.ModuleCode, row.MIMLONum), NodeColor(row.Status))
		b.link(mod, mimlo, linkColor)

		if !row.HasAssessment() {
			continue
		}
		assessment := b.node(fmt.Sprintf("%s: %s", row.ModuleCode, row.AssessmentTitle), NodeColor(row.Status))
		b.link(mimlo, assessment, linkColor)
	}

	return b.graph
}
