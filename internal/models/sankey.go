package models

// SankeyGraph is the deduplicated, weighted node/link graph folded from a set
// of trace rows. NodeLabels and NodeColors are parallel; a node's index is its
// position in both.
type SankeyGraph struct {
	NodeLabels []string     `json:"nodeLabels"`
	NodeColors []string     `json:"nodeColors"`
	Links      []SankeyLink `json:"links"`
}

type SankeyLink struct {
	Source int    `json:"source"`
	Target int    `json:"target"`
	Weight int    `json:"weight"`
	Color  string `json:"color"`
}

// SankeyPayload is the column-oriented shape diagram renderers expect.
type SankeyPayload struct {
	Node SankeyPayloadNodes `json:"node"`
	Link SankeyPayloadLinks `json:"link"`
}

type SankeyPayloadNodes struct {
	Label []string `json:"label"`
	Color []string `json:"color"`
}

type SankeyPayloadLinks struct {
	Source []int    `json:"source"`
	Target []int    `json:"target"`
	Value  []int    `json:"value"`
	Color  []string `json:"color"`
}

// NewSankeyPayload converts the graph to renderer columns. Slices are never
// nil so an empty graph encodes as empty arrays.
func NewSankeyPayload(g *SankeyGraph) SankeyPayload {
	p := SankeyPayload{
		Node: SankeyPayloadNodes{Label: []string{}, Color: []string{}},
		Link: SankeyPayloadLinks{Source: []int{}, Target: []int{}, Value: []int{}, Color: []string{}},
	}
	if g == nil {
		return p
	}
	p.Node.Label = append(p.Node.Label, g.NodeLabels...)
	p.Node.Color = append(p.Node.Color, g.NodeColors...)
	for _, l := range g.Links {
		p.Link.Source = append(p.Link.Source, l.Source)
		p.Link.Target = append(p.Link.Target, l.Target)
		p.Link.Value = append(p.Link.Value, l.Weight)
		p.Link.Color = append(p.Link.Color, l.Color)
	}
	return p
}
