package services

import "github.com/uddltools/uddlviz/internal/domain/schema"

// EntityStats holds per-entity counts for the summary table.
type EntityStats struct {
	Name          string `json:"name"`
	Parent        string `json:"parent,omitempty"`
	Attributes    int    `json:"attributes"`
	Relationships int    `json:"relationships"`
	IsA           int    `json:"is_a"`
}

// Summary aggregates counts over a whole graph. The totals match the
// node and edge counts a diagram emitter produces for the same graph.
type Summary struct {
	Entities           []EntityStats `json:"entities"`
	TotalAttributes    int           `json:"total_attributes"`
	TotalRelationships int           `json:"total_relationships"`
	TotalIsA           int           `json:"total_is_a"`
}

// Summarize computes summary statistics for a graph, in entity insertion
// order. The is-a count covers the parent reference plus any extra
// parents kept as is-a fields.
func Summarize(g *schema.Graph) Summary {
	var sum Summary
	for _, e := range g.Entities() {
		st := EntityStats{Name: e.Name, Parent: e.Parent}
		if e.Parent != "" {
			st.IsA++
		}
		for _, f := range e.Fields {
			switch {
			case f.IsA:
				st.IsA++
			case f.Relationship:
				st.Relationships++
			default:
				st.Attributes++
			}
		}
		sum.Entities = append(sum.Entities, st)
		sum.TotalAttributes += st.Attributes
		sum.TotalRelationships += st.Relationships
		sum.TotalIsA += st.IsA
	}
	return sum
}
