package emitters

import (
	"fmt"
	"strings"

	"github.com/uddltools/uddlviz/internal/domain/schema"
)

// mermaidGlyphs is the fixed mapping from cardinality to Mermaid arrow
// syntax: plain line for one, *-labeled line for many, dashed line for
// optional.
var mermaidGlyphs = map[schema.Cardinality]struct {
	arrow  string
	suffix string
}{
	schema.One:      {arrow: "-->", suffix: ""},
	schema.Many:     {arrow: "-->", suffix: " *"},
	schema.Optional: {arrow: "-.->", suffix: ""},
}

// mermaidIsAArrow is the circle-ended edge used for is-a relationships,
// visually distinct from the data-relationship arrows above.
const mermaidIsAArrow = "--o"

// Mermaid emits Mermaid flowchart source: one subgraph per entity with
// its attribute fields as inner nodes, and one edge per relationship
// field. Entities appear in graph insertion order so two runs over the
// same input produce byte-identical text.
type Mermaid struct {
	// Direction is the layout direction, LR when empty.
	Direction string
}

// Emit serializes a validated graph.
func (m *Mermaid) Emit(g *schema.Graph, style Style) ([]byte, error) {
	if !g.Frozen() {
		return nil, fmt.Errorf("emitting diagram: graph has not been validated")
	}

	dir := m.Direction
	if dir == "" {
		dir = "LR"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "graph %s\n", dir)
	b.WriteString("    classDef attribute fill:#ffffff,stroke:#000000,stroke-width:1px,color:#000000;\n")
	b.WriteString("    classDef entity fill:#ffffff,stroke:#000000,stroke-width:2px,color:#000000;\n")

	for _, e := range g.Entities() {
		fmt.Fprintf(&b, "    subgraph %s\n", e.Name)
		b.WriteString("    direction TB\n")
		for _, f := range e.Fields {
			if f.Relationship {
				continue
			}
			fmt.Fprintf(&b, "    %s_%s[%s %s]:::attribute\n", e.Name, f.Name, f.Type, f.Name)
		}
		b.WriteString("    end\n")
		fmt.Fprintf(&b, "    style %s fill:#ffffff,stroke:#000000,stroke-width:2px,color:#000000\n", e.Name)
	}

	label := isALabel(style)
	for _, e := range g.Entities() {
		if e.Parent != "" {
			fmt.Fprintf(&b, "    %s %s|%s| %s\n", e.Name, mermaidIsAArrow, label, e.Parent)
		}
		for _, f := range e.Fields {
			if !f.Relationship {
				continue
			}
			if f.IsA {
				fmt.Fprintf(&b, "    %s %s|%s| %s\n", e.Name, mermaidIsAArrow, label, f.Type)
				continue
			}
			glyph, ok := mermaidGlyphs[f.Cardinality]
			if !ok {
				return nil, fmt.Errorf("emitting edge %s.%s: unknown cardinality %q", e.Name, f.Name, f.Cardinality)
			}
			fmt.Fprintf(&b, "    %s %s|%s%s| %s\n", e.Name, glyph.arrow, f.Name, glyph.suffix, f.Type)
		}
	}

	return []byte(b.String()), nil
}
