package emitters

import (
	"fmt"
	"strings"

	"github.com/uddltools/uddlviz/internal/domain/schema"
)

// dotGlyphs is the fixed mapping from cardinality to Graphviz edge
// attributes: normal arrowhead for one, crow's foot for many, dashed
// line for optional.
var dotGlyphs = map[schema.Cardinality]string{
	schema.One:      "arrowhead=normal",
	schema.Many:     "arrowhead=crow",
	schema.Optional: "arrowhead=normal, style=dashed",
}

// dotIsAGlyph is the hollow-triangle arrowhead convention for is-a edges.
const dotIsAGlyph = "arrowhead=empty"

// DOT emits Graphviz source with one record-shaped node per entity and
// the same edge semantics as the Mermaid emitter.
type DOT struct {
	// Direction is the rankdir, LR when empty.
	Direction string
}

// Emit serializes a validated graph.
func (d *DOT) Emit(g *schema.Graph, style Style) ([]byte, error) {
	if !g.Frozen() {
		return nil, fmt.Errorf("emitting diagram: graph has not been validated")
	}

	dir := d.Direction
	if dir == "" {
		dir = "LR"
	}

	var b strings.Builder
	b.WriteString("digraph schema {\n")
	fmt.Fprintf(&b, "    rankdir=%s;\n", dir)
	b.WriteString("    node [shape=record, fontname=\"Helvetica\"];\n")

	for _, e := range g.Entities() {
		var attrs []string
		for _, f := range e.Fields {
			if f.Relationship {
				continue
			}
			attrs = append(attrs, fmt.Sprintf("%s %s\\l", f.Type, f.Name))
		}
		if len(attrs) == 0 {
			fmt.Fprintf(&b, "    %s [label=\"{%s}\"];\n", e.Name, e.Name)
		} else {
			fmt.Fprintf(&b, "    %s [label=\"{%s|%s}\"];\n", e.Name, e.Name, strings.Join(attrs, ""))
		}
	}

	label := isALabel(style)
	for _, e := range g.Entities() {
		if e.Parent != "" {
			fmt.Fprintf(&b, "    %s -> %s [label=\"%s\", %s];\n", e.Name, e.Parent, label, dotIsAGlyph)
		}
		for _, f := range e.Fields {
			if !f.Relationship {
				continue
			}
			if f.IsA {
				fmt.Fprintf(&b, "    %s -> %s [label=\"%s\", %s];\n", e.Name, f.Type, label, dotIsAGlyph)
				continue
			}
			glyph, ok := dotGlyphs[f.Cardinality]
			if !ok {
				return nil, fmt.Errorf("emitting edge %s.%s: unknown cardinality %q", e.Name, f.Name, f.Cardinality)
			}
			fmt.Fprintf(&b, "    %s -> %s [label=\"%s\", %s];\n", e.Name, f.Type, f.Name, glyph)
		}
	}

	b.WriteString("}\n")
	return []byte(b.String()), nil
}
