// Package emitters serializes schema graphs into diagram-description
// source text for external renderers.
package emitters

import (
	"strings"

	"github.com/uddltools/uddlviz/internal/domain/schema"
)

// Style selects the diagram flavor: class-diagram-like for ontologies,
// entity-relationship-like for tuple schemas. The two differ only in how
// is-a edges are labeled.
type Style string

const (
	StyleOntology Style = "ontology"
	StyleTuple    Style = "tuple"
)

// isALabel returns the label used on parent edges for the given style,
// matching the vocabulary of the source notation.
func isALabel(style Style) string {
	if style == StyleOntology {
		return "subClassOf"
	}
	return "specializes"
}

// Emitter defines the interface for serializing a validated graph.
type Emitter interface {
	Emit(g *schema.Graph, style Style) ([]byte, error)
}

// ForFormat returns the emitter for the given output format, or nil when
// the format is not recognized. Supported formats: "mermaid", "dot".
func ForFormat(format, direction string) Emitter {
	switch strings.ToLower(format) {
	case "mermaid", "mmd":
		return &Mermaid{Direction: direction}
	case "dot", "gv":
		return &DOT{Direction: direction}
	default:
		return nil
	}
}

// OutputExt returns the conventional file extension for a format.
func OutputExt(format string) string {
	switch strings.ToLower(format) {
	case "dot", "gv":
		return ".dot"
	default:
		return ".mmd"
	}
}
