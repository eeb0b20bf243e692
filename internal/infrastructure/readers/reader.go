// Package readers provides parsers that turn schema notations into the
// common graph representation.
package readers

import (
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/uddltools/uddlviz/internal/domain/schema"
)

// Reader kinds, used to pick the diagram style downstream.
const (
	KindOntology = "ontology"
	KindTuple    = "tuple"
)

// reIdent matches entity, field, and property names. Anything else is
// rejected so emitted diagram source stays well-formed.
var reIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Reader defines the interface for parsing a schema notation into a graph.
type Reader interface {
	Parse(r io.Reader) (*schema.Graph, error)
	Kind() string
}

// ForFile returns the appropriate reader based on file extension, or nil
// when the extension is not recognized.
func ForFile(filename string) Reader {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".owl", ".rdf", ".xml":
		return &OntologyReader{}
	case ".tpl", ".tuple", ".uddl":
		return &TupleReader{}
	default:
		return nil
	}
}
