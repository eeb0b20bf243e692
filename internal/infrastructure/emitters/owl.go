package emitters

import (
	"fmt"
	"strings"

	"github.com/uddltools/uddlviz/internal/domain/schema"
)

// DefaultBaseIRI is used when no ontology base IRI is configured.
const DefaultBaseIRI = "http://example.org/uddl"

const xsdNamespace = "http://www.w3.org/2001/XMLSchema#"

// xsdTypes is the fixed mapping from primitive type tags to XSD datatypes.
var xsdTypes = map[string]string{
	schema.TypeString: "string",
	schema.TypeInt:    "integer",
	schema.TypeFloat:  "double",
	schema.TypeBool:   "boolean",
	schema.TypeDate:   "date",
}

// attrEscaper escapes text placed inside XML attribute values.
var attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

// OWLWriter serializes a schema graph as OWL RDF/XML: one class per
// entity, subclass-of edges for parents and is-a fields, an object
// property per relationship field (functional when the cardinality is
// one) and a datatype property per attribute field. The output parses
// back through OntologyReader.
type OWLWriter struct {
	// BaseIRI is the ontology IRI; entity and property IRIs are formed
	// as BaseIRI#Name. DefaultBaseIRI when empty.
	BaseIRI string
}

// Emit serializes a validated graph.
func (w *OWLWriter) Emit(g *schema.Graph) ([]byte, error) {
	if !g.Frozen() {
		return nil, fmt.Errorf("writing ontology: graph has not been validated")
	}

	base := strings.TrimSuffix(w.BaseIRI, "#")
	if base == "" {
		base = DefaultBaseIRI
	}
	iri := func(name string) string {
		return attrEscaper.Replace(base + "#" + name)
	}

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\"?>\n")
	b.WriteString("<rdf:RDF xmlns:rdf=\"http://www.w3.org/1999/02/22-rdf-syntax-ns#\"\n")
	b.WriteString("         xmlns:rdfs=\"http://www.w3.org/2000/01/rdf-schema#\"\n")
	b.WriteString("         xmlns:owl=\"http://www.w3.org/2002/07/owl#\">\n")
	fmt.Fprintf(&b, "    <owl:Ontology rdf:about=\"%s\"/>\n", attrEscaper.Replace(base))

	for _, e := range g.Entities() {
		supers := superClasses(e)
		if len(supers) == 0 {
			fmt.Fprintf(&b, "    <owl:Class rdf:about=\"%s\"/>\n", iri(e.Name))
			continue
		}
		fmt.Fprintf(&b, "    <owl:Class rdf:about=\"%s\">\n", iri(e.Name))
		for _, s := range supers {
			fmt.Fprintf(&b, "        <rdfs:subClassOf rdf:resource=\"%s\"/>\n", iri(s))
		}
		b.WriteString("    </owl:Class>\n")
	}

	for _, e := range g.Entities() {
		for _, f := range e.Fields {
			if f.IsA {
				continue
			}
			if f.Relationship {
				fmt.Fprintf(&b, "    <owl:ObjectProperty rdf:about=\"%s\">\n", iri(f.Name))
				fmt.Fprintf(&b, "        <rdfs:domain rdf:resource=\"%s\"/>\n", iri(e.Name))
				fmt.Fprintf(&b, "        <rdfs:range rdf:resource=\"%s\"/>\n", iri(f.Type))
				b.WriteString("    </owl:ObjectProperty>\n")
				if f.Cardinality == schema.One {
					fmt.Fprintf(&b, "    <owl:FunctionalProperty rdf:about=\"%s\"/>\n", iri(f.Name))
				}
				continue
			}
			xsd, ok := xsdTypes[f.Type]
			if !ok {
				return nil, fmt.Errorf("writing attribute %s.%s: no XSD datatype for %q", e.Name, f.Name, f.Type)
			}
			fmt.Fprintf(&b, "    <owl:DatatypeProperty rdf:about=\"%s\">\n", iri(f.Name))
			fmt.Fprintf(&b, "        <rdfs:domain rdf:resource=\"%s\"/>\n", iri(e.Name))
			fmt.Fprintf(&b, "        <rdfs:range rdf:resource=\"%s%s\"/>\n", xsdNamespace, xsd)
			b.WriteString("    </owl:DatatypeProperty>\n")
		}
	}

	b.WriteString("</rdf:RDF>\n")
	return []byte(b.String()), nil
}

// superClasses lists an entity's parent followed by its is-a fields, in
// declaration order.
func superClasses(e *schema.Entity) []string {
	var supers []string
	if e.Parent != "" {
		supers = append(supers, e.Parent)
	}
	for _, f := range e.Fields {
		if f.IsA {
			supers = append(supers, f.Type)
		}
	}
	return supers
}
