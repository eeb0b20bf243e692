package readers

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/uddltools/uddlviz/internal/domain/schema"
)

// OntologyReader parses the RDF/XML subset that declares OWL classes,
// subclass-of edges, and object/datatype properties. Each class becomes
// one entity; object properties become relationship fields on their
// domain class and datatype properties become attribute fields.
//
// OWL allows more than one subclass-of per class; the common graph does
// not. The first declared parent becomes the entity's parent and every
// further one is kept as an is-a tagged relationship field.
type OntologyReader struct{}

// Kind returns the reader kind for diagram style selection.
func (p *OntologyReader) Kind() string { return KindOntology }

type owlDocument struct {
	XMLName              xml.Name      `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# RDF"`
	Classes              []owlClass    `xml:"http://www.w3.org/2002/07/owl# Class"`
	ObjectProperties     []owlProperty `xml:"http://www.w3.org/2002/07/owl# ObjectProperty"`
	DatatypeProperties   []owlProperty `xml:"http://www.w3.org/2002/07/owl# DatatypeProperty"`
	FunctionalProperties []owlProperty `xml:"http://www.w3.org/2002/07/owl# FunctionalProperty"`
}

type owlClass struct {
	About      string        `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# about,attr"`
	SubClassOf []owlResource `xml:"http://www.w3.org/2000/01/rdf-schema# subClassOf"`
}

type owlProperty struct {
	About  string        `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# about,attr"`
	Domain []owlResource `xml:"http://www.w3.org/2000/01/rdf-schema# domain"`
	Range  []owlResource `xml:"http://www.w3.org/2000/01/rdf-schema# range"`
}

type owlResource struct {
	Resource string `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# resource,attr"`
}

// Parse reads OWL RDF/XML and returns the resulting graph.
func (p *OntologyReader) Parse(r io.Reader) (*schema.Graph, error) {
	var doc owlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		var se *xml.SyntaxError
		if errors.As(err, &se) {
			return nil, &schema.SyntaxError{Line: se.Line, Msg: se.Msg}
		}
		return nil, fmt.Errorf("parsing XML: %w", err)
	}

	g := schema.NewGraph()

	for _, cls := range doc.Classes {
		if cls.About == "" {
			continue
		}
		name := localName(cls.About)
		if !reIdent.MatchString(name) {
			return nil, &schema.SyntaxError{Text: cls.About, Msg: fmt.Sprintf("invalid class name %q", name)}
		}

		e, ok := g.Get(name)
		if !ok {
			// Duplicate declarations with the same name merge, so the
			// entity is created on first sight only.
			e = &schema.Entity{Name: name}
			if err := g.Add(e); err != nil {
				return nil, err
			}
		}
		for _, sub := range cls.SubClassOf {
			if sub.Resource == "" {
				continue
			}
			addSuperClass(e, localName(sub.Resource))
		}
	}

	functional := make(map[string]bool)
	for _, prop := range doc.FunctionalProperties {
		if prop.About != "" {
			functional[localName(prop.About)] = true
		}
	}

	for _, prop := range doc.ObjectProperties {
		if err := p.addObjectProperty(g, prop, functional); err != nil {
			return nil, err
		}
	}
	for _, prop := range doc.DatatypeProperties {
		if err := p.addDatatypeProperty(g, prop); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func (p *OntologyReader) addObjectProperty(g *schema.Graph, prop owlProperty, functional map[string]bool) error {
	name, domain, rng, ok, err := propertyParts(prop)
	if err != nil || !ok {
		return err
	}

	e, declared := g.Get(domain)
	if !declared {
		return &schema.ReferenceError{Symbol: domain, Referrer: name}
	}
	if _, declared := g.Get(rng); !declared {
		return &schema.ReferenceError{Symbol: rng, Referrer: name}
	}

	card := schema.Many
	if functional[name] {
		card = schema.One
	}
	return addField(e, schema.Field{
		Name:         name,
		Type:         rng,
		Cardinality:  card,
		Relationship: true,
	})
}

func (p *OntologyReader) addDatatypeProperty(g *schema.Graph, prop owlProperty) error {
	name, domain, rng, ok, err := propertyParts(prop)
	if err != nil || !ok {
		return err
	}

	e, declared := g.Get(domain)
	if !declared {
		return &schema.ReferenceError{Symbol: domain, Referrer: name}
	}
	primitive, known := xsdPrimitive(rng)
	if !known {
		return &schema.ReferenceError{Symbol: rng, Referrer: name}
	}

	return addField(e, schema.Field{
		Name:        name,
		Type:        primitive,
		Cardinality: schema.One,
	})
}

// propertyParts extracts the local names of a property, its domain, and
// its range. Properties missing a domain or range carry nothing the
// diagram can show and are skipped (ok=false).
func propertyParts(prop owlProperty) (name, domain, rng string, ok bool, err error) {
	if prop.About == "" {
		return "", "", "", false, nil
	}
	name = localName(prop.About)
	if !reIdent.MatchString(name) {
		return "", "", "", false, &schema.SyntaxError{Text: prop.About, Msg: fmt.Sprintf("invalid property name %q", name)}
	}

	domain = firstResource(prop.Domain)
	rng = firstResource(prop.Range)
	if domain == "" || rng == "" {
		return "", "", "", false, nil
	}
	return name, domain, rng, true, nil
}

// addSuperClass records one subclass-of edge, deduplicating re-declared
// parents.
func addSuperClass(e *schema.Entity, parent string) {
	if e.Parent == parent {
		return
	}
	if e.Parent == "" {
		e.Parent = parent
		return
	}
	for _, f := range e.Fields {
		if f.IsA && f.Type == parent {
			return
		}
	}
	e.Fields = append(e.Fields, schema.Field{
		Name:         "is-a",
		Type:         parent,
		Cardinality:  schema.One,
		Relationship: true,
		IsA:          true,
	})
}

// addField unions a property field into its entity. Re-declaring a field
// with the same type is a no-op; a different type is a conflict.
func addField(e *schema.Entity, f schema.Field) error {
	if existing := e.FindField(f.Name); existing != nil {
		if existing.Type == f.Type {
			return nil
		}
		return &schema.ConflictError{
			Entity:      e.Name,
			Field:       f.Name,
			Existing:    existing.Type,
			Conflicting: f.Type,
		}
	}
	e.Fields = append(e.Fields, f)
	return nil
}

func firstResource(resources []owlResource) string {
	for _, r := range resources {
		if r.Resource != "" {
			return localName(r.Resource)
		}
	}
	return ""
}

// localName extracts the fragment of a URI (after '#', or the last path
// segment).
func localName(uri string) string {
	if i := strings.LastIndex(uri, "#"); i >= 0 {
		return uri[i+1:]
	}
	if i := strings.LastIndex(uri, "/"); i >= 0 {
		return uri[i+1:]
	}
	return uri
}

// xsdPrimitive maps an XSD datatype local name to a primitive type tag.
func xsdPrimitive(local string) (string, bool) {
	switch local {
	case "string":
		return schema.TypeString, true
	case "int", "integer", "long":
		return schema.TypeInt, true
	case "float", "double", "decimal":
		return schema.TypeFloat, true
	case "boolean":
		return schema.TypeBool, true
	case "date", "dateTime":
		return schema.TypeDate, true
	default:
		return "", false
	}
}
