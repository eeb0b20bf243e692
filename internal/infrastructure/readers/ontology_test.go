package readers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uddltools/uddlviz/internal/domain/schema"
)

const owlHeader = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
         xmlns:owl="http://www.w3.org/2002/07/owl#">
`

func parseOWL(t *testing.T, body string) (*schema.Graph, error) {
	t.Helper()
	return (&OntologyReader{}).Parse(strings.NewReader(owlHeader + body + "</rdf:RDF>\n"))
}

func TestOntologyReader_Parse_ClassesAndProperties(t *testing.T) {
	g, err := parseOWL(t, `
  <owl:Class rdf:about="http://example.org/sat#Satellite"/>
  <owl:Class rdf:about="http://example.org/sat#Orbit"/>
  <owl:ObjectProperty rdf:about="http://example.org/sat#orbits">
    <rdfs:domain rdf:resource="http://example.org/sat#Satellite"/>
    <rdfs:range rdf:resource="http://example.org/sat#Orbit"/>
  </owl:ObjectProperty>
  <owl:DatatypeProperty rdf:about="http://example.org/sat#name">
    <rdfs:domain rdf:resource="http://example.org/sat#Satellite"/>
    <rdfs:range rdf:resource="http://www.w3.org/2001/XMLSchema#string"/>
  </owl:DatatypeProperty>
`)
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	require.Equal(t, 2, g.Len())

	sat, ok := g.Get("Satellite")
	require.True(t, ok)
	require.Len(t, sat.Fields, 2)

	orbits := sat.FindField("orbits")
	require.NotNil(t, orbits)
	assert.True(t, orbits.Relationship)
	assert.Equal(t, "Orbit", orbits.Type)
	// Plain object properties carry no multiplicity in RDF/XML.
	assert.Equal(t, schema.Many, orbits.Cardinality)

	name := sat.FindField("name")
	require.NotNil(t, name)
	assert.False(t, name.Relationship)
	assert.Equal(t, schema.TypeString, name.Type)
	assert.Equal(t, schema.One, name.Cardinality)
}

func TestOntologyReader_Parse_FunctionalProperty(t *testing.T) {
	g, err := parseOWL(t, `
  <owl:Class rdf:about="#Satellite"/>
  <owl:Class rdf:about="#Orbit"/>
  <owl:ObjectProperty rdf:about="#orbits">
    <rdfs:domain rdf:resource="#Satellite"/>
    <rdfs:range rdf:resource="#Orbit"/>
  </owl:ObjectProperty>
  <owl:FunctionalProperty rdf:about="#orbits"/>
`)
	require.NoError(t, err)

	sat, ok := g.Get("Satellite")
	require.True(t, ok)
	require.NotNil(t, sat.FindField("orbits"))
	assert.Equal(t, schema.One, sat.FindField("orbits").Cardinality)
}

func TestOntologyReader_Parse_SubClassOf(t *testing.T) {
	g, err := parseOWL(t, `
  <owl:Class rdf:about="#SpaceObject"/>
  <owl:Class rdf:about="#Satellite">
    <rdfs:subClassOf rdf:resource="#SpaceObject"/>
  </owl:Class>
`)
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	sat, ok := g.Get("Satellite")
	require.True(t, ok)
	assert.Equal(t, "SpaceObject", sat.Parent)
	assert.Empty(t, sat.Fields)
}

func TestOntologyReader_Parse_MultipleInheritance(t *testing.T) {
	// Only one parent fits the graph model: the first declared wins and
	// the rest survive as is-a tagged relationship fields.
	g, err := parseOWL(t, `
  <owl:Class rdf:about="#Vehicle"/>
  <owl:Class rdf:about="#Transmitter"/>
  <owl:Class rdf:about="#Satellite">
    <rdfs:subClassOf rdf:resource="#Vehicle"/>
    <rdfs:subClassOf rdf:resource="#Transmitter"/>
  </owl:Class>
`)
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	sat, ok := g.Get("Satellite")
	require.True(t, ok)
	assert.Equal(t, "Vehicle", sat.Parent)
	require.Len(t, sat.Fields, 1)
	assert.True(t, sat.Fields[0].IsA)
	assert.True(t, sat.Fields[0].Relationship)
	assert.Equal(t, "Transmitter", sat.Fields[0].Type)
}

func TestOntologyReader_Parse_DuplicateClassMerges(t *testing.T) {
	g, err := parseOWL(t, `
  <owl:Class rdf:about="#Vehicle"/>
  <owl:Class rdf:about="#Satellite">
    <rdfs:subClassOf rdf:resource="#Vehicle"/>
  </owl:Class>
  <owl:Class rdf:about="#Satellite">
    <rdfs:subClassOf rdf:resource="#Vehicle"/>
  </owl:Class>
`)
	require.NoError(t, err)

	require.Equal(t, 2, g.Len())
	sat, ok := g.Get("Satellite")
	require.True(t, ok)
	assert.Equal(t, "Vehicle", sat.Parent)
	assert.Empty(t, sat.Fields) // re-declared parent is not duplicated
}

func TestOntologyReader_Parse_ConflictingPropertyRedeclaration(t *testing.T) {
	_, err := parseOWL(t, `
  <owl:Class rdf:about="#Satellite"/>
  <owl:Class rdf:about="#Orbit"/>
  <owl:Class rdf:about="#Station"/>
  <owl:ObjectProperty rdf:about="#orbits">
    <rdfs:domain rdf:resource="#Satellite"/>
    <rdfs:range rdf:resource="#Orbit"/>
  </owl:ObjectProperty>
  <owl:ObjectProperty rdf:about="#orbits">
    <rdfs:domain rdf:resource="#Satellite"/>
    <rdfs:range rdf:resource="#Station"/>
  </owl:ObjectProperty>
`)
	require.Error(t, err)

	var conflict *schema.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Satellite", conflict.Entity)
	assert.Equal(t, "orbits", conflict.Field)
	assert.Equal(t, "Orbit", conflict.Existing)
	assert.Equal(t, "Station", conflict.Conflicting)
}

func TestOntologyReader_Parse_UndeclaredRange(t *testing.T) {
	_, err := parseOWL(t, `
  <owl:Class rdf:about="#Satellite"/>
  <owl:ObjectProperty rdf:about="#orbits">
    <rdfs:domain rdf:resource="#Satellite"/>
    <rdfs:range rdf:resource="#Orbit"/>
  </owl:ObjectProperty>
`)
	require.Error(t, err)

	var ref *schema.ReferenceError
	require.ErrorAs(t, err, &ref)
	assert.Equal(t, "Orbit", ref.Symbol)
	assert.Equal(t, "orbits", ref.Referrer)
}

func TestOntologyReader_Parse_UnknownDatatype(t *testing.T) {
	_, err := parseOWL(t, `
  <owl:Class rdf:about="#Satellite"/>
  <owl:DatatypeProperty rdf:about="#launched">
    <rdfs:domain rdf:resource="#Satellite"/>
    <rdfs:range rdf:resource="http://www.w3.org/2001/XMLSchema#gYearMonth"/>
  </owl:DatatypeProperty>
`)
	require.Error(t, err)

	var ref *schema.ReferenceError
	require.ErrorAs(t, err, &ref)
	assert.Equal(t, "gYearMonth", ref.Symbol)
}

func TestOntologyReader_Parse_IncompletePropertySkipped(t *testing.T) {
	// A property without a domain or range carries nothing the diagram
	// can show; visowl skipped these and so do we.
	g, err := parseOWL(t, `
  <owl:Class rdf:about="#Satellite"/>
  <owl:ObjectProperty rdf:about="#orbits">
    <rdfs:domain rdf:resource="#Satellite"/>
  </owl:ObjectProperty>
`)
	require.NoError(t, err)

	sat, ok := g.Get("Satellite")
	require.True(t, ok)
	assert.Empty(t, sat.Fields)
}

func TestOntologyReader_Parse_MalformedXML(t *testing.T) {
	input := owlHeader + "  <owl:Class rdf:about=\"#Satellite\">\n</rdf:RDF>\n"

	_, err := (&OntologyReader{}).Parse(strings.NewReader(input))
	require.Error(t, err)

	var syntax *schema.SyntaxError
	require.ErrorAs(t, err, &syntax)
	assert.Greater(t, syntax.Line, 0)
}

func TestOntologyReader_Parse_DatatypeMappings(t *testing.T) {
	tests := []struct {
		xsd      string
		expected string
	}{
		{"string", schema.TypeString},
		{"int", schema.TypeInt},
		{"integer", schema.TypeInt},
		{"float", schema.TypeFloat},
		{"double", schema.TypeFloat},
		{"boolean", schema.TypeBool},
		{"date", schema.TypeDate},
		{"dateTime", schema.TypeDate},
	}

	for _, tt := range tests {
		t.Run(tt.xsd, func(t *testing.T) {
			g, err := parseOWL(t, `
  <owl:Class rdf:about="#Satellite"/>
  <owl:DatatypeProperty rdf:about="#value">
    <rdfs:domain rdf:resource="#Satellite"/>
    <rdfs:range rdf:resource="http://www.w3.org/2001/XMLSchema#`+tt.xsd+`"/>
  </owl:DatatypeProperty>
`)
			require.NoError(t, err)
			sat, _ := g.Get("Satellite")
			require.NotNil(t, sat.FindField("value"))
			assert.Equal(t, tt.expected, sat.FindField("value").Type)
		})
	}
}
