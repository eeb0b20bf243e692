// Package schema contains the common graph model shared by all readers
// and emitters: entities, their fields, and typed relationships.
package schema

// Cardinality governs a relationship field's multiplicity and the arrow
// style it is rendered with.
type Cardinality string

const (
	One      Cardinality = "one"
	Many     Cardinality = "many"
	Optional Cardinality = "optional"
)

// ParseCardinality maps a source-level marker to a Cardinality.
// The second return value reports whether the marker is recognized.
func ParseCardinality(marker string) (Cardinality, bool) {
	switch Cardinality(marker) {
	case One, Many, Optional:
		return Cardinality(marker), true
	default:
		return "", false
	}
}

// Primitive type tags. A field whose type is anything else refers to
// another entity and is rendered as an edge rather than an attribute row.
const (
	TypeString = "string"
	TypeInt    = "int"
	TypeFloat  = "float"
	TypeBool   = "bool"
	TypeDate   = "date"
)

// IsPrimitive reports whether typeName is one of the primitive type tags.
func IsPrimitive(typeName string) bool {
	switch typeName {
	case TypeString, TypeInt, TypeFloat, TypeBool, TypeDate:
		return true
	default:
		return false
	}
}

// Field belongs to exactly one entity. Type is either a primitive tag or
// the name of another entity in the same graph.
type Field struct {
	Name        string
	Type        string
	Cardinality Cardinality

	// Relationship marks fields whose type refers to another entity.
	Relationship bool

	// IsA marks relationship fields that stand in for additional parents
	// a single-parent model cannot hold. They render with the same arrow
	// style as the Parent reference.
	IsA bool
}

// Entity represents a class, table, or record type.
type Entity struct {
	Name   string
	Parent string // empty when the entity has no parent
	Fields []Field
}

// FindField returns the field with the given name, or nil.
func (e *Entity) FindField(name string) *Field {
	for i := range e.Fields {
		if e.Fields[i].Name == name {
			return &e.Fields[i]
		}
	}
	return nil
}
