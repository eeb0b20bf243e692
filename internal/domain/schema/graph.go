package schema

import "fmt"

// Graph maps entity names to entities, preserving insertion order so
// diagram output is deterministic. A graph is built once by a reader,
// validated, and read-only thereafter.
type Graph struct {
	entities map[string]*Entity
	order    []string
	frozen   bool
}

// NewGraph creates a new empty graph.
func NewGraph() *Graph {
	return &Graph{entities: make(map[string]*Entity)}
}

// Add inserts an entity. Duplicate names and additions after Validate
// are rejected.
func (g *Graph) Add(e *Entity) error {
	if g.frozen {
		return fmt.Errorf("adding entity %q: graph is frozen", e.Name)
	}
	if _, exists := g.entities[e.Name]; exists {
		return &ConflictError{Entity: e.Name}
	}
	g.entities[e.Name] = e
	g.order = append(g.order, e.Name)
	return nil
}

// Get returns the entity with the given name.
func (g *Graph) Get(name string) (*Entity, bool) {
	e, ok := g.entities[name]
	return e, ok
}

// Len returns the number of entities in the graph.
func (g *Graph) Len() int {
	return len(g.order)
}

// Entities returns all entities in insertion order.
func (g *Graph) Entities() []*Entity {
	out := make([]*Entity, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.entities[name])
	}
	return out
}

// Frozen reports whether Validate has succeeded.
func (g *Graph) Frozen() bool {
	return g.frozen
}

// Validate checks that every parent reference and every relationship
// field resolves to an entity present in the graph. Self-reference is
// allowed. It returns the first violation found and freezes the graph
// on success.
func (g *Graph) Validate() error {
	for _, name := range g.order {
		e := g.entities[name]
		if e.Parent != "" {
			if _, ok := g.entities[e.Parent]; !ok {
				return &ReferenceError{Symbol: e.Parent, Referrer: e.Name}
			}
		}
		for i := range e.Fields {
			f := &e.Fields[i]
			if !f.Relationship {
				continue
			}
			if _, ok := g.entities[f.Type]; !ok {
				return &ReferenceError{Symbol: f.Type, Referrer: e.Name}
			}
		}
	}
	g.frozen = true
	return nil
}
