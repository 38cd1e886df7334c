package gen

import (
	"fmt"

	"github.com/syssam/objcgen/compiler/load"
)

// The Graph holds the nodes/object types loaded from the schemas, along with
// the codegen configuration.
type Graph struct {
	*Config
	// Nodes are list of object types in the graph, in schema order.
	Nodes []*Type
	// Schemas holds the raw interfaces for the loaded schemas.
	Schemas []*load.Schema
}

// NewGraph creates a new Graph for the code generation from the given schema
// definitions. It fails if one of the schemas is invalid.
func NewGraph(c *Config, schemas ...*load.Schema) (*Graph, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "missing codegen config")
	}
	g := &Graph{
		Config:  c,
		Nodes:   make([]*Type, 0, len(schemas)),
		Schemas: schemas,
	}
	names := make(map[string]*Type, len(schemas))
	managers := make(map[string]*Type, len(schemas))
	for _, s := range schemas {
		t, err := NewType(c, s)
		if err != nil {
			return nil, err
		}
		if prev, ok := names[t.Name]; ok {
			return nil, &SchemaError{
				Type:    t.Name,
				Pos:     s.Pos,
				Message: fmt.Sprintf("object redeclared (first declared in %s)", prev.Pos()),
			}
		}
		if prev, ok := managers[t.Manager]; ok {
			return nil, &SchemaError{
				Type:    t.Name,
				Pos:     s.Pos,
				Message: fmt.Sprintf("manager %q already generated for type %q", t.Manager, prev.Name),
			}
		}
		names[t.Name] = t
		managers[t.Manager] = t
		g.Nodes = append(g.Nodes, t)
	}
	return g, nil
}

// Type returns the node with the given object name.
func (g *Graph) Type(name string) (*Type, bool) {
	for _, n := range g.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return nil, false
}

// Check reports problems that do not stop generation but degrade the output:
// where clauses naming unknown fields, singular fetches without a where
// clause and fetch commands that would produce the same selector. It returns
// the number of reported problems.
func (g *Graph) Check(w Warner) int {
	n := 0
	for _, t := range g.Nodes {
		seen := make(map[FetchCommand]struct{}, len(t.Fetches))
		for _, c := range t.Fetches {
			if !c.Plural && len(c.By()) == 0 {
				w.Warn("Singular often comes with at least one by parameter", "type", t.Name, "command", c.String())
				n++
			}
			for _, name := range c.By() {
				if _, ok := t.FieldBy(name); !ok {
					w.Warn(fmt.Sprintf(`Unknown "%s" in "by"`, name), "type", t.Name, "command", c.String())
					n++
				}
			}
			if _, ok := seen[*c]; ok {
				w.Warn("duplicate fetch command", "type", t.Name, "command", c.String())
				n++
			}
			seen[*c] = struct{}{}
		}
		for _, c := range t.Deletes {
			for _, name := range c.By() {
				if _, ok := t.FieldBy(name); !ok {
					w.Warn(fmt.Sprintf(`Unknown "%s" in "by"`, name), "type", t.Name, "command", c.String())
					n++
				}
			}
		}
	}
	return n
}
