package gen

import (
	"fmt"
	"strings"
)

// FetchCommand describes a cache lookup exposed by a manager. Where is a
// comma-separated list of field names; an empty clause fetches without
// arguments.
type FetchCommand struct {
	Where  string
	Plural bool
}

// By returns the field names of the where clause. The clause is split on
// commas and the names are not trimmed, so "id, name" yields "id" and " name".
func (c *FetchCommand) By() []string {
	return splitWhere(c.Where)
}

// String returns a short description used in diagnostics.
func (c *FetchCommand) String() string {
	return describe("fetch", c.Where, c.Plural)
}

// SaveCommand describes a save operation. Save commands are recorded on the
// model and exposed to custom generators.
type SaveCommand struct {
	Plural bool
}

// String returns a short description used in diagnostics.
func (c *SaveCommand) String() string {
	return describe("save", "", c.Plural)
}

// DeleteCommand describes a delete operation. Like SaveCommand, it is
// recorded on the model and exposed to custom generators.
type DeleteCommand struct {
	Where  string
	Plural bool
}

// By returns the field names of the where clause.
func (c *DeleteCommand) By() []string {
	return splitWhere(c.Where)
}

// String returns a short description used in diagnostics.
func (c *DeleteCommand) String() string {
	return describe("delete", c.Where, c.Plural)
}

func splitWhere(where string) []string {
	if where == "" {
		return nil
	}
	return strings.Split(where, ",")
}

func describe(verb, where string, plural bool) string {
	s := verb
	if plural {
		s += " plural"
	}
	if where != "" {
		s += fmt.Sprintf(" by %q", where)
	}
	return s
}
