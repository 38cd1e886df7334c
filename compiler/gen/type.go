package gen

import (
	"fmt"
	"strings"

	"github.com/syssam/objcgen/compiler/load"
	"github.com/syssam/objcgen/schema/field"
)

// The following types and their exported methods are used by the generators
// to render the managers.
type (
	// Type represents one object type in the graph, the fields it holds and
	// the commands its manager exposes.
	Type struct {
		*Config
		schema *load.Schema
		// Name holds the singular object name, e.g. "User".
		Name string
		// Plural holds the plural object name, e.g. "Users".
		Plural string
		// Manager holds the Objective-C manager class name.
		Manager string
		// Comment is copied into the generated header.
		Comment string
		// Fields holds all fields of this type, in schema order.
		Fields []*Field
		fields map[string]*Field
		// Fetches holds the fetch commands, in schema order.
		Fetches []*FetchCommand
		// Saves holds the save commands.
		Saves []*SaveCommand
		// Deletes holds the delete commands.
		Deletes []*DeleteCommand
	}

	// Field holds the information of a type field used by the generators.
	Field struct {
		typ *Type
		// Name is the field name as declared in the schema.
		Name string
		// Type holds the type information of the field.
		Type *field.TypeInfo
		// Comment of the field.
		Comment string
		// Position info of the field.
		Position *load.Position
	}
)

// NewType creates a new type and its fields from the given schema.
func NewType(c *Config, schema *load.Schema) (*Type, error) {
	if err := ValidSchemaName(schema.Name); err != nil {
		return nil, &SchemaError{Type: schema.Name, Pos: schema.Pos, Message: "invalid object name", Cause: err}
	}
	typ := &Type{
		Config:  c,
		schema:  schema,
		Name:    schema.Name,
		Plural:  schema.Plural,
		Manager: schema.Manager,
		Comment: schema.Comment,
		Fields:  make([]*Field, 0, len(schema.Fields)),
		fields:  make(map[string]*Field, len(schema.Fields)),
	}
	if typ.Plural == "" {
		typ.Plural = Plural(typ.Name)
	}
	if typ.Manager == "" {
		typ.Manager = c.ClassPrefix + typ.Name + "Manager"
	}
	switch {
	case !IsIdent(typ.Plural):
		return nil, &SchemaError{Type: typ.Name, Pos: schema.Pos, Message: fmt.Sprintf("plural name %q is not an identifier", typ.Plural)}
	case typ.Plural == typ.Name:
		return nil, &SchemaError{Type: typ.Name, Pos: schema.Pos, Message: "plural name must differ from the object name"}
	case !IsIdent(typ.Manager):
		return nil, &SchemaError{Type: typ.Name, Pos: schema.Pos, Message: fmt.Sprintf("manager name %q is not an identifier", typ.Manager)}
	}
	for _, f := range schema.Fields {
		tf := &Field{
			typ:      typ,
			Name:     f.Name,
			Type:     f.Info,
			Comment:  f.Comment,
			Position: f.Position,
		}
		if err := typ.checkField(f); err != nil {
			return nil, &SchemaError{Type: typ.Name, Field: f.Name, Pos: f.Position.String(), Message: err.Error()}
		}
		typ.Fields = append(typ.Fields, tf)
		typ.fields[f.Name] = tf
	}
	for _, f := range schema.Fetch {
		typ.Fetches = append(typ.Fetches, &FetchCommand{Where: f.Where, Plural: f.Plural})
	}
	for _, s := range schema.Save {
		typ.Saves = append(typ.Saves, &SaveCommand{Plural: s.Plural})
	}
	for _, d := range schema.Delete {
		typ.Deletes = append(typ.Deletes, &DeleteCommand{Where: d.Where, Plural: d.Plural})
	}
	return typ, nil
}

// checkField checks the schema field.
func (t *Type) checkField(f *load.Field) (err error) {
	switch {
	case f.Name == "":
		err = fmt.Errorf("field name cannot be empty")
	case !IsIdent(f.Name):
		err = fmt.Errorf("field name %q is not an identifier", f.Name)
	case f.Info == nil || !f.Info.Valid():
		err = fmt.Errorf("invalid type for field %s", f.Name)
	case t.fields[f.Name] != nil:
		err = fmt.Errorf("field %q redeclared for type %q", f.Name, t.Name)
	case f.Info.Type == field.TypeEnum && !IsIdent(f.Info.Ident):
		err = fmt.Errorf("enum type %q of field %q is not an identifier", f.Info.Ident, f.Name)
	}
	return err
}

// Class returns the Objective-C class of the object, e.g. "LCCUser".
func (t Type) Class() string {
	return t.ClassPrefix + t.Name
}

// NativeClass returns the qualified C++ class, e.g. "lesschat::User".
func (t Type) NativeClass() string {
	return t.Namespace + "::" + t.Name
}

// Pos returns the source position of the schema, if known.
func (t Type) Pos() string {
	if t.schema != nil {
		return t.schema.Pos
	}
	return ""
}

// FieldBy returns the field with the given name.
func (t Type) FieldBy(name string) (*Field, bool) {
	f, ok := t.fields[name]
	return f, ok
}

// ValidSchemaName will determine if a name is going to conflict with any
// reserved word or contains unsafe characters.
func ValidSchemaName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("schema name cannot be empty")
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("schema name %q contains path separator characters", name)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("schema name %q cannot start with a dot", name)
	case !IsIdent(name):
		return fmt.Errorf("schema name %q is not a valid identifier", name)
	}
	if _, ok := reserved[name]; ok {
		return fmt.Errorf("schema name %q conflicts with a reserved word", name)
	}
	return nil
}

// reserved holds Objective-C and C++ words that cannot name an object.
var reserved = map[string]struct{}{
	"BOOL": {}, "Class": {}, "NSObject": {}, "SEL": {}, "IMP": {},
	"id": {}, "nil": {}, "self": {}, "super": {},
	"auto": {}, "bool": {}, "char": {}, "class": {}, "const": {}, "delete": {},
	"double": {}, "enum": {}, "float": {}, "int": {}, "long": {}, "namespace": {},
	"new": {}, "operator": {}, "short": {}, "signed": {}, "static": {}, "struct": {},
	"template": {}, "this": {}, "typedef": {}, "union": {}, "unsigned": {}, "void": {},
}

// Owner returns the type holding the field.
func (f Field) Owner() *Type { return f.typ }

// IsEnum reports whether the field is an enum field.
func (f Field) IsEnum() bool {
	return f.Type != nil && f.Type.Type == field.TypeEnum
}

// EnumClass returns the Objective-C enum type, e.g. "LCCUserRole".
// It is empty for non-enum fields.
func (f Field) EnumClass() string {
	if !f.IsEnum() || f.typ == nil {
		return ""
	}
	return f.typ.Class() + f.Type.Ident
}

// NativeEnum returns the qualified C++ enum type, e.g. "lesschat::User::Role".
// It is empty for non-enum fields.
func (f Field) NativeEnum() string {
	if !f.IsEnum() || f.typ == nil {
		return ""
	}
	return f.typ.NativeClass() + "::" + f.Type.Ident
}
