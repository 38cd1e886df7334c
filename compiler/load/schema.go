// Package load reads object schemas from YAML files.
package load

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/syssam/objcgen/schema/field"
)

// Schema represents one object schema loaded from a YAML document.
type Schema struct {
	// Name is the singular object name, e.g. "User".
	Name string `yaml:"object"`
	// Plural is the plural object name. Derived from Name when empty.
	Plural string `yaml:"plural,omitempty"`
	// Manager is the generated manager class name. Derived when empty.
	Manager string    `yaml:"manager,omitempty"`
	Pos     string    `yaml:"-"`
	Fields  []*Field  `yaml:"fields,omitempty"`
	Fetch   []*Fetch  `yaml:"fetch,omitempty"`
	Save    []*Save   `yaml:"save,omitempty"`
	Delete  []*Delete `yaml:"delete,omitempty"`
	// Comment is copied verbatim into the generated header.
	Comment string `yaml:"comment,omitempty"`
}

// Field represents one object field.
type Field struct {
	Name     string          `yaml:"name"`
	Info     *field.TypeInfo `yaml:"type"`
	Comment  string          `yaml:"comment,omitempty"`
	Position *Position       `yaml:"-"`
}

// Position describes a position in the schema.
type Position struct {
	Index int    // Index in the field list.
	Line  int    // Line of the entry in its source file, 0 if unknown.
	File  string // Source file, empty if the schema was not read from disk.
}

// String formats the position as file:line when known.
func (p *Position) String() string {
	switch {
	case p == nil:
		return ""
	case p.File != "" && p.Line > 0:
		return fmt.Sprintf("%s:%d", p.File, p.Line)
	case p.File != "":
		return p.File
	default:
		return fmt.Sprintf("#%d", p.Index)
	}
}

// Fetch describes a "fetch by" query on the object cache.
type Fetch struct {
	Where  string `yaml:"where"`
	Plural bool   `yaml:"plural,omitempty"`
}

// Save describes a save command.
type Save struct {
	Plural bool `yaml:"plural,omitempty"`
}

// Delete describes a delete command.
type Delete struct {
	Where  string `yaml:"where,omitempty"`
	Plural bool   `yaml:"plural,omitempty"`
}

// UnmarshalYAML implements yaml.Unmarshaler and records the line of the
// field entry.
func (f *Field) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: field must be a mapping", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		switch k := n.Content[i].Value; k {
		case "name", "type", "comment":
		default:
			return fmt.Errorf("line %d: field %s not found in type load.Field", n.Content[i].Line, k)
		}
	}
	type plain Field
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	*f = Field(p)
	if f.Info == nil {
		return fmt.Errorf("line %d: field %q is missing its type", n.Line, f.Name)
	}
	f.Position = &Position{Line: n.Line}
	return nil
}

// Parse decodes a single schema document. pos names the document source and
// is used in error messages.
func Parse(data []byte, pos string) (*Schema, error) {
	schemas, err := ParseAll(data, pos)
	if err != nil {
		return nil, err
	}
	switch len(schemas) {
	case 0:
		return nil, fmt.Errorf("load: %s: empty schema document", pos)
	case 1:
		return schemas[0], nil
	default:
		return nil, fmt.Errorf("load: %s: expected one schema document, got %d", pos, len(schemas))
	}
}

// ParseAll decodes every document of a multi-document YAML stream.
func ParseAll(data []byte, pos string) ([]*Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var schemas []*Schema
	for {
		s := &Schema{}
		err := dec.Decode(s)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("load: %s: %w", pos, err)
		}
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("load: %s: schema is missing the object name", pos)
		}
		s.Pos = pos
		for i, f := range s.Fields {
			if f.Position == nil {
				f.Position = &Position{}
			}
			f.Position.Index = i
			f.Position.File = pos
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}

// Config holds the configuration for loading schemas.
type Config struct {
	// Path is either a schema file or a directory of schema files.
	Path string
}

// Load reads the schemas under the configured path. Directories are read
// non-recursively, in lexical file order.
func (c *Config) Load() ([]*Schema, error) {
	fi, err := os.Stat(c.Path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	files := []string{c.Path}
	if fi.IsDir() {
		if files, err = SchemaFiles(c.Path); err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("load: no schema files found in %s", c.Path)
		}
	}
	var schemas []*Schema
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
		ss, err := ParseAll(data, path)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, ss...)
	}
	return schemas, nil
}

// SchemaFiles lists the YAML files of dir.
func SchemaFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !IsSchemaFile(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// IsSchemaFile reports whether name looks like a schema file.
func IsSchemaFile(name string) bool {
	if strings.HasPrefix(filepath.Base(name), ".") {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// Marshal encodes the schema back to its YAML form.
func (s *Schema) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
