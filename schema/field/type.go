package field

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// A Type represents a field type.
type Type uint8

// List of field types.
const (
	TypeInvalid Type = iota
	TypeString
	TypeInt
	TypeInt64
	TypeBool
	TypeDouble
	TypeFloat
	TypeTime
	TypeEnum
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeString:  "string",
	TypeInt:     "int",
	TypeInt64:   "int64",
	TypeBool:    "bool",
	TypeDouble:  "double",
	TypeFloat:   "float",
	TypeTime:    "time",
	TypeEnum:    "enum",
}

// String returns the string representation of a type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// Valid reports if the given type if known type.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Numeric reports if the given type is a numeric type.
func (t Type) Numeric() bool {
	switch t {
	case TypeInt, TypeInt64, TypeDouble, TypeFloat:
		return true
	default:
		return false
	}
}

// TypeInfo holds the information regarding field type.
type TypeInfo struct {
	Type Type
	// Ident holds the enum name for TypeEnum fields.
	Ident string
}

// String returns the schema form of the type, e.g. "string" or "enum:Role".
func (t TypeInfo) String() string {
	if t.Type == TypeEnum {
		return typeNames[TypeEnum] + ":" + t.Ident
	}
	return t.Type.String()
}

// Valid reports if the type info is complete.
func (t TypeInfo) Valid() bool {
	if t.Type == TypeEnum {
		return t.Ident != ""
	}
	return t.Type.Valid()
}

// ParseType parses the schema form of a field type.
func ParseType(s string) (*TypeInfo, error) {
	s = strings.TrimSpace(s)
	name, ident, hasIdent := strings.Cut(s, ":")
	name = strings.ToLower(strings.TrimSpace(name))
	for t := TypeString; t < endTypes; t++ {
		if typeNames[t] != name {
			continue
		}
		if t != TypeEnum {
			if hasIdent {
				return nil, fmt.Errorf("field: type %q does not take an identifier", name)
			}
			return &TypeInfo{Type: t}, nil
		}
		ident = strings.TrimSpace(ident)
		if ident == "" {
			return nil, fmt.Errorf("field: enum type %q is missing its name (want enum:<Name>)", s)
		}
		return &TypeInfo{Type: TypeEnum, Ident: ident}, nil
	}
	return nil, fmt.Errorf("field: unknown type %q", s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *TypeInfo) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("line %d: field type must be a string: %w", value.Line, err)
	}
	info, err := ParseType(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*t = *info
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t TypeInfo) MarshalYAML() (any, error) {
	return t.String(), nil
}
