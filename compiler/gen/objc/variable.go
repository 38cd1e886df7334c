package objc

import (
	"fmt"

	"github.com/syssam/objcgen/compiler/gen"
	"github.com/syssam/objcgen/schema/field"
)

// Variable describes one object field as seen by the Objective-C layer.
type Variable interface {
	// Name is the field name used in where clauses, e.g. "user_id".
	Name() string
	// Parameter is the selector piece, e.g. "userId:(NSString *)userId".
	Parameter() string
	// TitleName is the name used in native method names, e.g. "UserId".
	TitleName() string
	// CastToNative converts the parameter to its native type,
	// e.g. "[userId UTF8String]".
	CastToNative() string
}

// Var is the Variable implementation used by the generator.
type Var struct {
	name     string
	objcType string
	cast     string
}

var _ Variable = (*Var)(nil)

// NewVar returns a Var with the given Objective-C type. cast is a format
// string with a single %s verb receiving the parameter name, e.g.
// "[%s UTF8String]".
func NewVar(name, objcType, cast string) *Var {
	return &Var{name: name, objcType: objcType, cast: cast}
}

// VarOf maps a schema field to its Objective-C variable.
func VarOf(f *gen.Field) (*Var, error) {
	if f.Type == nil {
		return nil, fmt.Errorf("objc: field %q has no type", f.Name)
	}
	switch f.Type.Type {
	case field.TypeString:
		return NewVar(f.Name, "NSString *", "[%s UTF8String]"), nil
	case field.TypeInt:
		return NewVar(f.Name, "NSInteger", "static_cast<int>(%s)"), nil
	case field.TypeInt64:
		return NewVar(f.Name, "int64_t", "%s"), nil
	case field.TypeBool:
		return NewVar(f.Name, "BOOL", "%s"), nil
	case field.TypeDouble:
		return NewVar(f.Name, "double", "%s"), nil
	case field.TypeFloat:
		return NewVar(f.Name, "float", "%s"), nil
	case field.TypeTime:
		return NewVar(f.Name, "NSTimeInterval", "static_cast<time_t>(%s)"), nil
	case field.TypeEnum:
		if f.Owner() == nil {
			return nil, fmt.Errorf("objc: enum field %q has no owner type", f.Name)
		}
		return NewVar(f.Name, f.EnumClass(), "static_cast<"+f.NativeEnum()+">(%s)"), nil
	default:
		return nil, fmt.Errorf("objc: unsupported type %s for field %q", f.Type, f.Name)
	}
}

// VarsOf maps all fields of t.
func VarsOf(t *gen.Type) ([]Variable, error) {
	vars := make([]Variable, 0, len(t.Fields))
	for _, f := range t.Fields {
		v, err := VarOf(f)
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}
	return vars, nil
}

// Name implements Variable.
func (v *Var) Name() string { return v.name }

// Ident returns the camel-cased parameter name.
func (v *Var) Ident() string { return gen.Camel(v.name) }

// Type returns the Objective-C type of the variable.
func (v *Var) Type() string { return v.objcType }

// Parameter implements Variable.
func (v *Var) Parameter() string {
	ident := v.Ident()
	return ident + ":(" + v.objcType + ")" + ident
}

// TitleName implements Variable.
func (v *Var) TitleName() string { return gen.Title(v.name) }

// CastToNative implements Variable.
func (v *Var) CastToNative() string { return fmt.Sprintf(v.cast, v.Ident()) }
