package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/objcgen/compiler/load"
	"github.com/syssam/objcgen/schema/field"
)

func userSchema() *load.Schema {
	return &load.Schema{
		Name: "User",
		Pos:  "user.yaml",
		Fields: []*load.Field{
			{Name: "id", Info: &field.TypeInfo{Type: field.TypeString}, Position: &load.Position{Index: 0, Line: 4, File: "user.yaml"}},
			{Name: "username", Info: &field.TypeInfo{Type: field.TypeString}},
			{Name: "role", Info: &field.TypeInfo{Type: field.TypeEnum, Ident: "Role"}},
		},
		Fetch: []*load.Fetch{
			{Where: "id"},
			{Where: "", Plural: true},
		},
		Save:   []*load.Save{{Plural: true}},
		Delete: []*load.Delete{{Where: "id"}},
	}
}

func TestNewType(t *testing.T) {
	t.Run("derives defaults", func(t *testing.T) {
		typ, err := NewType(DefaultConfig(), userSchema())
		require.NoError(t, err)

		assert.Equal(t, "User", typ.Name)
		assert.Equal(t, "Users", typ.Plural)
		assert.Equal(t, "LCCUserManager", typ.Manager)
		assert.Equal(t, "user.yaml", typ.Pos())
		require.Len(t, typ.Fields, 3)
		assert.Equal(t, []*FetchCommand{{Where: "id"}, {Plural: true}}, typ.Fetches)
		assert.Equal(t, []*SaveCommand{{Plural: true}}, typ.Saves)
		assert.Equal(t, []*DeleteCommand{{Where: "id"}}, typ.Deletes)
	})

	t.Run("keeps explicit names", func(t *testing.T) {
		s := userSchema()
		s.Plural = "People"
		s.Manager = "UserStore"

		typ, err := NewType(DefaultConfig(), s)
		require.NoError(t, err)
		assert.Equal(t, "People", typ.Plural)
		assert.Equal(t, "UserStore", typ.Manager)
	})

	t.Run("manager follows class prefix", func(t *testing.T) {
		c := MustNewConfig(WithClassPrefix("ABC"))
		typ, err := NewType(c, userSchema())
		require.NoError(t, err)
		assert.Equal(t, "ABCUserManager", typ.Manager)
		assert.Equal(t, "ABCUser", typ.Class())
	})

	tests := []struct {
		name   string
		modify func(*load.Schema)
		errMsg string
	}{
		{
			name:   "invalid object name",
			modify: func(s *load.Schema) { s.Name = "user-item" },
			errMsg: "invalid object name",
		},
		{
			name:   "reserved object name",
			modify: func(s *load.Schema) { s.Name = "Class" },
			errMsg: "reserved word",
		},
		{
			name:   "plural equals name",
			modify: func(s *load.Schema) { s.Plural = "User" },
			errMsg: "must differ",
		},
		{
			name:   "invalid manager",
			modify: func(s *load.Schema) { s.Manager = "LCC User" },
			errMsg: "manager name",
		},
		{
			name: "duplicate field",
			modify: func(s *load.Schema) {
				s.Fields = append(s.Fields, &load.Field{Name: "id", Info: &field.TypeInfo{Type: field.TypeInt}})
			},
			errMsg: `field "id" redeclared`,
		},
		{
			name: "field without type",
			modify: func(s *load.Schema) {
				s.Fields = append(s.Fields, &load.Field{Name: "age"})
			},
			errMsg: "invalid type for field age",
		},
		{
			name: "field name not an identifier",
			modify: func(s *load.Schema) {
				s.Fields = append(s.Fields, &load.Field{Name: "first name", Info: &field.TypeInfo{Type: field.TypeString}})
			},
			errMsg: "not an identifier",
		},
		{
			name: "enum without identifier",
			modify: func(s *load.Schema) {
				s.Fields = append(s.Fields, &load.Field{Name: "kind", Info: &field.TypeInfo{Type: field.TypeEnum}})
			},
			errMsg: "invalid type for field kind",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := userSchema()
			tt.modify(s)

			_, err := NewType(DefaultConfig(), s)
			require.Error(t, err)
			assert.True(t, IsSchemaError(err))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestTypeNames(t *testing.T) {
	typ, err := NewType(DefaultConfig(), userSchema())
	require.NoError(t, err)

	assert.Equal(t, "LCCUser", typ.Class())
	assert.Equal(t, "lesschat::User", typ.NativeClass())
}

func TestTypeFieldBy(t *testing.T) {
	typ, err := NewType(DefaultConfig(), userSchema())
	require.NoError(t, err)

	f, ok := typ.FieldBy("username")
	require.True(t, ok)
	assert.Equal(t, "username", f.Name)
	assert.Same(t, typ, f.Owner())

	_, ok = typ.FieldBy("email")
	assert.False(t, ok)

	_, ok = typ.FieldBy(" id")
	assert.False(t, ok)
}

func TestFieldEnum(t *testing.T) {
	typ, err := NewType(DefaultConfig(), userSchema())
	require.NoError(t, err)

	role, ok := typ.FieldBy("role")
	require.True(t, ok)
	assert.True(t, role.IsEnum())
	assert.Equal(t, "LCCUserRole", role.EnumClass())
	assert.Equal(t, "lesschat::User::Role", role.NativeEnum())

	id, _ := typ.FieldBy("id")
	assert.False(t, id.IsEnum())
	assert.Empty(t, id.EnumClass())
	assert.Empty(t, id.NativeEnum())
}

func TestValidSchemaName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"User", false},
		{"UserGroup", false},
		{"", true},
		{"../User", true},
		{".User", true},
		{"2User", true},
		{"id", true},
		{"NSObject", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidSchemaName(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
