package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/objcgen/schema/field"
)

const userSchema = `object: User
plural: Users
manager: LCCUserManager
fields:
  - name: id
    type: string
  - name: username
    type: string
  - name: role
    type: enum:Role
fetch:
  - where: id
  - where: ""
    plural: true
save:
  - plural: false
delete:
  - where: id
`

func TestParse(t *testing.T) {
	t.Run("decodes full schema", func(t *testing.T) {
		s, err := Parse([]byte(userSchema), "user.yaml")
		require.NoError(t, err)

		assert.Equal(t, "User", s.Name)
		assert.Equal(t, "Users", s.Plural)
		assert.Equal(t, "LCCUserManager", s.Manager)
		assert.Equal(t, "user.yaml", s.Pos)
		require.Len(t, s.Fields, 3)
		assert.Equal(t, "id", s.Fields[0].Name)
		assert.Equal(t, field.TypeString, s.Fields[0].Info.Type)
		assert.Equal(t, &field.TypeInfo{Type: field.TypeEnum, Ident: "Role"}, s.Fields[2].Info)
		require.Len(t, s.Fetch, 2)
		assert.Equal(t, &Fetch{Where: "id"}, s.Fetch[0])
		assert.Equal(t, &Fetch{Where: "", Plural: true}, s.Fetch[1])
		assert.Equal(t, []*Save{{Plural: false}}, s.Save)
		assert.Equal(t, []*Delete{{Where: "id"}}, s.Delete)
	})

	t.Run("records field positions", func(t *testing.T) {
		s, err := Parse([]byte(userSchema), "user.yaml")
		require.NoError(t, err)

		pos := s.Fields[1].Position
		require.NotNil(t, pos)
		assert.Equal(t, 1, pos.Index)
		assert.Equal(t, 7, pos.Line)
		assert.Equal(t, "user.yaml:7", pos.String())
	})

	t.Run("keeps where clause verbatim", func(t *testing.T) {
		s, err := Parse([]byte("object: User\nfetch:\n  - where: \"id, name\"\n"), "u.yaml")
		require.NoError(t, err)
		assert.Equal(t, "id, name", s.Fetch[0].Where)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		_, err := Parse([]byte("object: User\nmanagr: X\n"), "u.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "u.yaml")
	})

	t.Run("rejects unknown field keys", func(t *testing.T) {
		_, err := Parse([]byte("object: User\nfields:\n  - name: id\n    typ: string\n"), "u.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "typ")
	})

	t.Run("rejects field without type", func(t *testing.T) {
		_, err := Parse([]byte("object: User\nfields:\n  - name: id\n"), "u.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing its type")
	})

	t.Run("rejects unknown field type", func(t *testing.T) {
		_, err := Parse([]byte("object: User\nfields:\n  - name: id\n    type: uuid\n"), "u.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown type "uuid"`)
	})

	t.Run("rejects missing object name", func(t *testing.T) {
		_, err := Parse([]byte("plural: Users\n"), "u.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing the object name")
	})

	t.Run("rejects empty document", func(t *testing.T) {
		_, err := Parse(nil, "u.yaml")
		require.Error(t, err)
	})

	t.Run("rejects multiple documents", func(t *testing.T) {
		_, err := Parse([]byte("object: User\n---\nobject: Group\n"), "u.yaml")
		require.Error(t, err)
	})
}

func TestParseAll(t *testing.T) {
	ss, err := ParseAll([]byte("object: User\n---\nobject: Group\n"), "all.yaml")
	require.NoError(t, err)
	require.Len(t, ss, 2)
	assert.Equal(t, "User", ss[0].Name)
	assert.Equal(t, "Group", ss[1].Name)
}

func TestConfigLoad(t *testing.T) {
	t.Run("loads directory in lexical order", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "b_user.yaml"), "object: User\n")
		writeFile(t, filepath.Join(dir, "a_group.yml"), "object: Group\n")
		writeFile(t, filepath.Join(dir, "notes.txt"), "not a schema")
		writeFile(t, filepath.Join(dir, ".hidden.yaml"), "object: Hidden\n")

		ss, err := (&Config{Path: dir}).Load()
		require.NoError(t, err)
		require.Len(t, ss, 2)
		assert.Equal(t, "Group", ss[0].Name)
		assert.Equal(t, "User", ss[1].Name)
		assert.Equal(t, filepath.Join(dir, "a_group.yml"), ss[0].Pos)
	})

	t.Run("loads single file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "user.yaml")
		writeFile(t, path, userSchema)

		ss, err := (&Config{Path: path}).Load()
		require.NoError(t, err)
		require.Len(t, ss, 1)
		assert.Equal(t, path, ss[0].Fields[0].Position.File)
	})

	t.Run("fails on empty directory", func(t *testing.T) {
		_, err := (&Config{Path: t.TempDir()}).Load()
		require.Error(t, err)
	})

	t.Run("fails on missing path", func(t *testing.T) {
		_, err := (&Config{Path: filepath.Join(t.TempDir(), "nope")}).Load()
		require.Error(t, err)
	})
}

func TestIsSchemaFile(t *testing.T) {
	assert.True(t, IsSchemaFile("user.yaml"))
	assert.True(t, IsSchemaFile("dir/user.YML"))
	assert.False(t, IsSchemaFile("user.json"))
	assert.False(t, IsSchemaFile(".user.yaml"))
}

func TestSchemaMarshal(t *testing.T) {
	s, err := Parse([]byte(userSchema), "user.yaml")
	require.NoError(t, err)

	out, err := s.Marshal()
	require.NoError(t, err)

	back, err := Parse(out, "again.yaml")
	require.NoError(t, err)
	assert.Equal(t, s.Name, back.Name)
	assert.Equal(t, s.Fetch, back.Fetch)
	require.Len(t, back.Fields, len(s.Fields))
	for i := range s.Fields {
		assert.Equal(t, s.Fields[i].Info, back.Fields[i].Info)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
