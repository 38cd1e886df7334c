package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    TypeInfo
		wantErr bool
	}{
		{"string", TypeInfo{Type: TypeString}, false},
		{"String", TypeInfo{Type: TypeString}, false},
		{" int ", TypeInfo{Type: TypeInt}, false},
		{"int64", TypeInfo{Type: TypeInt64}, false},
		{"bool", TypeInfo{Type: TypeBool}, false},
		{"double", TypeInfo{Type: TypeDouble}, false},
		{"float", TypeInfo{Type: TypeFloat}, false},
		{"time", TypeInfo{Type: TypeTime}, false},
		{"enum:Role", TypeInfo{Type: TypeEnum, Ident: "Role"}, false},
		{"ENUM: Role", TypeInfo{Type: TypeEnum, Ident: "Role"}, false},
		{"enum", TypeInfo{}, true},
		{"enum:", TypeInfo{}, true},
		{"string:Name", TypeInfo{}, true},
		{"uuid", TypeInfo{}, true},
		{"invalid", TypeInfo{}, true},
		{"", TypeInfo{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseType(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "string", TypeString.String())
	assert.Equal(t, "enum", TypeEnum.String())
	assert.Equal(t, "invalid", Type(200).String())
	assert.Equal(t, "enum:Role", TypeInfo{Type: TypeEnum, Ident: "Role"}.String())
	assert.Equal(t, "time", TypeInfo{Type: TypeTime}.String())
}

func TestTypeValid(t *testing.T) {
	assert.False(t, TypeInvalid.Valid())
	assert.True(t, TypeBool.Valid())
	assert.False(t, endTypes.Valid())
	assert.True(t, TypeInfo{Type: TypeString}.Valid())
	assert.False(t, TypeInfo{Type: TypeEnum}.Valid())
	assert.True(t, TypeInfo{Type: TypeEnum, Ident: "Role"}.Valid())
}

func TestTypeNumeric(t *testing.T) {
	assert.True(t, TypeInt.Numeric())
	assert.True(t, TypeDouble.Numeric())
	assert.False(t, TypeString.Numeric())
	assert.False(t, TypeTime.Numeric())
}

func TestTypeInfoYAML(t *testing.T) {
	t.Run("decodes string form", func(t *testing.T) {
		var v struct {
			Type TypeInfo `yaml:"type"`
		}
		require.NoError(t, yaml.Unmarshal([]byte("type: enum:Status\n"), &v))
		assert.Equal(t, TypeInfo{Type: TypeEnum, Ident: "Status"}, v.Type)
	})

	t.Run("reports line of unknown type", func(t *testing.T) {
		var v struct {
			Type TypeInfo `yaml:"type"`
		}
		err := yaml.Unmarshal([]byte("\ntype: decimal\n"), &v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
		assert.Contains(t, err.Error(), `unknown type "decimal"`)
	})

	t.Run("encodes string form", func(t *testing.T) {
		out, err := yaml.Marshal(struct {
			Type TypeInfo `yaml:"type"`
		}{TypeInfo{Type: TypeEnum, Ident: "Role"}})
		require.NoError(t, err)
		assert.Contains(t, string(out), "enum:Role")
	})
}
