package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const teamSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"level": {"type": "integer", "minimum": 1, "maximum": 100}
	},
	"required": ["name"]
}`

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.AddSchema("team.schema.json", []byte(teamSchema)))

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "valid", data: `{"name": "pikachu", "level": 50}`},
		{name: "optional field omitted", data: `{"name": "eevee"}`},
		{name: "missing required", data: `{"level": 5}`, errorMsg: "required"},
		{name: "wrong type", data: `{"name": "onix", "level": "high"}`, errorMsg: "/level"},
		{name: "out of range", data: `{"name": "onix", "level": 101}`, errorMsg: "maximum"},
		{name: "invalid JSON", data: `{"name": }`, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "team.schema.json")
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	dir := t.TempDir()

	schemaPath := filepath.Join(dir, "team.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(teamSchema), 0o644))

	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"name": "mew"}`), 0o644))
	assert.NoError(t, v.ValidateFile(good, schemaPath))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"level": 3}`), 0o644))
	assert.Error(t, v.ValidateFile(bad, schemaPath))

	assert.Error(t, v.ValidateFile(filepath.Join(dir, "missing.json"), schemaPath))
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	v := NewSchemaValidator()
	err := v.ValidateBytes([]byte(`{}`), "does-not-exist.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestSchemaValidator_BadSchema(t *testing.T) {
	v := NewSchemaValidator()
	assert.Error(t, v.AddSchema("broken.schema.json", []byte(`{"type": `)))
}
