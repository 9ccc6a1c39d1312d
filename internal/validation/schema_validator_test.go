package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchemaValidator_CompilesEmbedded(t *testing.T) {
	v, err := NewSchemaValidator()
	require.NoError(t, err)

	for _, name := range []string{SchemaCharacter, SchemaItem, SchemaBio, SchemaWall} {
		assert.NoError(t, v.ValidateBytes([]byte(minimalDoc(name)), name), name)
	}
}

func minimalDoc(schema string) string {
	if schema == SchemaWall {
		return `[]`
	}
	return `{}`
}

func TestSchemaValidator_Character(t *testing.T) {
	v := MustSchemaValidator()

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name: "full record",
			data: `{"name":"Aria","owner":123,"money":10,"inv":[{"name":"potion","override":{},"count":2}],
				"inv_key":[],"fields":[["Age","20"]]}`,
		},
		{
			name: "legacy string owner and object fields",
			data: `{"owner":"123","fields":{}}`,
		},
		{
			name:      "not an object",
			data:      `[1,2]`,
			wantError: true,
			errorMsg:  "(root)",
		},
		{
			name:      "inventory entry missing item id",
			data:      `{"inv":[{"count":1}]}`,
			wantError: true,
			errorMsg:  "/inv/0",
		},
		{
			name:      "inventory not a list",
			data:      `{"inv":"potion"}`,
			wantError: true,
			errorMsg:  "/inv",
		},
		{
			name:      "invalid JSON",
			data:      `{"name": }`,
			wantError: true,
			errorMsg:  "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), SchemaCharacter)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_Wall(t *testing.T) {
	v := MustSchemaValidator()

	assert.NoError(t, v.ValidateBytes([]byte(`["hello", {"content":"hi","embed":{"title":"x"}}]`), SchemaWall))
	assert.Error(t, v.ValidateBytes([]byte(`[42]`), SchemaWall))
	assert.Error(t, v.ValidateBytes([]byte(`[{"bogus":true}]`), SchemaWall))
	assert.Error(t, v.ValidateBytes([]byte(`{"content":"hi"}`), SchemaWall))
}

func TestSchemaValidator_DecodedDocument(t *testing.T) {
	v := MustSchemaValidator()

	assert.NoError(t, v.Validate(map[string]any{"name": "Aria"}, SchemaBio))
	assert.Error(t, v.Validate(map[string]any{"name": []any{"x"}}, SchemaBio))
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	v := MustSchemaValidator()

	err := v.ValidateBytes([]byte(`{}`), "missing.schema.json")
	assert.ErrorIs(t, err, ErrUnknownSchema)
}
