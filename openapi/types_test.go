package openapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSchemaTypeJSON(t *testing.T) {
	t.Run("single type as string", func(t *testing.T) {
		data, err := json.Marshal(TypeString("string"))
		require.NoError(t, err)
		assert.Equal(t, `"string"`, string(data))
	})

	t.Run("multiple types as array", func(t *testing.T) {
		data, err := json.Marshal(TypeArray("string", "null"))
		require.NoError(t, err)
		assert.Equal(t, `["string","null"]`, string(data))
	})

	t.Run("unset type omitted from schema", func(t *testing.T) {
		data, err := json.Marshal(&Schema{Description: "anything"})
		require.NoError(t, err)
		assert.NotContains(t, string(data), `"type"`)
	})

	t.Run("round trip", func(t *testing.T) {
		var st SchemaType
		require.NoError(t, json.Unmarshal([]byte(`["integer","null"]`), &st))
		assert.Equal(t, []string{"integer", "null"}, st.Values())

		require.NoError(t, json.Unmarshal([]byte(`"boolean"`), &st))
		assert.Equal(t, []string{"boolean"}, st.Values())
	})
}

func TestSchemaTypeYAML(t *testing.T) {
	t.Run("single type as scalar", func(t *testing.T) {
		data, err := yaml.Marshal(TypeString("string"))
		require.NoError(t, err)
		assert.Equal(t, "string\n", string(data))
	})

	t.Run("round trip", func(t *testing.T) {
		var st SchemaType
		require.NoError(t, yaml.Unmarshal([]byte("[string, \"null\"]"), &st))
		assert.Equal(t, []string{"string", "null"}, st.Values())
	})
}

func TestDocumentMarshalYAML(t *testing.T) {
	doc := Document{
		OpenAPI: "3.1.0",
		Info:    Info{Title: "Test", Version: "1.0.0"},
		Paths: map[string]*PathItem{
			"/users": {
				Get: &Operation{
					OperationID: "listUsers",
					RequestBody: &RequestBody{
						Content: map[string]*MediaType{
							"application/json": {Schema: &Schema{Ref: "#/components/schemas/User"}},
						},
					},
				},
			},
		},
	}

	data, err := yaml.Marshal(doc)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "operationId: listUsers")
	assert.Contains(t, out, "requestBody:")
	assert.NotContains(t, out, "operationid")
	assert.NotContains(t, out, "requestbody")

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "3.1.0", decoded["openapi"])
}

func TestSchemaTypeIs(t *testing.T) {
	assert.True(t, TypeString("object").Is("object"))
	assert.True(t, TypeArray("string", "null").Is("null"))
	assert.False(t, TypeString("object").Is("array"))
	assert.True(t, SchemaType{}.IsEmpty())
}
