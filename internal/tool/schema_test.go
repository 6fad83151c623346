package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Path  string `json:"path" jsonschema:"description=File to read"`
	Limit int    `json:"limit,omitempty"`
}

func TestSchemaFor_RequiredAndProperties(t *testing.T) {
	schema := SchemaFor[sampleRequest]()

	require.NotNil(t, schema)
	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"path"}, schema.Required)
	assert.Empty(t, schema.Version)

	path, ok := schema.Properties.Get("path")
	require.True(t, ok)
	assert.Equal(t, "string", path.Type)
	assert.Equal(t, "File to read", path.Description)

	_, ok = schema.Properties.Get("limit")
	assert.True(t, ok)
}
