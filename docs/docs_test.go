package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestDocIsRegisteredAndValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "/v1", parsed["basePath"])

	paths, ok := parsed["paths"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, paths, "/strategies/{type}/evaluate")
	assert.Contains(t, paths, "/assessments/{id}/entries/{title}")
}
