package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"count": {"type": "integer", "minimum": 0}
	}
}`

func TestValidateJSONString_ValidDocument(t *testing.T) {
	assert.NoError(t, ValidateJSONString(testSchema, `{"name": "x", "count": 3}`))
}

func TestValidateJSONString_ReportsFieldPaths(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"count": -1}`)

	require.Error(t, err)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Errors, 2)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{broken`, `{"name": "x"}`)

	require.Error(t, err)
	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}
