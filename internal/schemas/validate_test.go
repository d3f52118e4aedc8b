package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = []byte(`{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"count": {"type": "integer", "minimum": 0}
	}
}`)

func TestValidateBytes_ValidDocument(t *testing.T) {
	err := ValidateBytes(testSchema, []byte(`{"name": "taxonomy", "count": 3}`))

	assert.NoError(t, err)
}

func TestValidateBytes_InvalidDocument(t *testing.T) {
	err := ValidateBytes(testSchema, []byte(`{"count": -1}`))

	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateBytes_BrokenSchema(t *testing.T) {
	err := ValidateBytes([]byte(`{not json`), []byte(`{}`))

	require.Error(t, err)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateFileBytes_MissingSchemaFile(t *testing.T) {
	err := ValidateFileBytes("testdata/does-not-exist.schema.json", []byte(`{}`))

	require.Error(t, err)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestResolveSchemaPath_FindsRepoSchemas(t *testing.T) {
	// Tests run from internal/schemas; the repo schema dir is two levels up.
	path := ResolveSchemaPath("schemas/taxonomy.schema.json")

	assert.NotEmpty(t, path)
}

func TestResolveSchemaPath_MissingFile(t *testing.T) {
	path := ResolveSchemaPath("schemas/never-existed.schema.json")

	assert.Empty(t, path)
}

func TestValidationError_MessageListsFields(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "profiles.0.role", Message: "is required"},
	}}

	assert.Contains(t, err.Error(), "profiles.0.role")
	assert.Contains(t, err.Error(), "is required")
}

func TestSchemaLoadError_Unwrap(t *testing.T) {
	cause := errors.New("disk failure")
	err := &SchemaLoadError{Path: "x.json", Message: "cannot read schema", Cause: cause}

	assert.ErrorIs(t, err, cause)
}
