package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"api-doc-parser/internal/diag"
)

// decode parses a JSON literal the way the normalizer hands objects to
// the validator
func decode(t *testing.T, literal string) map[string]interface{} {
	t.Helper()
	var obj map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(literal), &obj))
	return obj
}

const validCatalog = `{
	"endpoints": [
		{
			"path": "/users",
			"method": "get",
			"purpose": "List all users",
			"parameters": {
				"query": {"page": "integer, 1-based page number"}
			},
			"responses": {
				"success": {"users": "array of User"},
				"error": [{"code": 401, "example": "unauthorized"}]
			}
		},
		{
			"path": "/sessions",
			"method": "POST",
			"purpose": "Log in and create a session",
			"responses": {"success": {"token": "string"}},
			"sessionRequired": false
		}
	],
	"dataModels": {
		"User": {"id": "integer", "name": "string"}
	},
	"baseUrl": "https://api.example.com",
	"commonPatterns": {
		"pagination": "page and per_page query parameters",
		"errorHandling": ["errors are JSON objects with a message field"]
	}
}`

func TestCatalogValid(t *testing.T) {
	catalog, warnings, err := Catalog(decode(t, validCatalog))
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.Len(t, catalog.Endpoints, 2)
	assert.Equal(t, "/users", catalog.Endpoints[0].Path)
	assert.Equal(t, "GET", catalog.Endpoints[0].Method, "method must be uppercased")
	assert.Equal(t, "List all users", catalog.Endpoints[0].Purpose)
	require.NotNil(t, catalog.Endpoints[0].Parameters)
	assert.Contains(t, catalog.Endpoints[0].Parameters.Query, "page")
	require.Len(t, catalog.Endpoints[0].Responses.Error, 1)
	assert.Equal(t, 401, catalog.Endpoints[0].Responses.Error[0].Code)

	assert.Equal(t, "/sessions", catalog.Endpoints[1].Path, "extraction order must be preserved")
	assert.Contains(t, catalog.DataModels, "User")
	assert.Equal(t, "https://api.example.com", catalog.BaseURL)
	require.NotNil(t, catalog.CommonPatterns)
	assert.Equal(t, "page and per_page query parameters", catalog.CommonPatterns.Pagination)
	assert.Len(t, catalog.CommonPatterns.ErrorHandling, 1)
}

func TestCatalogTopLevelFailures(t *testing.T) {
	tests := []struct {
		name     string
		literal  string
		wantCode diag.Code
	}{
		{"missing endpoints", `{"dataModels":{}}`, diag.CodeMissingEndpointsField},
		{"endpoints not array", `{"endpoints":{"path":"/x"}}`, diag.CodeEndpointsNotArray},
		{"empty endpoints", `{"endpoints":[],"dataModels":{},"commonPatterns":{}}`, diag.CodeNoEndpointsFound},
		{"dataModels not object", `{"endpoints":[{"path":"/x","method":"GET","purpose":"test","responses":{"success":{}}}],"dataModels":[1]}`, diag.CodeInvalidDataModels},
		{"commonPatterns not object", `{"endpoints":[{"path":"/x","method":"GET","purpose":"test","responses":{"success":{}}}],"commonPatterns":[1]}`, diag.CodeInvalidCommonPatterns},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Catalog(decode(t, tt.literal))
			require.Error(t, err)
			d := diag.As(err)
			require.NotNil(t, d)
			assert.Equal(t, tt.wantCode, d.Code)
		})
	}
}

func TestCatalogNil(t *testing.T) {
	_, _, err := Catalog(nil)
	d := diag.As(err)
	require.NotNil(t, d)
	assert.Equal(t, diag.CodeInvalidCatalogShape, d.Code)
}

func TestEndpointFailures(t *testing.T) {
	wrap := func(endpoint string) string {
		return `{"endpoints":[` + endpoint + `]}`
	}

	tests := []struct {
		name     string
		endpoint string
		wantCode diag.Code
	}{
		{"not an object", `"GET /users"`, diag.CodeInvalidEndpointShape},
		{"missing path", `{"method":"GET","purpose":"test","responses":{"success":{}}}`, diag.CodeMissingEndpointPath},
		{"path without slash", `{"path":"users","method":"GET","purpose":"test","responses":{"success":{}}}`, diag.CodeInvalidEndpointPath},
		{"path not string", `{"path":42,"method":"GET","purpose":"test","responses":{"success":{}}}`, diag.CodeInvalidEndpointPath},
		{"missing method", `{"path":"/x","purpose":"test","responses":{"success":{}}}`, diag.CodeMissingEndpointMethod},
		{"unknown method", `{"path":"/x","method":"FETCH","purpose":"test","responses":{"success":{}}}`, diag.CodeUnsupportedHttpMethod},
		{"missing purpose", `{"path":"/x","method":"GET","responses":{"success":{}}}`, diag.CodeMissingEndpointPurpose},
		{"purpose not string", `{"path":"/x","method":"GET","purpose":7,"responses":{"success":{}}}`, diag.CodeMissingEndpointPurpose},
		{"purpose too short", `{"path":"/x","method":"GET","purpose":" ab ","responses":{"success":{}}}`, diag.CodePurposeTooShort},
		{"missing responses", `{"path":"/x","method":"GET","purpose":"test"}`, diag.CodeMissingResponses},
		{"responses is array", `{"path":"/x","method":"GET","purpose":"test","responses":[{"success":{}}]}`, diag.CodeInvalidResponsesShape},
		{"missing success", `{"path":"/x","method":"GET","purpose":"test","responses":{"error":[]}}`, diag.CodeMissingSuccessResponse},
		{"parameters not object", `{"path":"/x","method":"GET","purpose":"test","parameters":"none","responses":{"success":{}}}`, diag.CodeInvalidParametersShape},
		{"parameter section not object", `{"path":"/x","method":"GET","purpose":"test","parameters":{"query":"page"},"responses":{"success":{}}}`, diag.CodeInvalidParametersShape},
		{"session flag not boolean", `{"path":"/x","method":"GET","purpose":"test","responses":{"success":{}},"sessionRequired":"yes"}`, diag.CodeInvalidSessionFlag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Catalog(decode(t, wrap(tt.endpoint)))
			require.Error(t, err)
			d := diag.As(err)
			require.NotNil(t, d)
			assert.Equal(t, tt.wantCode, d.Code)
			require.NotNil(t, d.Metadata.EndpointIndex, "endpoint failures must carry the index")
			assert.Equal(t, 0, *d.Metadata.EndpointIndex)
		})
	}
}

func TestUnsupportedMethodMetadata(t *testing.T) {
	_, _, err := Catalog(decode(t, `{"endpoints":[{"path":"/x","method":"FETCH","purpose":"test","responses":{"success":{}}}]}`))
	d := diag.As(err)
	require.NotNil(t, d)
	assert.Equal(t, diag.CodeUnsupportedHttpMethod, d.Code)
	assert.Equal(t, []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}, d.Metadata.AllowedMethods)
}

func TestEndpointIndexInLaterEntries(t *testing.T) {
	literal := `{"endpoints":[
		{"path":"/a","method":"GET","purpose":"first endpoint","responses":{"success":{}}},
		{"path":"/b","method":"POST","purpose":"second endpoint","responses":{"success":{}}},
		{"path":"/c","method":"GET","responses":{"success":{}}}
	]}`
	_, _, err := Catalog(decode(t, literal))
	d := diag.As(err)
	require.NotNil(t, d)
	assert.Equal(t, diag.CodeMissingEndpointPurpose, d.Code)
	require.NotNil(t, d.Metadata.EndpointIndex)
	assert.Equal(t, 2, *d.Metadata.EndpointIndex)
}

func TestWarnings(t *testing.T) {
	literal := `{"endpoints":[{
		"path": "/x",
		"method": "GET",
		"purpose": "test endpoint",
		"parameters": {"query": {"q": "string"}, "header": {"X-Trace": "string"}},
		"responses": {"success": {}, "error": {"code": 500}}
	}],
	"dataModels": {"Good": {"id": "integer"}, "Bad": "not a field map"}}`

	catalog, warnings, err := Catalog(decode(t, literal))
	require.NoError(t, err)

	assert.Contains(t, catalog.DataModels, "Good")
	assert.NotContains(t, catalog.DataModels, "Bad")

	joined := ""
	for _, w := range warnings {
		joined += w + "\n"
	}
	assert.Contains(t, joined, `"header"`, "unrecognized parameter sections warn")
	assert.Contains(t, joined, "responses.error", "non-list error responses warn")
	assert.Contains(t, joined, `"Bad"`, "skipped data models warn")
}

func TestErrorHandlingWarnings(t *testing.T) {
	const endpoint = `{"path":"/x","method":"GET","purpose":"test endpoint","responses":{"success":{}}}`

	t.Run("non-array errorHandling", func(t *testing.T) {
		literal := `{"endpoints":[` + endpoint + `],"commonPatterns":{"errorHandling":"errors are JSON"}}`
		catalog, warnings, err := Catalog(decode(t, literal))
		require.NoError(t, err)
		require.NotNil(t, catalog.CommonPatterns)
		assert.Empty(t, catalog.CommonPatterns.ErrorHandling)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], `non-array "commonPatterns.errorHandling"`)
		assert.Contains(t, warnings[0], "string")
	})

	t.Run("non-string entries skipped", func(t *testing.T) {
		literal := `{"endpoints":[` + endpoint + `],"commonPatterns":{"errorHandling":["message field", 42, {"nested": true}]}}`
		catalog, warnings, err := Catalog(decode(t, literal))
		require.NoError(t, err)
		require.NotNil(t, catalog.CommonPatterns)
		assert.Equal(t, []string{"message field"}, catalog.CommonPatterns.ErrorHandling)
		require.Len(t, warnings, 2)
		assert.Contains(t, warnings[0], `non-string "commonPatterns.errorHandling" entry`)
		assert.Contains(t, warnings[0], "number")
		assert.Contains(t, warnings[1], "object")
	})
}
