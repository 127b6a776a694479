package reporter

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"api-doc-parser/internal/types"
)

func catalogOf(endpoints ...types.EndpointDescriptor) *types.EndpointCatalog {
	return &types.EndpointCatalog{Endpoints: endpoints}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		catalog *types.EndpointCatalog
		want    string
	}{
		{
			name: "two endpoints two methods",
			catalog: catalogOf(
				types.EndpointDescriptor{Path: "/a", Method: "GET", Purpose: "read a"},
				types.EndpointDescriptor{Path: "/b", Method: "POST", Purpose: "write b"},
			),
			want: "Parsed 2 endpoints (GET, POST) with 0 data models. 0 endpoints require session management.",
		},
		{
			name: "methods deduplicated in first-seen order",
			catalog: catalogOf(
				types.EndpointDescriptor{Path: "/a", Method: "POST", Purpose: "write a"},
				types.EndpointDescriptor{Path: "/b", Method: "GET", Purpose: "read b"},
				types.EndpointDescriptor{Path: "/c", Method: "POST", Purpose: "write c"},
			),
			want: "Parsed 3 endpoints (POST, GET) with 0 data models. 0 endpoints require session management.",
		},
		{
			name: "session and data model counts",
			catalog: &types.EndpointCatalog{
				Endpoints: []types.EndpointDescriptor{
					{Path: "/login", Method: "POST", Purpose: "log in"},
					{Path: "/me", Method: "GET", Purpose: "profile", SessionRequired: true},
				},
				DataModels: map[string]map[string]interface{}{
					"User":    {"id": "integer"},
					"Session": {"token": "string"},
				},
			},
			want: "Parsed 2 endpoints (POST, GET) with 2 data models. 1 endpoints require session management.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.catalog))
		})
	}
}

func TestWriteCatalogReport(t *testing.T) {
	dir := t.TempDir()
	catalog := catalogOf(types.EndpointDescriptor{Path: "/a", Method: "GET", Purpose: "read a"})

	path, err := NewReporter(dir).WriteCatalogReport("inv-1", "docs/api.md", catalog, []string{"a warning"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "inv-1", report.InvocationID)
	assert.Equal(t, "docs/api.md", report.SourceFile)
	assert.Equal(t, Summarize(catalog), report.Summary)
	assert.Equal(t, []string{"a warning"}, report.Warnings)
	require.NotNil(t, report.Catalog)
	require.Len(t, report.Catalog.Endpoints, 1)
	assert.Equal(t, "/a", report.Catalog.Endpoints[0].Path)
}
