// Package trafficgen renders a traffic-generator configuration template
// from a validated endpoint catalog. The template carries placeholder
// values derived from the documented parameter descriptions; operators
// review and fill it before any traffic runs.
package trafficgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"api-doc-parser/internal/types"

	"gopkg.in/yaml.v3"
)

// Template is the traffic-generator configuration shape
type Template struct {
	BaseURL   string                      `yaml:"base_url,omitempty"`
	Endpoints map[string]EndpointTemplate `yaml:"endpoints"`
}

// EndpointTemplate holds per-endpoint request material, keyed in the
// parent template by "METHOD /path"
type EndpointTemplate struct {
	Purpose         string                 `yaml:"purpose,omitempty"`
	PathParams      map[string]interface{} `yaml:"path_params,omitempty"`
	QueryParams     map[string]interface{} `yaml:"query_params,omitempty"`
	Body            map[string]interface{} `yaml:"body,omitempty"`
	Headers         map[string]string      `yaml:"headers"`
	SessionRequired bool                   `yaml:"session_required,omitempty"`
}

// BuildTemplate converts a catalog into a template value
func BuildTemplate(catalog *types.EndpointCatalog) Template {
	template := Template{
		BaseURL:   catalog.BaseURL,
		Endpoints: make(map[string]EndpointTemplate, len(catalog.Endpoints)),
	}

	for _, ep := range catalog.Endpoints {
		entry := EndpointTemplate{
			Purpose: ep.Purpose,
			Headers: map[string]string{
				"Content-Type": "application/json",
				"Accept":       "application/json",
			},
			SessionRequired: ep.SessionRequired,
		}
		if ep.Parameters != nil {
			entry.PathParams = sampleValues(ep.Parameters.Path)
			entry.QueryParams = sampleValues(ep.Parameters.Query)
			entry.Body = sampleValues(ep.Parameters.Body)
		}
		template.Endpoints[ep.Key()] = entry
	}

	return template
}

// Generator writes traffic templates to an output directory
type Generator struct {
	outputDir string
}

// NewGenerator creates a new instance of Generator
func NewGenerator(outputDir string) *Generator {
	return &Generator{
		outputDir: outputDir,
	}
}

// GenerateTemplate writes the YAML template for catalog and returns its path
func (g *Generator) GenerateTemplate(catalog *types.EndpointCatalog) (string, error) {
	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := yaml.Marshal(BuildTemplate(catalog))
	if err != nil {
		return "", fmt.Errorf("failed to marshal template: %w", err)
	}

	outputPath := filepath.Join(g.outputDir, "traffic_template.yaml")
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write template file: %w", err)
	}

	return outputPath, nil
}

func sampleValues(params map[string]interface{}) map[string]interface{} {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]interface{}, len(params))
	for name, desc := range params {
		out[name] = sampleValue(name, fmt.Sprint(desc))
	}
	return out
}

// sampleValue guesses a placeholder from the free-text parameter
// description; anything unrecognized becomes an obvious fill-me string
func sampleValue(name, description string) interface{} {
	desc := strings.ToLower(description)
	switch {
	case strings.Contains(desc, "uuid"):
		return "123e4567-e89b-12d3-a456-426614174000"
	case strings.Contains(desc, "email"):
		return "test@example.com"
	case strings.Contains(desc, "date-time") || strings.Contains(desc, "datetime") || strings.Contains(desc, "timestamp"):
		return "2024-01-01T12:00:00Z"
	case strings.Contains(desc, "date"):
		return "2024-01-01"
	case strings.Contains(desc, "url") || strings.Contains(desc, "uri"):
		return "https://example.com"
	case strings.Contains(desc, "bool"):
		return true
	case strings.Contains(desc, "int") || strings.Contains(desc, "number") || strings.Contains(desc, "numeric"):
		return 123
	case strings.Contains(desc, "float") || strings.Contains(desc, "double") || strings.Contains(desc, "decimal"):
		return 123.45
	case strings.Contains(desc, "array") || strings.Contains(desc, "list"):
		return []interface{}{"sample_item"}
	default:
		return "FILL_ME_" + name
	}
}
