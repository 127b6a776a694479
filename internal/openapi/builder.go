// Package openapi converts a validated endpoint catalog into an
// OpenAPI 3.0 document for downstream tooling.
package openapi

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"api-doc-parser/internal/types"

	"github.com/getkin/kin-openapi/openapi3"
)

// Build converts catalog into an OpenAPI document. The conversion is
// deterministic: endpoints become operations in catalog order, purpose
// becomes the operation summary, parameter descriptions become string
// parameters, and documented error codes become response entries.
func Build(catalog *types.EndpointCatalog) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Extracted API",
			Description: "Generated from natural-language API documentation",
			Version:     "0.1.0",
		},
		Paths: openapi3.NewPaths(),
	}

	if catalog.BaseURL != "" {
		doc.Servers = openapi3.Servers{&openapi3.Server{URL: catalog.BaseURL}}
	}

	for _, ep := range catalog.Endpoints {
		doc.AddOperation(ep.Path, ep.Method, buildOperation(&ep))
	}

	if len(catalog.DataModels) > 0 {
		doc.Components = &openapi3.Components{Schemas: openapi3.Schemas{}}
		for name, fields := range catalog.DataModels {
			doc.Components.Schemas[name] = buildModelSchema(fields).NewRef()
		}
	}

	return doc
}

func buildOperation(ep *types.EndpointDescriptor) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.Summary = ep.Purpose

	if ep.Parameters != nil {
		for _, name := range sortedKeys(ep.Parameters.Query) {
			op.AddParameter(describedParameter(openapi3.NewQueryParameter(name), ep.Parameters.Query[name]))
		}
		for _, name := range sortedKeys(ep.Parameters.Path) {
			op.AddParameter(describedParameter(openapi3.NewPathParameter(name), ep.Parameters.Path[name]))
		}
		if len(ep.Parameters.Body) > 0 {
			body := openapi3.NewRequestBody().
				WithDescription("Request body described in the source documentation").
				WithJSONSchema(buildModelSchema(ep.Parameters.Body))
			op.RequestBody = &openapi3.RequestBodyRef{Value: body}
		}
	}

	success := openapi3.NewResponse().WithDescription(successDescription(ep.Responses.Success))
	op.AddResponse(200, success)
	for _, er := range ep.Responses.Error {
		code := er.Code
		if code == 0 {
			continue
		}
		op.AddResponse(code, openapi3.NewResponse().WithDescription(errorDescription(er)))
	}

	return op
}

// sortedKeys fixes the emitted parameter order; openapi3.Parameters is
// a slice, so ranging the maps directly would reorder across runs
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func describedParameter(param *openapi3.Parameter, desc interface{}) *openapi3.Parameter {
	param.Description = fmt.Sprint(desc)
	return param.WithSchema(openapi3.NewStringSchema())
}

// buildModelSchema turns a name→description map into an object schema
// whose properties are described strings. The descriptions are free
// text, so no tighter typing is attempted.
func buildModelSchema(fields map[string]interface{}) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	for name, desc := range fields {
		property := openapi3.NewStringSchema()
		property.Description = fmt.Sprint(desc)
		schema = schema.WithProperty(name, property)
	}
	return schema
}

func successDescription(success interface{}) string {
	if s, ok := success.(string); ok && s != "" {
		return s
	}
	return "Successful response"
}

func errorDescription(er types.ErrorResponse) string {
	if s, ok := er.Example.(string); ok && s != "" {
		return s
	}
	if s, ok := er.Schema.(string); ok && s != "" {
		return s
	}
	return fmt.Sprintf("Error response (%d)", er.Code)
}

// WriteJSON writes doc to path as indented JSON
func WriteJSON(doc *openapi3.T, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal OpenAPI document: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write OpenAPI document: %w", err)
	}
	return nil
}
