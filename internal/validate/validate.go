// Package validate enforces the endpoint-catalog schema on the object
// extracted from the oracle's response. Validation is deterministic,
// performs no I/O, and attributes every failure to a distinct code,
// with the 0-based endpoint index attached for per-endpoint checks.
package validate

import (
	"fmt"
	"strings"

	"api-doc-parser/internal/diag"
	"api-doc-parser/internal/types"
)

// AllowedMethods are the only HTTP verbs a descriptor may carry
var AllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}

// MinPurposeLength is the shortest trimmed purpose accepted as valid
const MinPurposeLength = 3

func isAllowedMethod(method string) bool {
	for _, m := range AllowedMethods {
		if m == method {
			return true
		}
	}
	return false
}

// Catalog converts the parsed object into a typed EndpointCatalog,
// enforcing the schema field by field. It returns non-fatal warnings
// (unrecognized parameter sections, skipped data model entries) next to
// the catalog.
func Catalog(obj map[string]interface{}) (*types.EndpointCatalog, []string, error) {
	if obj == nil {
		return nil, nil, &diag.Diagnostic{
			Code:    diag.CodeInvalidCatalogShape,
			Message: "the extracted catalog is not a JSON object",
		}
	}

	var warnings []string

	rawEndpoints, ok := obj["endpoints"]
	if !ok {
		return nil, nil, &diag.Diagnostic{
			Code:       diag.CodeMissingEndpointsField,
			Message:    "the extracted catalog has no \"endpoints\" property",
			Suggestion: "retry the extraction or fall back to manual endpoint entry",
		}
	}
	list, ok := rawEndpoints.([]interface{})
	if !ok {
		return nil, nil, &diag.Diagnostic{
			Code:    diag.CodeEndpointsNotArray,
			Message: fmt.Sprintf("\"endpoints\" must be an array, got %s", typeName(rawEndpoints)),
		}
	}
	if len(list) == 0 {
		return nil, nil, &diag.Diagnostic{
			Code:       diag.CodeNoEndpointsFound,
			Message:    "no endpoints were found in the documentation",
			Suggestion: "check that the document actually describes API endpoints, or enter them manually",
		}
	}

	catalog := &types.EndpointCatalog{
		Endpoints: make([]types.EndpointDescriptor, 0, len(list)),
	}

	for i, raw := range list {
		ep, ws, err := endpoint(i, raw)
		if err != nil {
			return nil, nil, err
		}
		warnings = append(warnings, ws...)
		catalog.Endpoints = append(catalog.Endpoints, *ep)
	}

	if rawModels, ok := obj["dataModels"]; ok && rawModels != nil {
		models, ws, err := dataModels(rawModels)
		if err != nil {
			return nil, nil, err
		}
		warnings = append(warnings, ws...)
		catalog.DataModels = models
	}

	if rawBase, ok := obj["baseUrl"]; ok && rawBase != nil {
		if base, ok := rawBase.(string); ok {
			catalog.BaseURL = base
		} else {
			warnings = append(warnings, fmt.Sprintf("ignoring non-string \"baseUrl\" (%s)", typeName(rawBase)))
		}
	}

	if rawPatterns, ok := obj["commonPatterns"]; ok && rawPatterns != nil {
		patterns, patternWarnings, err := commonPatterns(rawPatterns)
		if err != nil {
			return nil, nil, err
		}
		warnings = append(warnings, patternWarnings...)
		catalog.CommonPatterns = patterns
	}

	return catalog, warnings, nil
}

// endpoint validates one entry of the endpoints array
func endpoint(index int, raw interface{}) (*types.EndpointDescriptor, []string, error) {
	idx := index
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, nil, &diag.Diagnostic{
			Code:     diag.CodeInvalidEndpointShape,
			Message:  fmt.Sprintf("endpoint %d: expected an object, got %s", index, typeName(raw)),
			Metadata: diag.Metadata{EndpointIndex: &idx},
		}
	}

	var ep types.EndpointDescriptor
	var warnings []string

	rawPath, ok := obj["path"]
	if !ok {
		return nil, nil, &diag.Diagnostic{
			Code:     diag.CodeMissingEndpointPath,
			Message:  fmt.Sprintf("endpoint %d: missing \"path\"", index),
			Metadata: diag.Metadata{EndpointIndex: &idx},
		}
	}
	path, ok := rawPath.(string)
	if !ok || path == "" || !strings.HasPrefix(path, "/") {
		return nil, nil, &diag.Diagnostic{
			Code:     diag.CodeInvalidEndpointPath,
			Message:  fmt.Sprintf("endpoint %d: \"path\" must be a non-empty string starting with /", index),
			Metadata: diag.Metadata{EndpointIndex: &idx, Field: "path", Value: fmt.Sprint(rawPath)},
		}
	}
	ep.Path = path

	rawMethod, ok := obj["method"]
	if !ok {
		return nil, nil, &diag.Diagnostic{
			Code:     diag.CodeMissingEndpointMethod,
			Message:  fmt.Sprintf("endpoint %d: missing \"method\"", index),
			Metadata: diag.Metadata{EndpointIndex: &idx},
		}
	}
	methodStr, ok := rawMethod.(string)
	method := strings.ToUpper(strings.TrimSpace(methodStr))
	if !ok || !isAllowedMethod(method) {
		return nil, nil, &diag.Diagnostic{
			Code:       diag.CodeUnsupportedHttpMethod,
			Message:    fmt.Sprintf("endpoint %d: %q is not a supported HTTP method", index, fmt.Sprint(rawMethod)),
			Suggestion: fmt.Sprintf("supported methods are %s", strings.Join(AllowedMethods, ", ")),
			Metadata:   diag.Metadata{EndpointIndex: &idx, Field: "method", Value: fmt.Sprint(rawMethod), AllowedMethods: AllowedMethods},
		}
	}
	ep.Method = method

	rawPurpose, ok := obj["purpose"]
	if !ok {
		return nil, nil, &diag.Diagnostic{
			Code:     diag.CodeMissingEndpointPurpose,
			Message:  fmt.Sprintf("endpoint %d: missing \"purpose\"", index),
			Metadata: diag.Metadata{EndpointIndex: &idx},
		}
	}
	purpose, ok := rawPurpose.(string)
	if !ok {
		return nil, nil, &diag.Diagnostic{
			Code:     diag.CodeMissingEndpointPurpose,
			Message:  fmt.Sprintf("endpoint %d: \"purpose\" must be a string, got %s", index, typeName(rawPurpose)),
			Metadata: diag.Metadata{EndpointIndex: &idx, Field: "purpose"},
		}
	}
	if len(strings.TrimSpace(purpose)) < MinPurposeLength {
		return nil, nil, &diag.Diagnostic{
			Code:     diag.CodePurposeTooShort,
			Message:  fmt.Sprintf("endpoint %d: \"purpose\" must be at least %d characters after trimming", index, MinPurposeLength),
			Metadata: diag.Metadata{EndpointIndex: &idx, Field: "purpose", Value: purpose, MinLength: MinPurposeLength},
		}
	}
	ep.Purpose = purpose

	rawResponses, ok := obj["responses"]
	if !ok {
		return nil, nil, &diag.Diagnostic{
			Code:     diag.CodeMissingResponses,
			Message:  fmt.Sprintf("endpoint %d: missing \"responses\"", index),
			Metadata: diag.Metadata{EndpointIndex: &idx},
		}
	}
	responses, ok := rawResponses.(map[string]interface{})
	if !ok {
		return nil, nil, &diag.Diagnostic{
			Code:     diag.CodeInvalidResponsesShape,
			Message:  fmt.Sprintf("endpoint %d: \"responses\" must be an object, got %s", index, typeName(rawResponses)),
			Metadata: diag.Metadata{EndpointIndex: &idx, Field: "responses"},
		}
	}
	success, ok := responses["success"]
	if !ok {
		return nil, nil, &diag.Diagnostic{
			Code:       diag.CodeMissingSuccessResponse,
			Message:    fmt.Sprintf("endpoint %d: \"responses\" has no \"success\" entry", index),
			Suggestion: "every endpoint must describe its success response",
			Metadata:   diag.Metadata{EndpointIndex: &idx},
		}
	}
	ep.Responses.Success = success
	if rawErrs, ok := responses["error"]; ok && rawErrs != nil {
		errs, ws := errorResponses(index, rawErrs)
		warnings = append(warnings, ws...)
		ep.Responses.Error = errs
	}

	if rawParams, ok := obj["parameters"]; ok && rawParams != nil {
		params, ws, err := parameters(index, rawParams)
		if err != nil {
			return nil, nil, err
		}
		warnings = append(warnings, ws...)
		ep.Parameters = params
	}

	if rawSession, ok := obj["sessionRequired"]; ok && rawSession != nil {
		session, ok := rawSession.(bool)
		if !ok {
			return nil, nil, &diag.Diagnostic{
				Code:     diag.CodeInvalidSessionFlag,
				Message:  fmt.Sprintf("endpoint %d: \"sessionRequired\" must be a boolean, got %s", index, typeName(rawSession)),
				Metadata: diag.Metadata{EndpointIndex: &idx, Field: "sessionRequired", Value: fmt.Sprint(rawSession)},
			}
		}
		ep.SessionRequired = session
	}

	return &ep, warnings, nil
}

// parameters validates the parameters object of one endpoint. Keys other
// than query/path/body are a warning, not a failure.
func parameters(index int, raw interface{}) (*types.EndpointParameters, []string, error) {
	idx := index
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, nil, &diag.Diagnostic{
			Code:     diag.CodeInvalidParametersShape,
			Message:  fmt.Sprintf("endpoint %d: \"parameters\" must be an object, got %s", index, typeName(raw)),
			Metadata: diag.Metadata{EndpointIndex: &idx, Field: "parameters"},
		}
	}

	var params types.EndpointParameters
	var warnings []string
	for key, value := range obj {
		switch key {
		case "query", "path", "body":
			section, ok := value.(map[string]interface{})
			if !ok {
				return nil, nil, &diag.Diagnostic{
					Code:     diag.CodeInvalidParametersShape,
					Message:  fmt.Sprintf("endpoint %d: \"parameters.%s\" must be an object, got %s", index, key, typeName(value)),
					Metadata: diag.Metadata{EndpointIndex: &idx, Field: "parameters." + key},
				}
			}
			switch key {
			case "query":
				params.Query = section
			case "path":
				params.Path = section
			case "body":
				params.Body = section
			}
		default:
			warnings = append(warnings, fmt.Sprintf("endpoint %d: ignoring unrecognized parameter section %q", index, key))
		}
	}
	return &params, warnings, nil
}

// errorResponses converts the optional responses.error list. A non-list
// value or malformed entries degrade to warnings since the success
// response alone satisfies the contract.
func errorResponses(index int, raw interface{}) ([]types.ErrorResponse, []string) {
	list, ok := raw.([]interface{})
	if !ok {
		return nil, []string{fmt.Sprintf("endpoint %d: ignoring non-list \"responses.error\" (%s)", index, typeName(raw))}
	}

	var out []types.ErrorResponse
	var warnings []string
	for _, item := range list {
		obj, ok := item.(map[string]interface{})
		if !ok {
			warnings = append(warnings, fmt.Sprintf("endpoint %d: ignoring malformed error response entry (%s)", index, typeName(item)))
			continue
		}
		var er types.ErrorResponse
		if code, ok := obj["code"].(float64); ok {
			er.Code = int(code)
		}
		er.Example = obj["example"]
		er.Schema = obj["schema"]
		out = append(out, er)
	}
	return out, warnings
}

// dataModels validates the optional top-level dataModels object
func dataModels(raw interface{}) (map[string]map[string]interface{}, []string, error) {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, nil, &diag.Diagnostic{
			Code:    diag.CodeInvalidDataModels,
			Message: fmt.Sprintf("\"dataModels\" must be an object, got %s", typeName(raw)),
		}
	}

	models := make(map[string]map[string]interface{}, len(obj))
	var warnings []string
	for name, value := range obj {
		fields, ok := value.(map[string]interface{})
		if !ok {
			warnings = append(warnings, fmt.Sprintf("ignoring data model %q: expected a field map, got %s", name, typeName(value)))
			continue
		}
		models[name] = fields
	}
	return models, warnings, nil
}

// commonPatterns validates the optional top-level commonPatterns object
func commonPatterns(raw interface{}) (*types.CommonPatterns, []string, error) {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, nil, &diag.Diagnostic{
			Code:    diag.CodeInvalidCommonPatterns,
			Message: fmt.Sprintf("\"commonPatterns\" must be an object, got %s", typeName(raw)),
		}
	}

	patterns := &types.CommonPatterns{
		Pagination:        obj["pagination"],
		SessionManagement: obj["sessionManagement"],
	}
	var warnings []string
	if rawHandling, ok := obj["errorHandling"]; ok && rawHandling != nil {
		list, isList := rawHandling.([]interface{})
		if !isList {
			warnings = append(warnings, fmt.Sprintf("ignoring non-array \"commonPatterns.errorHandling\" (%s)", typeName(rawHandling)))
		}
		for _, item := range list {
			s, isString := item.(string)
			if !isString {
				warnings = append(warnings, fmt.Sprintf("ignoring non-string \"commonPatterns.errorHandling\" entry (%s)", typeName(item)))
				continue
			}
			patterns.ErrorHandling = append(patterns.ErrorHandling, s)
		}
	}
	return patterns, warnings, nil
}

// typeName names a decoded JSON value's type for error messages
func typeName(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
