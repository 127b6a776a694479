// Package prompt renders the guarded documentation into the fixed
// extraction instruction sent to the completion oracle.
package prompt

import (
	"fmt"

	"api-doc-parser/internal/diag"
)

// MaxPromptSize is the hard ceiling on the rendered prompt, in bytes.
// Exceeding it is a configuration-shaped failure detected before any
// network call.
const MaxPromptSize = 100 * 1024

const extractionTemplate = `Analyze the following API documentation and extract every API endpoint it describes.

Documentation:
---
%s
---

Extract each endpoint with its HTTP method, path, purpose, parameters, and responses.
Respond in JSON format with exactly this structure:
{
    "endpoints": [
        {
            "path": "/example/path",
            "method": "GET",
            "purpose": "short description of what the endpoint does",
            "parameters": {
                "query": {"param_name": "type and constraints"},
                "path": {"param_name": "type and constraints"},
                "body": {"field_name": "type and constraints"}
            },
            "responses": {
                "success": "schema or example of the success response",
                "error": [{"code": 404, "example": "error body"}]
            },
            "sessionRequired": false
        }
    ],
    "dataModels": {
        "ModelName": {"field_name": "field description"}
    },
    "baseUrl": "https://api.example.com",
    "commonPatterns": {
        "pagination": "how list endpoints paginate, if documented",
        "sessionManagement": "how sessions or auth tokens work, if documented",
        "errorHandling": ["conventions that apply to all error responses"]
    }
}

Rules:
- method must be one of GET, POST, PUT, PATCH, DELETE, HEAD, OPTIONS.
- path must start with /.
- every endpoint must have a non-empty purpose and a responses.success value.
- omit parameters, dataModels, baseUrl, or commonPatterns if the documentation does not mention them.
- respond with JSON only. No prose, no explanations, no markdown code fences.`

// Build renders document into the extraction prompt. It is a pure
// function of its input and fails fast when the rendered prompt would
// exceed MaxPromptSize.
func Build(document string) (string, error) {
	rendered := fmt.Sprintf(extractionTemplate, document)
	if len(rendered) > MaxPromptSize {
		return "", &diag.Diagnostic{
			Code:       diag.CodePromptTooLarge,
			Message:    fmt.Sprintf("rendered prompt is %d bytes, the limit is %d", len(rendered), MaxPromptSize),
			Suggestion: "trim the documentation to the API sections before extracting",
			Metadata:   diag.Metadata{SizeBytes: int64(len(rendered)), LimitBytes: MaxPromptSize},
		}
	}
	return rendered, nil
}
