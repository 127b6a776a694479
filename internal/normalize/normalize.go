// Package normalize strips formatting artifacts from raw oracle output
// and isolates the single JSON object embedded in it.
package normalize

import (
	"encoding/json"
	"strings"

	"api-doc-parser/internal/diag"
)

// ExtractJSON trims raw, removes a surrounding markdown code fence if
// present, slices from the first '{' to the last '}', and parses the
// slice as one JSON object. It is idempotent: already-clean JSON text
// normalizes to the same object.
//
// Failure codes distinguish the causes: NoJSONFound when no brace pair
// exists, IncompleteJSON when the payload was truncated mid-structure,
// MalformedJSON for any other parse error.
func ExtractJSON(raw string) (map[string]interface{}, error) {
	text := strings.TrimSpace(raw)
	text = stripFence(text)

	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first == -1 || last == -1 || last < first {
		return nil, &diag.Diagnostic{
			Code:       diag.CodeNoJSONFound,
			Message:    "the completion contains no JSON object",
			Suggestion: "retry the extraction; the service answered in prose",
		}
	}
	candidate := text[first : last+1]

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		if isTruncationError(err) {
			return nil, &diag.Diagnostic{
				Code:       diag.CodeIncompleteJSON,
				Message:    "the completion's JSON payload is truncated",
				Suggestion: "retry the extraction, possibly with a higher token limit",
				Metadata:   diag.Metadata{ParseError: err.Error()},
			}
		}
		return nil, &diag.Diagnostic{
			Code:       diag.CodeMalformedJSON,
			Message:    "the completion's JSON payload does not parse as an object",
			Suggestion: "retry the extraction; the service produced invalid JSON",
			Metadata:   diag.Metadata{ParseError: err.Error()},
		}
	}
	return obj, nil
}

// stripFence removes a leading markdown code fence (with or without a
// language tag) and its closing marker.
func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	// Drop the opening fence line, including any language tag.
	if nl := strings.Index(text, "\n"); nl != -1 {
		text = text[nl+1:]
	} else {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSpace(text)
	if strings.HasSuffix(text, "```") {
		text = strings.TrimSpace(strings.TrimSuffix(text, "```"))
	}
	return text
}

// isTruncationError reports whether a JSON parse error indicates the
// input ended mid-structure rather than containing an invalid token.
func isTruncationError(err error) bool {
	return strings.Contains(err.Error(), "unexpected end of JSON input")
}
