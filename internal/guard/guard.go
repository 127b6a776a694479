// Package guard validates a candidate documentation file before any
// network cost is incurred. It needs no oracle credentials and is safe
// to call standalone from an interactive caller.
package guard

import (
	"fmt"
	"os"
	"strings"

	"api-doc-parser/internal/diag"
)

const (
	// MaxFileSize is the largest documentation file accepted, in bytes.
	MaxFileSize = 10 << 20

	// MinContentLength is the minimum trimmed content length that could
	// plausibly describe an API.
	MinContentLength = 50
)

// specKeywords are tokens whose complete absence suggests the file does
// not describe an API. Matching is case-insensitive and their absence is
// a warning, never a failure.
var specKeywords = []string{
	"api", "endpoint", "endpoints", "method", "request", "response",
	"route", "url", "http", "rest",
	"get", "post", "put", "patch", "delete", "head", "options",
}

// ValidateSpecFile checks that path names a readable, non-binary,
// plausibly API-describing text file. On success it returns the file
// contents and any non-fatal warnings; on failure it returns a
// *diag.Diagnostic with a distinct code per cause.
func ValidateSpecFile(path string) (string, []string, error) {
	if path == "" {
		return "", nil, &diag.Diagnostic{
			Code:       diag.CodeEmptyPath,
			Message:    "no documentation file path was provided",
			Suggestion: "pass the path of an API documentation file",
		}
	}
	if strings.ContainsRune(path, 0) {
		return "", nil, &diag.Diagnostic{
			Code:     diag.CodeMalformedPath,
			Message:  "documentation file path contains a NUL byte",
			Metadata: diag.Metadata{Path: strings.ReplaceAll(path, "\x00", "")},
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, &diag.Diagnostic{
				Code:       diag.CodeFileNotFound,
				Message:    fmt.Sprintf("documentation file not found: %s", path),
				Suggestion: "check the path for typos or provide a different file",
				Metadata:   diag.Metadata{Path: path},
			}
		}
		if os.IsPermission(err) {
			return "", nil, &diag.Diagnostic{
				Code:     diag.CodePermissionDenied,
				Message:  fmt.Sprintf("no permission to access %s", path),
				Metadata: diag.Metadata{Path: path},
			}
		}
		return "", nil, &diag.Diagnostic{
			Code:     diag.CodeFileReadError,
			Message:  fmt.Sprintf("failed to stat %s: %v", path, err),
			Metadata: diag.Metadata{Path: path},
		}
	}

	if info.IsDir() {
		return "", nil, &diag.Diagnostic{
			Code:       diag.CodePathIsDirectory,
			Message:    fmt.Sprintf("%s is a directory, not a documentation file", path),
			Suggestion: "point at a single markdown or text file inside it",
			Metadata:   diag.Metadata{Path: path},
		}
	}
	if info.Size() == 0 {
		return "", nil, &diag.Diagnostic{
			Code:     diag.CodeEmptyFile,
			Message:  fmt.Sprintf("documentation file is empty: %s", path),
			Metadata: diag.Metadata{Path: path},
		}
	}
	if info.Size() > MaxFileSize {
		return "", nil, &diag.Diagnostic{
			Code:       diag.CodeFileTooLarge,
			Message:    fmt.Sprintf("documentation file is %d bytes, the limit is %d", info.Size(), int64(MaxFileSize)),
			Suggestion: "split the documentation or extract the API section into a smaller file",
			Metadata:   diag.Metadata{Path: path, SizeBytes: info.Size(), LimitBytes: MaxFileSize},
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return "", nil, &diag.Diagnostic{
				Code:       diag.CodePermissionDenied,
				Message:    fmt.Sprintf("no permission to read %s", path),
				Suggestion: "fix the file permissions or run as a user that can read it",
				Metadata:   diag.Metadata{Path: path},
			}
		}
		return "", nil, &diag.Diagnostic{
			Code:     diag.CodeFileReadError,
			Message:  fmt.Sprintf("failed to read %s: %v", path, err),
			Metadata: diag.Metadata{Path: path},
		}
	}

	if isBinary(data) {
		return "", nil, &diag.Diagnostic{
			Code:       diag.CodeBinaryContent,
			Message:    fmt.Sprintf("%s contains binary data and cannot be parsed as documentation", path),
			Suggestion: "provide a plain text, markdown, JSON, or YAML file",
			Metadata:   diag.Metadata{Path: path},
		}
	}

	content := string(data)
	trimmed := strings.TrimSpace(content)
	if len(trimmed) < MinContentLength {
		return "", nil, &diag.Diagnostic{
			Code:       diag.CodeSpecificationTooShort,
			Message:    fmt.Sprintf("documentation is only %d characters, at least %d are required", len(trimmed), MinContentLength),
			Suggestion: "the file does not contain enough text to describe an API",
			Metadata:   diag.Metadata{Path: path, ContentLength: len(trimmed), MinLength: MinContentLength},
		}
	}

	var warnings []string
	if !containsSpecKeyword(trimmed) {
		warnings = append(warnings, fmt.Sprintf(
			"%s does not mention any API-related terms (api, endpoint, HTTP methods, ...); extraction may find nothing", path))
	}

	return content, warnings, nil
}

// isBinary reports whether data contains control characters outside the
// common whitespace set. All bytes of a UTF-8 multibyte sequence are
// >= 0x80, so non-ASCII text never trips this check.
func isBinary(data []byte) bool {
	for _, b := range data {
		if b == 0 {
			return true
		}
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' && b != '\f' {
			return true
		}
	}
	return false
}

func containsSpecKeyword(content string) bool {
	lower := strings.ToLower(content)
	for _, kw := range specKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
