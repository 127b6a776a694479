package validate

import (
	"fmt"
	"strings"

	"api-doc-parser/internal/types"
)

// Quality thresholds. Descriptors below them are schema-valid but worth
// a second look before they drive generated traffic.
const minUsefulPurposeLength = 5

// mutatingHints are path fragments that suggest a write operation
var mutatingHints = []string{"create", "delete", "remove", "update", "add", "new"}

// Audit inspects a validated catalog for quality signals that do not
// violate the schema: duplicate method+path pairs, read-only methods on
// paths that sound like write operations, and purposes too short to be
// descriptive. It always succeeds and returns one string per finding.
func Audit(catalog *types.EndpointCatalog) []string {
	var warnings []string

	seen := make(map[string]int)
	for i, ep := range catalog.Endpoints {
		key := ep.Key()
		if first, dup := seen[key]; dup {
			warnings = append(warnings, fmt.Sprintf(
				"endpoint %d duplicates endpoint %d (%s)", i, first, key))
		} else {
			seen[key] = i
		}

		if isReadOnlyMethod(ep.Method) {
			if hint := mutatingHint(ep.Path); hint != "" {
				warnings = append(warnings, fmt.Sprintf(
					"endpoint %d (%s) uses %s on a path that suggests %q; the method may be misextracted",
					i, key, ep.Method, hint))
			}
		}

		if len(strings.TrimSpace(ep.Purpose)) < minUsefulPurposeLength {
			warnings = append(warnings, fmt.Sprintf(
				"endpoint %d (%s) has a suspiciously short purpose %q", i, key, ep.Purpose))
		}
	}

	return warnings
}

func isReadOnlyMethod(method string) bool {
	return method == "GET" || method == "HEAD" || method == "OPTIONS"
}

func mutatingHint(path string) string {
	lower := strings.ToLower(path)
	for _, hint := range mutatingHints {
		for _, segment := range strings.Split(lower, "/") {
			if segment == hint {
				return hint
			}
		}
	}
	return ""
}
