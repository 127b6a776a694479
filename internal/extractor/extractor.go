// Package extractor wires the extraction pipeline: file guard, prompt
// builder, completion oracle, response normalizer, structural validator,
// and quality auditor. Each invocation is a pure function of the file
// contents and the oracle's response; the engine holds no state between
// invocations and performs exactly one oracle call per invocation.
package extractor

import (
	"context"
	"time"

	"api-doc-parser/internal/guard"
	"api-doc-parser/internal/llm"
	"api-doc-parser/internal/logger"
	"api-doc-parser/internal/normalize"
	"api-doc-parser/internal/prompt"
	"api-doc-parser/internal/reporter"
	"api-doc-parser/internal/types"
	"api-doc-parser/internal/validate"

	"github.com/google/uuid"
)

// OracleTimeout is the hard deadline on the completion call, enforced
// regardless of what the oracle implementation does internally
const OracleTimeout = 60 * time.Second

// Result is the outcome of a successful parse
type Result struct {
	// InvocationID correlates log entries for this invocation
	InvocationID string
	// Catalog is the validated endpoint catalog
	Catalog *types.EndpointCatalog
	// Warnings collects every non-fatal signal raised along the
	// pipeline: guard keyword hints, unrecognized parameter sections,
	// and quality audit findings
	Warnings []string
	// Summary is the one-line human summary of the catalog
	Summary string
	// Duration is the wall time of the whole invocation
	Duration time.Duration
}

// Extractor runs the extraction pipeline against one oracle
type Extractor struct {
	oracle  llm.Oracle
	logger  *logger.Logger
	timeout time.Duration
}

// New creates an extractor. The logger may be nil.
func New(oracle llm.Oracle, log *logger.Logger) *Extractor {
	return &Extractor{
		oracle:  oracle,
		logger:  log,
		timeout: OracleTimeout,
	}
}

// ParseDocumentation runs the full pipeline for the documentation file
// at path. Any failure is a *diag.Diagnostic; later stages are never
// entered once an earlier one fails, and no retry happens inside.
func (e *Extractor) ParseDocumentation(ctx context.Context, path string) (*Result, error) {
	start := time.Now()
	id := uuid.NewString()

	content, warnings, err := guard.ValidateSpecFile(path)
	if err != nil {
		e.logger.LogStage(id, "guard", path, err)
		return nil, err
	}
	e.logger.LogStage(id, "guard", path, nil)

	rendered, err := prompt.Build(content)
	if err != nil {
		e.logger.LogStage(id, "prompt", len(content), err)
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	raw, err := e.oracle.Complete(callCtx, rendered)
	e.logger.LogOracleInteraction(id, len(rendered), raw, err)
	if err != nil {
		return nil, err
	}

	obj, err := normalize.ExtractJSON(raw)
	if err != nil {
		e.logger.LogStage(id, "normalize", nil, err)
		return nil, err
	}

	catalog, validationWarnings, err := validate.Catalog(obj)
	if err != nil {
		e.logger.LogStage(id, "validate", nil, err)
		return nil, err
	}
	warnings = append(warnings, validationWarnings...)
	warnings = append(warnings, validate.Audit(catalog)...)

	result := &Result{
		InvocationID: id,
		Catalog:      catalog,
		Warnings:     warnings,
		Summary:      reporter.Summarize(catalog),
		Duration:     time.Since(start),
	}
	e.logger.LogStage(id, "done", result.Summary, nil)
	return result, nil
}

// ValidateFile runs only the file guard, with no oracle involvement.
// It lets a caller reject an unusable file before asking for
// credentials at all.
func ValidateFile(path string) ([]string, error) {
	_, warnings, err := guard.ValidateSpecFile(path)
	return warnings, err
}
