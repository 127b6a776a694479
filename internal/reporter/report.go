// Package reporter renders human summaries and report files for a
// validated endpoint catalog.
package reporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"api-doc-parser/internal/types"
)

// Summarize renders the deterministic one-line summary of a catalog:
// endpoint count, distinct methods in first-seen order, data-model
// count, and session-required count. Pure formatting, no validation.
func Summarize(catalog *types.EndpointCatalog) string {
	var methods []string
	seen := make(map[string]bool)
	sessionCount := 0

	for _, ep := range catalog.Endpoints {
		if !seen[ep.Method] {
			seen[ep.Method] = true
			methods = append(methods, ep.Method)
		}
		if ep.SessionRequired {
			sessionCount++
		}
	}

	return fmt.Sprintf("Parsed %d endpoints (%s) with %d data models. %d endpoints require session management.",
		len(catalog.Endpoints), strings.Join(methods, ", "), len(catalog.DataModels), sessionCount)
}

// Report is the persisted record of one successful extraction
type Report struct {
	Timestamp    time.Time              `json:"timestamp"`
	InvocationID string                 `json:"invocation_id"`
	SourceFile   string                 `json:"source_file"`
	Summary      string                 `json:"summary"`
	Warnings     []string               `json:"warnings,omitempty"`
	Catalog      *types.EndpointCatalog `json:"catalog"`
}

// Reporter writes extraction reports to an output directory
type Reporter struct {
	outputDir string
}

// NewReporter creates a new instance of Reporter
func NewReporter(outputDir string) *Reporter {
	return &Reporter{
		outputDir: outputDir,
	}
}

// WriteCatalogReport writes a timestamped JSON report and returns its path
func (r *Reporter) WriteCatalogReport(invocationID, sourceFile string, catalog *types.EndpointCatalog, warnings []string) (string, error) {
	report := Report{
		Timestamp:    time.Now(),
		InvocationID: invocationID,
		SourceFile:   sourceFile,
		Summary:      Summarize(catalog),
		Warnings:     warnings,
		Catalog:      catalog,
	}

	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	reportPath := filepath.Join(r.outputDir, fmt.Sprintf("catalog_%s.json", report.Timestamp.Format("20060102_150405")))
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(reportPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	return reportPath, nil
}
