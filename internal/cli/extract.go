package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"api-doc-parser/internal/config"
	"api-doc-parser/internal/diag"
	"api-doc-parser/internal/extractor"
	"api-doc-parser/internal/llm"
	"api-doc-parser/internal/logger"
	"api-doc-parser/internal/openapi"
	"api-doc-parser/internal/reporter"
	"api-doc-parser/internal/trafficgen"
)

var (
	extractRetries  int
	extractOpenAPI  bool
	extractTemplate bool
)

// maxRetries bounds the caller-driven retry loop; the engine itself
// never retries.
const maxRetries = 10

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract an endpoint catalog from a documentation file",
	Long: `Extract runs the full pipeline: file validation, prompt rendering, one
completion call, response normalization, structural validation, and
quality audit. On success it writes a catalog report and prints a
one-line summary.

Failures classified as temporary (network blips, rate limits, malformed
completions) are retried up to --retries times; configuration and schema
failures are surfaced immediately with a suggested next step.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVar(&extractRetries, "retries", 0, "retry temporary failures up to N times (max 10)")
	extractCmd.Flags().BoolVar(&extractOpenAPI, "openapi", false, "also write an OpenAPI 3.0 document")
	extractCmd.Flags().BoolVar(&extractTemplate, "template", false, "also write a traffic-generator template")
}

func runExtract(cmd *cobra.Command, args []string) error {
	if extractRetries < 0 || extractRetries > maxRetries {
		return fmt.Errorf("--retries must be between 0 and %d", maxRetries)
	}

	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}

	oracle, err := llm.NewOracle(&cfg.LLM)
	if err != nil {
		return describeFailure(cmd, err)
	}

	log, err := logger.NewLogger(cfg.Output.LogDir)
	if err != nil {
		return err
	}
	defer log.Close()

	engine := extractor.New(oracle, log)

	var result *extractor.Result
	for attempt := 0; ; attempt++ {
		result, err = engine.ParseDocumentation(cmd.Context(), args[0])
		if err == nil {
			break
		}
		d := diag.As(err)
		if d == nil || !d.IsTemporary() || attempt >= extractRetries {
			return describeFailure(cmd, err)
		}
		cmd.Printf("Attempt %d failed (%s), retrying...\n", attempt+1, d.Code)
		time.Sleep(time.Second)
	}

	cmd.Println(result.Summary)
	for _, w := range result.Warnings {
		cmd.Printf("warning: %s\n", w)
	}

	rep := reporter.NewReporter(cfg.Output.Dir)
	reportPath, err := rep.WriteCatalogReport(result.InvocationID, args[0], result.Catalog, result.Warnings)
	if err != nil {
		return err
	}
	cmd.Printf("Catalog written to %s\n", reportPath)

	if extractOpenAPI {
		specPath := filepath.Join(cfg.Output.Dir, "openapi.json")
		if err := openapi.WriteJSON(openapi.Build(result.Catalog), specPath); err != nil {
			return err
		}
		cmd.Printf("OpenAPI document written to %s\n", specPath)
	}
	if extractTemplate {
		templatePath, err := trafficgen.NewGenerator(cfg.Output.Dir).GenerateTemplate(result.Catalog)
		if err != nil {
			return err
		}
		cmd.Printf("Traffic template written to %s\n", templatePath)
	}

	return nil
}

// describeFailure prints the diagnostic details before returning the
// error, so the operator sees the classification and the suggested next
// action.
func describeFailure(cmd *cobra.Command, err error) error {
	d := diag.As(err)
	if d == nil {
		return err
	}
	cmd.PrintErrf("extraction failed [%s]: %s\n", d.Code, d.Message)
	if d.Suggestion != "" {
		cmd.PrintErrf("suggestion: %s\n", d.Suggestion)
	}
	cmd.PrintErrf("recommended action: %s\n", d.RecommendedAction())
	return err
}
