// Package cli provides the command-line interface for api-doc-parser.
package cli

import (
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile   string
	outputDir string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "api-doc-parser",
	Short: "Extract a machine-usable API endpoint catalog from free-form documentation",
	Long: `api-doc-parser reads free-form API documentation (markdown, plain text,
JSON, or YAML), asks a completion service to extract the endpoints it
describes, and validates the result into a strict endpoint catalog that
downstream tooling (such as a traffic generator) can trust.

Example:
  api-doc-parser validate docs/api.md      # Check a file without credentials
  api-doc-parser extract docs/api.md       # Run the full extraction pipeline
  api-doc-parser export catalog.json       # Convert a saved catalog to OpenAPI
  api-doc-parser template catalog.json     # Render a traffic-generator template`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "output directory (default: output)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(templateCmd)
}
