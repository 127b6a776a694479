package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"api-doc-parser/internal/openapi"
	"api-doc-parser/internal/reporter"
	"api-doc-parser/internal/types"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <catalog.json>",
	Short: "Convert a saved endpoint catalog to an OpenAPI 3.0 document",
	Long: `Export reads a catalog report written by the extract command (or a bare
catalog JSON file) and converts it into an OpenAPI 3.0 document.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := readCatalog(args[0])
		if err != nil {
			return err
		}

		out := exportOut
		if out == "" {
			out = filepath.Join(resultDir(), "openapi.json")
		}
		if err := openapi.WriteJSON(openapi.Build(catalog), out); err != nil {
			return err
		}
		cmd.Printf("OpenAPI document written to %s\n", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default: <output>/openapi.json)")
}

func resultDir() string {
	if outputDir != "" {
		return outputDir
	}
	return "output"
}

// readCatalog loads either a catalog report or a bare catalog
func readCatalog(path string) (*types.EndpointCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var report reporter.Report
	if err := json.Unmarshal(data, &report); err == nil && report.Catalog != nil {
		return report.Catalog, nil
	}

	var catalog types.EndpointCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if len(catalog.Endpoints) == 0 {
		return nil, fmt.Errorf("%s contains no endpoints", path)
	}
	return &catalog, nil
}
