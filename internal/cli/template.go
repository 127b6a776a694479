package cli

import (
	"github.com/spf13/cobra"

	"api-doc-parser/internal/trafficgen"
)

var templateCmd = &cobra.Command{
	Use:   "template <catalog.json>",
	Short: "Render a traffic-generator template from a saved catalog",
	Long: `Template reads a catalog report written by the extract command and
renders a YAML traffic-generator template with placeholder request
values. Review and fill the placeholders before running any traffic.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := readCatalog(args[0])
		if err != nil {
			return err
		}
		templatePath, err := trafficgen.NewGenerator(resultDir()).GenerateTemplate(catalog)
		if err != nil {
			return err
		}
		cmd.Printf("Traffic template written to %s\n", templatePath)
		return nil
	},
}
