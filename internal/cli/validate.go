package cli

import (
	"github.com/spf13/cobra"

	"api-doc-parser/internal/extractor"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a documentation file without calling the completion service",
	Long: `Validate runs only the file guard: existence, size, readability,
binary-content, and minimum-length checks. It needs no API credentials,
so it can reject an unusable file before any are requested.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		warnings, err := extractor.ValidateFile(args[0])
		if err != nil {
			return describeFailure(cmd, err)
		}
		for _, w := range warnings {
			cmd.Printf("warning: %s\n", w)
		}
		cmd.Printf("%s looks usable for extraction\n", args[0])
		return nil
	},
}
