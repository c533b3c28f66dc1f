package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uxsprint/boilerplate/internal/layout"
	"github.com/uxsprint/boilerplate/internal/project"
	"github.com/uxsprint/boilerplate/internal/scaffold"
)

func init() {
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <template-file>",
	Short: "Preview a template rendered with the stored defaults",
	Long: `Render a single template file with the values in project-config.json and
print the result to stdout. Nothing is prompted and nothing is written.

Example:
  uxsprint render templates/README.md.template`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := resolveBaseDir()
		if err != nil {
			return err
		}
		cfg, err := project.Load(layout.FindConfig(base))
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading template: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), scaffold.Render(string(data), cfg))
		return nil
	},
}
