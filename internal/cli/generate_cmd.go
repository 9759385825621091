package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/app"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	var (
		outputPath string
		columns    int
		title      string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Fetch both sources and write the cheat sheet document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if AppCfg == nil {
				return fmt.Errorf("configuration not loaded for generate")
			}
			if cmd.Flags().Changed("output") {
				AppCfg.OutputPath = outputPath
			}
			if cmd.Flags().Changed("columns") {
				AppCfg.Columns = columns
			}
			if cmd.Flags().Changed("title") {
				AppCfg.Title = title
			}
			if AppCfg.Columns < 1 {
				return fmt.Errorf("columns must be at least 1, got %d", AppCfg.Columns)
			}

			application := app.NewApplication(AppCfg)
			return application.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "readme.md", "path of the generated document")
	cmd.Flags().IntVar(&columns, "columns", 2, "ico/shortcode pairs per table row")
	cmd.Flags().StringVar(&title, "title", "", "document title (default: module name from go.mod)")

	return cmd
}
