package cli

import (
	"fmt"
	"strings"

	kemoji "github.com/kyokomi/emoji/v2"
	"github.com/spf13/cobra"

	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/app"
)

// NewLookupCmd creates the lookup command: resolve one shortcode against
// a freshly generated tree and report where it was filed.
func NewLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <shortcode>",
		Short: "Show the category and aliases of one shortcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if AppCfg == nil {
				return fmt.Errorf("configuration not loaded for lookup")
			}
			id := strings.Trim(args[0], ":")
			if id == "" {
				return fmt.Errorf("empty shortcode")
			}

			application := app.NewApplication(AppCfg)
			tree, err := application.Generate(cmd.Context())
			if err != nil {
				return err
			}

			category, subcategory, group, ok := tree.Find(id)
			if !ok {
				return fmt.Errorf("shortcode %q not found (unknown, or its glyph has no chart row)", id)
			}

			cmd.Printf("shortcode: :%s:\n", id)
			cmd.Printf("category:  %s\n", category)
			if subcategory != "" {
				cmd.Printf("subcategory: %s\n", subcategory)
			}
			if len(group) > 1 {
				aliases := make([]string, 0, len(group)-1)
				for _, alias := range group {
					if alias != id {
						aliases = append(aliases, ":"+alias+":")
					}
				}
				cmd.Printf("aliases:   %s\n", strings.Join(aliases, " "))
			}
			// Independent alias table, useful to spot chart/API drift.
			if glyph, known := kemoji.CodeMap()[":"+id+":"]; known {
				cmd.Printf("glyph:     %s\n", glyph)
			}
			return nil
		},
	}
	return cmd
}
