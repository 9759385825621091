package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/config"
	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/logging"
)

var (
	cfgFile string
	dryRun  bool
	AppCfg  *config.AppConfig // Populated in PersistentPreRunE
)

var RootCmd = &cobra.Command{
	Use:   "emoji-cheat-sheet",
	Short: "Generate a markdown emoji cheat sheet from GitHub and Unicode data.",
	Long: `emoji-cheat-sheet joins the GitHub emoji API with the Unicode full emoji
list chart and emits a markdown document listing every shortcode under its
Unicode category.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loadedCfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		AppCfg = loadedCfg

		logging.Setup(AppCfg.Log)
		AppCfg.DryRun = dryRun

		if AppCfg.UserAgent == "" {
			return fmt.Errorf("user_agent must not be empty; the GitHub emoji endpoint rejects anonymous requests")
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml, $HOME/.emoji-cheat-sheet/config.yaml)")
	RootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "run the pipeline without writing the output file")

	RootCmd.AddCommand(NewGenerateCmd())
	RootCmd.AddCommand(NewLookupCmd())
}
