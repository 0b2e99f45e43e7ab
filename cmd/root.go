package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathrush/internal/config"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mathrush",
		Short:         "Arcade arithmetic quiz for the terminal",
		Long:          "MathRush: answer procedurally generated math problems against the clock, level up and keep your energy above zero.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlay,
	}

	root.PersistentFlags().String("config", "", "Path to a YAML config file")
	root.PersistentFlags().String("log-file", "", "Write the session journal to this file (overrides MATHRUSH_LOG_FILE)")
	root.PersistentFlags().String("log-level", "info", "Journal log level")
	addPlayFlags(root)

	root.AddCommand(newPlayCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newModesCmd())
	root.AddCommand(newLevelsCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() error {
	return rootCmd.Execute()
}

// loadConfig merges defaults, environment, the --config file and the
// flags set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := config.NewViper()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}
	file, _ := cmd.Flags().GetString("config")
	return config.Load(v, file)
}
