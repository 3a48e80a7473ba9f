package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/quill/internal/logger"
)

var (
	debug   bool
	logJSON bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "quill",
	Short: "A Lorcana toolbox for crafting experiences for Illumineers",
	Long: `Quill is a command-line toolbox for Lorcana decks.
It checks decks against tournament formats and reports what is inside them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Setup(logger.Config{
			Debug:  debug,
			JSON:   logJSON,
			Output: cmd.ErrOrStderr(),
		})
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging on stderr")
	RootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
