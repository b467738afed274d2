// Package root contains the root command for the application
package root

import (
	"github.com/spf13/cobra"

	"fjacquet/bank-import/internal/config"
	"fjacquet/bank-import/internal/logging"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapter("info", "text")

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bank-import",
		Short: "A CLI tool to import bank export files and normalize their transactions.",
		Long: `bank-import converts heterogeneous bank exports (CSV, spreadsheets, OFX)
into one canonical transaction CSV. Column roles, date formats, and amount
conventions are detected automatically and can be overridden per file.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bank-import!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv(Log)

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("Failed to initialize configuration")
			}
			Cfg = cfg
			Log = config.NewLogger(cfg)
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
