// Package root contains the root command for the application.
package root

import (
	"mweber/konto-csv/internal/config"
	"mweber/konto-csv/internal/logging"
	"mweber/konto-csv/internal/store"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands.
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands.
	Log = logging.GetLogger()

	// Cfg is the resolved application configuration, populated before any
	// command runs.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "konto-csv",
		Short: "A CLI tool to extract bank statement transactions into a categorized CSV ledger.",
		Long: `konto-csv reads Volksbank account statement PDFs, recovers the booked
transactions, categorizes them by keyword and appends them to an
append-only CSV ledger with duplicate detection.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to konto-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv(nil)

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg

			Log = logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
			store.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			return nil
		},
	}

	// SharedFlags are the common flags accessible to all commands.
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
