package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/stocktake/stocktake/cmd/stocktake/cmd"
	"github.com/stocktake/stocktake/internal/cmd/globals"
)

// Execute runs the stocktake CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "stocktake",
		Short:   "Inventory snapshot reconciliation",
		Version: a.version,
		Long: `Stocktake reconciles two point-in-time inventory snapshot exports.

It cleans both CSV snapshots into canonical tables while logging every
data-quality issue it finds, joins them by SKU, and classifies each SKU
as added, removed, changed or unchanged. Results are written as a
reconciliation table, a JSON report and a quantity comparison chart.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Global flags shared by every command, plus root-only ones.
	a.flags = globals.AddFlags(rootCmd)
	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.stocktake.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("stocktake {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs. It folds parsed flag
// values back into the config and rebuilds the logger accordingly.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	logLevel := mustGetString(cmd, "log-level")

	a.config.UpdateFromFlags(a.flags.Verbose, a.flags.Quiet, a.flags.NoColor, a.flags.Output, logLevel)

	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(cmd.NewRunCommand(a))
	rootCmd.AddCommand(cmd.NewCleanCommand(a))
	rootCmd.AddCommand(cmd.NewVersionCommand(a))
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetString retrieves a string flag value or panics if the flag doesn't
// exist. Only for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
