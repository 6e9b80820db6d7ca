// Package commands wires the cuadra CLI.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cuadra-dev/cuadra/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "cuadra",
		Short:   "Contabilidad por partida doble para pequeños negocios",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log skipped lines and load details")

	logger := func() *slog.Logger { return newLogger(verbose) }

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newCargarCommand(logger))
	rootCmd.AddCommand(newDiarioCommand(logger))
	rootCmd.AddCommand(newMayorCommand(logger))
	rootCmd.AddCommand(newCuentasCommand(logger))
	rootCmd.AddCommand(newBalanceCommand(logger))
	rootCmd.AddCommand(newPruebaCommand())

	return rootCmd
}

// newLogger builds the CLI logger. Reports go to stdout; diagnostics go
// to stderr so output stays pipeable.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
