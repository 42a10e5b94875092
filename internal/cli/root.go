package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/promptdeck/internal/registry"
	"github.com/dshills/promptdeck/internal/resolver"
)

const version = "0.1.0"

// Exit codes. Resolution failures get distinct codes so CI can branch on them.
const (
	ExitSuccess          = 0
	ExitRuntimeError     = 1
	ExitBudgetInfeasible = 2
	ExitGraphError       = 3
	ExitUnknownModule    = 4
)

var rootCmd = &cobra.Command{
	Use:           "promptdeck",
	Short:         "Prompt module composition and review scoring",
	Long:          "Promptdeck resolves review prompt modules into budget-fitting plans, composes them into a single prompt artifact, and scores review sessions into risk reports.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var flagVerbose bool

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// exitCodeFor maps domain errors to exit codes.
func exitCodeFor(err error) int {
	var budgetErr *resolver.BudgetInfeasibleError
	var cycleErr *registry.CyclicDependencyError
	var depErr *registry.InvalidDependencyError
	var unknownErr *registry.UnknownModuleError

	switch {
	case errors.As(err, &budgetErr):
		return ExitBudgetInfeasible
	case errors.As(err, &cycleErr), errors.As(err, &depErr):
		return ExitGraphError
	case errors.As(err, &unknownErr):
		return ExitUnknownModule
	}
	return ExitRuntimeError
}

// newLogger returns a stderr logger honoring the --verbose flag.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print promptdeck version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "promptdeck version %s\n", version)
	},
}
