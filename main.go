// Command metafilter filters a deck of cards through a composed predicate and
// prints the cards that pass.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/asaidimu/go-metafilter/core/card"
	"github.com/asaidimu/go-metafilter/core/config"
	"github.com/asaidimu/go-metafilter/core/filter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Exit codes
const (
	ExitSuccess      = 0
	ExitConfigError  = 1
	ExitRuntimeError = 3
)

var (
	verbose bool
	workers int

	// Build information (set via ldflags during build)
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// exitError carries the exit code a failed command should terminate with.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	cmd := newRootCmd(os.Stdout)
	if err := cmd.Execute(); err != nil {
		code := ExitRuntimeError
		var ee *exitError
		if errors.As(err, &ee) {
			code = ee.code
		}
		os.Exit(code)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "metafilter",
		Short: "Filter a card deck through composed predicates",
		Long: `metafilter applies a cost range, a version set and a leader set,
combined with logical AND, to a deck of cards and prints the matches.

Without a configuration file the built-in scenario is used: the five-card
sample deck, versions 1 and 3, cost below 50.

Examples:
  metafilter run
  metafilter run deck.yaml
  metafilter run --workers 4 --verbose deck.json`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	runCmd := &cobra.Command{
		Use:   "run [config-file]",
		Short: "Filter the deck and print the matching cards",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd.Context(), stdout, args)
		},
	}
	runCmd.Flags().IntVarP(&workers, "workers", "w", 1, "Number of goroutines used for the filter pass")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(stdout, "metafilter %s (commit %s, built %s)\n", version, commit, buildDate)
		},
	}

	rootCmd.AddCommand(runCmd, versionCmd)
	return rootCmd
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func runFilter(ctx context.Context, stdout io.Writer, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger, err := newLogger()
	if err != nil {
		return &exitError{code: ExitRuntimeError, err: fmt.Errorf("failed to create logger: %w", err)}
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Default()
	if len(args) == 1 {
		cfg, err = config.Load(args[0])
		if err != nil {
			logger.Error("Failed to load config", zap.String("path", args[0]), zap.Error(err))
			return &exitError{code: ExitConfigError, err: err}
		}
		logger.Info("Loaded config", zap.String("path", args[0]), zap.Int("cards", len(cfg.Cards)))
	}

	processor, err := filter.NewProcessor[*card.Card](logger)
	if err != nil {
		return &exitError{code: ExitRuntimeError, err: err}
	}

	deck := cfg.Deck()
	var out []*card.Card
	var matched int
	if workers > 1 {
		matched, err = processor.FilterParallel(ctx, deck, cfg.BuildFilter(), &out, workers)
		if err != nil {
			return &exitError{code: ExitRuntimeError, err: err}
		}
	} else {
		matched = processor.Filter(deck, cfg.BuildFilter(), &out)
	}
	logger.Debug("Deck filtered", zap.Int("deck", len(deck)), zap.Int("matched", matched))

	if err := card.Report(stdout, out); err != nil {
		return &exitError{code: ExitRuntimeError, err: err}
	}
	return nil
}
