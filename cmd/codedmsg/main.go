// Package main is the codedmsg command: it prints the largest number
// divisible by 3 that the given digits can form.
//
// Usage:
//
//	codedmsg 3 6 5 1 8          # 8631
//	codedmsg --explain 8 5 5 2 2
//	codedmsg --strict 4 11      # error: digit out of range
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/codedmsg"
)

// newRootCmd builds the command tree. Flag state lives in the closure so
// each invocation (and each test) starts clean.
func newRootCmd() *cobra.Command {
	var (
		verbose bool
		strict  bool
		explain bool
		logger  = zap.NewNop()
	)

	cmd := &cobra.Command{
		Use:   "codedmsg [digits...]",
		Short: "Largest multiple of 3 formed from a set of digits",
		Long: `codedmsg reads digits as positional arguments and prints the largest
number divisible by 3 that can be formed from them, each digit used at most
once. At most two digits are dropped; 0 is printed when nothing remains.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			digits, err := parseDigits(args)
			if err != nil {
				return err
			}

			opts := []codedmsg.Option{codedmsg.WithLogger(logger)}
			if strict {
				opts = append(opts, codedmsg.WithStrictDigits())
			}
			res, err := codedmsg.Largest(digits, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.Value)
			if explain {
				fmt.Fprintf(out, "digits: %v\n", res.Digits)
				fmt.Fprintf(out, "removed: %v\n", res.Removed)
				fmt.Fprintf(out, "feasible: %t\n", res.Feasible)
			}

			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject values outside 0-9")
	cmd.Flags().BoolVar(&explain, "explain", false, "Also print surviving and removed digits")

	return cmd
}

// parseDigits converts positional arguments into integers.
func parseDigits(args []string) ([]int, error) {
	digits := make([]int, 0, len(args))
	for i, a := range args {
		d, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: invalid digit %q", i+1, a)
		}
		digits = append(digits, d)
	}

	return digits, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
