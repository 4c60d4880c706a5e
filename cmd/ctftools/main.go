// Command ctftools pokes at binaries: it disassembles hex strings, parses
// objdump output, runs commands through a pseudo terminal and finds the
// executable a challenge machine was set up with.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pboyd/reclass"
	"github.com/pboyd/reclass/hexbytes"
)

var (
	verbose bool
	timeout time.Duration
	// HexBytes methods to log calls of
	trace []string

	logger *zap.Logger
)

// buildLogger is replaced in tests.
var buildLogger = func(level zapcore.Level) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	return config.Build()
}

var rootCmd = &cobra.Command{
	Use:           "ctftools",
	Short:         "Helpers for poking at binaries",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zapcore.WarnLevel
		if verbose || len(trace) > 0 {
			level = zapcore.DebugLevel
		}

		var err error
		logger, err = buildLogger(level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		reclass.SetLogger(logger.Named("reclass"))

		// LogCalls skips methods that are already traced, so repeated runs
		// in one process don't stack wrappers.
		if len(trace) > 0 {
			if _, err := reclass.LogCalls.With(trace...)(hexbytes.Class); err != nil {
				return fmt.Errorf("unable to trace %v: %w", trace, err)
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "Limit for commands that run other programs")
	rootCmd.PersistentFlags().StringSliceVar(&trace, "trace", nil, "Log calls of these HexBytes methods")

	rootCmd.AddCommand(disasmCmd)
	rootCmd.AddCommand(objdumpCmd)
}

// exitError carries the exit code of a command that ran and failed.
type exitError int

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var code exitError
		if errors.As(err, &code) {
			os.Exit(int(code))
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
