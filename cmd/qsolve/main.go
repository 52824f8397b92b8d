// Command qsolve assembles and simulates linear-system solver circuits
// described by a YAML document.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "qsolve",
	Short: "Quantum linear-system solver circuits",
	Long: `qsolve builds the circuit of the quantum linear-system algorithm
(phase estimation, reciprocal rotation, un-computation) for a symmetric
matrix described in YAML, and optionally runs it on the exact simulator.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.AddCommand(solveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
