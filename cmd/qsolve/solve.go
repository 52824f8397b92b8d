package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qsolve/config"
	"github.com/katalvlaran/qsolve/hhl"
)

var emitQASM bool

var solveCmd = &cobra.Command{
	Use:   "solve [config.yaml]",
	Short: "Build (and in exact_simulation mode run) the solver circuit",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&emitQASM, "qasm", false, "Print the assembled circuit as OpenQASM 2.0")
}

func runSolve(cmd *cobra.Command, args []string) error {
	doc, err := config.Load(args[0])
	if err != nil {
		return err
	}

	solver, err := doc.Build()
	if err != nil {
		return err
	}
	numQ, numA := solver.RegisterSizes()
	logger.Debug("solver configured",
		zap.String("mode", solver.Mode().String()),
		zap.Int("num_q", numQ),
		zap.Int("num_a", numA),
	)

	out, err := solver.Run(cmd.Context())
	if err != nil {
		return err
	}
	logger.Info("circuit assembled",
		zap.Int("qubits", out.Circuit.NumQubits()),
		zap.Int("gates", out.Circuit.NumGates()),
	)

	if emitQASM {
		fmt.Fprint(cmd.OutOrStdout(), out.Circuit.QASM())
	}

	if out.Mode == hhl.ModeExactSimulation {
		keys := make([]string, 0, len(out.Solution))
		for k := range out.Solution {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "|%s> % .6f\n", k, out.Solution[k])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "success probability %.6f\n", out.SuccessProbability)
	}

	return nil
}
