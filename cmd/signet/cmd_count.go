package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/signet/csvio"
	"github.com/katalvlaran/signet/triad"
)

var (
	countOutput    string
	countThreshold int
	countWorkers   int
)

var countCmd = &cobra.Command{
	Use:   "count <input.csv>",
	Short: "Count stable and unstable triads of a CSV network",
	Args:  cobra.ExactArgs(1),
	RunE:  runCount,
}

func init() {
	countCmd.Flags().StringVarP(&countOutput, "output", "o", "", "report file (default: stdout)")
	countCmd.Flags().IntVar(&countThreshold, "parallel-threshold", triad.DefaultParallelThreshold,
		"use the parallel path when the node count exceeds this")
	countCmd.Flags().IntVar(&countWorkers, "workers", 0, "parallel workers (0 = all CPUs)")
	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	input := args[0]

	m, err := csvio.LoadFile(input)
	if err != nil {
		return fmt.Errorf("loading %s: %w", input, err)
	}
	logger.Info("network loaded",
		"input", input,
		"nodes", m.NodeCount(),
		"triads", triad.TriadTotal(m.NodeCount()))

	opts := triad.Options{ParallelThreshold: countThreshold, Workers: countWorkers}
	counts, err := triad.Count(m, opts)
	if err != nil {
		return fmt.Errorf("counting triads: %w", err)
	}
	logger.Info("triads classified",
		"total", counts.Total(),
		"stable", counts.Stable(),
		"unstable", counts.Unstable())

	var out io.Writer = cmd.OutOrStdout()
	if countOutput != "" {
		f, err := os.Create(countOutput)
		if err != nil {
			return fmt.Errorf("creating %s: %w", countOutput, err)
		}
		defer f.Close()
		out = f
	}

	if err = csvio.Format(out, counts); err != nil {
		return err
	}
	if countOutput != "" {
		logger.Info("report written", "output", countOutput)
	}

	return nil
}
