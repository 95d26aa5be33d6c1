// Command signet analyzes fully signed networks from labeled CSV
// adjacency matrices: it counts stable and unstable triads under social
// balance theory, and can generate synthetic fixtures.
//
// Usage:
//
//	signet count network.csv -o report.txt
//	signet gen 200 --neg 0.3 --seed 42 -o network.csv
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// logger reports progress on stderr so stdout stays clean for reports and
// generated CSV.
var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

var rootCmd = &cobra.Command{
	Use:           "signet",
	Short:         "Triad stability analysis for fully signed networks",
	Long:          "signet classifies every triad of a fully signed network as stable or unstable under social balance theory and reports a histogram by positive-edge count.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
