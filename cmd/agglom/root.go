package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "agglom",
		Short: "greedy single-linkage clustering of 3-D integer points",
		Long: `
agglom reads one "x,y,z" point per line and merges points pairwise by
increasing Euclidean distance.

  run    prints Part 1 (product of the three largest cluster sizes after a
         fixed number of merges) and Part 2 (product of the X coordinates of
         the pair that joins every point into one cluster).
  order  prints the head of the global merge order.

Inputs may be plain text or .gz, .zst or .lz4 compressed.
`,
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newOrderCmd(), newVersionCmd(version))

	return root
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

// newLogger builds a stderr zap logger: development encoding at debug level,
// production JSON otherwise.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}
