package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/agglom/config"
	"github.com/katalvlaran/agglom/linkage"
	"github.com/katalvlaran/agglom/metrics"
	"github.com/katalvlaran/agglom/pairs"
	"github.com/katalvlaran/agglom/point"
)

func newRunCmd() *cobra.Command {
	defaults := config.FromEnv(config.Default())
	cfg := defaults

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Cluster the input points and print the answers",
		Long: `Loads the points, then for each requested mode prints

  Part 1: <product of the three largest cluster sizes> in <elapsed>
  Part 2: <product of X of the coalescing pair> in <elapsed>

The Part 1 bound is 10 with --example and 1000 otherwise, unless --bound is set.
Every flag falls back to the matching AGGLOM_* environment variable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLinkage(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfg.Input, "input", "i", defaults.Input, "points file (default: probe inputs/day08/input.txt, input/day08.txt, inputs/day08.txt)")
	f.StringVarP(&cfg.Mode, "mode", "m", defaults.Mode, "bounded, unbounded or both")
	f.BoolVar(&cfg.Example, "example", defaults.Example, "use the example-scale bound (10 instead of 1000)")
	f.IntVar(&cfg.Bound, "bound", defaults.Bound, "explicit Part 1 bound; -1 derives it from --example")
	f.IntVar(&cfg.Workers, "workers", defaults.Workers, "distance-build goroutines (0 = GOMAXPROCS)")
	f.StringVar(&cfg.LogLevel, "log-level", defaults.LogLevel, "debug, info, warn or error")
	f.BoolVar(&cfg.Progress, "progress", defaults.Progress, "show a progress bar when stderr is a terminal")
	f.BoolVar(&cfg.Metrics, "metrics", defaults.Metrics, "dump merge-step metrics to stderr after the run")

	return cmd
}

func runLinkage(ctx context.Context, stdout, stderr io.Writer, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("run", uuid.NewString()))

	path := cfg.Input
	if path == "" {
		if path, err = point.Locate(); err != nil {
			return err
		}
	}
	pts, err := point.Load(path)
	if err != nil {
		return err
	}
	logger.Info("points loaded", zap.String("input", path), zap.Int("points", len(pts)))

	var rec *metrics.Recorder
	if cfg.Metrics {
		rec = metrics.NewRecorder()
	}

	for _, mode := range cfg.Modes() {
		var hooks []func(linkage.Step) error
		if rec != nil {
			hooks = append(hooks, rec.OnMerge)
		}
		bar := newProgressBar(cfg.Progress, progressTotal(mode, cfg.EffectiveBound(), len(pts)), mode.String())
		if bar != nil {
			hooks = append(hooks, func(linkage.Step) error { return bar.Add(1) })
		}

		start := time.Now()
		res, err := linkage.Run(pts,
			linkage.WithContext(ctx),
			linkage.WithMode(mode),
			linkage.WithBound(cfg.EffectiveBound()),
			linkage.WithWorkers(cfg.Workers),
			linkage.WithLogger(logger),
			linkage.WithOnMerge(chainHooks(hooks)),
		)
		elapsed := time.Since(start)
		if bar != nil {
			_ = bar.Finish()
		}
		if err != nil {
			return fmt.Errorf("%s: %w", mode, err)
		}
		fmt.Fprintf(stdout, "Part %d: %d in %s\n", partNumber(mode), res.Value, elapsed.Round(time.Microsecond))
	}

	if rec != nil {
		return rec.WriteText(stderr)
	}

	return nil
}

func partNumber(m linkage.Mode) int {
	if m == linkage.Unbounded {
		return 2
	}
	return 1
}

// progressTotal is the number of steps a run can take at most; -1 when unknown.
func progressTotal(m linkage.Mode, bound, n int) int {
	total := pairs.Count(n)
	if m == linkage.Bounded && bound < total {
		return bound
	}
	if m == linkage.Unbounded {
		return -1
	}
	return total
}

// newProgressBar returns nil unless enabled and stderr is a terminal.
func newProgressBar(enabled bool, total int, label string) *progressbar.ProgressBar {
	if !enabled || !isatty.IsTerminal(os.Stderr.Fd()) {
		return nil
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Merging "+label),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
}

// chainHooks calls every hook in order and stops at the first error.
func chainHooks(hooks []func(linkage.Step) error) func(linkage.Step) error {
	if len(hooks) == 0 {
		return nil
	}

	return func(s linkage.Step) error {
		for _, h := range hooks {
			if err := h(s); err != nil {
				return err
			}
		}
		return nil
	}
}
