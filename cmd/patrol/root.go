package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/internal/config"
	"github.com/katalvlaran/patrol/internal/logging"
	"github.com/katalvlaran/patrol/patrol"
	"github.com/katalvlaran/patrol/render"
	"github.com/katalvlaran/patrol/report"
)

// flags holds raw command-line values; only flags the user set override the config.
type flags struct {
	configPath string
	format     string
	maxSteps   int
	logLevel   string
	trace      bool
	traceDelay time.Duration
}

func rootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "patrol [input]",
		Short:         "Count the distinct cells a guard visits before leaving the map",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f, args)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
				return err
			}
			logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
				return err
			}
			if err := run(cmd, cfg, logger); err != nil {
				logger.Error("patrol failed", "input", cfg.Input, "error", err)
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
				return err
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	fl.StringVarP(&f.format, "format", "f", "text", "output format: text, json or yaml")
	fl.IntVar(&f.maxSteps, "max-steps", 0, "stop after this many steps (0 = unbounded)")
	fl.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fl.BoolVar(&f.trace, "trace", false, "draw the map after every step on stderr")
	fl.DurationVar(&f.traceDelay, "trace-delay", 50*time.Millisecond, "pause between traced frames")

	return cmd
}

// resolveConfig loads the config file and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command, f flags, args []string) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	fl := cmd.Flags()
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if fl.Changed("format") {
		cfg.Format = f.format
	}
	if fl.Changed("max-steps") {
		cfg.MaxSteps = f.maxSteps
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fl.Changed("trace") {
		cfg.Trace.Enabled = f.trace
	}
	if fl.Changed("trace-delay") {
		cfg.Trace.Delay = f.traceDelay
	}
	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	g, start, err := loadGrid(cmd, cfg.Input)
	if err != nil {
		return err
	}
	logger.Info("grid loaded",
		"input", cfg.Input,
		"width", g.Width,
		"height", g.Height,
		"obstacles", len(g.Obstacles()),
		"start", start.Position.String(),
		"facing", start.Direction.String(),
	)

	opts := []patrol.Option{patrol.WithMaxSteps(cfg.MaxSteps)}
	var renderer *render.Renderer
	if cfg.Trace.Enabled {
		ropts := []render.Option{render.WithDelay(cfg.Trace.Delay)}
		if cfg.Trace.Clear {
			ropts = append(ropts, render.WithClear())
		}
		if cfg.Trace.Color {
			ropts = append(ropts, render.WithColor())
		}
		renderer = render.New(cmd.ErrOrStderr(), ropts...)
		opts = append(opts, patrol.WithOnStep(renderer.Observer(g, start)))
	}
	if logger.Enabled(cmd.Context(), slog.LevelDebug) {
		opts = append(opts, patrol.WithOnStep(func(ev patrol.StepEvent) {
			logger.Debug("step",
				"n", ev.Step,
				"at", ev.After.Position.String(),
				"facing", ev.After.Direction.String(),
				"turns", ev.Rotations,
				"status", ev.Status.String(),
			)
		}))
	}

	e, err := patrol.New(g, start, opts...)
	if err != nil {
		return err
	}
	visited, err := e.Run()
	if err != nil {
		return err
	}
	if renderer != nil && renderer.Err() != nil {
		logger.Warn("trace output failed", "error", renderer.Err())
	}
	logger.Info("patrol finished", "visited", visited, "steps", e.Steps(), "rotations", e.Rotations())

	return report.Write(cmd.OutOrStdout(), format, report.FromEngine(e))
}

// loadGrid parses the grid from path, or from stdin when path is "-".
func loadGrid(cmd *cobra.Command, path string) (*grid.Grid, grid.Start, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, grid.Start{}, fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		r = file
	}
	g, start, err := grid.Parse(r)
	if err != nil {
		return nil, grid.Start{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, start, nil
}
