package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/avatarforge/internal/config"
	"github.com/vmunix/avatarforge/internal/history"
	"github.com/vmunix/avatarforge/internal/host"
	"github.com/vmunix/avatarforge/internal/material"
	"github.com/vmunix/avatarforge/internal/pipeline"
	"github.com/vmunix/avatarforge/internal/runlog"
	"github.com/vmunix/avatarforge/internal/scene"
)

var runCmd = &cobra.Command{
	Use:   "run [input [output [done [failed]]]]",
	Short: "Convert every avatar in the input folder",
	Long: `Convert every avatar in the input folder.

Positional arguments override the dirs section of the config file.
Processed sources move to the done folder, failures to the failed
folder; per-format exports land in subfolders of the output folder.`,
	Args: cobra.MaximumNArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := runBatch(args)
		if err != nil {
			return err
		}
		if summary.Failed > 0 {
			os.Exit(2)
		}
		return nil
	},
}

func runBatch(args []string) (pipeline.Summary, error) {
	var zero pipeline.Summary

	cfg, err := loadConfig()
	if err != nil {
		return zero, err
	}
	applyOverrides(cfg, args)

	if errs := cfg.Validate(); len(errs) > 0 {
		return zero, &config.ConfigError{Path: configPath, Errors: errs}
	}

	dirs := pipeline.Dirs{
		Input:  cfg.Dirs.Input,
		Output: cfg.Dirs.Output,
		Done:   cfg.Dirs.Done,
		Failed: cfg.Dirs.Failed,
	}
	for _, d := range []string{dirs.Input, dirs.Output, dirs.Done, dirs.Failed} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return zero, fmt.Errorf("create dir %s: %w", d, err)
		}
	}

	level := runlog.ParseLevel(cfg.Log.Level)

	logFile, err := runlog.Open(dirs.Output, time.Now())
	if err != nil {
		return zero, err
	}
	defer func() { _ = logFile.Close() }()

	logger := slog.New(runlog.NewFanout(
		slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}),
		runlog.NewHandler(logFile, level),
	))

	var recorder pipeline.Recorder
	if !cfg.History.Disabled {
		path := cfg.History.Path
		if path == "" {
			path = filepath.Join(dirs.Output, "history.db")
		}
		store, err := history.Open(path)
		if err != nil {
			logger.Warn("history store unavailable", "path", path, "error", err)
		} else {
			defer func() { _ = store.Close() }()
			recorder = store
		}
	}

	reg := host.NewRegistry()
	registerHost(reg, logger)

	ws := scene.New(logger.With("component", "scene"))
	ws.Interactive = !noInteractive

	runner := pipeline.NewRunner(reg, ws, pipeline.Config{
		Dirs:          dirs,
		Interactive:   !noInteractive && !cfg.Rig.Disabled,
		ShaderMarkers: cfg.Shader.Markers,
		Transparency: material.Policy{
			ClipSubstrings: cfg.Transparency.ClipNames,
			AlphaThreshold: cfg.Transparency.AlphaThreshold,
		},
	}, recorder, logger.With("component", "pipeline"))

	logger.Info("batch starting",
		"input", dirs.Input,
		"output", dirs.Output,
		"log", logFile.Name(),
		"interactive", !noInteractive && !cfg.Rig.Disabled,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	var summary pipeline.Summary
	g.Go(func() error {
		s, err := runner.Run(ctx)
		summary = s
		return err
	})
	if err := g.Wait(); err != nil {
		return zero, err
	}

	logger.Info("batch finished",
		"total", summary.Total,
		"rigged", summary.Rigged,
		"fallback", summary.Fallback,
		"failed", summary.Failed,
	)
	return summary, nil
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

// applyOverrides layers command-line values over the config file.
func applyOverrides(cfg *config.Config, args []string) {
	if len(args) > 0 {
		cfg.Dirs.Input = args[0]
	}
	if len(args) > 1 {
		cfg.Dirs.Output = args[1]
	}
	if len(args) > 2 {
		cfg.Dirs.Done = args[2]
	}
	if len(args) > 3 {
		cfg.Dirs.Failed = args[3]
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
}
