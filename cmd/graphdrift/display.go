package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finnegancarroll/graphdrift/internal/config"
	"github.com/finnegancarroll/graphdrift/internal/export"
	"github.com/finnegancarroll/graphdrift/internal/gpu"
	"github.com/finnegancarroll/graphdrift/internal/logging"
	"github.com/finnegancarroll/graphdrift/internal/viz"
	"github.com/finnegancarroll/graphdrift/internal/window"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runBackend(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	switch cfg.Backend {
	case config.BackendGL:
		return showGL(cmd.Context(), cfg)
	case config.BackendTerminal:
		return showLive(cmd.Context(), cfg)
	default:
		return showWindow(cmd.Context(), cfg)
	}
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return showWindow(cmd.Context(), cfg)
}

func runGL(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return showGL(cmd.Context(), cfg)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return showLive(cmd.Context(), cfg)
}

func showWindow(ctx context.Context, cfg *config.Config) error {
	loop, err := newLoop(cfg, cfg.FrameConfig())
	if err != nil {
		return err
	}
	line, _ := cfg.LineRGBA()
	bg, _ := cfg.BackgroundRGBA()

	logger.Info("opening window", zap.Int("width", cfg.Window.Width), zap.Int("height", cfg.Window.Height))
	return window.Run(ctx, loop, window.Options{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		Resizable: cfg.Window.Resizable,
		MaxFrames: cfg.MaxFrames,
		Style: window.Style{
			Line:       line,
			Background: bg,
			LineWidth:  float32(cfg.Style.LineWidth),
			Antialias:  cfg.Style.Antialias,
		},
	})
}

func showGL(ctx context.Context, cfg *config.Config) error {
	if !gpu.Available {
		return fmt.Errorf("%w: rebuild with -tags raylib", gpu.ErrContextUnavailable)
	}
	loop, err := newLoop(cfg, cfg.FrameConfig())
	if err != nil {
		return err
	}
	line, _ := cfg.LineRGBA()
	bg, _ := cfg.BackgroundRGBA()

	targetFPS := 0
	if cfg.FrameInterval > 0 {
		targetFPS = int(time.Second / cfg.FrameInterval)
	}

	return gpu.Run(ctx, loop, gpu.HostOptions{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		Resizable: cfg.Window.Resizable,
		TargetFPS: targetFPS,
		MaxFrames: cfg.MaxFrames,
		Style: gpu.Style{
			Line:           line,
			Background:     bg,
			SampleCoverage: float32(cfg.Style.SampleCoverage),
			Antialias:      cfg.Style.Antialias,
		},
	}, logger.Named("gpu"))
}

func showLive(ctx context.Context, cfg *config.Config) error {
	// The terminal view owns the screen, so nothing may log to stderr.
	logger = logging.NewNop()

	loop, err := newLoop(cfg, cfg.FrameConfig())
	if err != nil {
		return err
	}
	return viz.Run(ctx, loop, cfg.Policy, theme, cfg.MaxFrames)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.MaxFrames == 0 {
		cfg.MaxFrames = 120
	}

	loop, err := simulatedLoop(cfg)
	if err != nil {
		return err
	}
	if _, err := loop.Run(cmd.Context(), frameRun(cfg, false)); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	line, _ := cfg.LineRGBA()
	bg, _ := cfg.BackgroundRGBA()
	style := export.Style{Line: line, Background: bg, LineWidth: cfg.Style.LineWidth}

	if err := export.WriteFile(snapshotOut, loop.Last().Segments, cfg.Window.Width, cfg.Window.Height, style); err != nil {
		return err
	}
	fmt.Printf("frame %d written to %s\n", loop.Frame(), snapshotOut)
	return nil
}
