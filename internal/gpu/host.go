//go:build raylib

package gpu

import (
	"context"

	"github.com/finnegancarroll/graphdrift/internal/frame"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Available reports whether this build can open a GL window.
const Available = true

// Run opens a raylib window, builds the line pipeline and drives loop until
// the window closes or ctx is done. Setup failures are returned before the
// first frame.
func Run(ctx context.Context, loop *frame.Loop, opts HostOptions, logger *zap.Logger) error {
	flags := uint32(rl.FlagMsaa4xHint)
	if opts.Resizable {
		flags |= rl.FlagWindowResizable
	}
	rl.SetConfigFlags(flags)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()

	if !rl.IsWindowReady() {
		logger.Error("window not ready", zap.Error(ErrContextUnavailable))
		return ErrContextUnavailable
	}
	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(int32(opts.TargetFPS))

	pipeline, err := NewPipeline(opts.Style)
	if err != nil {
		logger.Error("gl pipeline setup failed", zap.Error(err))
		return err
	}
	defer pipeline.Close()
	logger.Info("gl pipeline ready", zap.Uint32("program", pipeline.Program))

	// The surface is re-read every frame so resizes take effect.
	loop.SetRenderer(frame.RendererFunc(func(segments []float32) error {
		pipeline.Draw(segments, int32(rl.GetRenderWidth()), int32(rl.GetRenderHeight()))
		return nil
	}))

	for !rl.WindowShouldClose() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		rl.BeginDrawing()
		err := loop.Tick()
		rl.EndDrawing()
		if err != nil {
			return err
		}
		if opts.MaxFrames > 0 && loop.Frame() >= opts.MaxFrames {
			return nil
		}
	}
	return nil
}
