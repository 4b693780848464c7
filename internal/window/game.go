// Package window shows the animation in a desktop window using ebiten.
package window

import (
	"context"
	"image/color"

	"github.com/finnegancarroll/graphdrift/internal/frame"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Style struct {
	Line       color.RGBA
	Background color.RGBA
	LineWidth  float32
	Antialias  bool
}

type Options struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	MaxFrames int
	Style     Style
}

// Game steps the loop once per displayed frame and strokes the latest
// segments onto the screen.
type Game struct {
	ctx       context.Context
	loop      *frame.Loop
	style     Style
	maxFrames int
	segments  []float32
}

func NewGame(ctx context.Context, loop *frame.Loop, style Style, maxFrames int) *Game {
	g := &Game{ctx: ctx, loop: loop, style: style, maxFrames: maxFrames}
	loop.SetRenderer(frame.RendererFunc(func(segments []float32) error {
		g.segments = append(g.segments[:0], segments...)
		return nil
	}))
	return g
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return g.step()
}

func (g *Game) step() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if err := g.loop.Tick(); err != nil {
		return err
	}
	if g.maxFrames > 0 && g.loop.Frame() >= g.maxFrames {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.style.Background)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	for i := 0; i+3 < len(g.segments); i += 4 {
		x0, y0 := ToPixels(g.segments[i], g.segments[i+1], w, h)
		x1, y1 := ToPixels(g.segments[i+2], g.segments[i+3], w, h)
		vector.StrokeLine(screen, x0, y0, x1, y1, g.style.LineWidth, g.style.Line, g.style.Antialias)
	}
}

// Layout follows the outside size so the drawing tracks window resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// ToPixels maps normalized device coordinates (y up) to screen pixels
// (y down).
func ToPixels(x, y float32, width, height int) (float32, float32) {
	return (x + 1) / 2 * float32(width), (1 - y) / 2 * float32(height)
}

// Run blocks until the window closes, ctx is done or the frame budget is
// spent.
func Run(ctx context.Context, loop *frame.Loop, opts Options) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	if opts.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(ebiten.SyncWithFPS)

	return ebiten.RunGame(NewGame(ctx, loop, opts.Style, opts.MaxFrames))
}
