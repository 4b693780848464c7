package frame

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/finnegancarroll/graphdrift/internal/scene"
)

// Renderer draws one frame of line segments (x0, y0, x1, y1 per edge). The
// slice is reused by the loop and must not be retained.
type Renderer interface {
	Render(segments []float32) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(segments []float32) error

func (f RendererFunc) Render(segments []float32) error { return f(segments) }

// Sample describes a frame that has just been drawn.
type Sample struct {
	Frame       int
	Time        float64
	FPS         float64
	Timestep    float64
	Reflections int
	Scene       *scene.Scene
	Segments    []float32
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(s Sample)
}

type Config struct {
	// CrossSeconds is how long an average vertex takes to cross the surface.
	CrossSeconds float64
	// InitialFPS is reported until the first rate window closes.
	InitialFPS float64
	// RateInterval is the frame-rate measurement window.
	RateInterval time.Duration
	// Clock defaults to the wall clock.
	Clock clock.Clock
}

func DefaultConfig() Config {
	return Config{
		CrossSeconds: 20,
		InitialFPS:   60,
		RateInterval: 50 * time.Millisecond,
	}
}

type RunConfig struct {
	// MaxFrames stops the run after that many frames; 0 runs until the
	// context is cancelled.
	MaxFrames int
	// Interval paces frames with a ticker; 0 runs them back to back.
	Interval time.Duration
	// Record keeps every frame's point positions in the result.
	Record bool
}

// Record is one recorded frame.
type Record struct {
	Frame     int       `json:"frame"`
	Time      float64   `json:"time"`
	FPS       float64   `json:"fps"`
	Positions []float64 `json:"positions"`
}

type Result struct {
	Frames      int
	Reflections int
	Elapsed     time.Duration
	Records     []Record
	Metrics     map[string]float64
}
