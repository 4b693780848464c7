package frame

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/finnegancarroll/graphdrift/internal/lines"
	"github.com/finnegancarroll/graphdrift/internal/motion"
	"github.com/finnegancarroll/graphdrift/internal/scene"
	"go.uber.org/zap"
)

// maxRecordPrealloc caps the records reserved up front; longer runs grow
// the slice as frames arrive.
const maxRecordPrealloc = 4096

type Loop struct {
	scene      *scene.Scene
	integrator *motion.Integrator
	renderer   Renderer
	clock      clock.Clock
	rate       *RateMeter
	buf        *lines.Buffer
	cfg        Config
	metrics    []Metric
	observers  []Observer
	logger     *zap.Logger

	frame       int
	reflections int
	start       time.Time
	last        Sample
}

// New takes ownership of s. A nil renderer assembles segments without
// drawing them.
func New(s *scene.Scene, integrator *motion.Integrator, renderer Renderer, cfg Config) (*Loop, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if renderer == nil {
		renderer = RendererFunc(func([]float32) error { return nil })
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &Loop{
		scene:      s,
		integrator: integrator,
		renderer:   renderer,
		clock:      clk,
		rate:       NewRateMeter(clk, cfg.InitialFPS, cfg.RateInterval),
		buf:        lines.NewBuffer(len(s.Edges)),
		cfg:        cfg,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
		logger:     zap.NewNop(),
		start:      clk.Now(),
	}, nil
}

func (l *Loop) AddMetric(m Metric)     { l.metrics = append(l.metrics, m) }
func (l *Loop) AddObserver(o Observer) { l.observers = append(l.observers, o) }

func (l *Loop) SetLogger(logger *zap.Logger) {
	if logger != nil {
		l.logger = logger
	}
}

// SetRenderer swaps the renderer, e.g. once a host surface exists.
func (l *Loop) SetRenderer(r Renderer) {
	if r != nil {
		l.renderer = r
	}
}

// ResetRate restarts frame-rate measurement, e.g. when resuming from a pause.
func (l *Loop) ResetRate() { l.rate.Reset() }

func (l *Loop) Scene() *scene.Scene { return l.scene }
func (l *Loop) Frame() int          { return l.frame }
func (l *Loop) FPS() float64        { return l.rate.FPS() }

// Last returns the most recently drawn frame.
func (l *Loop) Last() Sample { return l.last }

// Tick advances and draws one frame.
func (l *Loop) Tick() error {
	fps, updated := l.rate.Frame()
	if updated {
		l.logger.Debug("frame rate updated", zap.Int("frame", l.frame), zap.Float64("fps", fps))
	}

	dt := motion.Timestep(fps, l.cfg.CrossSeconds)
	reflections := l.integrator.Step(l.scene, dt)
	segments := l.buf.Fill(l.scene)

	if err := l.renderer.Render(segments); err != nil {
		return &RenderError{Frame: l.frame, Wrapped: err}
	}

	l.last = Sample{
		Frame:       l.frame,
		Time:        l.clock.Since(l.start).Seconds(),
		FPS:         fps,
		Timestep:    dt,
		Reflections: reflections,
		Scene:       l.scene,
		Segments:    segments,
	}
	for _, m := range l.metrics {
		m.Observe(l.last)
	}
	for _, obs := range l.observers {
		obs.OnFrame(l.last)
	}

	if reflections > 0 {
		l.logger.Debug("boundary reflection", zap.Int("frame", l.frame), zap.Int("count", reflections))
	}
	l.reflections += reflections
	l.frame++
	return nil
}

// Run ticks until ctx is done or rc.MaxFrames frames have been drawn. On
// cancellation the partial result is returned with the context's error.
func (l *Loop) Run(ctx context.Context, rc RunConfig) (*Result, error) {
	if rc.MaxFrames < 0 {
		return nil, fmt.Errorf("%w: max frames must be non-negative, got %d", ErrInvalidConfig, rc.MaxFrames)
	}
	if rc.Interval < 0 {
		return nil, fmt.Errorf("%w: interval must be non-negative, got %v", ErrInvalidConfig, rc.Interval)
	}

	capacity := 0
	if rc.Record {
		capacity = min(rc.MaxFrames, maxRecordPrealloc)
	}
	result := &Result{
		Records: make([]Record, 0, capacity),
		Metrics: make(map[string]float64),
	}

	for _, m := range l.metrics {
		m.Reset()
	}

	var tick <-chan time.Time
	if rc.Interval > 0 {
		ticker := l.clock.Ticker(rc.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	started := l.clock.Now()
	startReflections := l.reflections
	finish := func() {
		result.Elapsed = l.clock.Since(started)
		result.Reflections = l.reflections - startReflections
		for _, m := range l.metrics {
			result.Metrics[m.Name()] = m.Value()
		}
	}

	l.logger.Debug("run started", zap.Int("max_frames", rc.MaxFrames), zap.Duration("interval", rc.Interval))

	for rc.MaxFrames == 0 || result.Frames < rc.MaxFrames {
		if tick != nil {
			select {
			case <-ctx.Done():
				finish()
				return result, ctx.Err()
			case <-tick:
			}
		} else {
			select {
			case <-ctx.Done():
				finish()
				return result, ctx.Err()
			default:
			}
		}

		if err := l.Tick(); err != nil {
			finish()
			return result, err
		}
		result.Frames++

		if rc.Record {
			result.Records = append(result.Records, Record{
				Frame:     l.last.Frame,
				Time:      l.last.Time,
				FPS:       l.last.FPS,
				Positions: l.scene.Flatten(),
			})
		}
	}

	finish()
	l.logger.Debug("run finished", zap.Int("frames", result.Frames), zap.Duration("elapsed", result.Elapsed))
	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.CrossSeconds <= 0 {
		return fmt.Errorf("%w: cross seconds must be positive, got %f", ErrInvalidConfig, cfg.CrossSeconds)
	}
	if cfg.InitialFPS < 0 {
		return fmt.Errorf("%w: initial fps must be non-negative, got %f", ErrInvalidConfig, cfg.InitialFPS)
	}
	if cfg.RateInterval <= 0 {
		return fmt.Errorf("%w: rate interval must be positive, got %v", ErrInvalidConfig, cfg.RateInterval)
	}
	return nil
}
