package frame

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/finnegancarroll/graphdrift/internal/motion"
	"github.com/finnegancarroll/graphdrift/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScene(t *testing.T) *scene.Scene {
	t.Helper()
	s, err := scene.FromTopology("default")
	require.NoError(t, err)
	s.Randomize(rand.New(rand.NewPCG(1, 1)))
	return s
}

// advancingRenderer moves the mock clock one frame per render.
func advancingRenderer(mock *clock.Mock, frame time.Duration, frames *int) Renderer {
	return RendererFunc(func(segments []float32) error {
		*frames++
		mock.Add(frame)
		return nil
	})
}

func mockConfig(mock *clock.Mock) Config {
	cfg := DefaultConfig()
	cfg.Clock = mock
	return cfg
}

func TestLoopRunBounded(t *testing.T) {
	mock := clock.NewMock()
	var drawn int
	loop, err := New(newScene(t), motion.NewIntegrator(motion.Discard), advancingRenderer(mock, 16*time.Millisecond, &drawn), mockConfig(mock))
	require.NoError(t, err)

	result, err := loop.Run(context.Background(), RunConfig{MaxFrames: 30})
	require.NoError(t, err)

	assert.Equal(t, 30, result.Frames)
	assert.Equal(t, 30, drawn)
	assert.Equal(t, 30, loop.Frame())
	assert.Equal(t, 480*time.Millisecond, result.Elapsed)
	assert.InDelta(t, 62.5, loop.FPS(), 1e-9)
}

func TestLoopRendersAssembledSegments(t *testing.T) {
	var got []int
	r := RendererFunc(func(segments []float32) error {
		got = append(got, len(segments))
		return nil
	})
	loop, err := New(newScene(t), motion.NewIntegrator(motion.Discard), r, mockConfig(clock.NewMock()))
	require.NoError(t, err)

	require.NoError(t, loop.Tick())
	require.NoError(t, loop.Tick())

	assert.Equal(t, []int{116, 116}, got)
}

func TestLoopMovesPoints(t *testing.T) {
	s := newScene(t)
	before := s.Clone()
	loop, err := New(s, motion.NewIntegrator(motion.Discard), nil, mockConfig(clock.NewMock()))
	require.NoError(t, err)

	require.NoError(t, loop.Tick())

	assert.NotEqual(t, before.Points, s.Points)
	last := loop.Last()
	assert.Equal(t, 0, last.Frame)
	assert.InDelta(t, motion.Timestep(60, 20), last.Timestep, 1e-12)
}

func TestLoopCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var drawn int
	r := RendererFunc(func([]float32) error {
		drawn++
		if drawn == 3 {
			cancel()
		}
		return nil
	})
	loop, err := New(newScene(t), motion.NewIntegrator(motion.Discard), r, mockConfig(clock.NewMock()))
	require.NoError(t, err)

	result, err := loop.Run(ctx, RunConfig{})
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, result)
	assert.Equal(t, 3, result.Frames)
}

func TestLoopRenderError(t *testing.T) {
	boom := errors.New("surface lost")
	r := RendererFunc(func([]float32) error { return boom })
	loop, err := New(newScene(t), motion.NewIntegrator(motion.Discard), r, mockConfig(clock.NewMock()))
	require.NoError(t, err)

	result, err := loop.Run(context.Background(), RunConfig{MaxFrames: 5})
	assert.ErrorIs(t, err, boom)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, 0, renderErr.Frame)
	assert.Equal(t, 0, result.Frames)
}

func TestLoopPacedByTicker(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Clock = clock.New()
	loop, err := New(newScene(t), motion.NewIntegrator(motion.Discard), nil, cfg)
	require.NoError(t, err)

	result, err := loop.Run(context.Background(), RunConfig{MaxFrames: 5, Interval: time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Frames)
	assert.GreaterOrEqual(t, result.Elapsed, 4*time.Millisecond)
}

func TestLoopRecord(t *testing.T) {
	loop, err := New(newScene(t), motion.NewIntegrator(motion.Discard), nil, mockConfig(clock.NewMock()))
	require.NoError(t, err)

	result, err := loop.Run(context.Background(), RunConfig{MaxFrames: 4, Record: true})
	require.NoError(t, err)

	require.Len(t, result.Records, 4)
	for i, rec := range result.Records {
		assert.Equal(t, i, rec.Frame)
		assert.Len(t, rec.Positions, 24)
	}
	assert.Equal(t, loop.Scene().Flatten(), result.Records[3].Positions)
}

type countingMetric struct {
	frames int
	resets int
}

func (c *countingMetric) Name() string   { return "count" }
func (c *countingMetric) Observe(Sample) { c.frames++ }
func (c *countingMetric) Value() float64 { return float64(c.frames) }
func (c *countingMetric) Reset()         { c.frames = 0; c.resets++ }

type sampleObserver struct{ frames []int }

func (o *sampleObserver) OnFrame(s Sample) { o.frames = append(o.frames, s.Frame) }

func TestLoopMetricsAndObservers(t *testing.T) {
	loop, err := New(newScene(t), motion.NewIntegrator(motion.Discard), nil, mockConfig(clock.NewMock()))
	require.NoError(t, err)

	m := &countingMetric{}
	obs := &sampleObserver{}
	loop.AddMetric(m)
	loop.AddObserver(obs)

	result, err := loop.Run(context.Background(), RunConfig{MaxFrames: 6})
	require.NoError(t, err)

	assert.Equal(t, 1, m.resets)
	assert.Equal(t, 6.0, result.Metrics["count"])
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, obs.frames)
}

func TestLoopInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero cross seconds", Config{CrossSeconds: 0, InitialFPS: 60, RateInterval: time.Millisecond}},
		{"negative fps", Config{CrossSeconds: 20, InitialFPS: -1, RateInterval: time.Millisecond}},
		{"zero interval", Config{CrossSeconds: 20, InitialFPS: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(newScene(t), motion.NewIntegrator(motion.Discard), nil, tt.cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoopInvalidRunConfig(t *testing.T) {
	loop, err := New(newScene(t), motion.NewIntegrator(motion.Discard), nil, mockConfig(clock.NewMock()))
	require.NoError(t, err)

	_, err = loop.Run(context.Background(), RunConfig{MaxFrames: -1})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = loop.Run(context.Background(), RunConfig{Interval: -time.Second})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoopRejectsBrokenScene(t *testing.T) {
	s := &scene.Scene{Points: []scene.Point{{0, 0}}, Velocities: []scene.Velocity{{0, 0}}, Edges: []scene.Edge{{A: 0, B: 4}}}
	_, err := New(s, motion.NewIntegrator(motion.Discard), nil, DefaultConfig())
	assert.ErrorIs(t, err, scene.ErrInvalidEdge)
}

func TestLoopRunCapsRecordPreallocation(t *testing.T) {
	mock := clock.NewMock()
	loop, err := New(newScene(t), motion.NewIntegrator(motion.Discard), nil, mockConfig(mock))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := loop.Run(ctx, RunConfig{MaxFrames: 2_000_000_000, Record: true})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, result.Frames)
	assert.LessOrEqual(t, cap(result.Records), maxRecordPrealloc)
}
