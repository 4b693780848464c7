package frame

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
)

func TestRateMeterInitialEstimate(t *testing.T) {
	mock := clock.NewMock()
	r := NewRateMeter(mock, 60, 50*time.Millisecond)

	mock.Add(10 * time.Millisecond)
	fps, updated := r.Frame()

	assert.False(t, updated)
	assert.Equal(t, 60.0, fps)
}

func TestRateMeterWindow(t *testing.T) {
	mock := clock.NewMock()
	r := NewRateMeter(mock, 60, 50*time.Millisecond)

	var fps float64
	var updated bool
	for i := 0; i < 3; i++ {
		mock.Add(20 * time.Millisecond)
		fps, updated = r.Frame()
	}

	assert.True(t, updated)
	assert.InDelta(t, 50.0, fps, 1e-9)
	assert.InDelta(t, 50.0, r.FPS(), 1e-9)
}

func TestRateMeterTracksChange(t *testing.T) {
	mock := clock.NewMock()
	r := NewRateMeter(mock, 60, 50*time.Millisecond)

	for i := 0; i < 20; i++ {
		mock.Add(10 * time.Millisecond)
		r.Frame()
	}
	assert.InDelta(t, 100.0, r.FPS(), 1e-9)

	for i := 0; i < 20; i++ {
		mock.Add(25 * time.Millisecond)
		r.Frame()
	}
	assert.InDelta(t, 40.0, r.FPS(), 1e-9)
}

func TestRateMeterResetSkipsIdleTime(t *testing.T) {
	mock := clock.NewMock()
	r := NewRateMeter(mock, 60, 50*time.Millisecond)

	for i := 0; i < 10; i++ {
		mock.Add(10 * time.Millisecond)
		r.Frame()
	}
	assert.InDelta(t, 100.0, r.FPS(), 1e-9)

	mock.Add(10 * time.Second)
	r.Reset()

	mock.Add(10 * time.Millisecond)
	fps, updated := r.Frame()
	assert.False(t, updated)
	assert.InDelta(t, 100.0, fps, 1e-9)

	for i := 0; i < 5; i++ {
		mock.Add(10 * time.Millisecond)
		r.Frame()
	}
	assert.InDelta(t, 100.0, r.FPS(), 1e-9)
}
