package frame

import (
	"time"

	"github.com/benbjohnson/clock"
)

// RateMeter estimates frames per second from frame counts over a sliding
// measurement window. Until the first window closes it reports the initial
// estimate.
type RateMeter struct {
	clock    clock.Clock
	interval time.Duration
	fps      float64
	frames   int
	last     time.Time
}

func NewRateMeter(clk clock.Clock, initial float64, interval time.Duration) *RateMeter {
	return &RateMeter{
		clock:    clk,
		interval: interval,
		fps:      initial,
		last:     clk.Now(),
	}
}

// Frame records one frame. It reports the current estimate and whether the
// estimate was refreshed by this frame.
func (r *RateMeter) Frame() (float64, bool) {
	r.frames++
	now := r.clock.Now()
	elapsed := now.Sub(r.last)
	if elapsed <= r.interval {
		return r.fps, false
	}
	r.fps = float64(r.frames) / elapsed.Seconds()
	r.frames = 0
	r.last = now
	return r.fps, true
}

func (r *RateMeter) FPS() float64 { return r.fps }

// Reset restarts the measurement window from now, keeping the last estimate.
// Call it after a pause so idle time is not counted as one slow frame.
func (r *RateMeter) Reset() {
	r.frames = 0
	r.last = r.clock.Now()
}
