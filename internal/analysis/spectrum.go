package analysis

import (
	"math"
	"math/cmplx"

	"github.com/finnegancarroll/graphdrift/internal/frame"
	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of the first half of the spectrum of
// data after removing its mean and applying a Hann window.
func PowerSpectrum(data []float64) []float64 {
	n := len(data)
	if n < 2 {
		return nil
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(n)

	windowed := make([]float64, n)
	for i, v := range data {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		windowed[i] = (v - mean) * w
	}

	spectrum := fft.FFTReal(windowed)
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantPeriod returns the period, in samples, of the strongest non-DC
// frequency. ok is false for flat or too short series.
func DominantPeriod(data []float64) (period float64, ok bool) {
	ps := PowerSpectrum(data)
	if len(ps) < 2 {
		return 0, false
	}

	peak, peakMag := 0, 1e-9
	for k := 1; k < len(ps); k++ {
		if ps[k] > peakMag {
			peak, peakMag = k, ps[k]
		}
	}
	if peak == 0 {
		return 0, false
	}
	return float64(len(data)) / float64(peak), true
}

type VertexPeriod struct {
	Vertex   int
	XFrames  float64
	YFrames  float64
	// Seconds converts XFrames and YFrames using the mean frame interval.
	XSeconds float64
	YSeconds float64
}

// BouncePeriods estimates every vertex's bounce period per axis. Axes with
// no oscillation report 0.
func BouncePeriods(records []frame.Record) []VertexPeriod {
	if len(records) == 0 {
		return nil
	}

	frameSeconds := 0.0
	if n := len(records); n > 1 {
		frameSeconds = (records[n-1].Time - records[0].Time) / float64(n-1)
	}

	vertices := len(records[0].Positions) / 2
	periods := make([]VertexPeriod, vertices)
	for v := 0; v < vertices; v++ {
		xs := make([]float64, len(records))
		ys := make([]float64, len(records))
		for i, rec := range records {
			if 2*v+1 < len(rec.Positions) {
				xs[i] = rec.Positions[2*v]
				ys[i] = rec.Positions[2*v+1]
			}
		}

		p := VertexPeriod{Vertex: v}
		if px, ok := DominantPeriod(xs); ok {
			p.XFrames = px
			p.XSeconds = px * frameSeconds
		}
		if py, ok := DominantPeriod(ys); ok {
			p.YFrames = py
			p.YSeconds = py * frameSeconds
		}
		periods[v] = p
	}
	return periods
}
