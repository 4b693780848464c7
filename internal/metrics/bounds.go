package metrics

import (
	"math"

	"github.com/finnegancarroll/graphdrift/internal/frame"
	"github.com/finnegancarroll/graphdrift/internal/motion"
)

// OutOfBounds is the fraction of frames in which any point sat outside
// [-1, 1]. It stays zero under the discard policy.
type OutOfBounds struct {
	name       string
	violations int
	samples    int
}

func NewOutOfBounds() *OutOfBounds {
	return &OutOfBounds{
		name: "out_of_bounds",
	}
}

func (o *OutOfBounds) Name() string { return o.name }

func (o *OutOfBounds) Observe(s frame.Sample) {
	o.samples++
	for _, p := range s.Scene.Points {
		if math.Abs(float64(p.X())) > motion.Bound || math.Abs(float64(p.Y())) > motion.Bound {
			o.violations++
			return
		}
	}
}

func (o *OutOfBounds) Value() float64 {
	if o.samples == 0 {
		return 0
	}
	return float64(o.violations) / float64(o.samples)
}

func (o *OutOfBounds) Reset() {
	o.violations = 0
	o.samples = 0
}
