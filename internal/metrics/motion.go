package metrics

import (
	"math"

	"github.com/finnegancarroll/graphdrift/internal/frame"
	"github.com/finnegancarroll/graphdrift/internal/scene"
)

type Reflections struct {
	name  string
	total int
}

func NewReflections() *Reflections {
	return &Reflections{name: "reflections"}
}

func (r *Reflections) Name() string { return r.name }

func (r *Reflections) Observe(s frame.Sample) {
	r.total += s.Reflections
}

func (r *Reflections) Value() float64 { return float64(r.total) }

func (r *Reflections) Reset() { r.total = 0 }

// MaxDisplacement is the largest single-frame change of any coordinate.
type MaxDisplacement struct {
	name string
	prev []scene.Point
	max  float64
}

func NewMaxDisplacement() *MaxDisplacement {
	return &MaxDisplacement{name: "max_displacement"}
}

func (m *MaxDisplacement) Name() string { return m.name }

func (m *MaxDisplacement) Observe(s frame.Sample) {
	points := s.Scene.Points
	if len(m.prev) == len(points) {
		for i, p := range points {
			for axis := 0; axis < 2; axis++ {
				m.max = math.Max(m.max, math.Abs(float64(p[axis]-m.prev[i][axis])))
			}
		}
	}
	m.prev = append(m.prev[:0], points...)
}

func (m *MaxDisplacement) Value() float64 { return m.max }

func (m *MaxDisplacement) Reset() {
	m.prev = m.prev[:0]
	m.max = 0
}

// Defaults returns the metrics reported after every run.
func Defaults() []frame.Metric {
	return []frame.Metric{
		NewReflections(),
		NewMeanFPS(),
		NewMaxDisplacement(),
		NewOutOfBounds(),
	}
}
