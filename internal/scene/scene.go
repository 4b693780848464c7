package scene

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"
)

// Point is a position in normalized device coordinates.
type Point = mgl32.Vec2

// Velocity is the per-axis rate of change of a Point.
type Velocity = mgl32.Vec2

// Edge connects two points by index. Several edges may share a point.
type Edge struct {
	A int `yaml:"a" json:"a"`
	B int `yaml:"b" json:"b"`
}

type Scene struct {
	Points     []Point
	Velocities []Velocity
	Edges      []Edge
}

// New copies points and edges into a scene with zero velocities. Every bad
// edge is reported, not just the first.
func New(points []Point, edges []Edge) (*Scene, error) {
	s := &Scene{
		Points:     append([]Point(nil), points...),
		Velocities: make([]Velocity, len(points)),
		Edges:      append([]Edge(nil), edges...),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) Validate() error {
	if len(s.Points) == 0 {
		return ErrEmptyScene
	}
	if len(s.Velocities) != len(s.Points) {
		return ErrDimensionMismatch
	}

	var err error
	n := len(s.Points)
	for i, e := range s.Edges {
		if e.A < 0 || e.A >= n || e.B < 0 || e.B >= n {
			err = multierr.Append(err, &EdgeError{Index: i, Edge: e, Points: n})
		}
	}
	return err
}

// Randomize seeds every velocity component with a magnitude in [0, 1) and a
// coin-flip sign. It is meant to be called once, before the first step.
func (s *Scene) Randomize(rng *rand.Rand) {
	for i := range s.Velocities {
		s.Velocities[i] = Velocity{randomComponent(rng), randomComponent(rng)}
	}
}

func randomComponent(rng *rand.Rand) float32 {
	v := rng.Float32()
	if rng.IntN(2) == 1 {
		v = -v
	}
	return v
}

func (s *Scene) Len() int { return len(s.Points) }

func (s *Scene) Clone() *Scene {
	return &Scene{
		Points:     append([]Point(nil), s.Points...),
		Velocities: append([]Velocity(nil), s.Velocities...),
		Edges:      append([]Edge(nil), s.Edges...),
	}
}

// Flatten returns x0, y0, x1, y1, ... for every point.
func (s *Scene) Flatten() []float64 {
	out := make([]float64, 0, 2*len(s.Points))
	for _, p := range s.Points {
		out = append(out, float64(p.X()), float64(p.Y()))
	}
	return out
}
