package motion

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/finnegancarroll/graphdrift/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singlePoint(t *testing.T, p scene.Point, v scene.Velocity) *scene.Scene {
	t.Helper()
	s, err := scene.New([]scene.Point{p}, nil)
	require.NoError(t, err)
	s.Velocities[0] = v
	return s
}

func TestStepReflectDiscard(t *testing.T) {
	s := singlePoint(t, scene.Point{0.99, 0}, scene.Velocity{0.5, 0})

	n := NewIntegrator(Discard).Step(s, 1.0)

	assert.Equal(t, 1, n)
	assert.Equal(t, scene.Velocity{-0.5, 0}, s.Velocities[0])
	assert.InDelta(t, 0.99, s.Points[0].X(), 1e-6)
	assert.Equal(t, float32(0), s.Points[0].Y())
}

func TestStepReflectCommit(t *testing.T) {
	s := singlePoint(t, scene.Point{0.99, 0}, scene.Velocity{0.5, 0})

	n := NewIntegrator(Commit).Step(s, 1.0)

	assert.Equal(t, 1, n)
	assert.Equal(t, scene.Velocity{-0.5, 0}, s.Velocities[0])
	assert.InDelta(t, 1.49, s.Points[0].X(), 1e-6)
}

func TestStepInBounds(t *testing.T) {
	s := singlePoint(t, scene.Point{0.1, -0.2}, scene.Velocity{0.5, -0.25})

	n := NewIntegrator(Discard).Step(s, 0.1)

	assert.Zero(t, n)
	assert.InDelta(t, 0.15, s.Points[0].X(), 1e-6)
	assert.InDelta(t, -0.225, s.Points[0].Y(), 1e-6)
	assert.Equal(t, scene.Velocity{0.5, -0.25}, s.Velocities[0])
}

func TestStepExactBoundIsInside(t *testing.T) {
	s := singlePoint(t, scene.Point{0.5, 0}, scene.Velocity{0.5, 0})

	n := NewIntegrator(Discard).Step(s, 1.0)

	assert.Zero(t, n)
	assert.InDelta(t, 1.0, s.Points[0].X(), 1e-6)
}

func TestStepAxesIndependent(t *testing.T) {
	s := singlePoint(t, scene.Point{0.2, -0.95}, scene.Velocity{0.1, -0.1})

	NewIntegrator(Discard).Step(s, 1.0)

	assert.Equal(t, scene.Velocity{0.1, 0.1}, s.Velocities[0])
	assert.InDelta(t, 0.3, s.Points[0].X(), 1e-6)
	assert.InDelta(t, -0.95, s.Points[0].Y(), 1e-6)
}

func TestReflectionPersistsUntilNextCrossing(t *testing.T) {
	s := singlePoint(t, scene.Point{0.9, 0}, scene.Velocity{0.5, 0})
	integ := NewIntegrator(Discard)

	integ.Step(s, 0.5)
	require.Equal(t, float32(-0.5), s.Velocities[0].X())

	// Heading left from 0.9 takes several steps to reach -1.
	for i := 0; i < 7; i++ {
		integ.Step(s, 0.5)
		assert.Equal(t, float32(-0.5), s.Velocities[0].X(), "step %d", i)
	}

	integ.Step(s, 0.5)
	assert.Equal(t, float32(0.5), s.Velocities[0].X())
}

func TestZeroVelocityStaysPut(t *testing.T) {
	s := singlePoint(t, scene.Point{0.4, 0.4}, scene.Velocity{0, 0.3})
	integ := NewIntegrator(Commit)

	for i := 0; i < 100; i++ {
		integ.Step(s, 0.2)
	}

	assert.Equal(t, float32(0.4), s.Points[0].X())
	assert.Equal(t, float32(0), s.Velocities[0].X())
}

func TestStepDisplacementBounded(t *testing.T) {
	for _, policy := range []Policy{Discard, Commit} {
		t.Run(policy.String(), func(t *testing.T) {
			s, err := scene.FromTopology("default")
			require.NoError(t, err)
			s.Randomize(rand.New(rand.NewPCG(3, 9)))
			integ := NewIntegrator(policy)
			dt := Timestep(60, 2)

			for frame := 0; frame < 2000; frame++ {
				before := s.Clone()
				integ.Step(s, dt)
				for i := range s.Points {
					for axis := 0; axis < 2; axis++ {
						grow := math.Abs(float64(s.Points[i][axis])) - math.Abs(float64(before.Points[i][axis]))
						limit := math.Abs(float64(before.Velocities[i][axis])) * dt
						assert.LessOrEqual(t, grow, limit+1e-6)
					}
				}
			}
		})
	}
}

func TestDiscardKeepsPointsInBounds(t *testing.T) {
	s, _ := scene.FromTopology("default")
	s.Randomize(rand.New(rand.NewPCG(11, 5)))
	integ := NewIntegrator(Discard)

	for frame := 0; frame < 5000; frame++ {
		integ.Step(s, 0.05)
	}
	for i, p := range s.Points {
		assert.LessOrEqual(t, math.Abs(float64(p.X())), Bound, "point %d", i)
		assert.LessOrEqual(t, math.Abs(float64(p.Y())), Bound, "point %d", i)
	}
}

func TestTimestep(t *testing.T) {
	tests := []struct {
		name  string
		fps   float64
		cross float64
		want  float64
	}{
		{"sixty fps", 59, 20, 0.1 / 60},
		{"zero fps", 0, 20, 0.1},
		{"fast cross", 99, 2, 0.01},
		{"disabled", 60, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Timestep(tt.fps, tt.cross), 1e-12)
		})
	}
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("commit")
	require.NoError(t, err)
	assert.Equal(t, Commit, p)

	p, err = ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, Discard, p)

	_, err = ParsePolicy("wrap")
	assert.Error(t, err)
}
