package motion

import (
	"fmt"
	"math"

	"github.com/finnegancarroll/graphdrift/internal/scene"
)

// Policy decides what happens to a coordinate whose candidate position
// lands outside [-1, 1].
type Policy int

const (
	// Discard keeps the old position for that tick and only flips velocity.
	Discard Policy = iota
	// Commit stores the out-of-bounds candidate and flips velocity.
	Commit
)

// Bound is the magnitude limit of normalized device coordinates.
const Bound = 1.0

func (p Policy) String() string {
	switch p {
	case Discard:
		return "discard"
	case Commit:
		return "commit"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "discard", "":
		return Discard, nil
	case "commit":
		return Commit, nil
	default:
		return Discard, fmt.Errorf("unknown boundary policy: %s (available: discard, commit)", name)
	}
}

// Integrator advances points along their velocities with reflective bounds.
// Each axis of each point is handled independently; points never collide.
type Integrator struct {
	Policy Policy
}

func NewIntegrator(policy Policy) *Integrator {
	return &Integrator{Policy: policy}
}

// Step moves every point by velocity*timestep and returns how many axis
// reflections happened.
func (in *Integrator) Step(s *scene.Scene, timestep float64) int {
	reflections := 0
	for i := range s.Points {
		p := &s.Points[i]
		v := &s.Velocities[i]
		for axis := 0; axis < 2; axis++ {
			candidate := float64(p[axis]) + float64(v[axis])*timestep
			if math.Abs(candidate) > Bound {
				v[axis] = -v[axis]
				reflections++
				if in.Policy == Discard {
					continue
				}
			}
			p[axis] = float32(candidate)
		}
	}
	return reflections
}

// Timestep converts a frame-rate estimate into the per-frame step. Velocity
// magnitudes average 0.5, so a step of 2/crossSeconds per second moves a
// vertex across the surface in about crossSeconds. The +1 keeps the step
// finite as fps approaches zero.
func Timestep(fps, crossSeconds float64) float64 {
	if crossSeconds <= 0 {
		return 0
	}
	return (2 / crossSeconds) * (1 / (fps + 1))
}
