package scene

import (
	"errors"
	"fmt"
)

// Domain errors for scene construction.
var (
	// ErrEmptyScene indicates a topology without any points.
	ErrEmptyScene = errors.New("scene: no points")

	// ErrInvalidEdge indicates an edge referencing a point that does not exist.
	ErrInvalidEdge = errors.New("scene: edge index out of range")

	// ErrUnknownTopology indicates a topology name with no registered layout.
	ErrUnknownTopology = errors.New("scene: unknown topology")

	// ErrDimensionMismatch indicates velocities and points of different length.
	ErrDimensionMismatch = errors.New("scene: velocity count does not match point count")
)

// EdgeError reports which edge failed validation.
type EdgeError struct {
	Index  int
	Edge   Edge
	Points int
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("scene: edge %d (%d-%d) out of range for %d points", e.Index, e.Edge.A, e.Edge.B, e.Points)
}

func (e *EdgeError) Unwrap() error {
	return ErrInvalidEdge
}
