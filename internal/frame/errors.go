package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a loop or run configuration out of range.
	ErrInvalidConfig = errors.New("frame: invalid configuration")
)

// RenderError wraps a renderer failure with the frame it happened on.
type RenderError struct {
	Frame   int
	Wrapped error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("frame %d: render: %v", e.Frame, e.Wrapped)
}

func (e *RenderError) Unwrap() error {
	return e.Wrapped
}
