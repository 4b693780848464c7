package gpu

import (
	"errors"
	"fmt"
)

// ErrContextUnavailable indicates no GL context could be created.
var ErrContextUnavailable = errors.New("gpu: graphics context unavailable")

// Shader pipeline stages reported by ShaderError.
const (
	StageVertex   = "vertex"
	StageFragment = "fragment"
	StageLink     = "link"
)

// ShaderError reports which stage of program creation failed.
type ShaderError struct {
	Stage string
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Stage == StageLink {
		return fmt.Sprintf("gpu: failed to link program: %s", e.Log)
	}
	return fmt.Sprintf("gpu: failed to compile %s shader: %s", e.Stage, e.Log)
}
