package gpu

import (
	_ "embed"
	"image/color"
)

// Attribute and uniform names shared with the shader sources.
const (
	PositionAttribute = "a_position"
	ColorUniform      = "u_color"
)

var (
	//go:embed shaders/line.vert
	VertexShaderSource string

	//go:embed shaders/line.frag
	FragmentShaderSource string
)

// Style is the fixed drawing state applied once at pipeline setup.
type Style struct {
	Line           color.RGBA
	Background     color.RGBA
	SampleCoverage float32
	Antialias      bool
}

// normalize converts an 8-bit colour to the [0, 1] floats GL expects.
func normalize(c color.RGBA) [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}
