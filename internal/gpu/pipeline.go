//go:build raylib

package gpu

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

const bytesPerFloat = 4

// Pipeline holds the GL objects for line drawing. It must be used from the
// goroutine that owns the GL context.
type Pipeline struct {
	Program  uint32
	VAO      uint32
	VBO      uint32
	position uint32
	capacity int
}

// NewPipeline compiles the line shaders, links the program, creates the
// vertex buffer and applies style. It needs a current GL context.
func NewPipeline(style Style) (*Pipeline, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContextUnavailable, err)
	}

	program, err := createProgram(VertexShaderSource, FragmentShaderSource)
	if err != nil {
		return nil, err
	}
	p := &Pipeline{Program: program}
	gl.UseProgram(program)

	loc := gl.GetAttribLocation(program, gl.Str(PositionAttribute+"\x00"))
	if loc < 0 {
		gl.DeleteProgram(program)
		return nil, &ShaderError{Stage: StageLink, Log: "attribute " + PositionAttribute + " not active"}
	}
	p.position = uint32(loc)

	line := normalize(style.Line)
	colorLoc := gl.GetUniformLocation(program, gl.Str(ColorUniform+"\x00"))
	gl.Uniform4f(colorLoc, line[0], line[1], line[2], line[3])

	gl.GenVertexArrays(1, &p.VAO)
	gl.BindVertexArray(p.VAO)
	gl.GenBuffers(1, &p.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.VBO)
	gl.EnableVertexAttribArray(p.position)
	gl.VertexAttribPointerWithOffset(p.position, 2, gl.FLOAT, false, 0, 0)
	gl.BindVertexArray(0)

	if style.Antialias {
		gl.Enable(gl.SAMPLE_COVERAGE)
		gl.SampleCoverage(style.SampleCoverage, false)
	}
	bg := normalize(style.Background)
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])

	return p, nil
}

// Draw clears the surface and draws segments (x0, y0, x1, y1 per line).
// The buffer grows when needed and is otherwise overwritten in place.
func (p *Pipeline) Draw(segments []float32, width, height int32) {
	gl.Viewport(0, 0, width, height)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if len(segments) == 0 {
		return
	}

	gl.UseProgram(p.Program)
	gl.BindVertexArray(p.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.VBO)

	size := len(segments) * bytesPerFloat
	if size > p.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(segments), gl.DYNAMIC_DRAW)
		p.capacity = size
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(segments))
	}

	gl.DrawArrays(gl.LINES, 0, int32(len(segments)/2))
	gl.BindVertexArray(0)
}

func (p *Pipeline) Close() {
	gl.DeleteBuffers(1, &p.VBO)
	gl.DeleteVertexArrays(1, &p.VAO)
	gl.DeleteProgram(p.Program)
}

func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, &ShaderError{Stage: stage, Log: strings.TrimRight(log, "\x00")}
	}
	return shader, nil
}

func createProgram(vertSource, fragSource string) (uint32, error) {
	vShader, err := compileShader(vertSource, gl.VERTEX_SHADER, StageVertex)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vShader)

	fShader, err := compileShader(fragSource, gl.FRAGMENT_SHADER, StageFragment)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vShader)
	gl.AttachShader(program, fShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, &ShaderError{Stage: StageLink, Log: strings.TrimRight(log, "\x00")}
	}
	return program, nil
}
