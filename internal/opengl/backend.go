package opengl

import (
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"learngl/shader"
)

// Backend drives shader programs through the current OpenGL context.
type Backend struct{}

var _ shader.Backend = Backend{}

func (Backend) CreateShader(kind shader.StageKind) uint32 {
	switch kind {
	case shader.Vertex:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case shader.Fragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return 0
	}
}

func (Backend) ShaderSource(s uint32, src string) {
	csrc, free := gl.Strs(cstr(src))
	gl.ShaderSource(s, 1, csrc, nil)
	free()
}

func (Backend) CompileShader(s uint32) { gl.CompileShader(s) }

func (Backend) ShaderCompiled(s uint32) bool {
	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Backend) ShaderInfoLog(s uint32) string {
	var logLen int32
	gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(s, logLen, nil, gl.Str(log))
	return log
}

func (Backend) DeleteShader(s uint32) { gl.DeleteShader(s) }

func (Backend) CreateProgram() uint32 { return gl.CreateProgram() }

func (Backend) AttachShader(p, s uint32) { gl.AttachShader(p, s) }

func (Backend) LinkProgram(p uint32) { gl.LinkProgram(p) }

func (Backend) ProgramLinked(p uint32) bool {
	var status int32
	gl.GetProgramiv(p, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (Backend) ValidateProgram(p uint32) bool {
	gl.ValidateProgram(p)
	var status int32
	gl.GetProgramiv(p, gl.VALIDATE_STATUS, &status)
	return status != gl.FALSE
}

func (Backend) ProgramInfoLog(p uint32) string {
	var logLen int32
	gl.GetProgramiv(p, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(p, logLen, nil, gl.Str(log))
	return log
}

func (Backend) DeleteProgram(p uint32) { gl.DeleteProgram(p) }

func (Backend) UseProgram(p uint32) { gl.UseProgram(p) }

func (Backend) UniformLocation(p uint32, name string) int32 {
	return gl.GetUniformLocation(p, gl.Str(cstr(name)))
}

func (Backend) Uniform1i(loc int32, v int32) { gl.Uniform1i(loc, v) }

func (Backend) Uniform1f(loc int32, v float32) { gl.Uniform1f(loc, v) }

func (Backend) Uniform3f(loc int32, x, y, z float32) { gl.Uniform3f(loc, x, y, z) }

func (Backend) Uniform4f(loc int32, x, y, z, w float32) { gl.Uniform4f(loc, x, y, z, w) }

// mgl32 matrices are column-major, as GL expects, so no transpose.
func (Backend) UniformMat3(loc int32, m mgl32.Mat3) { gl.UniformMatrix3fv(loc, 1, false, &m[0]) }

func (Backend) UniformMat4(loc int32, m mgl32.Mat4) { gl.UniformMatrix4fv(loc, 1, false, &m[0]) }

// cstr NUL-terminates s for the gl.Str family.
func cstr(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}
