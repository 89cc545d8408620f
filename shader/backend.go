package shader

import "github.com/go-gl/mathgl/mgl32"

// Backend is the slice of the OpenGL API a Program needs.
// All methods must be called on the thread that owns the current context.
// internal/opengl provides the driver-backed implementation.
type Backend interface {
	CreateShader(kind StageKind) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ValidateProgram(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	// UniformLocation returns -1 for names the linked program does not expose.
	UniformLocation(program uint32, name string) int32
	Uniform1i(loc int32, v int32)
	Uniform1f(loc int32, v float32)
	Uniform3f(loc int32, x, y, z float32)
	Uniform4f(loc int32, x, y, z, w float32)
	UniformMat3(loc int32, m mgl32.Mat3)
	UniformMat4(loc int32, m mgl32.Mat4)
}
