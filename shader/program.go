// Package shader manages the lifecycle of linked GLSL programs: compile the
// vertex and fragment stages, link them, activate the result and push uniform
// values into it.
//
// A Program is either fully linked or its constructor returns an error;
// callers never see a half-built program. Uniform names that do not resolve
// (misspelled, or eliminated by the GLSL compiler because they are unused)
// are silently ignored, exactly as glUniform* ignores location -1. Enable
// WithStrictUniforms during development to get a warning for each of them.
package shader

import (
	"log/slog"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// Program is one linked vertex+fragment program.
type Program struct {
	backend Backend
	handle  uint32
	name    string

	strict     bool
	logger     *slog.Logger
	locations  map[string]int32
	unresolved map[string]struct{}
}

// New compiles vertexSrc and fragmentSrc and links them into a Program.
// Both stage objects are deleted before New returns, whatever the outcome.
func New(b Backend, vertexSrc, fragmentSrc string, opts ...Option) (*Program, error) {
	o := buildOptions(opts)

	vert, err := compileStage(b, Vertex, vertexSrc)
	if err != nil {
		return nil, err
	}
	defer vert.release(b)

	frag, err := compileStage(b, Fragment, fragmentSrc)
	if err != nil {
		return nil, err
	}
	defer frag.release(b)

	handle := b.CreateProgram()
	b.AttachShader(handle, vert.handle)
	b.AttachShader(handle, frag.handle)
	b.LinkProgram(handle)

	if !b.ProgramLinked(handle) {
		log := infoLog(b.ProgramInfoLog(handle))
		b.DeleteProgram(handle)
		return nil, &LinkError{Program: o.name, Log: log}
	}

	return &Program{
		backend:    b,
		handle:     handle,
		name:       o.name,
		strict:     o.strict,
		logger:     o.logger,
		locations:  make(map[string]int32),
		unresolved: make(map[string]struct{}),
	}, nil
}

// Name returns the label given with WithName.
func (p *Program) Name() string { return p.name }

// Handle returns the driver's program object, or 0 once destroyed.
func (p *Program) Handle() uint32 { return p.handle }

// Activate binds the program for the draw calls and uniform sets that follow.
// The binding is context-wide; any later Activate of another program
// replaces it.
func (p *Program) Activate() {
	if p.handle == 0 {
		return
	}
	p.backend.UseProgram(p.handle)
}

// Validate asks the driver whether the program can run against the current
// GL state (bound textures, vertex arrays). Meant for development builds.
func (p *Program) Validate() error {
	if p.handle == 0 {
		return nil
	}
	if !p.backend.ValidateProgram(p.handle) {
		return &ValidateError{Program: p.name, Log: infoLog(p.backend.ProgramInfoLog(p.handle))}
	}
	return nil
}

// Destroy deletes the program object. Calling it again is a no-op, as are
// Activate and the setters on a destroyed program.
func (p *Program) Destroy() {
	if p.handle == 0 {
		return
	}
	p.backend.DeleteProgram(p.handle)
	p.handle = 0
	p.locations = make(map[string]int32)
}

// The setters write to the currently bound program; Activate must come first.

func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(name, i)
}

func (p *Program) SetInt(name string, v int32) {
	if loc, ok := p.location(name); ok {
		p.backend.Uniform1i(loc, v)
	}
}

func (p *Program) SetFloat(name string, v float32) {
	if loc, ok := p.location(name); ok {
		p.backend.Uniform1f(loc, v)
	}
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc, ok := p.location(name); ok {
		p.backend.Uniform3f(loc, v[0], v[1], v[2])
	}
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	if loc, ok := p.location(name); ok {
		p.backend.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}

func (p *Program) SetMat3(name string, m mgl32.Mat3) {
	if loc, ok := p.location(name); ok {
		p.backend.UniformMat3(loc, m)
	}
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc, ok := p.location(name); ok {
		p.backend.UniformMat4(loc, m)
	}
}

// Unresolved lists, sorted, the names strict mode has reported so far.
func (p *Program) Unresolved() []string {
	names := make([]string, 0, len(p.unresolved))
	for n := range p.unresolved {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// location resolves name once and caches the answer, -1 included.
func (p *Program) location(name string) (int32, bool) {
	if p.handle == 0 {
		return -1, false
	}
	loc, cached := p.locations[name]
	if !cached {
		loc = p.backend.UniformLocation(p.handle, name)
		p.locations[name] = loc
		if loc < 0 && p.strict {
			p.unresolved[name] = struct{}{}
			p.logger.Warn("uniform not found in program", "program", p.name, "uniform", name)
		}
	}
	return loc, loc >= 0
}
