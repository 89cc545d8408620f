// Package shadertest provides an in-memory shader.Backend for tests that
// cannot create a GL context.
//
// The fake understands just enough GLSL to behave like a driver on the cases
// that matter to callers:
//   - a stage without a #version directive, without main() or with
//     unbalanced braces fails to compile;
//   - a fragment input with no vertex output of the same name and type fails
//     to link;
//   - uniforms declared but never referenced are eliminated, the rest get
//     locations in declaration-name order.
package shadertest

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"learngl/shader"
)

var _ shader.Backend = (*Backend)(nil)

var declRE = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?(?:(?:flat|smooth|noperspective)\s+)?(in|out|uniform)\s+(?:(?:lowp|mediump|highp)\s+)?(\w+)\s+(\w+)\s*(?:\[[^\]]*\])?\s*;`)

type fakeShader struct {
	kind     shader.StageKind
	src      string
	compiled bool
	log      string
}

type fakeProgram struct {
	attached []uint32
	linked   bool
	log      string
	uniforms map[string]int32
	values   map[int32]any
}

// Backend is a fake GL driver. The zero value is not usable; call New.
type Backend struct {
	next     uint32
	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram
	current  uint32
	errors   []string

	// UniformLookups counts UniformLocation calls.
	UniformLookups int
}

func New() *Backend {
	return &Backend{
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]*fakeProgram),
	}
}

func (b *Backend) id() uint32 {
	b.next++
	return b.next
}

func (b *Backend) fail(format string, args ...any) {
	b.errors = append(b.errors, fmt.Sprintf(format, args...))
}

func (b *Backend) CreateShader(kind shader.StageKind) uint32 {
	h := b.id()
	b.shaders[h] = &fakeShader{kind: kind}
	return h
}

func (b *Backend) ShaderSource(h uint32, src string) {
	s, ok := b.shaders[h]
	if !ok {
		b.fail("ShaderSource: unknown shader %d", h)
		return
	}
	s.src = src
}

func (b *Backend) CompileShader(h uint32) {
	s, ok := b.shaders[h]
	if !ok {
		b.fail("CompileShader: unknown shader %d", h)
		return
	}
	s.log = checkSource(s.src)
	s.compiled = s.log == ""
}

func (b *Backend) ShaderCompiled(h uint32) bool {
	s, ok := b.shaders[h]
	return ok && s.compiled
}

func (b *Backend) ShaderInfoLog(h uint32) string {
	if s, ok := b.shaders[h]; ok {
		return s.log
	}
	return ""
}

func (b *Backend) DeleteShader(h uint32) {
	if _, ok := b.shaders[h]; !ok {
		b.fail("DeleteShader: unknown shader %d", h)
		return
	}
	delete(b.shaders, h)
}

func (b *Backend) CreateProgram() uint32 {
	h := b.id()
	b.programs[h] = &fakeProgram{}
	return h
}

func (b *Backend) AttachShader(program, h uint32) {
	p, ok := b.programs[program]
	if !ok {
		b.fail("AttachShader: unknown program %d", program)
		return
	}
	if _, ok := b.shaders[h]; !ok {
		b.fail("AttachShader: unknown shader %d", h)
		return
	}
	p.attached = append(p.attached, h)
}

func (b *Backend) LinkProgram(program uint32) {
	p, ok := b.programs[program]
	if !ok {
		b.fail("LinkProgram: unknown program %d", program)
		return
	}
	var vert, frag *fakeShader
	for _, h := range p.attached {
		s := b.shaders[h]
		if s == nil || !s.compiled {
			p.log = "error: linking with uncompiled shader"
			return
		}
		switch s.kind {
		case shader.Vertex:
			vert = s
		case shader.Fragment:
			frag = s
		}
	}
	if vert == nil || frag == nil {
		p.log = "error: program lacks a vertex or fragment shader"
		return
	}
	if log := checkInterface(vert.src, frag.src); log != "" {
		p.log = log
		return
	}
	p.uniforms = activeUniforms(vert.src, frag.src)
	p.values = make(map[int32]any)
	p.linked = true
}

func (b *Backend) ProgramLinked(program uint32) bool {
	p, ok := b.programs[program]
	return ok && p.linked
}

func (b *Backend) ValidateProgram(program uint32) bool {
	return b.ProgramLinked(program)
}

func (b *Backend) ProgramInfoLog(program uint32) string {
	if p, ok := b.programs[program]; ok {
		return p.log
	}
	return ""
}

func (b *Backend) DeleteProgram(program uint32) {
	if _, ok := b.programs[program]; !ok {
		b.fail("DeleteProgram: unknown program %d", program)
		return
	}
	delete(b.programs, program)
	if b.current == program {
		b.current = 0
	}
}

func (b *Backend) UseProgram(program uint32) {
	if program == 0 {
		b.current = 0
		return
	}
	p, ok := b.programs[program]
	if !ok || !p.linked {
		b.fail("UseProgram: program %d is not a linked program", program)
		return
	}
	b.current = program
}

func (b *Backend) UniformLocation(program uint32, name string) int32 {
	b.UniformLookups++
	p, ok := b.programs[program]
	if !ok || !p.linked {
		b.fail("UniformLocation: program %d is not a linked program", program)
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (b *Backend) set(loc int32, v any) {
	if loc == -1 {
		return
	}
	p, ok := b.programs[b.current]
	if !ok {
		b.fail("Uniform at location %d with no program bound", loc)
		return
	}
	p.values[loc] = v
}

func (b *Backend) Uniform1i(loc int32, v int32) { b.set(loc, v) }
func (b *Backend) Uniform1f(loc int32, v float32) { b.set(loc, v) }
func (b *Backend) Uniform3f(loc int32, x, y, z float32) { b.set(loc, mgl32.Vec3{x, y, z}) }
func (b *Backend) Uniform4f(loc int32, x, y, z, w float32) { b.set(loc, mgl32.Vec4{x, y, z, w}) }
func (b *Backend) UniformMat3(loc int32, m mgl32.Mat3) { b.set(loc, m) }
func (b *Backend) UniformMat4(loc int32, m mgl32.Mat4) { b.set(loc, m) }

// Current returns the bound program, 0 if none.
func (b *Backend) Current() uint32 { return b.current }

// LiveShaders is the number of stage objects not yet deleted.
func (b *Backend) LiveShaders() int { return len(b.shaders) }

// LivePrograms is the number of program objects not yet deleted.
func (b *Backend) LivePrograms() int { return len(b.programs) }

// Errors returns what a real driver would have flagged with glGetError or a
// crash: calls on unknown objects, uniforms set with nothing bound.
func (b *Backend) Errors() []string { return b.errors }

// Uniforms lists the active uniform names of a linked program.
func (b *Backend) Uniforms(program uint32) []string {
	p, ok := b.programs[program]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(p.uniforms))
	for n := range p.uniforms {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Value returns the last value pushed to the named uniform of program.
func (b *Backend) Value(program uint32, name string) (any, bool) {
	p, ok := b.programs[program]
	if !ok || !p.linked {
		return nil, false
	}
	loc, ok := p.uniforms[name]
	if !ok {
		return nil, false
	}
	v, ok := p.values[loc]
	return v, ok
}

func checkSource(src string) string {
	trimmed := strings.TrimLeft(src, " \t\r\n")
	if !strings.HasPrefix(trimmed, "#version") {
		return "0:1(1): error: missing #version directive"
	}
	depth := 0
	for i, line := range strings.Split(src, "\n") {
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if depth < 0 {
			return fmt.Sprintf("0:%d(1): error: syntax error, unexpected '}'", i+1)
		}
	}
	if depth != 0 {
		return "0:1(1): error: syntax error, unexpected end of file"
	}
	if !strings.Contains(src, "void main") {
		return "error: no function with name 'main'"
	}
	return ""
}

type decl struct {
	qualifier, typ, name string
}

func declarations(src string) []decl {
	var out []decl
	for _, m := range declRE.FindAllStringSubmatch(src, -1) {
		out = append(out, decl{qualifier: m[1], typ: m[2], name: m[3]})
	}
	return out
}

func checkInterface(vertSrc, fragSrc string) string {
	outputs := make(map[string]string)
	for _, d := range declarations(vertSrc) {
		if d.qualifier == "out" {
			outputs[d.name] = d.typ
		}
	}
	for _, d := range declarations(fragSrc) {
		if d.qualifier != "in" {
			continue
		}
		typ, ok := outputs[d.name]
		if !ok {
			return fmt.Sprintf("error: fragment shader input `%s' has no matching vertex shader output", d.name)
		}
		if typ != d.typ {
			return fmt.Sprintf("error: `%s' declared as type `%s' in vertex shader and `%s' in fragment shader", d.name, typ, d.typ)
		}
	}
	return ""
}

func activeUniforms(sources ...string) map[string]int32 {
	var names []string
	seen := make(map[string]bool)
	for _, src := range sources {
		for _, d := range declarations(src) {
			if d.qualifier != "uniform" || seen[d.name] {
				continue
			}
			ref := regexp.MustCompile(`\b` + regexp.QuoteMeta(d.name) + `\b`)
			if len(ref.FindAllStringIndex(src, -1)) < 2 {
				continue
			}
			seen[d.name] = true
			names = append(names, d.name)
		}
	}
	sort.Strings(names)
	locs := make(map[string]int32, len(names))
	for i, n := range names {
		locs[n] = int32(i)
	}
	return locs
}
