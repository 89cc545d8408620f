package shader

import "fmt"

// StageKind identifies the pipeline phase a stage is compiled for.
type StageKind int

const (
	Vertex StageKind = iota + 1
	Fragment
)

func (k StageKind) String() string {
	switch k {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("StageKind(%d)", int(k))
	}
}

// Stage is one compiled shader object. It only lives between compilation
// and the link attempt of the program it belongs to.
type Stage struct {
	Kind   StageKind
	Source string
	handle uint32
}

func compileStage(b Backend, kind StageKind, src string) (*Stage, error) {
	handle := b.CreateShader(kind)
	b.ShaderSource(handle, src)
	b.CompileShader(handle)

	if !b.ShaderCompiled(handle) {
		log := infoLog(b.ShaderInfoLog(handle))
		b.DeleteShader(handle)
		return nil, &CompileError{Stage: kind, Log: log}
	}
	return &Stage{Kind: kind, Source: src, handle: handle}, nil
}

func (s *Stage) release(b Backend) {
	if s == nil || s.handle == 0 {
		return
	}
	b.DeleteShader(s.handle)
	s.handle = 0
}
