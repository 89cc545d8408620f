package shader

import (
	"fmt"
	"strings"
)

const noInfoLog = "(driver returned no info log)"

// CompileError reports a stage that failed to compile.
type CompileError struct {
	Stage StageKind
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader: compile failed: %s", e.Stage, e.Log)
}

// LinkError reports a program whose stages compiled but did not link.
type LinkError struct {
	Program string
	Log     string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program %q: link failed: %s", e.Program, e.Log)
}

// ValidateError is returned by Program.Validate when the driver reports the
// program cannot execute in the current GL state.
type ValidateError struct {
	Program string
	Log     string
}

func (e *ValidateError) Error() string {
	return fmt.Sprintf("program %q: validation failed: %s", e.Program, e.Log)
}

func infoLog(raw string) string {
	raw = strings.TrimRight(raw, "\x00 \t\r\n")
	if raw == "" {
		return noInfoLog
	}
	return raw
}
