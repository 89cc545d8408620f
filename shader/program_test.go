package shader_test

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learngl/shader"
	"learngl/shader/shadertest"
)

const vertSrc = `#version 330 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 model;
uniform float xOffset;

out vec3 ourColor;

void main() {
    gl_Position = model * vec4(aPos.x + xOffset, aPos.y, aPos.z, 1.0);
    ourColor = aColor;
}
`

const fragSrc = `#version 330 core
in vec3 ourColor;
out vec4 FragColor;

uniform float alpha;
uniform int unused;

void main() {
    FragColor = vec4(ourColor, alpha);
}
`

func TestNewLinksValidSources(t *testing.T) {
	b := shadertest.New()

	p, err := shader.New(b, vertSrc, fragSrc, shader.WithName("colors"))
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.NotZero(t, p.Handle())
	assert.Equal(t, "colors", p.Name())
	assert.Equal(t, 0, b.LiveShaders(), "stages must be deleted after linking")
	assert.Equal(t, 1, b.LivePrograms())

	p.Activate()
	assert.Equal(t, p.Handle(), b.Current())

	p.SetFloat("xOffset", 0.3)
	p.SetFloat("alpha", 1)
	p.SetMat4("model", mgl32.Ident4())
	assert.Empty(t, b.Errors())

	v, ok := b.Value(p.Handle(), "xOffset")
	require.True(t, ok)
	assert.Equal(t, float32(0.3), v)

	v, ok = b.Value(p.Handle(), "model")
	require.True(t, ok)
	assert.Equal(t, mgl32.Ident4(), v)
}

func TestNewCompileError(t *testing.T) {
	broken := `#version 330 core
void main() {
    gl_Position = vec4(0.0);
`
	tests := []struct {
		name       string
		vert, frag string
		stage      shader.StageKind
	}{
		{"vertex syntax", broken, fragSrc, shader.Vertex},
		{"fragment syntax", vertSrc, broken, shader.Fragment},
		{"fragment missing version", vertSrc, "void main() {}", shader.Fragment},
		{"vertex missing main", "#version 330 core\nout vec3 ourColor;\n", fragSrc, shader.Vertex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := shadertest.New()

			p, err := shader.New(b, tt.vert, tt.frag)
			require.Error(t, err)
			assert.Nil(t, p)

			var ce *shader.CompileError
			require.True(t, errors.As(err, &ce), "got %T: %v", err, err)
			assert.Equal(t, tt.stage, ce.Stage)
			assert.NotEmpty(t, ce.Log)
			assert.Contains(t, err.Error(), tt.stage.String())

			assert.Equal(t, 0, b.LiveShaders(), "failed and finished stages must be deleted")
			assert.Equal(t, 0, b.LivePrograms())
			assert.Empty(t, b.Errors())
		})
	}
}

func TestNewLinkError(t *testing.T) {
	// Compiles on its own but reads a varying the vertex stage never writes.
	frag := `#version 330 core
in vec2 TexCoord;
out vec4 FragColor;
void main() {
    FragColor = vec4(TexCoord, 0.0, 1.0);
}
`
	b := shadertest.New()

	p, err := shader.New(b, vertSrc, frag, shader.WithName("mismatch"))
	require.Error(t, err)
	assert.Nil(t, p)

	var le *shader.LinkError
	require.True(t, errors.As(err, &le), "got %T: %v", err, err)
	assert.Equal(t, "mismatch", le.Program)
	assert.Contains(t, le.Log, "TexCoord")

	var ce *shader.CompileError
	assert.False(t, errors.As(err, &ce))

	assert.Equal(t, 0, b.LiveShaders())
	assert.Equal(t, 0, b.LivePrograms(), "unlinked program must be deleted")
}

func TestSetUnknownUniformIsNoop(t *testing.T) {
	b := shadertest.New()
	p, err := shader.New(b, vertSrc, fragSrc)
	require.NoError(t, err)

	p.Activate()
	assert.NotPanics(t, func() {
		p.SetInt("nonexistent_name", 3)
		p.SetFloat("nonexistent_name", 1)
		p.SetBool("nonexistent_name", true)
		p.SetVec3("nonexistent_name", mgl32.Vec3{1, 2, 3})
		p.SetVec4("nonexistent_name", mgl32.Vec4{1, 2, 3, 4})
		p.SetMat3("nonexistent_name", mgl32.Ident3())
		p.SetMat4("nonexistent_name", mgl32.Ident4())
	})
	assert.Empty(t, b.Errors())
	assert.Empty(t, p.Unresolved(), "permissive mode records nothing")
}

func TestSetEliminatedUniformIsNoop(t *testing.T) {
	b := shadertest.New()
	p, err := shader.New(b, vertSrc, fragSrc)
	require.NoError(t, err)

	assert.NotContains(t, b.Uniforms(p.Handle()), "unused")

	p.Activate()
	p.SetInt("unused", 7)
	assert.Empty(t, b.Errors())
}

func TestUniformLocationIsCached(t *testing.T) {
	b := shadertest.New()
	p, err := shader.New(b, vertSrc, fragSrc)
	require.NoError(t, err)

	p.Activate()
	for i := 0; i < 5; i++ {
		p.SetFloat("xOffset", float32(i))
		p.SetFloat("missing", float32(i))
	}
	assert.Equal(t, 2, b.UniformLookups)

	v, _ := b.Value(p.Handle(), "xOffset")
	assert.Equal(t, float32(4), v)
}

func TestSetBoolWritesInt(t *testing.T) {
	frag := `#version 330 core
out vec4 FragColor;
uniform bool flip;
void main() {
    FragColor = flip ? vec4(1.0) : vec4(0.0);
}
`
	vert := "#version 330 core\nvoid main() { gl_Position = vec4(0.0); }\n"

	b := shadertest.New()
	p, err := shader.New(b, vert, frag)
	require.NoError(t, err)

	p.Activate()
	p.SetBool("flip", true)
	v, ok := b.Value(p.Handle(), "flip")
	require.True(t, ok)
	assert.Equal(t, int32(1), v)

	p.SetBool("flip", false)
	v, _ = b.Value(p.Handle(), "flip")
	assert.Equal(t, int32(0), v)
}

func TestStrictUniformsWarnOncePerName(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	b := shadertest.New()
	p, err := shader.New(b, vertSrc, fragSrc,
		shader.WithName("strict"),
		shader.WithStrictUniforms(true),
		shader.WithLogger(logger))
	require.NoError(t, err)

	p.Activate()
	p.SetFloat("xOfset", 0.3)
	p.SetFloat("xOfset", 0.4)
	p.SetInt("unused", 1)
	p.SetFloat("xOffset", 0.3)

	assert.Equal(t, []string{"unused", "xOfset"}, p.Unresolved())
	assert.Equal(t, 1, strings.Count(buf.String(), "uniform=xOfset"))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "program=strict")
	assert.Empty(t, b.Errors())
}

func TestDestroyIsIdempotent(t *testing.T) {
	b := shadertest.New()
	p, err := shader.New(b, vertSrc, fragSrc)
	require.NoError(t, err)

	p.Activate()
	p.Destroy()
	assert.NotPanics(t, p.Destroy)

	assert.Zero(t, p.Handle())
	assert.Equal(t, 0, b.LivePrograms())
	assert.Zero(t, b.Current())

	p.Activate()
	p.SetFloat("xOffset", 1)
	assert.NoError(t, p.Validate())
	assert.Empty(t, b.Errors(), "destroyed program must not reach the driver")
}

func TestValidate(t *testing.T) {
	b := shadertest.New()
	p, err := shader.New(b, vertSrc, fragSrc)
	require.NoError(t, err)
	assert.NoError(t, p.Validate())
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"shaders/colors.vert": {Data: []byte(vertSrc)},
		"shaders/colors.frag": {Data: []byte(fragSrc)},
	}

	b := shadertest.New()
	p, err := shader.LoadFS(b, fsys, "shaders/colors.vert", "shaders/colors.frag")
	require.NoError(t, err)
	assert.Equal(t, "shaders/colors.vert+shaders/colors.frag", p.Name())

	p, err = shader.LoadFS(b, fsys, "shaders/colors.vert", "shaders/colors.frag", shader.WithName("named"))
	require.NoError(t, err)
	assert.Equal(t, "named", p.Name())

	_, err = shader.LoadFS(b, fsys, "shaders/colors.vert", "shaders/missing.frag")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "fragment")
}

func TestLoadWrapsCompileError(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "shader.vert")
	frag := filepath.Join(dir, "shader.frag")
	require.NoError(t, os.WriteFile(vert, []byte(vertSrc), 0o644))
	require.NoError(t, os.WriteFile(frag, []byte("#version 330 core\nvoid main() {\n"), 0o644))

	b := shadertest.New()
	_, err := shader.Load(b, vert, frag)
	require.Error(t, err)

	var ce *shader.CompileError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, shader.Fragment, ce.Stage)
	assert.Contains(t, err.Error(), frag)
}

func TestStageKindString(t *testing.T) {
	assert.Equal(t, "vertex", shader.Vertex.String())
	assert.Equal(t, "fragment", shader.Fragment.String())
	assert.Equal(t, "StageKind(9)", shader.StageKind(9).String())
}
