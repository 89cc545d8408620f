package scene

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learngl/config"
	"learngl/shader"
	"learngl/shader/shadertest"
)

func newTestContext(t *testing.T, cfg *config.Config) (*Context, *shadertest.Backend) {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	b := shadertest.New()
	ctx, err := NewContext(b, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return ctx, b
}

func TestRegistryOrder(t *testing.T) {
	scenes := All()

	var names []string
	for _, sc := range scenes {
		names = append(names, sc.Name())
	}
	assert.Equal(t, []string{
		"two-triangles",
		"vertex-colors",
		"uniform-color",
		"textured-quad",
		"rotating-cube",
		"cubes",
	}, names)

	assert.Equal(t, 0, Index(scenes, config.Default().Scene))
	assert.Equal(t, 5, Index(scenes, "cubes"))
	assert.Equal(t, -1, Index(scenes, "teapot"))
}

func TestUsesDepth(t *testing.T) {
	for _, sc := range All() {
		want := sc.Name() == "rotating-cube" || sc.Name() == "cubes"
		assert.Equal(t, want, UsesDepth(sc), sc.Name())
	}
}

func TestEmbeddedProgramsLink(t *testing.T) {
	cfg := config.Default()
	cfg.StrictUniforms = true
	ctx, b := newTestContext(t, cfg)

	tests := []struct {
		vert, frag string
		uniforms   []string
	}{
		{"triangle.vert", "orange.frag", nil},
		{"triangle.vert", "yellow.frag", nil},
		{"triangle.vert", "uniform_color.frag", []string{"ourColor"}},
		{"colors.vert", "colors.frag", []string{"xOffset"}},
		{"textured.vert", "textured.frag", []string{"mixAmount", "texture1", "texture2"}},
		{"cube.vert", "cube.frag", []string{"mixAmount", "model", "projection", "texture1", "texture2", "view"}},
	}
	for _, tt := range tests {
		t.Run(tt.vert+"+"+tt.frag, func(t *testing.T) {
			p, err := ctx.Program(tt.vert, tt.frag)
			require.NoError(t, err)
			defer p.Destroy()

			got := b.Uniforms(p.Handle())
			if len(tt.uniforms) == 0 {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.uniforms, got)
			}
		})
	}
	assert.Zero(t, b.LiveShaders())
	assert.Zero(t, b.LivePrograms())
}

func TestShaderDirOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "triangle.vert"), []byte("#version 330 core\nvoid main() {\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orange.frag"), []byte("#version 330 core\nvoid main() {}\n"), 0o644))

	cfg := config.Default()
	cfg.Shaders.Dir = dir
	ctx, _ := newTestContext(t, cfg)

	_, err := ctx.Program("triangle.vert", "orange.frag")
	var compileErr *shader.CompileError
	require.True(t, errors.As(err, &compileErr), "got %v", err)
	assert.Equal(t, shader.Vertex, compileErr.Stage)

	_, err = ctx.Program("triangle.vert", "yellow.frag")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestImageFallback(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.png")

	ctx, _ := newTestContext(t, nil)
	img, err := ctx.Image("", containerImage)
	require.NoError(t, err)
	assert.Equal(t, 128, img.Width)

	img, err = ctx.Image(missing, containerImage)
	require.NoError(t, err)
	assert.Equal(t, fallbackSize, img.Width)
	assert.Equal(t, fallbackSize, img.Height)

	cfg := config.Default()
	cfg.Textures.Fallback = false
	ctx, _ = newTestContext(t, cfg)
	_, err = ctx.Image(missing, containerImage)
	var loadErr *TextureLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, missing, loadErr.Path)
}

func TestResourcesReleaseNewestFirst(t *testing.T) {
	var order []int
	var res resources
	for i := 1; i <= 3; i++ {
		res.add(func() { order = append(order, i) })
	}

	var err error
	res.destroyOnError(&err)
	assert.Empty(t, order)

	err = errors.New("setup failed")
	res.destroyOnError(&err)
	assert.Equal(t, []int{3, 2, 1}, order)

	res.destroy()
	assert.Len(t, order, 3)
}

func TestPulseGreen(t *testing.T) {
	assert.InDelta(t, 0.5, pulseGreen(0), 1e-6)
	assert.InDelta(t, 1, pulseGreen(math.Pi/2), 1e-6)
	assert.InDelta(t, 0, pulseGreen(3*math.Pi/2), 1e-6)
	for ts := 0.0; ts < 20; ts += 0.37 {
		g := pulseGreen(ts)
		assert.True(t, g >= 0 && g <= 1, "pulseGreen(%v) = %v", ts, g)
	}
}

func TestCubeModel(t *testing.T) {
	pos := mgl32.Vec3{2, 5, -15}

	m := cubeModel(0, pos, 0)
	assert.True(t, m.ApproxEqual(mgl32.Translate3D(2, 5, -15)))

	// index 1 is tilted but still
	assert.Equal(t, cubeModel(1, pos, 0), cubeModel(1, pos, 4))
	assert.False(t, cubeModel(1, pos, 0).ApproxEqual(mgl32.Translate3D(2, 5, -15)))

	// index 3 spins
	assert.NotEqual(t, cubeModel(3, pos, 0), cubeModel(3, pos, 1))

	// translation is never affected by rotation
	for i := range CubePositions() {
		col := cubeModel(i, pos, 2.5).Col(3)
		assert.InDeltaSlice(t, []float32{2, 5, -15, 1}, col[:], 1e-5)
	}
}

func TestSpin(t *testing.T) {
	assert.True(t, spin(0).ApproxEqual(mgl32.Ident4()))

	// the spin axis is fixed by the rotation
	axis := spin(1.3).Mul4x1(spinAxis.Vec4(0)).Vec3()
	assert.InDeltaSlice(t, spinAxis[:], axis[:], 1e-5)
}
