// Package scene holds the tutorial stages the demo cycles through. A Scene
// owns the programs, meshes and textures it creates in Setup until Destroy.
package scene

import (
	"fmt"
	"image/color"
	"io/fs"
	"log/slog"
	"os"

	"learngl/assets"
	"learngl/config"
	"learngl/core"
	"learngl/internal/opengl"
	"learngl/shader"
)

// Scene is one tutorial stage. Setup and Destroy run on the GL thread with
// the context current; Update and Draw run once per frame while the scene is
// shown.
type Scene interface {
	Name() string
	Setup(ctx *Context) error
	Update(s *core.AppState)
	Draw(s *core.AppState)
	Destroy()
}

// DepthTester is implemented by scenes that need the depth buffer.
type DepthTester interface {
	UsesDepth() bool
}

// UsesDepth reports whether sc draws with depth testing.
func UsesDepth(sc Scene) bool {
	d, ok := sc.(DepthTester)
	return ok && d.UsesDepth()
}

// All returns one instance of every scene in tutorial order.
func All() []Scene {
	return []Scene{
		&twoTriangles{},
		&vertexColors{},
		&uniformColor{},
		&texturedQuad{},
		&rotatingCube{},
		&cubes{},
	}
}

// Index returns the position of the scene called name, or -1.
func Index(scenes []Scene, name string) int {
	for i, sc := range scenes {
		if sc.Name() == name {
			return i
		}
	}
	return -1
}

// Context carries what scenes need to build their resources.
type Context struct {
	Backend shader.Backend
	// Shaders and Images are searched for the names scenes ask for.
	Shaders fs.FS
	Images  fs.FS
	Config  *config.Config
	Logger  *slog.Logger
}

// NewContext resolves the shader directory from cfg, falling back to the
// embedded sources, and uses the embedded images for textures not set in cfg.
func NewContext(b shader.Backend, cfg *config.Config, logger *slog.Logger) (*Context, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var shaders fs.FS
	if cfg.Shaders.Dir != "" {
		shaders = os.DirFS(cfg.Shaders.Dir)
	} else {
		sub, err := fs.Sub(assets.Shaders, "shaders")
		if err != nil {
			return nil, fmt.Errorf("embedded shaders: %w", err)
		}
		shaders = sub
	}

	images, err := fs.Sub(assets.Textures, "textures")
	if err != nil {
		return nil, fmt.Errorf("embedded textures: %w", err)
	}

	return &Context{
		Backend: b,
		Shaders: shaders,
		Images:  images,
		Config:  cfg,
		Logger:  logger,
	}, nil
}

// Program compiles and links the named vertex and fragment sources.
func (c *Context) Program(vertex, fragment string) (*shader.Program, error) {
	return shader.LoadFS(c.Backend, c.Shaders, vertex, fragment,
		shader.WithStrictUniforms(c.Config.StrictUniforms),
		shader.WithLogger(c.Logger),
	)
}

var (
	fallbackLight = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	fallbackDark  = color.RGBA{R: 32, G: 32, B: 32, A: 255}
)

const fallbackSize = 64

// Image reads path from disk, or embedded from the built-in images when path
// is empty. With textures.fallback set, a failed load is logged and replaced
// by a checkerboard; otherwise the *TextureLoadError is returned.
func (c *Context) Image(path, embedded string) (*Texture, error) {
	var (
		tex *Texture
		err error
	)
	if path != "" {
		tex, err = LoadTexture(path, c.Config.Textures.MaxSize)
	} else {
		tex, err = LoadTextureFS(c.Images, embedded, c.Config.Textures.MaxSize)
	}
	if err == nil {
		return tex, nil
	}
	if !c.Config.Textures.Fallback {
		return nil, err
	}
	c.Logger.Warn("texture unavailable, using checkerboard", "err", err)
	return NewCheckerTexture(embedded, fallbackSize, fallbackLight, fallbackDark), nil
}

// Texture is Image followed by an upload to the GPU.
func (c *Context) Texture(path, embedded string) (*opengl.Texture, error) {
	img, err := c.Image(path, embedded)
	if err != nil {
		return nil, err
	}
	t, err := opengl.NewTexture(img.Pixels, img.Width, img.Height)
	if err != nil {
		return nil, fmt.Errorf("upload texture %q: %w", img.Name, err)
	}
	return t, nil
}

// resources frees what a scene created, newest first.
type resources struct {
	release []func()
}

func (r *resources) add(fn func()) {
	r.release = append(r.release, fn)
}

func (r *resources) destroy() {
	for i := len(r.release) - 1; i >= 0; i-- {
		r.release[i]()
	}
	r.release = nil
}

// destroyOnError undoes a partial Setup. Use with a named error result:
//
//	defer s.res.destroyOnError(&err)
func (r *resources) destroyOnError(err *error) {
	if *err != nil {
		r.destroy()
	}
}

func (r *resources) program(ctx *Context, vertex, fragment string) (*shader.Program, error) {
	p, err := ctx.Program(vertex, fragment)
	if err != nil {
		return nil, err
	}
	r.add(p.Destroy)
	return p, nil
}

func (r *resources) mesh(vertices []float32, layout []int32, indices []uint32) (*opengl.Mesh, error) {
	m, err := opengl.NewMesh(vertices, layout, indices)
	if err != nil {
		return nil, fmt.Errorf("create mesh: %w", err)
	}
	r.add(m.Destroy)
	return m, nil
}

func (r *resources) texture(ctx *Context, path, embedded string) (*opengl.Texture, error) {
	t, err := ctx.Texture(path, embedded)
	if err != nil {
		return nil, err
	}
	r.add(t.Destroy)
	return t, nil
}
