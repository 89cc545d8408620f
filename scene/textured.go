package scene

import (
	"learngl/core"
	"learngl/internal/opengl"
	"learngl/shader"
)

// Texture units the two samplers read from.
const (
	containerUnit = 0
	faceUnit      = 1
)

// Embedded fallbacks for textures.container and textures.face.
const (
	containerImage = "container.png"
	faceImage      = "awesomeface.png"
)

// texturedQuad draws an indexed quad blending two textures by the state's
// mix amount.
type texturedQuad struct {
	res       resources
	program   *shader.Program
	quad      *opengl.Mesh
	container *opengl.Texture
	face      *opengl.Texture
}

func (*texturedQuad) Name() string { return "textured-quad" }

func (s *texturedQuad) Setup(ctx *Context) (err error) {
	defer s.res.destroyOnError(&err)

	if s.program, err = s.res.program(ctx, "textured.vert", "textured.frag"); err != nil {
		return err
	}
	if s.quad, err = s.res.mesh(QuadVertices(), LayoutPositionColorUV, QuadIndices()); err != nil {
		return err
	}
	if s.container, s.face, err = loadTexturePair(ctx, &s.res); err != nil {
		return err
	}
	bindSamplers(s.program)
	return nil
}

func (s *texturedQuad) Update(*core.AppState) {}

func (s *texturedQuad) Draw(st *core.AppState) {
	s.container.Bind(containerUnit)
	s.face.Bind(faceUnit)
	s.program.Activate()
	s.program.SetFloat("mixAmount", st.MixAmount)
	s.quad.Draw()
}

func (s *texturedQuad) Destroy() { s.res.destroy() }

func loadTexturePair(ctx *Context, res *resources) (container, face *opengl.Texture, err error) {
	cfg := ctx.Config.Textures
	if container, err = res.texture(ctx, cfg.Container, containerImage); err != nil {
		return nil, nil, err
	}
	if face, err = res.texture(ctx, cfg.Face, faceImage); err != nil {
		return nil, nil, err
	}
	return container, face, nil
}

// bindSamplers points texture1 and texture2 at their units. Sampler values
// are program state, so this only needs to happen once after linking.
func bindSamplers(p *shader.Program) {
	p.Activate()
	p.SetInt("texture1", containerUnit)
	p.SetInt("texture2", faceUnit)
}
