package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"learngl/core"
	"learngl/internal/opengl"
	"learngl/shader"
)

// twoTriangles draws two triangles with the same vertex shader and a
// different fixed-colour fragment shader each.
type twoTriangles struct {
	res            resources
	orange, yellow *shader.Program
	left, right    *opengl.Mesh
}

func (*twoTriangles) Name() string { return "two-triangles" }

func (s *twoTriangles) Setup(ctx *Context) (err error) {
	defer s.res.destroyOnError(&err)

	if s.orange, err = s.res.program(ctx, "triangle.vert", "orange.frag"); err != nil {
		return err
	}
	if s.yellow, err = s.res.program(ctx, "triangle.vert", "yellow.frag"); err != nil {
		return err
	}
	if s.left, err = s.res.mesh(LeftTriangle(), LayoutPosition, nil); err != nil {
		return err
	}
	s.right, err = s.res.mesh(RightTriangle(), LayoutPosition, nil)
	return err
}

func (s *twoTriangles) Update(*core.AppState) {}

func (s *twoTriangles) Draw(*core.AppState) {
	s.orange.Activate()
	s.left.Draw()
	s.yellow.Activate()
	s.right.Draw()
}

func (s *twoTriangles) Destroy() { s.res.destroy() }

// colorsOffset shifts both triangles right in clip space.
const colorsOffset = 0.3

// vertexColors interpolates a per-vertex colour attribute across two
// triangles.
type vertexColors struct {
	res         resources
	program     *shader.Program
	left, right *opengl.Mesh
}

func (*vertexColors) Name() string { return "vertex-colors" }

func (s *vertexColors) Setup(ctx *Context) (err error) {
	defer s.res.destroyOnError(&err)

	if s.program, err = s.res.program(ctx, "colors.vert", "colors.frag"); err != nil {
		return err
	}
	if s.left, err = s.res.mesh(LeftColoredTriangle(), LayoutPositionColor, nil); err != nil {
		return err
	}
	s.right, err = s.res.mesh(RightColoredTriangle(), LayoutPositionColor, nil)
	return err
}

func (s *vertexColors) Update(*core.AppState) {}

func (s *vertexColors) Draw(*core.AppState) {
	s.program.Activate()
	s.program.SetFloat("xOffset", colorsOffset)
	s.left.Draw()
	s.right.Draw()
}

func (s *vertexColors) Destroy() { s.res.destroy() }

// uniformColor pushes the fragment colour from the CPU every frame.
type uniformColor struct {
	res      resources
	program  *shader.Program
	triangle *opengl.Mesh
	color    mgl32.Vec4
}

func (*uniformColor) Name() string { return "uniform-color" }

func (s *uniformColor) Setup(ctx *Context) (err error) {
	defer s.res.destroyOnError(&err)

	if s.program, err = s.res.program(ctx, "triangle.vert", "uniform_color.frag"); err != nil {
		return err
	}
	s.triangle, err = s.res.mesh(CenterTriangle(), LayoutPosition, nil)
	return err
}

func (s *uniformColor) Update(st *core.AppState) {
	s.color = mgl32.Vec4{0, pulseGreen(st.Time), 0, 1}
}

func (s *uniformColor) Draw(*core.AppState) {
	s.program.Activate()
	s.program.SetVec4("ourColor", s.color)
	s.triangle.Draw()
}

func (s *uniformColor) Destroy() { s.res.destroy() }

// pulseGreen maps time in seconds onto [0, 1] along a sine wave.
func pulseGreen(t float64) float32 {
	return math32.Sin(float32(t))/2 + 0.5
}
