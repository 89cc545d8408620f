package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"learngl/core"
	"learngl/internal/opengl"
	"learngl/shader"
)

// spinSpeed is the cube rotation rate in degrees per second.
const spinSpeed = 50

var spinAxis = mgl32.Vec3{0.5, 1, 0}.Normalize()

// cubeKit is the program, geometry and textures shared by the cube scenes.
type cubeKit struct {
	program   *shader.Program
	mesh      *opengl.Mesh
	container *opengl.Texture
	face      *opengl.Texture
	camera    *Camera
}

func (k *cubeKit) setup(ctx *Context, res *resources) (err error) {
	if k.program, err = res.program(ctx, "cube.vert", "cube.frag"); err != nil {
		return err
	}

	vertices, indices := CubeVertices(), []uint32(nil)
	if path := ctx.Config.Model.Cube; path != "" {
		v, idx, err := LoadGLTFMesh(path)
		if err != nil {
			ctx.Logger.Warn("cube model unavailable, using built-in cube", "path", path, "err", err)
		} else {
			vertices, indices = v, idx
		}
	}
	if k.mesh, err = res.mesh(vertices, LayoutPositionUV, indices); err != nil {
		return err
	}

	if k.container, k.face, err = loadTexturePair(ctx, res); err != nil {
		return err
	}
	bindSamplers(k.program)
	k.camera = NewCamera(mgl32.Vec3{0, 0, 3})
	return nil
}

// begin binds everything and uploads the per-frame uniforms; follow with
// one draw per cube.
func (k *cubeKit) begin(st *core.AppState) {
	k.container.Bind(containerUnit)
	k.face.Bind(faceUnit)
	k.program.Activate()
	k.program.SetFloat("mixAmount", st.MixAmount)
	k.program.SetMat4("view", k.camera.ViewMatrix())
	k.program.SetMat4("projection", k.camera.ProjectionMatrix(st.Aspect()))
}

func (k *cubeKit) draw(model mgl32.Mat4) {
	k.program.SetMat4("model", model)
	k.mesh.Draw()
}

// spin is the rotation of a cube t seconds after start.
func spin(t float64) mgl32.Mat4 {
	return mgl32.HomogRotate3D(mgl32.DegToRad(float32(t)*spinSpeed), spinAxis)
}

// rotatingCube spins one textured cube in front of the camera.
type rotatingCube struct {
	res   resources
	kit   cubeKit
	model mgl32.Mat4
}

func (*rotatingCube) Name() string { return "rotating-cube" }

func (*rotatingCube) UsesDepth() bool { return true }

func (s *rotatingCube) Setup(ctx *Context) (err error) {
	defer s.res.destroyOnError(&err)
	return s.kit.setup(ctx, &s.res)
}

func (s *rotatingCube) Update(st *core.AppState) {
	s.model = spin(st.Time)
}

func (s *rotatingCube) Draw(st *core.AppState) {
	s.kit.begin(st)
	s.kit.draw(s.model)
}

func (s *rotatingCube) Destroy() { s.res.destroy() }

// cubes draws a cube at each of CubePositions, tilted by its index; every
// third one also spins.
type cubes struct {
	res    resources
	kit    cubeKit
	models []mgl32.Mat4
}

func (*cubes) Name() string { return "cubes" }

func (*cubes) UsesDepth() bool { return true }

func (s *cubes) Setup(ctx *Context) (err error) {
	defer s.res.destroyOnError(&err)
	return s.kit.setup(ctx, &s.res)
}

func (s *cubes) Update(st *core.AppState) {
	s.models = s.models[:0]
	for i, pos := range CubePositions() {
		s.models = append(s.models, cubeModel(i, pos, st.Time))
	}
}

func (s *cubes) Draw(st *core.AppState) {
	s.kit.begin(st)
	for _, m := range s.models {
		s.kit.draw(m)
	}
}

func (s *cubes) Destroy() { s.res.destroy() }

var tiltAxis = mgl32.Vec3{1, 0.3, 0.5}.Normalize()

// cubeModel places cube i at pos, tilted 20° per index.
func cubeModel(i int, pos mgl32.Vec3, t float64) mgl32.Mat4 {
	angle := mgl32.DegToRad(20 * float32(i))
	if i%3 == 0 {
		angle += math32.Mod(float32(t), 2*math32.Pi)
	}
	return mgl32.Translate3D(pos[0], pos[1], pos[2]).Mul4(mgl32.HomogRotate3D(angle, tiltAxis))
}
