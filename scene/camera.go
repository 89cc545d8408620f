package scene

import "github.com/go-gl/mathgl/mgl32"

// Camera is a fixed perspective viewpoint.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	// FOV is the vertical field of view in degrees.
	FOV       float32
	NearPlane float32
	FarPlane  float32
}

// NewCamera places a 45° camera at pos looking at the origin.
func NewCamera(pos mgl32.Vec3) *Camera {
	return &Camera{
		Position:  pos,
		Up:        mgl32.Vec3{0, 1, 0},
		FOV:       45,
		NearPlane: 0.1,
		FarPlane:  100,
	}
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.NearPlane, c.FarPlane)
}
