package scene

import "github.com/go-gl/mathgl/mgl32"

// Vertex layouts, as attribute component counts per location.
var (
	LayoutPosition        = []int32{3}
	LayoutPositionColor   = []int32{3, 3}
	LayoutPositionColorUV = []int32{3, 3, 2}
	LayoutPositionUV      = []int32{3, 2}
)

// LeftTriangle and RightTriangle are two non-overlapping triangles either
// side of x=0, positions only.
func LeftTriangle() []float32 {
	return []float32{
		-0.9, -0.5, 0.0,
		-0.1, -0.5, 0.0,
		-0.5, 0.5, 0.0,
	}
}

func RightTriangle() []float32 {
	return []float32{
		0.1, -0.5, 0.0,
		0.9, -0.5, 0.0,
		0.5, 0.5, 0.0,
	}
}

// CenterTriangle spans the middle of clip space, positions only.
func CenterTriangle() []float32 {
	return []float32{
		-0.5, -0.5, 0.0,
		0.5, -0.5, 0.0,
		0.0, 0.5, 0.0,
	}
}

// LeftColoredTriangle and RightColoredTriangle interleave position and RGB.
func LeftColoredTriangle() []float32 {
	return []float32{
		// positions     // colors
		-0.9, -0.5, 0.0, 1.0, 0.0, 0.0,
		-0.1, -0.5, 0.0, 0.0, 1.0, 0.0,
		-0.5, 0.5, 0.0, 0.0, 0.0, 1.0,
	}
}

func RightColoredTriangle() []float32 {
	return []float32{
		0.1, -0.5, 0.0, 0.0, 1.0, 0.0,
		0.9, -0.5, 0.0, 1.0, 0.0, 0.0,
		0.5, 0.5, 0.0, 0.0, 0.0, 1.0,
	}
}

// QuadVertices is a unit quad with position, RGB and UV per corner; draw it
// with QuadIndices.
func QuadVertices() []float32 {
	return []float32{
		// positions     // colors      // uv
		0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0,   // top right
		0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0,  // bottom right
		-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, // bottom left
		-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0,  // top left
	}
}

func QuadIndices() []uint32 {
	return []uint32{
		0, 1, 3,
		1, 2, 3,
	}
}

// CubeVertices returns a unit cube centred on the origin as 36 unindexed
// vertices (position, UV), each face mapping the full texture.
func CubeVertices() []float32 {
	// corners of one face in counter-clockwise order, as (u, v) pairs
	quad := [6][2]float32{{0, 0}, {1, 0}, {1, 1}, {1, 1}, {0, 1}, {0, 0}}

	// for each face: origin corner, u axis, v axis
	faces := [6][3]mgl32.Vec3{
		{{-0.5, -0.5, 0.5}, {1, 0, 0}, {0, 1, 0}},  // front  (+z)
		{{0.5, -0.5, -0.5}, {-1, 0, 0}, {0, 1, 0}}, // back   (-z)
		{{-0.5, -0.5, -0.5}, {0, 0, 1}, {0, 1, 0}}, // left   (-x)
		{{0.5, -0.5, 0.5}, {0, 0, -1}, {0, 1, 0}},  // right  (+x)
		{{-0.5, 0.5, 0.5}, {1, 0, 0}, {0, 0, -1}},  // top    (+y)
		{{-0.5, -0.5, -0.5}, {1, 0, 0}, {0, 0, 1}}, // bottom (-y)
	}

	vertices := make([]float32, 0, 36*5)
	for _, f := range faces {
		origin, uAxis, vAxis := f[0], f[1], f[2]
		for _, uv := range quad {
			p := origin.Add(uAxis.Mul(uv[0])).Add(vAxis.Mul(uv[1]))
			vertices = append(vertices, p[0], p[1], p[2], uv[0], uv[1])
		}
	}
	return vertices
}

// CubePositions are the world positions of the cubes scene.
func CubePositions() []mgl32.Vec3 {
	return []mgl32.Vec3{
		{0.0, 0.0, 0.0},
		{2.0, 5.0, -15.0},
		{-1.5, -2.2, -2.5},
		{-3.8, -2.0, -12.3},
		{2.4, -0.4, -3.5},
		{-1.7, 3.0, -7.5},
		{1.3, -2.0, -2.5},
		{1.5, 2.0, -2.5},
		{1.5, 0.2, -1.5},
		{-1.3, 1.0, -1.5},
	}
}
