package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrNoMesh is returned for a glTF document without a usable triangle mesh.
var ErrNoMesh = errors.New("no triangle mesh")

// LoadGLTFMesh opens a .gltf or .glb file and flattens the primitives of its
// first mesh into one indexed (position, UV) vertex array matching
// LayoutPositionUV. The geometry is centred on the origin and scaled to fit
// a unit cube; V is flipped for textures uploaded bottom row first.
func LoadGLTFMesh(path string) (vertices []float32, indices []uint32, err error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	if len(doc.Meshes) == 0 {
		return nil, nil, fmt.Errorf("gltf %q: %w", path, ErrNoMesh)
	}

	var positions [][3]float32
	var uvs [][2]float32
	for pi, prim := range doc.Meshes[0].Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}
		p, uv, idx, err := readPrimitive(doc, prim)
		if err != nil {
			return nil, nil, fmt.Errorf("gltf %q: primitive %d: %w", path, pi, err)
		}
		base := uint32(len(positions))
		for _, i := range idx {
			indices = append(indices, base+i)
		}
		positions = append(positions, p...)
		uvs = append(uvs, uv...)
	}
	if len(positions) == 0 {
		return nil, nil, fmt.Errorf("gltf %q: %w", path, ErrNoMesh)
	}

	center, scale := fitUnitCube(positions)
	vertices = make([]float32, 0, len(positions)*5)
	for i, p := range positions {
		v := mgl32.Vec3(p).Sub(center).Mul(scale)
		vertices = append(vertices, v[0], v[1], v[2], uvs[i][0], 1-uvs[i][1])
	}
	return vertices, indices, nil
}

// readPrimitive returns positions, one UV per position (zero when the
// primitive has none) and indices, generating 0..n-1 for unindexed data.
func readPrimitive(doc *gltf.Document, prim *gltf.Primitive) ([][3]float32, [][2]float32, []uint32, error) {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, nil, nil, errors.New("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("positions: %w", err)
	}

	uvs := make([][2]float32, len(positions))
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		read, err := modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("texcoords: %w", err)
		}
		copy(uvs, read)
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("indices: %w", err)
		}
		for _, i := range indices {
			if int(i) >= len(positions) {
				return nil, nil, nil, fmt.Errorf("index %d out of range for %d vertices", i, len(positions))
			}
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	return positions, uvs, indices, nil
}

// fitUnitCube returns the bounding-box centre of points and the scale that
// makes its longest side 1.
func fitUnitCube(points [][3]float32) (center mgl32.Vec3, scale float32) {
	lo, hi := mgl32.Vec3(points[0]), mgl32.Vec3(points[0])
	for _, p := range points[1:] {
		for a := 0; a < 3; a++ {
			lo[a] = min(lo[a], p[a])
			hi[a] = max(hi[a], p[a])
		}
	}
	size := hi.Sub(lo)
	longest := max(size[0], size[1], size[2])
	if longest == 0 {
		return lo, 1
	}
	return lo.Add(hi).Mul(0.5), 1 / longest
}
