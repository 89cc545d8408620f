package scene

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangleGLTF is one indexed triangle 2 wide and 1 high with no UVs, its
// buffer embedded as a data URI.
func triangleGLTF(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	positions := []float32{
		0, 0, 0,
		2, 0, 0,
		0, 1, 0,
	}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, positions))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, []uint16{0, 1, 2}))

	doc := fmt.Sprintf(`{
  "asset": {"version": "2.0"},
  "buffers": [{"byteLength": %d, "uri": "data:application/octet-stream;base64,%s"}],
  "bufferViews": [
    {"buffer": 0, "byteOffset": 0, "byteLength": 36},
    {"buffer": 0, "byteOffset": 36, "byteLength": 6}
  ],
  "accessors": [
    {"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3", "min": [0, 0, 0], "max": [2, 1, 0]},
    {"bufferView": 1, "componentType": 5123, "count": 3, "type": "SCALAR"}
  ],
  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}, "indices": 1}]}]
}`, buf.Len(), base64.StdEncoding.EncodeToString(buf.Bytes()))

	path := filepath.Join(t.TempDir(), "triangle.gltf")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestLoadGLTFMesh(t *testing.T) {
	vertices, indices, err := LoadGLTFMesh(triangleGLTF(t))
	require.NoError(t, err)

	assert.Equal(t, []uint32{0, 1, 2}, indices)
	require.Len(t, vertices, 3*5)

	// centred on the origin, longest side scaled to 1, V flipped
	want := []float32{
		-0.5, -0.25, 0, 0, 1,
		0.5, -0.25, 0, 0, 1,
		-0.5, 0.25, 0, 0, 1,
	}
	assert.InDeltaSlice(t, want, vertices, 1e-6)
}

func TestLoadGLTFMeshErrors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.gltf")
	require.NoError(t, os.WriteFile(empty, []byte(`{"asset": {"version": "2.0"}}`), 0o644))

	_, _, err := LoadGLTFMesh(empty)
	assert.ErrorIs(t, err, ErrNoMesh)

	_, _, err = LoadGLTFMesh(filepath.Join(dir, "missing.gltf"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFitUnitCubeDegenerate(t *testing.T) {
	center, scale := fitUnitCube([][3]float32{{1, 2, 3}, {1, 2, 3}})
	assert.Equal(t, float32(1), scale)
	assert.Equal(t, float32(2), center[1])
}
