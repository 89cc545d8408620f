package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// These inputs are rejected before any GL call, so no context is needed.

func TestNewMeshRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		layout   []int32
		msg      string
	}{
		{"empty layout", []float32{0, 0, 0}, nil, "empty vertex layout"},
		{"zero-size attribute", []float32{0, 0, 0}, []int32{3, 0}, "out of range"},
		{"five-component attribute", []float32{0, 0, 0, 0, 0}, []int32{5}, "out of range"},
		{"no vertices", nil, []int32{3}, "not a whole number"},
		{"partial vertex", []float32{0, 0, 0, 1}, []int32{3}, "not a whole number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMesh(tt.vertices, tt.layout, nil)
			assert.Nil(t, m)
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestNewTextureRejectsBadInput(t *testing.T) {
	_, err := NewTexture(nil, 0, 4)
	assert.ErrorContains(t, err, "texture size 0x4")

	_, err = NewTexture(make([]byte, 3), 1, 1)
	assert.ErrorContains(t, err, "needs 4 bytes, got 3")
}

func TestDestroyZeroValues(t *testing.T) {
	var m Mesh
	m.Destroy()
	m.Draw()

	var tex *Texture
	tex.Destroy()
}
