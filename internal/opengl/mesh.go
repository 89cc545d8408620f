package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh holds the OpenGL buffer objects for one interleaved float32 vertex
// array and an optional index array.
type Mesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	Count      int32
	HasIndices bool
}

// NewMesh uploads vertices laid out as consecutive attributes whose component
// counts are given by layout: {3, 3, 2} means location 0 is a vec3, location
// 1 a vec3 and location 2 a vec2 in every vertex.
func NewMesh(vertices []float32, layout []int32, indices []uint32) (*Mesh, error) {
	var floatsPerVertex int32
	for _, n := range layout {
		if n < 1 || n > 4 {
			return nil, fmt.Errorf("attribute size %d out of range 1..4", n)
		}
		floatsPerVertex += n
	}
	if floatsPerVertex == 0 {
		return nil, fmt.Errorf("empty vertex layout")
	}
	if len(vertices) == 0 || len(vertices)%int(floatsPerVertex) != 0 {
		return nil, fmt.Errorf("%d floats is not a whole number of %d-float vertices", len(vertices), floatsPerVertex)
	}

	stride := floatsPerVertex * 4
	m := &Mesh{
		Count:      int32(len(vertices)) / floatsPerVertex,
		HasIndices: len(indices) > 0,
	}
	if m.HasIndices {
		m.Count = int32(len(indices))
	}

	gl.GenVertexArrays(1, &m.VAO)
	gl.GenBuffers(1, &m.VBO)
	gl.BindVertexArray(m.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	offset := 0
	for loc, n := range layout {
		gl.VertexAttribPointer(uint32(loc), n, gl.FLOAT, false, stride, gl.PtrOffset(offset))
		gl.EnableVertexAttribArray(uint32(loc))
		offset += int(n) * 4
	}

	if m.HasIndices {
		gl.GenBuffers(1, &m.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	return m, nil
}

// Draw issues one triangle-list draw call for the mesh. The program the
// caller activated is used.
func (m *Mesh) Draw() {
	if m.VAO == 0 {
		return
	}
	gl.BindVertexArray(m.VAO)
	if m.HasIndices {
		gl.DrawElements(gl.TRIANGLES, m.Count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.Count)
	}
}

// Destroy frees the GPU buffers. Safe to call more than once.
func (m *Mesh) Destroy() {
	if m.VAO == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &m.VAO)
	gl.DeleteBuffers(1, &m.VBO)
	if m.HasIndices {
		gl.DeleteBuffers(1, &m.EBO)
	}
	m.VAO, m.VBO, m.EBO = 0, 0, 0
}
