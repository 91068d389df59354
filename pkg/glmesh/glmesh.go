// Package glmesh uploads tree geometry into OpenGL buffer objects.
// All calls must happen on the thread that owns a current GL context.
package glmesh

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/arbor/pkg/treemesh"
)

// Attribute locations used by the vertex layout.
const (
	AttribPosition = 0
	AttribNormal   = 1
	AttribTexCoord = 2
)

// ErrEmptyGeometry is returned when SetGeometry receives no vertices or indices.
var ErrEmptyGeometry = errors.New("glmesh: empty geometry")

var _ treemesh.Sink = (*Mesh)(nil)

// Mesh is a GPU-resident indexed mesh with one buffer per attribute.
// It implements treemesh.Sink.
type Mesh struct {
	vao        uint32
	vbos       [3]uint32
	ebo        uint32
	indexCount int32
}

// New returns an empty mesh; buffers are created on the first SetGeometry.
func New() *Mesh {
	return &Mesh{}
}

// SetGeometry replaces the mesh contents.
func (m *Mesh) SetGeometry(positions, normals, uvs []float32, indices []uint32) error {
	if len(positions) == 0 || len(indices) == 0 {
		return ErrEmptyGeometry
	}
	n := len(positions) / 3
	if len(normals) != 3*n || len(uvs) != 2*n {
		return fmt.Errorf("glmesh: attribute sizes %d/%d/%d do not match %d vertices",
			len(positions), len(normals), len(uvs), n)
	}

	if m.vao == 0 {
		gl.GenVertexArrays(1, &m.vao)
		gl.GenBuffers(int32(len(m.vbos)), &m.vbos[0])
		gl.GenBuffers(1, &m.ebo)
	}

	gl.BindVertexArray(m.vao)

	upload(m.vbos[0], AttribPosition, 3, positions)
	upload(m.vbos[1], AttribNormal, 3, normals)
	upload(m.vbos[2], AttribTexCoord, 2, uvs)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
	m.indexCount = int32(len(indices))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("glmesh: upload failed with GL error 0x%x", code)
	}
	return nil
}

func upload(vbo uint32, attrib uint32, size int32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(attrib, size, gl.FLOAT, false, size*4, 0)
	gl.EnableVertexAttribArray(attrib)
}

// Draw issues the draw call. The caller binds the shader program.
func (m *Mesh) Draw() {
	if m.indexCount == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// IndexCount returns the number of indices uploaded.
func (m *Mesh) IndexCount() int32 {
	return m.indexCount
}

// Delete releases the GL objects.
func (m *Mesh) Delete() {
	if m.vao == 0 {
		return
	}
	gl.DeleteBuffers(int32(len(m.vbos)), &m.vbos[0])
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteVertexArrays(1, &m.vao)
	*m = Mesh{}
}
