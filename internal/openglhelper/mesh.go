package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// floatsPerVertex is position (3) followed by normal (3)
const floatsPerVertex = 6

// Mesh is an indexed triangle list uploaded to the GPU
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
}

// NewMesh uploads interleaved position/normal vertices and their indices
func NewMesh(vertices []float32, indices []uint32) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	ebo := NewEBO(indices, StaticDraw)

	stride := int32(floatsPerVertex * 4)
	// Position attribute
	vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, stride, 0)
	// Normal attribute
	vao.SetVertexAttribPointer(1, 3, gl.FLOAT, false, stride, 3*4)

	vao.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(indices)),
	}
}

// Draw renders the mesh with whatever shader is bound
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// DrawWireframe renders only the triangle edges
func (m *Mesh) DrawWireframe() {
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	m.Draw()
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}

// Quad is a unit square in the XY plane, used for screen-space overlays
type Quad struct {
	vao *VertexArrayObject
	vbo *BufferObject
}

// NewQuad uploads a quad spanning (0,0) to (1,1) as a triangle strip
func NewQuad() *Quad {
	vertices := []float32{
		0, 0,
		1, 0,
		0, 1,
		1, 1,
	}

	vao := NewVAO()
	vao.Bind()
	vbo := NewVBO(vertices, StaticDraw)
	vao.SetVertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, 0)
	vao.Unbind()

	return &Quad{vao: vao, vbo: vbo}
}

// Draw renders the quad with whatever shader is bound
func (q *Quad) Draw() {
	q.vao.Bind()
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	q.vao.Unbind()
}

// Delete releases all resources
func (q *Quad) Delete() {
	q.vao.Delete()
	q.vbo.Delete()
}
