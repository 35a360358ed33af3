package renderer

import "github.com/gogfx/hellotriangle/graphics"

// One triangle in normalized device coordinates, drawn through an index
// buffer.
var (
	triangleVertices = []float32{
		-0.5, -0.5, 0.0, // bottom left
		0.5, -0.5, 0.0, // bottom right
		0.0, 0.5, 0.0, // top
	}
	triangleIndices = []uint32{0, 1, 2}
)

// Mesh owns the GPU-side geometry: a vertex buffer, an index buffer, and the
// vertex array object describing the layout. Data is uploaded once with a
// static usage hint and never touched again.
type Mesh struct {
	api        graphics.API
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// NewMesh uploads the vertex and index data and records the layout: slot 0,
// three float components per vertex, unnormalized, tightly packed.
func NewMesh(api graphics.API, vertices []float32, indices []uint32) *Mesh {
	m := &Mesh{api: api, indexCount: int32(len(indices))}

	m.vao = api.CreateVertexArray()
	m.vbo = api.CreateBuffer()
	m.ebo = api.CreateBuffer()

	api.BindVertexArray(m.vao)

	api.BindBuffer(graphics.ArrayBuffer, m.vbo)
	api.BufferDataFloat32(graphics.ArrayBuffer, vertices, graphics.StaticDraw)

	// The element buffer binding is part of the VAO state.
	api.BindBuffer(graphics.ElementArrayBuffer, m.ebo)
	api.BufferDataUint32(graphics.ElementArrayBuffer, indices, graphics.StaticDraw)

	api.VertexAttribPointer(0, 3, graphics.Float, false, 3*4, 0)
	api.EnableVertexAttribArray(0)

	api.BindVertexArray(0)
	return m
}

// Draw binds the vertex array, issues one indexed triangle-list draw call,
// and unbinds again. The caller is responsible for having a program bound.
func (m *Mesh) Draw() {
	m.api.BindVertexArray(m.vao)
	m.api.DrawElements(graphics.Triangles, m.indexCount, graphics.UnsignedInt, 0)
	m.api.BindVertexArray(0)
}

// Destroy deletes the vertex array and both buffers.
func (m *Mesh) Destroy() {
	m.api.DeleteVertexArray(m.vao)
	m.api.DeleteBuffer(m.vbo)
	m.api.DeleteBuffer(m.ebo)
}
