package pyramid

import "unsafe"

// Vertex is one interleaved vertex as uploaded to the GPU.
// Memory layout matches the attribute pointers set up by the backend.
type Vertex struct {
	Position [3]float32
	Color    [3]float32 // 0..1
	TexCoord [2]float32 // 0..1
}

// Attribute locations shared by both shader programs.
const (
	AttribPosition = 0
	AttribColor    = 1
	AttribTexCoord = 2
)

// VertexStride is the byte distance between consecutive vertices.
const VertexStride = int32(unsafe.Sizeof(Vertex{}))

// Byte offsets of each attribute inside a Vertex.
var (
	OffsetPosition = unsafe.Offsetof(Vertex{}.Position)
	OffsetColor    = unsafe.Offsetof(Vertex{}.Color)
	OffsetTexCoord = unsafe.Offsetof(Vertex{}.TexCoord)
)

// Mesh is an indexed vertex set with separate face and edge topologies.
type Mesh struct {
	Vertices  []Vertex
	Triangles []uint32
	Lines     []uint32
}

// VertexBytes returns the size of the vertex buffer in bytes.
func (m *Mesh) VertexBytes() int {
	return len(m.Vertices) * int(VertexStride)
}

// TriangleBytes returns the size of the triangle index buffer in bytes.
func (m *Mesh) TriangleBytes() int {
	return len(m.Triangles) * 4
}

// LineBytes returns the size of the line index buffer in bytes.
func (m *Mesh) LineBytes() int {
	return len(m.Lines) * 4
}

// Pyramid returns the square-based pyramid: four base corners and an apex.
func Pyramid() *Mesh {
	return &Mesh{
		Vertices: []Vertex{
			{Position: [3]float32{-0.5, -0.5, -0.5}, Color: [3]float32{1, 0, 0}, TexCoord: [2]float32{0, 0}},
			{Position: [3]float32{0.5, -0.5, -0.5}, Color: [3]float32{0, 1, 0}, TexCoord: [2]float32{1, 0}},
			{Position: [3]float32{0.5, -0.5, 0.5}, Color: [3]float32{0, 0, 1}, TexCoord: [2]float32{1, 1}},
			{Position: [3]float32{-0.5, -0.5, 0.5}, Color: [3]float32{1, 1, 0}, TexCoord: [2]float32{0, 1}},
			{Position: [3]float32{0, 0.5, 0}, Color: [3]float32{1, 0, 1}, TexCoord: [2]float32{0.5, 1}}, // apex
		},
		Triangles: []uint32{
			// sides
			0, 1, 4,
			1, 2, 4,
			2, 3, 4,
			3, 0, 4,
			// base
			0, 1, 2,
			2, 3, 0,
		},
		Lines: []uint32{
			// base
			0, 1,
			1, 2,
			2, 3,
			3, 0,
			// sides
			0, 4,
			1, 4,
			2, 4,
			3, 4,
		},
	}
}
