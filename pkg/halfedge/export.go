package halfedge

// Export flattens the mesh into draw buffers. Vertex attributes follow vertex
// id order and the index stream lists each half-edge's origin in storage
// order, so consecutive triples are the faces with their input winding.
//
// Colors live in the same export as positions and normals; call Export again
// after any color change and re-upload the result.
func (m *Mesh) Export() Buffers {
	n := len(m.vertices)
	b := Buffers{
		Positions: make([]float32, 0, n*4),
		Colors:    make([]float32, 0, n*4),
		Normals:   make([]float32, 0, n*4),
		Indices:   make([]uint32, 0, len(m.halfEdges)),
	}

	for _, v := range m.vertices {
		b.Positions = append(b.Positions, v.Position[:]...)
		b.Colors = append(b.Colors, v.Color[:]...)
		b.Normals = append(b.Normals, v.Normal[:]...)
	}

	for _, he := range m.halfEdges {
		b.Indices = append(b.Indices, uint32(he.Origin))
	}

	return b
}

// VertexCount returns the number of vertices in the buffers.
func (b *Buffers) VertexCount() int {
	return len(b.Positions) / 4
}

// IndexCount returns the number of indices, three per triangle.
func (b *Buffers) IndexCount() int {
	return len(b.Indices)
}
