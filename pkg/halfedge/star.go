package halfedge

import (
	"fmt"

	"github.com/Faultbox/meshview/pkg/math"
)

// Star returns the faces incident to vertex id in rotation order, starting
// at the vertex's outgoing half-edge and advancing with opposite.next.
//
// closed is true when the walk came back to its start. The walk stops early
// at the first boundary half-edge, so for a vertex on a hole only the faces
// reached before the boundary are returned. An out of range id or a vertex
// without an outgoing half-edge yields no faces.
func (m *Mesh) Star(id int) (faces []int, closed bool) {
	if id < 0 || id >= len(m.vertices) {
		return nil, false
	}
	start := m.vertices[id].HalfEdge
	if start == None {
		return nil, false
	}

	cur := start
	// Each half-edge is visited at most once, which bounds walks over
	// inconsistently wound input.
	for range m.halfEdges {
		faces = append(faces, m.halfEdges[cur].Face)

		opp := m.halfEdges[cur].Opposite
		if opp == None {
			return faces, false
		}
		cur = m.halfEdges[opp].Next
		if cur == start {
			return faces, true
		}
	}
	return faces, false
}

// ColorStar sets color on every vertex of every face in the star of vertex id.
func (m *Mesh) ColorStar(id int, color math.Vec4) error {
	if id < 0 || id >= len(m.vertices) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, id, len(m.vertices))
	}

	faces, _ := m.Star(id)
	for _, f := range faces {
		for _, v := range m.FaceVertices(f) {
			m.vertices[v].Color = color
		}
	}
	return nil
}

// ResetColors sets every vertex to color.
func (m *Mesh) ResetColors(color math.Vec4) {
	for i := range m.vertices {
		m.vertices[i].Color = color
	}
}
