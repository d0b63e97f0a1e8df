package halfedge

import (
	"fmt"

	"github.com/Faultbox/meshview/pkg/math"
)

// Mesh owns the vertex, half-edge and face collections. Topology is fixed
// after Build; only vertex colors change afterwards.
type Mesh struct {
	vertices    []Vertex
	halfEdges   []HalfEdge
	faces       []Face
	nonManifold []NonManifoldEdge
}

// Build constructs the half-edge structure from flat buffers: positions and
// normals with stride 4, indices with stride 3 referencing positions by
// vertex id. Normals may be shorter than positions; missing normals are zero.
//
// Every index must be in [0, vertexCount). Callers validate this at the
// geometry boundary (see formats.ParseOBJ); Build does not check it.
func Build(positions []float32, indices []uint32, normals []float32, opts BuildOptions) (*Mesh, error) {
	if len(positions)%4 != 0 {
		return nil, fmt.Errorf("positions (%d floats): %w", len(positions), ErrStride)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("indices (%d entries): %w", len(indices), ErrStride)
	}
	if len(normals)%4 != 0 {
		return nil, fmt.Errorf("normals (%d floats): %w", len(normals), ErrStride)
	}

	color := opts.Color
	if color == (math.Vec4{}) {
		color = DefaultColor
	}

	m := &Mesh{
		vertices:  make([]Vertex, 0, len(positions)/4),
		halfEdges: make([]HalfEdge, 0, len(indices)),
		faces:     make([]Face, 0, len(indices)/3),
	}

	m.buildVertices(positions, normals, color)
	m.buildFaces(indices)
	m.pairOpposites()
	m.assignVertexHalfEdges()

	if opts.Strict && len(m.nonManifold) > 0 {
		first := m.nonManifold[0].Edge
		return nil, fmt.Errorf("%w: %d surplus half-edges, first on edge %d-%d",
			ErrNonManifoldEdge, len(m.nonManifold), first.A, first.B)
	}

	return m, nil
}

func (m *Mesh) buildVertices(positions, normals []float32, color math.Vec4) {
	for i := 0; i < len(positions); i += 4 {
		var n math.Vec4
		if i+3 < len(normals) {
			n = math.Vec4{normals[i], normals[i+1], normals[i+2], normals[i+3]}
		}
		m.vertices = append(m.vertices, Vertex{
			ID:       i / 4,
			Position: math.Vec4{positions[i], positions[i+1], positions[i+2], positions[i+3]},
			Normal:   n,
			Color:    color,
			HalfEdge: None,
		})
	}
}

// buildFaces creates one face and three cyclically linked half-edges per
// triangle, keeping the input winding.
func (m *Mesh) buildFaces(indices []uint32) {
	for t := 0; t < len(indices); t += 3 {
		face := len(m.faces)
		base := len(m.halfEdges)
		m.faces = append(m.faces, Face{HalfEdge: base})

		for k := 0; k < 3; k++ {
			m.halfEdges = append(m.halfEdges, HalfEdge{
				Origin:   int(indices[t+k]),
				Next:     base + (k+1)%3,
				Face:     face,
				Opposite: None,
			})
		}
	}
}

// pairOpposites links the first two half-edges seen on each undirected edge.
// Any later half-edge on an already paired edge stays unpaired and is
// recorded as non-manifold. Paired keys are remembered, so unlike a walk
// that only deletes matched keys, a fourth occurrence is not paired with
// the third.
func (m *Mesh) pairOpposites() {
	pending := make(map[Edge]int, len(m.halfEdges)/2)
	paired := make(map[Edge]struct{}, len(m.halfEdges)/2)

	for i := range m.halfEdges {
		he := &m.halfEdges[i]
		key := edgeKey(he.Origin, m.halfEdges[he.Next].Origin)

		if _, done := paired[key]; done {
			m.nonManifold = append(m.nonManifold, NonManifoldEdge{Edge: key, HalfEdge: i})
			continue
		}

		if j, ok := pending[key]; ok {
			he.Opposite = j
			m.halfEdges[j].Opposite = i
			delete(pending, key)
			paired[key] = struct{}{}
			continue
		}

		pending[key] = i
	}
}

func (m *Mesh) assignVertexHalfEdges() {
	for i, he := range m.halfEdges {
		v := &m.vertices[he.Origin]
		if v.HalfEdge == None {
			v.HalfEdge = i
		}
	}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// HalfEdgeCount returns the number of half-edges, always 3 * FaceCount.
func (m *Mesh) HalfEdgeCount() int { return len(m.halfEdges) }

// FaceCount returns the number of triangles.
func (m *Mesh) FaceCount() int { return len(m.faces) }

// Vertex returns a copy of vertex id. It panics if id is out of range.
func (m *Mesh) Vertex(id int) Vertex { return m.vertices[id] }

// HalfEdge returns a copy of half-edge id.
func (m *Mesh) HalfEdge(id int) HalfEdge { return m.halfEdges[id] }

// Face returns a copy of face id.
func (m *Mesh) Face(id int) Face { return m.faces[id] }

// FaceVertices returns the three vertex ids of face f in winding order.
func (m *Mesh) FaceVertices(f int) [3]int {
	he0 := m.faces[f].HalfEdge
	he1 := m.halfEdges[he0].Next
	he2 := m.halfEdges[he1].Next
	return [3]int{m.halfEdges[he0].Origin, m.halfEdges[he1].Origin, m.halfEdges[he2].Origin}
}

// IsBoundary reports whether half-edge he has no opposite.
func (m *Mesh) IsBoundary(he int) bool {
	return m.halfEdges[he].Opposite == None
}

// BoundaryEdgeCount returns the number of half-edges without an opposite.
func (m *Mesh) BoundaryEdgeCount() int {
	n := 0
	for _, he := range m.halfEdges {
		if he.Opposite == None {
			n++
		}
	}
	return n
}

// NonManifoldEdges returns the half-edges left unpaired because their edge
// was shared by more than two faces.
func (m *Mesh) NonManifoldEdges() []NonManifoldEdge {
	return m.nonManifold
}

// Valence returns the number of faces incident to vertex id.
func (m *Mesh) Valence(id int) int {
	n := 0
	for _, he := range m.halfEdges {
		if he.Origin == id {
			n++
		}
	}
	return n
}

// Bounds returns the axis-aligned extents of the vertex positions.
func (m *Mesh) Bounds() (lo, hi math.Vec3) {
	if len(m.vertices) == 0 {
		return lo, hi
	}
	lo = m.vertices[0].Position.XYZ()
	hi = lo
	for _, v := range m.vertices[1:] {
		p := v.Position.XYZ()
		lo = math.Vec3{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
		hi = math.Vec3{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
	}
	return lo, hi
}
