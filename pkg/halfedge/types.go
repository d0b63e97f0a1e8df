// Package halfedge builds a half-edge topology over an indexed triangle list
// and answers adjacency queries on it.
//
// All cross references are integer indices into the slices owned by Mesh, so
// a Mesh can be copied or inspected without chasing pointers. A reference
// that is not set holds None.
package halfedge

import (
	"errors"

	"github.com/Faultbox/meshview/pkg/math"
)

// None marks an unset index reference (boundary opposite, vertex without an
// outgoing half-edge).
const None = -1

// Errors returned by Build and the selection operations.
var (
	ErrStride           = errors.New("buffer length is not a multiple of its stride")
	ErrVertexOutOfRange = errors.New("vertex id out of range")
	ErrNonManifoldEdge  = errors.New("non-manifold edge")
)

// Colors used when none is configured.
var (
	DefaultColor = math.Vec4{0.5, 0.2, 0.4, 1.0}
	StarColor    = math.Vec4{1.0, 0.0, 0.0, 1.0}
)

// Vertex is a mesh vertex. HalfEdge is one outgoing half-edge, chosen in
// construction order; many half-edges may leave the same vertex.
type Vertex struct {
	ID       int
	Position math.Vec4 // w = 1
	Normal   math.Vec4 // w = 0
	Color    math.Vec4
	HalfEdge int
}

// HalfEdge is a directed edge of exactly one face. Next walks the face
// boundary in input winding order. Opposite is None on boundary edges.
type HalfEdge struct {
	Origin   int
	Next     int
	Face     int
	Opposite int
}

// Face is a triangle, represented by one of its three half-edges.
type Face struct {
	HalfEdge int
}

// Edge is an undirected edge key with A <= B.
type Edge struct {
	A, B int
}

func edgeKey(a, b int) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// NonManifoldEdge records a half-edge left unpaired because its undirected
// edge had already been paired by two earlier half-edges.
type NonManifoldEdge struct {
	Edge     Edge
	HalfEdge int
}

// BuildOptions controls Build.
type BuildOptions struct {
	// Strict makes Build fail with ErrNonManifoldEdge instead of leaving
	// surplus half-edges unpaired.
	Strict bool
	// Color is the initial vertex color. Zero means DefaultColor.
	Color math.Vec4
}

// Buffers is the draw-ready export of a mesh. Positions, Colors and Normals
// have stride 4 in vertex id order; Indices holds three entries per face.
type Buffers struct {
	Positions []float32
	Colors    []float32
	Normals   []float32
	Indices   []uint32
}
