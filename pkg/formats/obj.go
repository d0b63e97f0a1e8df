// Package formats provides parsers for the model formats the viewer loads.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/meshview/pkg/math"
)

// OBJ format errors.
var (
	ErrOBJMalformedLine   = errors.New("malformed OBJ line")
	ErrOBJIndexOutOfRange = errors.New("OBJ face index out of range")
	ErrOBJNoFaces         = errors.New("OBJ file has no faces")
)

// OBJ is a parsed Wavefront OBJ triangle mesh in flat, draw-ready form.
type OBJ struct {
	// Positions holds x, y, z, 1 per vertex.
	Positions []float32
	// Normals holds x, y, z, 0 per vn line, in file order.
	Normals []float32
	// Indices holds three 0-based vertex ids per triangle.
	Indices []uint32
}

// VertexCount returns the number of v lines read.
func (o *OBJ) VertexCount() int {
	return len(o.Positions) / 4
}

// TriangleCount returns the number of triangles after fan triangulation.
func (o *OBJ) TriangleCount() int {
	return len(o.Indices) / 3
}

// LoadOBJ reads and parses an OBJ file from disk.
func LoadOBJ(path string) (*OBJ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ: %w", err)
	}
	return ParseOBJ(data)
}

// ParseOBJ parses OBJ text. Only v, vn and f lines are read; everything else
// is ignored. Face references may be "v", "v//vn" or "v/vt/vn"; only the
// vertex index is used, and faces with more than three references are fan
// triangulated. Indices are converted to 0-based and checked against the
// vertex count once the whole file has been read.
func ParseOBJ(data []byte) (*OBJ, error) {
	obj := &OBJ{}
	var faceLines []int

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			xyz, err := parseFloats(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			obj.Positions = append(obj.Positions, xyz[0], xyz[1], xyz[2], 1)

		case "vn":
			xyz, err := parseFloats(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			obj.Normals = append(obj.Normals, xyz[0], xyz[1], xyz[2], 0)

		case "f":
			refs, err := parseFace(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			for i := 1; i+1 < len(refs); i++ {
				obj.Indices = append(obj.Indices, refs[0], refs[i], refs[i+1])
				faceLines = append(faceLines, lineNo)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning OBJ: %w", err)
	}

	if len(obj.Indices) == 0 {
		return nil, ErrOBJNoFaces
	}

	count := uint32(obj.VertexCount())
	for i, idx := range obj.Indices {
		if idx >= count {
			return nil, fmt.Errorf("line %d: vertex %d, file has %d: %w",
				faceLines[i/3], idx+1, count, ErrOBJIndexOutOfRange)
		}
	}

	return obj, nil
}

func parseFloats(fields []string) ([3]float32, error) {
	var out [3]float32
	if len(fields) < 3 {
		return out, fmt.Errorf("%w: expected 3 coordinates, got %d", ErrOBJMalformedLine, len(fields))
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return out, fmt.Errorf("%w: %v", ErrOBJMalformedLine, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

// parseFace returns the 0-based vertex indices of a face line.
func parseFace(fields []string) ([]uint32, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: face needs 3 vertices, got %d", ErrOBJMalformedLine, len(fields))
	}
	refs := make([]uint32, 0, len(fields))
	for _, f := range fields {
		head, _, _ := strings.Cut(f, "/")
		n, err := strconv.ParseUint(head, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: face reference %q", ErrOBJMalformedLine, f)
		}
		if n == 0 {
			return nil, fmt.Errorf("face reference %q: %w", f, ErrOBJIndexOutOfRange)
		}
		refs = append(refs, uint32(n-1))
	}
	return refs, nil
}

// EnsureNormals generates smooth vertex normals when the file did not carry
// one vn per vertex. Each vertex gets the normalized sum of the unnormalized
// normals of its faces, which weights faces by area. It reports whether
// normals were generated.
func (o *OBJ) EnsureNormals() bool {
	if len(o.Normals) >= len(o.Positions) {
		return false
	}

	acc := make([]math.Vec3, o.VertexCount())
	for t := 0; t+2 < len(o.Indices); t += 3 {
		a, b, c := o.Indices[t], o.Indices[t+1], o.Indices[t+2]
		p0, p1, p2 := o.position(a), o.position(b), o.position(c)
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		acc[a] = acc[a].Add(n)
		acc[b] = acc[b].Add(n)
		acc[c] = acc[c].Add(n)
	}

	o.Normals = make([]float32, 0, len(o.Positions))
	for _, n := range acc {
		d := n.Normalize().Direction()
		o.Normals = append(o.Normals, d[:]...)
	}
	return true
}

func (o *OBJ) position(i uint32) math.Vec3 {
	return math.Vec3{X: o.Positions[i*4], Y: o.Positions[i*4+1], Z: o.Positions[i*4+2]}
}
