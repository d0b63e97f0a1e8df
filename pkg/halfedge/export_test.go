package halfedge

import (
	"reflect"
	"testing"
)

func TestExportLayout(t *testing.T) {
	pos, idx := tetrahedron()
	normals := make([]float32, len(pos))
	for i := 2; i < len(normals); i += 4 {
		normals[i] = 1
	}

	m, err := Build(pos, idx, normals, BuildOptions{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	b := m.Export()

	if !reflect.DeepEqual(b.Positions, pos) {
		t.Errorf("positions = %v, want %v", b.Positions, pos)
	}
	if !reflect.DeepEqual(b.Normals, normals) {
		t.Errorf("normals = %v, want %v", b.Normals, normals)
	}
	if !reflect.DeepEqual(b.Indices, idx) {
		t.Errorf("indices = %v, want %v", b.Indices, idx)
	}
	if b.IndexCount() != 3*m.FaceCount() {
		t.Errorf("expected %d indices, got %d", 3*m.FaceCount(), b.IndexCount())
	}
	if b.VertexCount() != m.VertexCount() {
		t.Errorf("expected %d vertices, got %d", m.VertexCount(), b.VertexCount())
	}
	if len(b.Colors) != 4*m.VertexCount() {
		t.Errorf("expected %d color floats, got %d", 4*m.VertexCount(), len(b.Colors))
	}
}

func TestExportIsStable(t *testing.T) {
	pos, idx := octahedron()
	m := mustBuild(t, pos, idx)

	first := m.Export()
	second := m.Export()
	if !reflect.DeepEqual(first, second) {
		t.Error("re-export without mutation should be identical")
	}
}

func TestExportAfterColorStar(t *testing.T) {
	pos, idx := octahedron()
	m := mustBuild(t, pos, idx)

	before := m.Export()
	if err := m.ColorStar(5, StarColor); err != nil {
		t.Fatalf("ColorStar failed: %v", err)
	}
	after := m.Export()

	if !reflect.DeepEqual(before.Indices, after.Indices) {
		t.Error("index stream changed after a color edit")
	}
	if !reflect.DeepEqual(before.Positions, after.Positions) {
		t.Error("positions changed after a color edit")
	}

	// Vertex 4 (+z) is outside the star of vertex 5 (-z).
	for id := 0; id < m.VertexCount(); id++ {
		got := [4]float32(after.Colors[id*4 : id*4+4])
		want := StarColor
		if id == 4 {
			want = DefaultColor
		}
		if got != want {
			t.Errorf("vertex %d exported color = %v, want %v", id, got, want)
		}
	}
}
