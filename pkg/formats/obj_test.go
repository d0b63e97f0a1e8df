package formats

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const tetraOBJ = `# tetrahedron
o tetra
v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
vn 0 0 -1
vn 1 0 0
vn 0 1 0
vn 0 0 1
vt 0.5 0.5
s off
f 1//1 3//3 2//2
f 1 2 4
f 1/1/1 4/1/4 3/1/3
f 2//2   3//3	4//4
`

func TestParseOBJ_Tetrahedron(t *testing.T) {
	obj, err := ParseOBJ([]byte(tetraOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	if obj.VertexCount() != 4 {
		t.Errorf("expected 4 vertices, got %d", obj.VertexCount())
	}
	if obj.TriangleCount() != 4 {
		t.Errorf("expected 4 triangles, got %d", obj.TriangleCount())
	}

	wantIdx := []uint32{0, 2, 1, 0, 1, 3, 0, 3, 2, 1, 2, 3}
	if !reflect.DeepEqual(obj.Indices, wantIdx) {
		t.Errorf("indices = %v, want %v", obj.Indices, wantIdx)
	}

	// Positions carry w=1, normals w=0.
	if obj.Positions[7] != 1 || obj.Positions[4] != 1 {
		t.Errorf("second vertex = %v, want (1, 0, 0, 1)", obj.Positions[4:8])
	}
	if len(obj.Normals) != 16 || obj.Normals[3] != 0 || obj.Normals[2] != -1 {
		t.Errorf("normals = %v", obj.Normals)
	}
}

func TestParseOBJ_FanTriangulation(t *testing.T) {
	data := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"
	obj, err := ParseOBJ([]byte(data))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	want := []uint32{0, 1, 2, 0, 2, 3}
	if !reflect.DeepEqual(obj.Indices, want) {
		t.Errorf("indices = %v, want %v", obj.Indices, want)
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"index past end", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n", ErrOBJIndexOutOfRange},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", ErrOBJIndexOutOfRange},
		{"no faces", "v 0 0 0\n", ErrOBJNoFaces},
		{"short vertex", "v 0 0\nf 1 1 1\n", ErrOBJMalformedLine},
		{"bad float", "v 0 x 0\nf 1 1 1\n", ErrOBJMalformedLine},
		{"short face", "v 0 0 0\nf 1 1\n", ErrOBJMalformedLine},
		{"bad reference", "v 0 0 0\nf 1 a 1\n", ErrOBJMalformedLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseOBJ_ForwardFaceReference(t *testing.T) {
	// Faces may reference vertices declared later in the file.
	data := "f 1 2 3\nv 0 0 0\nv 1 0 0\nv 0 1 0\n"
	if _, err := ParseOBJ([]byte(data)); err != nil {
		t.Errorf("ParseOBJ failed: %v", err)
	}
}

func TestEnsureNormals(t *testing.T) {
	data := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	obj, err := ParseOBJ([]byte(data))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	if !obj.EnsureNormals() {
		t.Fatal("expected normals to be generated")
	}
	if len(obj.Normals) != 12 {
		t.Fatalf("expected 12 normal floats, got %d", len(obj.Normals))
	}
	for v := 0; v < 3; v++ {
		n := obj.Normals[v*4 : v*4+4]
		if n[0] != 0 || n[1] != 0 || n[2] != 1 || n[3] != 0 {
			t.Errorf("vertex %d normal = %v, want (0, 0, 1, 0)", v, n)
		}
	}

	if obj.EnsureNormals() {
		t.Error("second call should keep existing normals")
	}
}

func TestLoadOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetra.obj")
	if err := os.WriteFile(path, []byte(tetraOBJ), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	obj, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if obj.TriangleCount() != 4 {
		t.Errorf("expected 4 triangles, got %d", obj.TriangleCount())
	}

	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("expected error for missing file")
	}
}
