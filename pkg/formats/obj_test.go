package formats

import (
	"bytes"
	"errors"
	gomath "math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/voxfeld/wireframe/pkg/math"
)

// A unit tetrahedron with a name, comments, normals and texture
// coordinates sprinkled in.
const tetraOBJ = `# test model
o tetra

v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
vn 0 0 1
vt 0.5 0.5
f 1 2 3
f 1/1 2/1/1 4/1/1
s off
`

func TestParseOBJ_Valid(t *testing.T) {
	mesh, err := ParseOBJ([]byte(tetraOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	if mesh.Name != "tetra" {
		t.Errorf("expected name %q, got %q", "tetra", mesh.Name)
	}
	if len(mesh.Vertices) != 4 {
		t.Errorf("expected 4 vertices, got %d", len(mesh.Vertices))
	}
	if len(mesh.Faces) != 2 {
		t.Errorf("expected 2 faces, got %d", len(mesh.Faces))
	}
	if mesh.DroppedFaces != 0 {
		t.Errorf("expected no dropped faces, got %d", mesh.DroppedFaces)
	}

	// Indices converted from 1-based to 0-based, slash components ignored.
	if mesh.Faces[0] != (Face{0, 1, 2}) {
		t.Errorf("face 0 = %v, want {0 1 2}", mesh.Faces[0])
	}
	if mesh.Faces[1] != (Face{0, 1, 3}) {
		t.Errorf("face 1 = %v, want {0 1 3}", mesh.Faces[1])
	}
}

func TestParseOBJ_Centered(t *testing.T) {
	mesh, err := ParseOBJ([]byte(tetraOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	var sx, sy, sz float64
	for _, v := range mesh.Vertices {
		sx += float64(v.X)
		sy += float64(v.Y)
		sz += float64(v.Z)
	}
	n := float64(len(mesh.Vertices))
	if gomath.Abs(sx/n) > 1e-6 || gomath.Abs(sy/n) > 1e-6 || gomath.Abs(sz/n) > 1e-6 {
		t.Errorf("centroid not at origin: (%v, %v, %v)", sx/n, sy/n, sz/n)
	}
}

func TestParseOBJ_DropsOutOfRangeFaces(t *testing.T) {
	data := `v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
f 1 2 9
`
	mesh, err := ParseOBJ([]byte(data))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	if len(mesh.Faces) != 1 {
		t.Errorf("expected 1 face kept, got %d", len(mesh.Faces))
	}
	if mesh.DroppedFaces != 1 {
		t.Errorf("expected 1 dropped face, got %d", mesh.DroppedFaces)
	}
}

func TestParseOBJ_FaceBeforeVertices(t *testing.T) {
	// Face validity depends on the final vertex sequence, not on how far
	// the scan has gotten when the f directive appears.
	data := `f 1 2 3
v 0 0 0
v 1 0 0
v 0 1 0
`
	mesh, err := ParseOBJ([]byte(data))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	if len(mesh.Faces) != 1 {
		t.Errorf("expected 1 face, got %d", len(mesh.Faces))
	}
	if mesh.DroppedFaces != 0 {
		t.Errorf("expected no dropped faces, got %d", mesh.DroppedFaces)
	}
	if len(mesh.Faces) == 1 && mesh.Faces[0] != (Face{0, 1, 2}) {
		t.Errorf("face = %v, want {0 1 2}", mesh.Faces[0])
	}
}

func TestParseOBJ_MalformedVertex(t *testing.T) {
	_, err := ParseOBJ([]byte("v 1.0 nope 3.0\n"))
	if !errors.Is(err, ErrMalformedOBJVertex) {
		t.Errorf("expected ErrMalformedOBJVertex, got %v", err)
	}
}

func TestParseOBJ_MalformedFace(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"non-numeric index", "v 0 0 0\nf a b c\n"},
		{"too few vertices", "v 0 0 0\nf 1 1\n"},
		{"quad face", "v 0 0 0\nf 1 1 1 1\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseOBJ([]byte(tc.data))
			if !errors.Is(err, ErrMalformedOBJFace) {
				t.Errorf("expected ErrMalformedOBJFace, got %v", err)
			}
		})
	}
}

func TestLoadOBJ_File(t *testing.T) {
	mesh, err := LoadOBJ(filepath.Join("testdata", "cube.obj"))
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if mesh.Name != "cube" {
		t.Errorf("expected name %q, got %q", "cube", mesh.Name)
	}
	if len(mesh.Vertices) != 8 {
		t.Errorf("expected 8 vertices, got %d", len(mesh.Vertices))
	}
	if len(mesh.Faces) != 12 {
		t.Errorf("expected 12 faces, got %d", len(mesh.Faces))
	}
}

func TestLoadOBJ_Missing(t *testing.T) {
	_, err := LoadOBJ(filepath.Join(t.TempDir(), "no-such-model.obj"))
	if !errors.Is(err, ErrModelNotFound) {
		t.Errorf("expected ErrModelNotFound, got %v", err)
	}
}

func TestLoadOBJ_MalformedIsNotNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.obj")
	if err := os.WriteFile(path, []byte("v 1 x 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadOBJ(path)
	if err == nil {
		t.Fatal("expected error for malformed file")
	}
	if errors.Is(err, ErrModelNotFound) {
		t.Error("malformed data must not be reported as not-found")
	}
}

func TestMeshFitTo(t *testing.T) {
	mesh := &Mesh{Vertices: []math.Vec3{{X: -2, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}}
	mesh.FitTo(20)
	min, max := mesh.Bounds()
	if got := max.X - min.X; gomath.Abs(float64(got-20)) > 1e-4 {
		t.Errorf("largest extent after FitTo = %v, want 20", got)
	}
}

func TestMeshFitTo_Degenerate(t *testing.T) {
	mesh := &Mesh{Vertices: []math.Vec3{{X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}}}
	mesh.FitTo(20)
	if mesh.Vertices[0] != (math.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("degenerate mesh must not be rescaled, got %v", mesh.Vertices[0])
	}
}

func TestEncodeOBJ_RoundTrip(t *testing.T) {
	mesh, err := ParseOBJ([]byte(tetraOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	var buf bytes.Buffer
	if err := mesh.EncodeOBJ(&buf); err != nil {
		t.Fatalf("EncodeOBJ failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "o tetra\n") {
		t.Errorf("expected name directive first, got %q", out)
	}

	again, err := ParseOBJ(buf.Bytes())
	if err != nil {
		t.Fatalf("re-parsing encoded mesh failed: %v", err)
	}
	if len(again.Vertices) != len(mesh.Vertices) || len(again.Faces) != len(mesh.Faces) {
		t.Errorf("round trip changed counts: %d/%d vertices, %d/%d faces",
			len(again.Vertices), len(mesh.Vertices), len(again.Faces), len(mesh.Faces))
	}
}
