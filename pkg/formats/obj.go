// Package formats provides parsers for 3D model file formats.
// OBJ (Wavefront) subset parser: object names, vertex positions and
// triangulated faces. Normals and texture coordinates are skipped.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/voxfeld/wireframe/pkg/math"
)

// OBJ format errors.
var (
	ErrModelNotFound      = errors.New("model file not found")
	ErrMalformedOBJVertex = errors.New("malformed OBJ vertex")
	ErrMalformedOBJFace   = errors.New("malformed OBJ face")
)

// Face references three vertices by 0-based index.
type Face [3]int

// Mesh is a named triangle mesh. Vertices are recentred at parse time so
// their centroid sits at the origin; DroppedFaces counts faces discarded
// for referencing vertices that do not exist.
type Mesh struct {
	Name         string
	Vertices     []math.Vec3
	Faces        []Face
	DroppedFaces int
}

// ParseOBJ parses OBJ data. Directives handled: "o" (name), "v" (position),
// "f" (triangle, 1-based indices, optional /texture/normal components).
// "vn" and "vt" are recognized and skipped; any other prefix is ignored.
// Malformed numeric tokens fail the whole parse. Faces are validated once
// the whole file is consumed, so directive order does not matter; faces
// whose indices do not address a position in the final vertex sequence are
// dropped, not fatal. After parsing, vertex positions are shifted so their
// centroid is at the origin.
func ParseOBJ(data []byte) (*Mesh, error) {
	mesh := &Mesh{}
	var faces []Face
	scanner := bufio.NewScanner(bytes.NewReader(data))

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "o "):
			mesh.Name = strings.TrimSpace(line[2:])

		case strings.HasPrefix(line, "v "):
			v, err := parseVertex(line[2:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			mesh.Vertices = append(mesh.Vertices, v)

		case strings.HasPrefix(line, "vn "), strings.HasPrefix(line, "vt "):
			// normals and texture coordinates, unused

		case strings.HasPrefix(line, "f "):
			f, err := parseFace(line[2:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			faces = append(faces, f)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ data: %w", err)
	}

	// Range-check against the complete vertex sequence; a face may
	// legally precede the vertices it references.
	for _, f := range faces {
		if f[0] < 0 || f[0] >= len(mesh.Vertices) ||
			f[1] < 0 || f[1] >= len(mesh.Vertices) ||
			f[2] < 0 || f[2] >= len(mesh.Vertices) {
			mesh.DroppedFaces++
			continue
		}
		mesh.Faces = append(mesh.Faces, f)
	}

	mesh.Center()
	return mesh, nil
}

// LoadOBJ reads and parses an OBJ file. A file that cannot be opened is
// reported as ErrModelNotFound so callers can tell it apart from malformed
// data.
func LoadOBJ(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, path)
	}
	mesh, err := ParseOBJ(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return mesh, nil
}

// parseVertex parses three float tokens. The axes are kept exactly as
// written in the file; no swap or flip is applied.
func parseVertex(s string) (math.Vec3, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return math.Vec3{}, fmt.Errorf("%w: want 3 coordinates, got %d", ErrMalformedOBJVertex, len(fields))
	}
	var c [3]float32
	for i, field := range fields {
		f, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("%w: %q", ErrMalformedOBJVertex, field)
		}
		c[i] = float32(f)
	}
	return math.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

// parseFace parses three index tokens of the form "i", "i/t" or "i/t/n",
// keeping only the leading vertex index and converting it from the OBJ
// 1-based convention to 0-based.
func parseFace(s string) (Face, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Face{}, fmt.Errorf("%w: want 3 vertices, got %d", ErrMalformedOBJFace, len(fields))
	}
	var f Face
	for i, field := range fields {
		head, _, _ := strings.Cut(field, "/")
		idx, err := strconv.Atoi(head)
		if err != nil {
			return Face{}, fmt.Errorf("%w: %q", ErrMalformedOBJFace, field)
		}
		f[i] = idx - 1
	}
	return f, nil
}

// Center shifts all vertices so their centroid is at the origin. The
// rotation pivot ends up at the model's geometric center regardless of how
// the modeling tool positioned it.
func (m *Mesh) Center() {
	if len(m.Vertices) == 0 {
		return
	}
	var sum math.Vec3
	for _, v := range m.Vertices {
		sum = sum.Add(v)
	}
	center := sum.Div(float32(len(m.Vertices)))
	math.TranslateAll(center.Scale(-1), m.Vertices)
}

// Bounds returns the axis-aligned bounding box of the mesh. Both corners
// are zero for an empty mesh.
func (m *Mesh) Bounds() (min, max math.Vec3) {
	if len(m.Vertices) == 0 {
		return math.Vec3{}, math.Vec3{}
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.Z < min.Z {
			min.Z = v.Z
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
		if v.Z > max.Z {
			max.Z = v.Z
		}
	}
	return min, max
}

// FitTo uniformly rescales the mesh so its largest bounding-box extent
// equals size. Degenerate extents leave the mesh untouched.
func (m *Mesh) FitTo(size float32) {
	min, max := m.Bounds()
	dim := max.Sub(min)
	maxDim := dim.X
	if dim.Y > maxDim {
		maxDim = dim.Y
	}
	if dim.Z > maxDim {
		maxDim = dim.Z
	}
	if maxDim < 1e-6 {
		return
	}
	scale := size / maxDim
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Scale(scale)
	}
}
