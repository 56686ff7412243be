package formats

import (
	"bufio"
	"fmt"
	"io"
)

// EncodeOBJ writes the mesh back out as minimal OBJ text: the object name,
// vertex positions and triangle faces with 1-based indices. Normals and
// texture coordinates are never emitted.
func (m *Mesh) EncodeOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if m.Name != "" {
		if _, err := fmt.Fprintf(bw, "o %s\n", m.Name); err != nil {
			return err
		}
	}
	for _, v := range m.Vertices {
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return err
		}
	}
	for _, f := range m.Faces {
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", f[0]+1, f[1]+1, f[2]+1); err != nil {
			return err
		}
	}
	return bw.Flush()
}
