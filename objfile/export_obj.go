package objfile

import (
	"fmt"
	"io"
)

// ExportObj writes the mesh back out as a normalized OBJ: vertices in
// storage order, every face a triangle, 1-based indices, nothing else.
func (m *Mesh) ExportObj(_w io.Writer) error {
	w := func(format string, args ...interface{}) error {
		_, err := _w.Write(([]byte)(fmt.Sprintf(format+"\n", args...)))
		return err
	}

	for _, vertex := range m.Vertices {
		if err := w("v %f %f %f", vertex[0], vertex[1], vertex[2]); err != nil {
			return err
		}
	}

	for _, face := range m.Faces {
		if err := w("f %d %d %d", face[0]+1, face[1]+1, face[2]+1); err != nil {
			return err
		}
	}

	return nil
}
