package objfile

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Longest accepted input line. OBJ records are short, a line this big
// means the file is not a mesh at all.
const maxLineLength = 1024 * 1024

// Parse reads one OBJ source line by line and assembles a Mesh.
//
// Recognized records are "v x y z" (extra fields ignored) and
// "f i1 i2 i3 ...". Everything else (comments, vn, vt, groups,
// materials, blank lines) is inert. Vertex or face lines with too few
// fields are skipped, matching the permissive viewers this replaces.
// Composite face fields keep only the part before the first '/'.
// Quads are fan-split into two triangles, larger polygons into n-2
// triangles sharing the first corner.
//
// The bytes of r are consumed as-is; a caller holding a legacy 8-bit
// file wraps r with the matching charmap decoder first, the way the
// web layer does. Parse keeps no state between or during calls, so
// any number of sources may be parsed concurrently.
//
// A numeric field that fails to parse aborts the parse with
// *MalformedNumberError. A face index outside the final vertex range
// aborts it with *IndexOutOfRangeError. Read failures and lines over
// maxLineLength bytes wrap ErrSourceUnreadable.
func Parse(r io.Reader) (*Mesh, error) {
	m := &Mesh{
		Vertices: make([]Vertex, 0, 64),
		Faces:    make([]Face, 0, 64),
	}
	faceLines := make([]int, 0, 64)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(fields) < 4 {
			continue
		}

		switch fields[0] {
		case "v":
			var v Vertex
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(fields[1+i], 32)
				if err != nil {
					return nil, &MalformedNumberError{Line: line, Field: fields[1+i], Err: err}
				}
				v[i] = float32(f)
			}
			m.Vertices = append(m.Vertices, v)
		case "f":
			polygon := make([]int, len(fields)-1)
			for i, field := range fields[1:] {
				if cut := strings.IndexByte(field, '/'); cut >= 0 {
					field = field[:cut]
				}
				index, err := strconv.Atoi(field)
				if err != nil {
					return nil, &MalformedNumberError{Line: line, Field: field, Err: err}
				}
				polygon[i] = index - 1
			}
			for i := 1; i < len(polygon)-1; i++ {
				m.Faces = append(m.Faces, Face{polygon[0], polygon[i], polygon[i+1]})
				faceLines = append(faceLines, line)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		if err == bufio.ErrTooLong {
			return nil, errors.Wrapf(ErrSourceUnreadable,
				"line %d exceeds %d bytes", line+1, maxLineLength)
		}
		return nil, errors.Wrapf(ErrSourceUnreadable, "read failed: %v", err)
	}

	// bounds are checked only after the whole file is consumed, the
	// format does not forbid faces ahead of their vertices
	for iFace, f := range m.Faces {
		for _, index := range f {
			if index < 0 || index >= len(m.Vertices) {
				return nil, &IndexOutOfRangeError{
					Line:        faceLines[iFace],
					Index:       index,
					VertexCount: len(m.Vertices),
				}
			}
		}
	}

	return m, nil
}

// ParseFile opens path, parses it and closes it on every exit path.
func ParseFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrSourceUnreadable, "cannot open '%s': %v", path, err)
	}
	defer f.Close()

	return Parse(f)
}
