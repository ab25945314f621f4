package objfile_test

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"

	"github.com/mogaika/objviewer/config"
	"github.com/mogaika/objviewer/objfile"
)

func parseString(t *testing.T, src string) *objfile.Mesh {
	t.Helper()
	m, err := objfile.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return m
}

func TestParseSingleVertex(t *testing.T) {
	m := parseString(t, "v 1.5 -2 3.25\n")
	if len(m.Vertices) != 1 || len(m.Faces) != 0 {
		t.Fatalf("got %d vertices, %d faces; expected 1, 0", len(m.Vertices), len(m.Faces))
	}
	if m.Vertices[0] != (objfile.Vertex{1.5, -2, 3.25}) {
		t.Errorf("vertex = %v; expected (1.5 -2 3.25)", m.Vertices[0])
	}
}

func TestParseEmptyInput(t *testing.T) {
	m := parseString(t, "")
	if len(m.Vertices) != 0 || len(m.Faces) != 0 {
		t.Errorf("empty input produced %d vertices, %d faces", len(m.Vertices), len(m.Faces))
	}
}

const fourVertices = "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\n"

func TestParseQuadSplit(t *testing.T) {
	m := parseString(t, fourVertices+"f 1 2 3 4\n")
	expected := []objfile.Face{{0, 1, 2}, {0, 2, 3}}
	if !reflect.DeepEqual(m.Faces, expected) {
		t.Errorf("faces = %v; expected %v", m.Faces, expected)
	}
}

func TestParseNgonFan(t *testing.T) {
	m := parseString(t, fourVertices+"v 0.5 2 0\nf 1 2 3 4 5\n")
	expected := []objfile.Face{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}}
	if !reflect.DeepEqual(m.Faces, expected) {
		t.Errorf("faces = %v; expected %v", m.Faces, expected)
	}
}

func TestParseSkipsTooShortLines(t *testing.T) {
	m := parseString(t, "v 1 2\nf 1 2\n"+fourVertices+"f 1 2 3\n")
	if len(m.Vertices) != 4 {
		t.Errorf("got %d vertices; expected 4", len(m.Vertices))
	}
	if len(m.Faces) != 1 {
		t.Errorf("got %d faces; expected 1", len(m.Faces))
	}
}

func TestParseCompositeIndex(t *testing.T) {
	m := parseString(t, fourVertices+"v 2 2 2\nf 5/2/1 1//3 2/7\n")
	expected := []objfile.Face{{4, 0, 1}}
	if !reflect.DeepEqual(m.Faces, expected) {
		t.Errorf("faces = %v; expected %v", m.Faces, expected)
	}
}

func TestParseIgnoresForeignRecords(t *testing.T) {
	src := "# comment line\n" +
		"mtllib some.mtl\n" +
		"o object name here\n" +
		"vn 0 0 1\n" +
		"vt 0.5 0.5 0.0\n" +
		"\n" +
		"v 1 2 3\n" +
		"usemtl shiny metal thing\n"
	m := parseString(t, src)
	if len(m.Vertices) != 1 || len(m.Faces) != 0 {
		t.Errorf("got %d vertices, %d faces; expected 1, 0", len(m.Vertices), len(m.Faces))
	}
}

func TestParseWhitespaceTolerance(t *testing.T) {
	m := parseString(t, "   v \t 1   2\t3  \r\n")
	if len(m.Vertices) != 1 || m.Vertices[0] != (objfile.Vertex{1, 2, 3}) {
		t.Errorf("vertices = %v; expected one (1 2 3)", m.Vertices)
	}
}

func TestParseIdempotence(t *testing.T) {
	src := fourVertices + "f 1 2 3 4\nf 1/1 2/2 3/3\n"
	a := parseString(t, src)
	b := parseString(t, src)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("two parses of same input differ: %v vs %v", a, b)
	}
}

func TestParseMalformedNumber(t *testing.T) {
	for _, src := range []string{"v 1 abc 3\n", fourVertices + "f 1 x 3\n"} {
		_, err := objfile.Parse(strings.NewReader(src))
		var malformed *objfile.MalformedNumberError
		if !errors.As(err, &malformed) {
			t.Errorf("Parse(%q) error = %v; expected MalformedNumberError", src, err)
			continue
		}
		if malformed.Line == 0 {
			t.Errorf("Parse(%q): error has no line number", src)
		}
	}
}

func TestParseIndexOutOfRange(t *testing.T) {
	for _, src := range []string{
		"v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n",
		"f 1 2 3\n",
	} {
		_, err := objfile.Parse(strings.NewReader(src))
		var oor *objfile.IndexOutOfRangeError
		if !errors.As(err, &oor) {
			t.Errorf("Parse(%q) error = %v; expected IndexOutOfRangeError", src, err)
		}
	}
}

func TestParseConcurrent(t *testing.T) {
	src := fourVertices + "f 1 2 3 4\n"
	expected := parseString(t, src)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				m, err := objfile.Parse(strings.NewReader(src))
				if err != nil {
					t.Errorf("Parse failed: %v", err)
					return
				}
				if !reflect.DeepEqual(m, expected) {
					t.Errorf("mesh = %v; expected %v", m, expected)
					return
				}
			}
		}()
	}

	// presentation-layer encoding switches must not be observable here
	for _, enc := range []string{"ISO 8859-1", "Windows 1252"} {
		if err := config.SetEncoding(enc); err != nil {
			t.Fatal(err)
		}
	}
	wg.Wait()
}

func TestParseLineTooLong(t *testing.T) {
	src := "v 1 2 3\n# " + strings.Repeat("x", 2*1024*1024) + "\n"
	_, err := objfile.Parse(strings.NewReader(src))
	if !errors.Is(err, objfile.ErrSourceUnreadable) {
		t.Errorf("error = %v; expected ErrSourceUnreadable", err)
	}
	if err == nil || !strings.Contains(err.Error(), "exceeds") {
		t.Errorf("error %v should point at the oversized line", err)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := objfile.ParseFile("testdata/does-not-exist.obj")
	if !errors.Is(err, objfile.ErrSourceUnreadable) {
		t.Errorf("error = %v; expected ErrSourceUnreadable", err)
	}
}
