package objfile_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/mogaika/objviewer/objfile"
)

func TestExportObj(t *testing.T) {
	m := &objfile.Mesh{
		Vertices: []objfile.Vertex{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:    []objfile.Face{{0, 1, 2}},
	}

	var buf bytes.Buffer
	if err := m.ExportObj(&buf); err != nil {
		t.Fatalf("ExportObj failed: %v", err)
	}

	expected := "v 0.000000 0.000000 0.000000\n" +
		"v 1.000000 0.000000 0.000000\n" +
		"v 0.000000 1.000000 0.000000\n" +
		"f 1 2 3\n"
	if buf.String() != expected {
		t.Errorf("output:\n%sexpected:\n%s", buf.String(), expected)
	}
}

func TestExportObjReparse(t *testing.T) {
	src := "v 0 0 0\nv 2 0 0\nv 2 2 0\nv 0 2 0\nf 1 2 3 4\n"
	m := parseString(t, src)

	var buf bytes.Buffer
	if err := m.ExportObj(&buf); err != nil {
		t.Fatalf("ExportObj failed: %v", err)
	}

	reparsed, err := objfile.Parse(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	if !reflect.DeepEqual(m, reparsed) {
		t.Errorf("reparse = %v; expected %v", reparsed, m)
	}
}

func TestExportGLTF(t *testing.T) {
	m := &objfile.Mesh{
		Vertices: []objfile.Vertex{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:    []objfile.Face{{0, 1, 2}},
	}

	doc, err := m.ExportGLTF("tri")
	if err != nil {
		t.Fatalf("ExportGLTF failed: %v", err)
	}
	if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
		t.Fatalf("expected one mesh with one primitive, got %v", doc.Meshes)
	}
	if _, ok := doc.Meshes[0].Primitives[0].Attributes["POSITION"]; !ok {
		t.Error("primitive has no POSITION accessor")
	}
	if len(doc.Nodes) != 1 || doc.Nodes[0].Name != "tri" {
		t.Errorf("expected one node named 'tri', got %v", doc.Nodes)
	}
}

func TestExportFbx(t *testing.T) {
	m := &objfile.Mesh{
		Vertices: []objfile.Vertex{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:    []objfile.Face{{0, 1, 2}},
	}

	var buf bytes.Buffer
	if err := m.ExportFbx("tri", &buf); err != nil {
		t.Fatalf("ExportFbx failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("ExportFbx wrote nothing")
	}
	if !strings.HasPrefix(buf.String(), "Kaydara FBX Binary") {
		t.Errorf("output does not start with the binary fbx magic: %q", buf.String()[:24])
	}
}

func TestExportGLTFEmptyMesh(t *testing.T) {
	doc, err := (&objfile.Mesh{}).ExportGLTF("empty")
	if err != nil {
		t.Fatalf("ExportGLTF failed: %v", err)
	}
	if len(doc.Meshes) != 0 {
		t.Errorf("empty mesh produced %d gltf meshes", len(doc.Meshes))
	}
}
