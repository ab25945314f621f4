package objfile_test

import (
	"reflect"
	"testing"

	"github.com/mogaika/objviewer/objfile"
)

func TestBoundingBox(t *testing.T) {
	m := &objfile.Mesh{Vertices: []objfile.Vertex{{0, 0, 0}, {1, 2, 3}}}
	bbox, ok := m.BoundingBox()
	if !ok {
		t.Fatal("expected a bounding box")
	}
	if bbox.Min != (objfile.Vertex{0, 0, 0}) || bbox.Max != (objfile.Vertex{1, 2, 3}) {
		t.Errorf("bbox = %v; expected min (0 0 0) max (1 2 3)", bbox)
	}
}

func TestBoundingBoxMixedAxes(t *testing.T) {
	// no single vertex is the min or max corner
	m := &objfile.Mesh{Vertices: []objfile.Vertex{{-1, 5, 0}, {2, -3, 1}, {0, 0, -7}}}
	bbox, ok := m.BoundingBox()
	if !ok {
		t.Fatal("expected a bounding box")
	}
	if bbox.Min != (objfile.Vertex{-1, -3, -7}) || bbox.Max != (objfile.Vertex{2, 5, 1}) {
		t.Errorf("bbox = %v; expected min (-1 -3 -7) max (2 5 1)", bbox)
	}
}

func TestBoundingBoxEmptyMesh(t *testing.T) {
	m := &objfile.Mesh{}
	if _, ok := m.BoundingBox(); ok {
		t.Error("empty mesh should have no bounding box")
	}
}

func TestWireframeEdgesTriangle(t *testing.T) {
	m := &objfile.Mesh{
		Vertices: []objfile.Vertex{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:    []objfile.Face{{0, 1, 2}},
	}
	expected := []objfile.WireframeEdge{
		{Start: m.Vertices[0], End: m.Vertices[1]},
		{Start: m.Vertices[1], End: m.Vertices[2]},
		{Start: m.Vertices[2], End: m.Vertices[0]},
	}
	if edges := m.WireframeEdges(); !reflect.DeepEqual(edges, expected) {
		t.Errorf("edges = %v; expected %v", edges, expected)
	}
}

func TestWireframeEdgesRecomputed(t *testing.T) {
	m := &objfile.Mesh{
		Vertices: []objfile.Vertex{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:    []objfile.Face{{0, 1, 2}},
	}
	a := m.WireframeEdges()
	b := m.WireframeEdges()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated calls differ: %v vs %v", a, b)
	}
	a[0].Start[0] = 99
	if reflect.DeepEqual(a, m.WireframeEdges()) {
		t.Error("edge slices should be independent between calls")
	}
}

func TestWireframeEdgesDegenerateFaceKept(t *testing.T) {
	m := &objfile.Mesh{
		Vertices: []objfile.Vertex{{1, 1, 1}},
		Faces:    []objfile.Face{{0, 0, 0}},
	}
	edges := m.WireframeEdges()
	if len(edges) != 3 {
		t.Fatalf("got %d edges; expected 3 degenerate ones", len(edges))
	}
	for _, e := range edges {
		if e.Start != e.End {
			t.Errorf("edge %v should be zero-length", e)
		}
	}
}
