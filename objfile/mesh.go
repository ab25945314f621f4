// Package objfile loads Wavefront OBJ files into a renderer-agnostic
// Mesh and derives the bits a viewer wants from it: bounding box,
// wireframe edges and export encodings.
package objfile

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Vertex = mgl32.Vec3

// Face references mesh vertices by 0-based index. Always a triangle:
// polygons with more corners are fan-split by the parser.
type Face [3]int

// Mesh is the renderer-agnostic result of parsing one OBJ source.
// It is never mutated after Parse returns it. Every face index is
// a valid position into Vertices; a mesh with zero vertices is a
// valid "nothing to show" result, not an error.
type Mesh struct {
	Vertices []Vertex
	Faces    []Face
}

type BoundingBox struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// WireframeEdge is a line segment along a face boundary, given as a
// pair of vertex positions.
type WireframeEdge struct {
	Start Vertex
	End   Vertex
}

// BoundingBox returns the axis-aligned box enclosing all vertices.
// ok is false for an empty mesh.
func (m *Mesh) BoundingBox() (bbox BoundingBox, ok bool) {
	if len(m.Vertices) == 0 {
		return BoundingBox{}, false
	}

	bbox.Min = m.Vertices[0]
	bbox.Max = m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for axis := 0; axis < 3; axis++ {
			if v[axis] < bbox.Min[axis] {
				bbox.Min[axis] = v[axis]
			}
			if v[axis] > bbox.Max[axis] {
				bbox.Max[axis] = v[axis]
			}
		}
	}
	return bbox, true
}

// WireframeEdges lists one edge per consecutive index pair of every
// face, including the closing last->first pair. The slice is rebuilt
// on every call and never cached inside the mesh. Degenerate faces
// produce zero-length edges, they are not filtered out.
func (m *Mesh) WireframeEdges() []WireframeEdge {
	edges := make([]WireframeEdge, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		for i := 0; i < 3; i++ {
			edges = append(edges, WireframeEdge{
				Start: m.Vertices[f[i]],
				End:   m.Vertices[f[(i+1)%3]],
			})
		}
	}
	return edges
}
