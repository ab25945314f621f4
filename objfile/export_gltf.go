package objfile

import (
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/mogaika/objviewer/utils/gltfutils"
)

// ExportGLTF produces a single-node document with one position-only
// primitive and a default double-sided material. Empty meshes yield an
// empty scene, viewers are expected to handle that.
func (m *Mesh) ExportGLTF(name string) (*gltf.Document, error) {
	doc := gltfutils.NewDocument()

	doc.Materials = append(doc.Materials, &gltf.Material{
		Name:        "default",
		DoubleSided: true,
	})

	if len(m.Vertices) == 0 {
		return doc, nil
	}

	positions := make([][3]float32, len(m.Vertices))
	for iVertex, v := range m.Vertices {
		positions[iVertex] = [3]float32{v[0], v[1], v[2]}
	}
	positionAccessor := modeler.WritePosition(doc, positions)

	primitive := &gltf.Primitive{
		Attributes: map[string]uint32{
			"POSITION": positionAccessor,
		},
		Material: gltf.Index(0),
	}

	// an obj without faces is still a valid point cloud
	if len(m.Faces) > 0 {
		indices := make([]uint32, 0, len(m.Faces)*3)
		for _, face := range m.Faces {
			indices = append(indices, uint32(face[0]), uint32(face[1]), uint32(face[2]))
		}
		indicesAccessor := modeler.WriteIndices(doc, indices)
		primitive.Indices = &indicesAccessor
	}

	gltfMesh := &gltf.Mesh{
		Name:       name,
		Primitives: []*gltf.Primitive{primitive},
	}
	doc.Meshes = append(doc.Meshes, gltfMesh)

	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: name,
		Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
	})

	return doc, nil
}
