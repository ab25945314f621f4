package objfile

import (
	"io"

	"github.com/mogaika/fbx/builders/bfbx73"

	"github.com/mogaika/objviewer/utils"
	"github.com/mogaika/objviewer/utils/fbxbuilder"
)

// ExportFbx writes the mesh as a binary FBX 7400 scene with a single
// geometry attached to a single model node.
func (m *Mesh) ExportFbx(name string, w io.Writer) error {
	f := fbxbuilder.NewFBXBuilder(name + ".fbx")

	vertices := make([]float32, 0, len(m.Vertices)*3)
	for _, v := range m.Vertices {
		vertices = append(vertices, v[0], v[1], v[2])
	}

	// fbx closes a polygon by storing the last index bit-inverted
	indexes := make([]int32, 0, len(m.Faces)*3)
	for _, face := range m.Faces {
		indexes = append(indexes, int32(face[0]), int32(face[1]), ^int32(face[2]))
	}

	geometryId := f.GenerateId()
	geometry := bfbx73.Geometry(geometryId, "\x00\x01Geometry", "Mesh").AddNodes(
		bfbx73.Properties70().AddNodes(
			bfbx73.P("Color", "ColorRGB", "Color", "", float64(1), float64(1), float64(1)),
		),
		bfbx73.GeometryVersion(124),
		bfbx73.Vertices(utils.FloatArray32to64(vertices)),
		bfbx73.PolygonVertexIndex(indexes),
		bfbx73.Layer(0).AddNodes(
			bfbx73.Version(100),
		),
	)

	modelId := f.GenerateId()
	model := bfbx73.Model(modelId, name+"\x00\x01Model", "Mesh").AddNodes(
		bfbx73.Version(232),
		bfbx73.Properties70().AddNodes(
			bfbx73.P("InheritType", "enum", "", "", int32(1)),
			bfbx73.P("DefaultAttributeIndex", "int", "Integer", "", int32(0)),
			bfbx73.P("Lcl Translation", "Lcl Translation", "", "A", float64(0), float64(0), float64(0)),
			bfbx73.P("Lcl Rotation", "Lcl Rotation", "", "A", float64(0), float64(0), float64(0)),
			bfbx73.P("Lcl Scaling", "Lcl Scaling", "", "A", float64(1), float64(1), float64(1)),
		),
		bfbx73.Shading(true),
		bfbx73.Culling("CullingOff"),
	)

	f.AddObjects(model, geometry)
	f.AddConnections(
		bfbx73.C("OO", geometryId, modelId),
		bfbx73.C("OO", modelId, 0),
	)

	return f.Write(w)
}
