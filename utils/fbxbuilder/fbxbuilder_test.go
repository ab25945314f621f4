package fbxbuilder

import (
	"testing"

	"github.com/mogaika/fbx/builders/bfbx73"
)

func TestCountDefinitions(t *testing.T) {
	f := NewFBXBuilder("test.fbx")
	f.AddObjects(
		bfbx73.Model(f.GenerateId(), "a\x00\x01Model", "Mesh"),
		bfbx73.Model(f.GenerateId(), "b\x00\x01Model", "Mesh"),
		bfbx73.Geometry(f.GenerateId(), "\x00\x01Geometry", "Mesh"),
	)

	f.countDefinitions()

	definitions := f.Root().GetNode("Definitions")
	if definitions == nil {
		t.Fatal("no Definitions node")
	}

	// GlobalSettings + 2 models + 1 geometry
	if total := definitions.GetNode("Count").Properties[0].(int32); total != 4 {
		t.Errorf("total count = %d; expected 4", total)
	}

	counts := make(map[string]int32)
	for _, objectType := range definitions.GetNodes("ObjectType") {
		counts[objectType.Properties[0].(string)] = objectType.GetNode("Count").Properties[0].(int32)
	}
	if counts["Model"] != 2 {
		t.Errorf("Model count = %d; expected 2", counts["Model"])
	}
	if counts["Geometry"] != 1 {
		t.Errorf("Geometry count = %d; expected 1", counts["Geometry"])
	}
}
