package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mogaika/objviewer/objfile"
	"github.com/mogaika/objviewer/utils"
	"github.com/mogaika/objviewer/utils/gltfutils"
)

var nameGenerator utils.RandomNameGenerator

func meshName(objPath string) string {
	if objPath == "-" {
		// stdin has no filename to reuse
		return nameGenerator.RandomName()
	}
	return strings.TrimSuffix(filepath.Base(objPath), filepath.Ext(objPath))
}

func exportMesh(m *objfile.Mesh, name, format, outPath string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	switch format {
	case "obj":
		return m.ExportObj(out)
	case "glb":
		doc, err := m.ExportGLTF(name)
		if err != nil {
			return err
		}
		return gltfutils.ExportBinary(out, doc)
	case "fbx":
		return m.ExportFbx(name, out)
	default:
		return fmt.Errorf("unknown export format '%s'", format)
	}
}

func main() {
	var objPath, export, outPath string
	var verbose bool
	flag.StringVar(&objPath, "obj", "", "Path to obj file ('-' for stdin)")
	flag.StringVar(&export, "export", "", "Export format: obj, glb or fbx")
	flag.StringVar(&outPath, "out", "", "Export output path")
	flag.BoolVar(&verbose, "v", false, "Dump parsed mesh")
	flag.Parse()

	if objPath == "" {
		flag.PrintDefaults()
		return
	}

	var m *objfile.Mesh
	var err error
	if objPath == "-" {
		m, err = objfile.Parse(os.Stdin)
	} else {
		m, err = objfile.ParseFile(objPath)
	}
	if err != nil {
		log.Fatalf("Failed to parse '%s': %v", objPath, err)
	}

	name := meshName(objPath)
	fmt.Printf("%s: %d vertices, %d faces, %d wireframe edges\n",
		name, len(m.Vertices), len(m.Faces), len(m.WireframeEdges()))
	if bbox, ok := m.BoundingBox(); ok {
		fmt.Printf("bounds min %v max %v\n", bbox.Min, bbox.Max)
	} else {
		fmt.Println("bounds: empty mesh")
	}

	if verbose {
		utils.Dump(m)
	}

	if export != "" {
		if outPath == "" {
			outPath = name + "." + export
		}
		if err := exportMesh(m, name, export, outPath); err != nil {
			log.Fatalf("Failed to export '%s': %v", outPath, err)
		}
		log.Printf("[objinfo] Exported '%s'", outPath)
	}
}
