package web

import (
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"golang.org/x/text/transform"

	"github.com/mogaika/objviewer/config"
	"github.com/mogaika/objviewer/objfile"
	"github.com/mogaika/objviewer/status"
	"github.com/mogaika/objviewer/utils/gltfutils"
	"github.com/mogaika/objviewer/vfs"
	"github.com/mogaika/objviewer/webutils"
)

type ajaxMesh struct {
	Vertices  []objfile.Vertex        `json:"vertices"`
	Faces     []objfile.Face          `json:"faces"`
	Bounds    *objfile.BoundingBox    `json:"bounds"`
	Wireframe []objfile.WireframeEdge `json:"wireframe,omitempty"`
}

func (s *Server) loadMesh(category, file string) (*objfile.Mesh, error) {
	d, err := vfs.DirectoryGetSubDirectory(s.root, category)
	if err != nil {
		return nil, errors.Wrapf(err, "Unknown category '%s'", category)
	}

	f, err := vfs.DirectoryGetFile(d, file)
	if err != nil {
		return nil, errors.Wrapf(err, "Unknown file '%s/%s'", category, file)
	}

	r, err := vfs.OpenFileAndGetReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Cannot read '%s/%s'", category, file)
	}
	defer f.Close()

	// the parsing core takes plain bytes, decoding stays up here
	m, err := objfile.Parse(transform.NewReader(r, config.GetEncoding().NewDecoder()))
	if err != nil {
		status.Error("Error loading '%s/%s': %v", category, file, err)
		return nil, errors.Wrapf(err, "Parse of '%s/%s' failed", category, file)
	}

	status.Info("Loaded '%s/%s': %d vertices, %d faces",
		category, file, len(m.Vertices), len(m.Faces))
	return m, nil
}

func (s *Server) HandlerAjaxFiles(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, s.files)
}

func (s *Server) HandlerAjaxMesh(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]
	file := mux.Vars(r)["file"]

	m, err := s.loadMesh(category, file)
	if err != nil {
		log.Printf("[web] Error loading mesh: %v", err)
		webutils.WriteError(w, err)
		return
	}

	result := &ajaxMesh{
		Vertices: m.Vertices,
		Faces:    m.Faces,
	}
	if bbox, ok := m.BoundingBox(); ok {
		result.Bounds = &bbox
	}

	wireframe := s.cfg.ShowWireframe
	switch r.URL.Query().Get("wireframe") {
	case "1", "true":
		wireframe = true
	case "0", "false":
		wireframe = false
	}
	if wireframe {
		result.Wireframe = m.WireframeEdges()
	}

	webutils.WriteJson(w, result)
}

func (s *Server) HandlerDumpMesh(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]
	file := mux.Vars(r)["file"]
	format := mux.Vars(r)["format"]

	m, err := s.loadMesh(category, file)
	if err != nil {
		log.Printf("[web] Error loading mesh: %v", err)
		webutils.WriteError(w, err)
		return
	}

	name := strings.TrimSuffix(file, ".obj")
	switch format {
	case "obj":
		webutils.WriteFileHeaders(w, name+".obj")
		if err := m.ExportObj(w); err != nil {
			log.Printf("[web] Error when exporting mesh as obj: %v", err)
		}
	case "glb":
		webutils.WriteFileHeaders(w, name+".glb")
		if doc, err := m.ExportGLTF(name); err != nil {
			log.Printf("[web] Error when exporting mesh as gltf: %v", err)
		} else if err := gltfutils.ExportBinary(w, doc); err != nil {
			log.Printf("[web] Failed to encode gltf: %v", err)
		}
	case "fbx":
		webutils.WriteFileHeaders(w, name+".fbx")
		if err := m.ExportFbx(name, w); err != nil {
			log.Printf("[web] Error when exporting mesh as fbx: %v", err)
		}
	case "json":
		webutils.WriteJsonFile(w, m, name)
	default:
		webutils.WriteError(w, errors.Errorf("Unknown export format '%s'", format))
	}
}
