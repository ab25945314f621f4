package web

import (
	"log"
	"net/http"
	"os"
	"path"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/mogaika/objviewer/config"
	"github.com/mogaika/objviewer/scan"
	"github.com/mogaika/objviewer/status"
	"github.com/mogaika/objviewer/vfs"
)

// Server owns the data directory and the scan result. It replaces the
// module-level app/dataframe globals the old dash viewers kept.
type Server struct {
	cfg   config.Config
	root  vfs.Directory
	files []scan.ObjFile
}

func NewServer(cfg config.Config, root vfs.Directory, files []scan.ObjFile) *Server {
	return &Server{
		cfg:   cfg,
		root:  root,
		files: files,
	}
}

func (s *Server) Start(addr string, webPath string) error {
	r := mux.NewRouter()
	r.HandleFunc("/json/files", s.HandlerAjaxFiles)
	r.HandleFunc("/json/mesh/{category}/{file}", s.HandlerAjaxMesh)
	r.HandleFunc("/dump/mesh/{category}/{file}/{format}", s.HandlerDumpMesh)
	r.HandleFunc("/ws/status", status.HandlerWebsocket)

	r.PathPrefix("/").Handler(http.FileServer(http.Dir(path.Join(webPath, "data"))))

	h := handlers.RecoveryHandler()(r)
	h = handlers.LoggingHandler(os.Stdout, h)

	log.Printf("[web] Starting server %v", addr)

	return http.ListenAndServe(addr, h)
}
