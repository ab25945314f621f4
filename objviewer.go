package main

import (
	"flag"
	"log"

	"github.com/mogaika/objviewer/config"
	"github.com/mogaika/objviewer/scan"
	"github.com/mogaika/objviewer/vfs"
	"github.com/mogaika/objviewer/web"
)

func main() {
	var addr, dataDir, cfgPath, encoding, webPath string
	flag.StringVar(&addr, "i", "", "Address of server (overrides config)")
	flag.StringVar(&dataDir, "data", "", "Path to folder with obj categories (overrides config)")
	flag.StringVar(&cfgPath, "cfg", "objviewer.yaml", "Path to config file")
	flag.StringVar(&encoding, "encoding", "", "Text encoding of obj files (overrides config)")
	flag.StringVar(&webPath, "web", "web", "Path to web interface files")
	flag.Parse()

	cfg, err := config.LoadFile(cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if encoding != "" {
		if err := config.SetEncoding(encoding); err != nil {
			log.Fatal(err)
		}
	}

	root := vfs.NewDirectoryDriver(cfg.DataDir)

	files, err := scan.Scan(root)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("[objviewer] Found %d obj files in '%s'", len(files), cfg.DataDir)

	if err := web.NewServer(cfg, root, files).Start(cfg.Addr, webPath); err != nil {
		log.Fatal(err)
	}
}
