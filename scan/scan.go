// Package scan enumerates candidate OBJ files inside a data directory.
// The expected layout is one subdirectory per category, each holding
// *.obj files, the way shape datasets are usually unpacked.
package scan

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/mogaika/objviewer/status"
	"github.com/mogaika/objviewer/vfs"
)

type ObjFile struct {
	Category string `json:"category"`
	Name     string `json:"filename"`
	Size     int64  `json:"size"`
}

// Scan walks every category subdirectory of root and collects its
// .obj files. Non-directories at the top level and foreign files
// inside categories are skipped silently, the data folder often
// carries readmes and previews.
func Scan(root vfs.Directory) ([]ObjFile, error) {
	categories, err := root.List()
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to list data directory '%s'", root.Name())
	}
	sort.Strings(categories)

	files := make([]ObjFile, 0, 64)
	for iCategory, category := range categories {
		e, err := root.GetElement(category)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to get '%s'", category)
		}
		if !e.IsDirectory() {
			continue
		}
		d := e.(vfs.Directory)

		names, err := d.List()
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to list category '%s'", category)
		}
		sort.Strings(names)

		for _, name := range names {
			if !strings.EqualFold(".obj", extension(name)) {
				continue
			}
			f, err := vfs.DirectoryGetFile(d, name)
			if err != nil {
				return nil, errors.Wrapf(err, "Failed to get '%s/%s'", category, name)
			}
			files = append(files, ObjFile{
				Category: category,
				Name:     f.Name(),
				Size:     f.Size(),
			})
		}

		status.Progress(float32(iCategory+1)/float32(len(categories)),
			"Scanned category '%s'", category)
	}

	status.Info("Found %d obj files in %d categories", len(files), len(categories))
	return files, nil
}

func extension(name string) string {
	if dot := strings.LastIndexByte(name, '.'); dot >= 0 {
		return name[dot:]
	}
	return ""
}
