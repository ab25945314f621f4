package vfs

import (
	"fmt"
	"io"
)

func OpenFileAndGetReader(f File) (*io.SectionReader, error) {
	if err := f.Open(); err != nil {
		return nil, fmt.Errorf("Cannot open file '%s': %v", f.Name(), err)
	}
	if r, err := f.Reader(); err != nil {
		defer f.Close()
		return nil, fmt.Errorf("Cannot get file '%s' reader: %v", f.Name(), err)
	} else {
		return r, nil
	}
}

func DirectoryGetFile(d Directory, name string) (File, error) {
	if e, err := d.GetElement(name); err != nil {
		return nil, fmt.Errorf("Cannot open file '%s': %v", name, err)
	} else if e.IsDirectory() {
		return nil, fmt.Errorf("File '%s' is directory, not a file!", name)
	} else {
		return e.(File), nil
	}
}

func DirectoryGetSubDirectory(d Directory, name string) (Directory, error) {
	if e, err := d.GetElement(name); err != nil {
		return nil, fmt.Errorf("Cannot open directory '%s': %v", name, err)
	} else if !e.IsDirectory() {
		return nil, fmt.Errorf("'%s' is a file, not a directory!", name)
	} else {
		return e.(Directory), nil
	}
}
