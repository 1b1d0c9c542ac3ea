package stl

import (
	"os"
	"path/filepath"
)

// replaceFile writes data to a temporary file next to filename and renames it
// over filename. renameio has no Windows support; os.Rename replaces an
// existing file there but is not guaranteed atomic.
func replaceFile(filename string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+"*.tmp")
	if err != nil {
		return &FileError{Path: filename, Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &WriteError{Path: filename, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &WriteError{Path: filename, Err: err}
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return &WriteError{Path: filename, Err: err}
	}
	return nil
}
