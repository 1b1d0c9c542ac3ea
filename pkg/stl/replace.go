//go:build !windows

package stl

import "github.com/google/renameio/v2"

// replaceFile atomically replaces filename with data
func replaceFile(filename string, data []byte) error {
	pending, err := renameio.NewPendingFile(filename, renameio.WithPermissions(0o644))
	if err != nil {
		return &FileError{Path: filename, Err: err}
	}
	defer pending.Cleanup()

	if _, err := pending.Write(data); err != nil {
		return &WriteError{Path: filename, Err: err}
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return &WriteError{Path: filename, Err: err}
	}
	return nil
}
