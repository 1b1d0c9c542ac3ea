package stl

import "fmt"

// FileError reports a path that could not be opened or created
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("stl: cannot access %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// ParseError reports input that does not hold a complete binary STL
type ParseError struct {
	Offset int64 // byte offset where the problem was found
	Msg    string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stl: parse error at byte %d: %s: %v", e.Offset, e.Msg, e.Err)
	}
	return fmt.Sprintf("stl: parse error at byte %d: %s", e.Offset, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteError reports a failure while exporting a mesh
type WriteError struct {
	Path string // empty when writing to a plain io.Writer
	Err  error
}

func (e *WriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("stl: write failed: %v", e.Err)
	}
	return fmt.Sprintf("stl: writing %s failed: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
