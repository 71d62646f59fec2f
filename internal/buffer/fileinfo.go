package buffer

import "path/filepath"

// FileInfo is the optional backing-path identity of a buffer.
type FileInfo struct {
	path string
}

// NewFileInfo creates a FileInfo for the given path.
func NewFileInfo(path string) FileInfo {
	return FileInfo{path: path}
}

// Path returns the backing path, or "" if none is set.
func (fi FileInfo) Path() string {
	return fi.path
}

// HasPath reports whether a backing path is set.
func (fi FileInfo) HasPath() bool {
	return fi.path != ""
}

// Name returns the base file name for display, or "[default]" when the
// buffer has no backing path.
func (fi FileInfo) Name() string {
	if fi.path == "" {
		return "[default]"
	}
	return filepath.Base(fi.path)
}
