// Package cfgfs states the file-system collaborator interface the
// cascade pipeline depends on, and supplies a default os-backed
// implementation. spec.md scopes file-system access out of the core as an
// externally supplied service that "supplies bytes given a path."
package cfgfs

import (
	"os"
	"path/filepath"
)

// FileSystem supplies file bytes given a path, and resolves a possibly
// relative path against a working directory.
type FileSystem interface {
	// ReadFile returns the contents of the file at an absolute path.
	ReadFile(path string) ([]byte, error)
	// Exists reports whether a file exists at an absolute path.
	Exists(path string) bool
	// AbsPath resolves path against workingDir if path is relative, and
	// cleans the result.
	AbsPath(workingDir, path string) string
	// Dir returns the directory portion of an absolute path.
	Dir(path string) string
}

// OS is the default FileSystem, backed directly by the os package.
type OS struct{}

func (OS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OS) AbsPath(workingDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(workingDir, path))
}

func (OS) Dir(path string) string {
	return filepath.Dir(path)
}
