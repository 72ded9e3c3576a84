package ports

import "io/fs"

// FileSystem defines the filesystem operations needed to install artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether path exists.
	Exists(path string) (bool, error)

	// IsDir reports whether path exists and is a directory.
	IsDir(path string) (bool, error)

	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error

	// RemoveAll removes path and everything below it. A missing path is not an error.
	RemoveAll(path string) error

	// ReadFile returns the contents of path.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to path, creating parent directories as needed.
	WriteFile(path string, data []byte) error

	// ReadDir lists the entries of dir sorted by name.
	ReadDir(dir string) ([]fs.FileInfo, error)

	// CopyFile copies the file at src to dst.
	CopyFile(src, dst string) error

	// CopyDir recursively copies the directory src to dst.
	CopyDir(src, dst string) error

	// Glob recursively matches pattern below root and returns sorted file paths.
	// Hidden entries are skipped.
	Glob(root, pattern string) ([]string, error)

	// TempDir creates a new temporary directory whose name starts with prefix.
	TempDir(prefix string) (string, error)
}
