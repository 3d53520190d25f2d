package types

import (
	"io/fs"
)

// FS is the filesystem interface required for pathmaster operations.
// Discovery and aggregation only read; the create commands also write.
type FS interface {
	// Stat follows symlinks, so a linked paths.d directory counts as a directory
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)

	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
}
