package testutil

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/pathmaster/pkg/filesystem"
	"github.com/arthur-debert/pathmaster/pkg/types"
	"github.com/spf13/afero"
)

// MemoryTree returns an in-memory filesystem holding tree under root
func MemoryTree(t *testing.T, root string, tree Tree) types.FS {
	t.Helper()

	mem := afero.NewMemMapFs()
	if err := mem.MkdirAll(root, 0755); err != nil {
		t.Fatalf("Failed to create memory root %s: %v", root, err)
	}

	for _, rel := range tree.sortedKeys() {
		path := filepath.Join(root, rel)
		if strings.HasSuffix(rel, "/") {
			if err := mem.MkdirAll(path, 0755); err != nil {
				t.Fatalf("Failed to create memory dir %s: %v", path, err)
			}
			continue
		}
		if err := mem.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create memory dir for %s: %v", path, err)
		}
		if err := afero.WriteFile(mem, path, []byte(tree[rel]), 0644); err != nil {
			t.Fatalf("Failed to create memory file %s: %v", path, err)
		}
	}

	return filesystem.NewAferoFS(mem)
}

// FaultyFS wraps a types.FS and fails selected operations on selected paths
type FaultyFS struct {
	types.FS

	// ReadFileErrors maps a path to the error ReadFile returns for it
	ReadFileErrors map[string]error
	// ReadDirErrors maps a path to the error ReadDir returns for it
	ReadDirErrors map[string]error
	// StatErrors maps a path to the error Stat returns for it
	StatErrors map[string]error

	// Reads records every path passed to ReadFile
	Reads []string
}

// NewFaultyFS wraps base with no faults configured
func NewFaultyFS(base types.FS) *FaultyFS {
	return &FaultyFS{
		FS:             base,
		ReadFileErrors: make(map[string]error),
		ReadDirErrors:  make(map[string]error),
		StatErrors:     make(map[string]error),
	}
}

func (f *FaultyFS) ReadFile(name string) ([]byte, error) {
	f.Reads = append(f.Reads, name)
	if err, ok := f.ReadFileErrors[name]; ok {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	return f.FS.ReadFile(name)
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err, ok := f.ReadDirErrors[name]; ok {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: err}
	}
	return f.FS.ReadDir(name)
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	if err, ok := f.StatErrors[name]; ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	return f.FS.Stat(name)
}
