package filesystem_test

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pathmaster/pkg/filesystem"
	"github.com/arthur-debert/pathmaster/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]struct {
	fs   types.FS
	root string
} {
	return map[string]struct {
		fs   types.FS
		root string
	}{
		"os":     {fs: filesystem.NewOS(), root: t.TempDir()},
		"memory": {fs: filesystem.NewMemory(), root: "/mem"},
	}
}

func TestFS_Operations(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			dir := filepath.Join(b.root, "paths.d")
			require.NoError(t, b.fs.MkdirAll(dir, 0755))

			require.NoError(t, b.fs.WriteFile(filepath.Join(dir, "20-b"), []byte("/b\n"), 0644))
			require.NoError(t, b.fs.WriteFile(filepath.Join(dir, "10-a"), []byte("/a\n"), 0644))

			info, err := b.fs.Stat(dir)
			require.NoError(t, err)
			assert.True(t, info.IsDir())

			data, err := b.fs.ReadFile(filepath.Join(dir, "10-a"))
			require.NoError(t, err)
			assert.Equal(t, "/a\n", string(data))

			entries, err := b.fs.ReadDir(dir)
			require.NoError(t, err)
			require.Len(t, entries, 2)
			assert.Equal(t, "10-a", entries[0].Name())
			assert.Equal(t, "20-b", entries[1].Name())
		})
	}
}

func TestFS_Errors(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := b.fs.Stat(filepath.Join(b.root, "missing"))
			assert.ErrorIs(t, err, fs.ErrNotExist)

			_, err = b.fs.ReadDir(filepath.Join(b.root, "missing"))
			assert.Error(t, err)

			dir := filepath.Join(b.root, "somedir")
			require.NoError(t, b.fs.MkdirAll(dir, 0755))
			_, err = b.fs.ReadFile(dir)
			assert.Error(t, err, "reading a directory must fail")
		})
	}
}
