// pkg/pathsd/matcher_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory FS, real temp dirs for symlink cases
// PURPOSE: Test paths.d directory discovery and key derivation

package pathsd_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/pathmaster/pkg/errors"
	"github.com/arthur-debert/pathmaster/pkg/filesystem"
	"github.com/arthur-debert/pathmaster/pkg/pathsd"
	"github.com/arthur-debert/pathmaster/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keysOf(records []*pathsd.Record) []string {
	keys := make([]string, len(records))
	for i, r := range records {
		keys[i] = r.Key()
	}
	sort.Strings(keys)
	return keys
}

func TestMatcher_Match(t *testing.T) {
	m, err := pathsd.NewMatcher(pathsd.DefaultPattern)
	require.NoError(t, err)

	tests := []struct {
		name    string
		dirName string
		wantKey string
		wantOK  bool
	}{
		{"bare paths.d defaults to PATH", "paths.d", "PATH", true},
		{"prefix becomes key", "MANPATHpaths.d", "MANPATH", true},
		{"case is preserved", "manpaths.d", "man", true},
		{"underscore prefix", "DYLD_LIBRARY_PATHpaths.d", "DYLD_LIBRARY_PATH", true},
		{"suffix must be last", "paths.d.bak", "", false},
		{"unrelated directory", "profile.d", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := m.Match(tt.dirName)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestMatcher_OptionalGroupDefaultsToPath(t *testing.T) {
	m, err := pathsd.NewMatcher(`^(?:(?P<env>[A-Z]+)-)?paths\.d$`)
	require.NoError(t, err)

	key, ok := m.Match("paths.d")
	assert.True(t, ok)
	assert.Equal(t, "PATH", key, "non-participating group behaves like an empty capture")

	key, ok = m.Match("INFOPATH-paths.d")
	assert.True(t, ok)
	assert.Equal(t, "INFOPATH", key)
}

func TestNewMatcher_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"does not compile", `(?P<env>.*paths.d`},
		{"missing env group", `(.*?)paths.d$`},
		{"differently named group", `(?P<key>.*?)paths.d$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pathsd.NewMatcher(tt.pattern)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrRegexCompile))
		})
	}
}

func TestDiscover_InvalidPatternIsFatal(t *testing.T) {
	fsys := testutil.MemoryTree(t, "/etc", testutil.Tree{"paths.d/base": "/usr/bin\n"})

	records, err := pathsd.Discover(fsys, "/etc/", `([`)

	require.Error(t, err)
	assert.Nil(t, records)
	assert.Equal(t, errors.ErrRegexCompile, errors.GetErrorCode(err))
}

func TestDiscover_FindsMatchingNonEmptyDirectories(t *testing.T) {
	fsys := testutil.MemoryTree(t, "/etc", testutil.Tree{
		"paths.d/10-base":      "/usr/bin\n",
		"MANPATHpaths.d/base":  "/usr/share/man\n",
		"INFOPATHpaths.d/":     "",
		"profile.d/env.sh":     "export X=1\n",
		"notadir-paths.d":      "a regular file named like a paths.d dir",
		"sub/nested/paths.d/x": "/nested\n",
	})

	records, err := pathsd.Discover(fsys, "/etc/", pathsd.DefaultPattern)
	require.NoError(t, err)

	assert.Equal(t, []string{"MANPATH", "PATH"}, keysOf(records))
	for _, r := range records {
		assert.False(t, r.Collected(), "discovery must not collect")
		assert.Empty(t, r.Values())
		switch r.Key() {
		case "PATH":
			assert.Equal(t, "/etc/paths.d", r.Dir())
		case "MANPATH":
			assert.Equal(t, "/etc/MANPATHpaths.d", r.Dir())
		}
	}
}

func TestDiscover_RootWithoutTrailingSlash(t *testing.T) {
	fsys := testutil.MemoryTree(t, "/etc", testutil.Tree{"MANPATHpaths.d/base": "/usr/share/man\n"})

	records, err := pathsd.Discover(fsys, "/etc", pathsd.DefaultPattern)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "MANPATH", records[0].Key(), "key comes from the base name, not a root-stripped path")
	assert.Equal(t, "/etc/MANPATHpaths.d", records[0].Dir())
}

func TestDiscover_MissingRootIsIOError(t *testing.T) {
	fsys := testutil.MemoryTree(t, "/etc", testutil.Tree{})

	_, err := pathsd.Discover(fsys, "/does/not/exist", pathsd.DefaultPattern)

	require.Error(t, err)
	assert.Equal(t, errors.ErrIO, errors.GetErrorCode(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDiscover_EmptyRoot(t *testing.T) {
	fsys := testutil.MemoryTree(t, "/etc", testutil.Tree{})

	records, err := pathsd.Discover(fsys, "/etc", pathsd.DefaultPattern)

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDiscover_SkipsUnreadableEntries(t *testing.T) {
	base := testutil.MemoryTree(t, "/etc", testutil.Tree{
		"paths.d/base":        "/usr/bin\n",
		"MANPATHpaths.d/base": "/usr/share/man\n",
		"INFOPATHpaths.d/x":   "/usr/share/info\n",
	})
	fsys := testutil.NewFaultyFS(base)
	fsys.StatErrors["/etc/MANPATHpaths.d"] = os.ErrPermission
	fsys.ReadDirErrors["/etc/INFOPATHpaths.d"] = os.ErrPermission

	records, err := pathsd.Discover(fsys, "/etc", pathsd.DefaultPattern)

	require.NoError(t, err, "a single bad entry must not abort the scan")
	assert.Equal(t, []string{"PATH"}, keysOf(records))
}

func TestDiscover_NeverReturnsInvalidDirectories(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, testutil.Tree{
		"paths.d/base":        "/usr/bin\n",
		"emptypaths.d/":       "",
		"real/base":           "/opt/bin\n",
		"filepaths.d":         "not a directory",
		"LINKEDpaths.d/.keep": "",
	})
	testutil.CreateSymlink(t, filepath.Join(root, "real"), filepath.Join(root, "SYMPATHpaths.d"))
	testutil.CreateSymlink(t, filepath.Join(root, "missing"), filepath.Join(root, "DANGLINGpaths.d"))

	fsys := filesystem.NewOS()
	records, err := pathsd.Discover(fsys, root, pathsd.DefaultPattern)
	require.NoError(t, err)

	assert.Equal(t, []string{"LINKED", "PATH", "SYMPATH"}, keysOf(records))
	for _, r := range records {
		info, err := os.Stat(r.Dir())
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		entries, err := os.ReadDir(r.Dir())
		require.NoError(t, err)
		assert.NotEmpty(t, entries)
	}
}

func TestDiscover_SkipsNonUTF8DirectoryNames(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, testutil.Tree{
		"X\xffpaths.d/a": "/opt/bad\n",
		"paths.d/a":       "/usr/bin\n",
	})

	records, err := pathsd.Discover(filesystem.NewOS(), root, pathsd.DefaultPattern)

	require.NoError(t, err, "a non-UTF-8 name is a warning, not an error")
	assert.Equal(t, []string{"PATH"}, keysOf(records))
}

func TestDiscover_RelativeRootYieldsAbsoluteDirs(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, testutil.Tree{
		"paths.d/a":        "/usr/bin\n",
		"MANPATHpaths.d/a": "/usr/share/man\n",
	})

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	records, err := pathsd.Discover(filesystem.NewOS(), ".", pathsd.DefaultPattern)
	require.NoError(t, err)
	require.Len(t, records, 2)

	for _, r := range records {
		assert.True(t, filepath.IsAbs(r.Dir()), "dir %q must be absolute", r.Dir())
		info, err := os.Stat(r.Dir())
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
