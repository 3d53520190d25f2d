// pkg/pathsd/aggregate_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory FS, FaultyFS
// PURPOSE: Test fragment ordering, line filtering, expansion and error handling

package pathsd_test

import (
	"os"
	"testing"

	"github.com/arthur-debert/pathmaster/pkg/errors"
	"github.com/arthur-debert/pathmaster/pkg/expand"
	"github.com/arthur-debert/pathmaster/pkg/pathsd"
	"github.com/arthur-debert/pathmaster/pkg/testutil"
	"github.com/arthur-debert/pathmaster/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectOne(t *testing.T, fsys types.FS, env expand.Environ) *pathsd.Record {
	t.Helper()

	records, err := pathsd.Discover(fsys, "/etc", pathsd.DefaultPattern)
	require.NoError(t, err)
	require.Len(t, records, 1)

	require.NoError(t, records[0].Collect(fsys, env))
	return records[0]
}

func TestCollect_CommentsAndBlankLines(t *testing.T) {
	fsys := testutil.MemoryTree(t, "/etc", testutil.Tree{
		"paths.d/base": "/usr/bin\n# comment\n\n/opt/bin\n",
	})

	r := collectOne(t, fsys, expand.MapEnv{})

	assert.Equal(t, []string{"/usr/bin", "/opt/bin"}, r.Values())
	value, ok := r.PathString()
	assert.True(t, ok)
	assert.Equal(t, "/usr/bin:/opt/bin", value)
}

func TestCollect_LexicographicFileOrder(t *testing.T) {
	fsys := testutil.MemoryTree(t, "/etc", testutil.Tree{
		"paths.d/2-b":  "Y\n",
		"paths.d/10-a": "X\n",
	})

	r := collectOne(t, fsys, expand.MapEnv{})

	assert.Equal(t, []string{"X", "Y"}, r.Values(), "string sort puts 10-a before 2-b")
	assert.Equal(t, []string{"/etc/paths.d/10-a", "/etc/paths.d/2-b"}, r.Files())
}

func TestCollect_LineOrderWithinFilesAndDuplicates(t *testing.T) {
	fsys := testutil.MemoryTree(t, "/etc", testutil.Tree{
		"paths.d/a": "/one\n/two\n",
		"paths.d/b": "/one\n/three",
	})

	r := collectOne(t, fsys, expand.MapEnv{})

	assert.Equal(t, []string{"/one", "/two", "/one", "/three"}, r.Values(), "duplicates are kept")
}

func TestCollect_Expansion(t *testing.T) {
	fsys := testutil.MemoryTree(t, "/etc", testutil.Tree{
		"paths.d/base": "$FOO/baz\n${HOME}/bin\n$UNSET/x\n",
	})

	r := collectOne(t, fsys, expand.MapEnv{"FOO": "bar", "HOME": "/home/ada"})

	assert.Equal(t, []string{"bar/baz", "/home/ada/bin", "$UNSET/x"}, r.Values())
}

func TestCollect_ExpandedValueIsNotTrimmedOrRevalidated(t *testing.T) {
	fsys := testutil.MemoryTree(t, "/etc", testutil.Tree{
		"paths.d/base": "  $WIN  \n/bin\n",
	})

	r := collectOne(t, fsys, expand.MapEnv{"WIN": `C:\foo`})

	assert.Equal(t, []string{`  C:\foo  `, "/bin"}, r.Values())
}

func TestCollect_ColonFromExpansionCorruptsJoin(t *testing.T) {
	fsys := testutil.MemoryTree(t, "/etc", testutil.Tree{
		"paths.d/base": "$WIN\n/bin\n",
	})

	r := collectOne(t, fsys, expand.MapEnv{"WIN": `C:\foo`})

	value, ok := r.PathString()
	require.True(t, ok)
	assert.Equal(t, `C:\foo:/bin`, value, "values are joined without escaping")
}

func TestCollect_InvalidCharactersDropLine(t *testing.T) {
	fsys := testutil.MemoryTree(t, "/etc", testutil.Tree{
		"paths.d/base": "/good\n/with\x00nul\n/star*\n/tab\there\nC:\\foo\n/also/good\n",
	})

	r := collectOne(t, fsys, expand.MapEnv{})

	assert.Equal(t, []string{"/good", "/also/good"}, r.Values())
}

func TestCollect_CRLFAndMissingTrailingNewline(t *testing.T) {
	fsys := testutil.MemoryTree(t, "/etc", testutil.Tree{
		"paths.d/dos":  "/a\r\n/b\r\n",
		"paths.d/unix": "/c\n/d",
	})

	r := collectOne(t, fsys, expand.MapEnv{})

	assert.Equal(t, []string{"/a", "/b", "/c", "/d"}, r.Values())
}

func TestCollect_SkipsBinaryFilesSilently(t *testing.T) {
	fsys := testutil.MemoryTree(t, "/etc", testutil.Tree{
		"paths.d/base":   "/usr/bin\n",
		"paths.d/binary": "\xff\xfe\x00\x01",
		"paths.d/sub/x":  "/ignored\n",
	})

	r := collectOne(t, fsys, expand.MapEnv{})

	assert.Equal(t, []string{"/usr/bin"}, r.Values())
	assert.Equal(t, []string{"/etc/paths.d/base"}, r.Files(), "directories and binary files are not fragments")
}

func TestCollect_ZeroValuesIsCollected(t *testing.T) {
	fsys := testutil.MemoryTree(t, "/etc", testutil.Tree{
		"paths.d/only-comments": "# nothing here\n\n",
	})

	r := collectOne(t, fsys, expand.MapEnv{})

	assert.True(t, r.Collected())
	assert.Empty(t, r.Values())
	_, ok := r.PathString()
	assert.False(t, ok)
}

func TestCollect_SecondCallIsRejected(t *testing.T) {
	fsys := testutil.MemoryTree(t, "/etc", testutil.Tree{
		"paths.d/base": "/usr/bin\n",
	})
	r := collectOne(t, fsys, expand.MapEnv{})

	err := r.Collect(fsys, expand.MapEnv{})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyCollected))
	assert.Equal(t, []string{"/usr/bin"}, r.Values(), "no duplicate lines appended")
}

func TestCollect_ReadErrorIsAllOrNothing(t *testing.T) {
	base := testutil.MemoryTree(t, "/etc", testutil.Tree{
		"paths.d/1": "/one\n",
		"paths.d/2": "/two\n",
		"paths.d/3": "/three\n",
	})
	fsys := testutil.NewFaultyFS(base)
	fsys.ReadFileErrors["/etc/paths.d/3"] = os.ErrPermission

	records, err := pathsd.Discover(fsys, "/etc", pathsd.DefaultPattern)
	require.NoError(t, err)
	require.Len(t, records, 1)
	r := records[0]

	err = r.Collect(fsys, expand.MapEnv{})

	require.Error(t, err)
	assert.Equal(t, errors.ErrIO, errors.GetErrorCode(err))
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Empty(t, r.Values(), "values from earlier files are not kept")
	assert.False(t, r.Collected())
}

func TestCollect_UnstatableEntryIsSkipped(t *testing.T) {
	base := testutil.MemoryTree(t, "/etc", testutil.Tree{
		"paths.d/1": "/one\n",
		"paths.d/2": "/two\n",
		"paths.d/3": "/three\n",
	})
	fsys := testutil.NewFaultyFS(base)
	fsys.StatErrors["/etc/paths.d/2"] = os.ErrPermission

	r := pathsd.NewRecord("/etc/paths.d", "")
	require.NoError(t, r.Collect(fsys, expand.MapEnv{}))

	assert.True(t, r.Collected())
	assert.Equal(t, []string{"/one", "/three"}, r.Values())
	assert.NotContains(t, fsys.Reads, "/etc/paths.d/2")
}

func TestCollect_ListErrorIsIOError(t *testing.T) {
	base := testutil.MemoryTree(t, "/etc", testutil.Tree{"paths.d/1": "/one\n"})
	fsys := testutil.NewFaultyFS(base)

	r := pathsd.NewRecord("/etc/paths.d", "")
	fsys.ReadDirErrors["/etc/paths.d"] = os.ErrPermission

	err := r.Collect(fsys, expand.MapEnv{})

	require.Error(t, err)
	assert.Equal(t, errors.ErrIO, errors.GetErrorCode(err))
}

func TestCollect_EachFileReadOnce(t *testing.T) {
	base := testutil.MemoryTree(t, "/etc", testutil.Tree{
		"paths.d/a": "/a\n",
		"paths.d/b": "/b\n",
	})
	fsys := testutil.NewFaultyFS(base)

	r := pathsd.NewRecord("/etc/paths.d", "")
	require.NoError(t, r.Collect(fsys, expand.MapEnv{}))

	assert.Equal(t, []string{"/etc/paths.d/a", "/etc/paths.d/b"}, fsys.Reads)
}
