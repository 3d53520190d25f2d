package pathsd

import (
	"strings"

	"github.com/arthur-debert/pathmaster/pkg/types"
)

// DefaultKey is used when the directory name carries no prefix
const DefaultKey = "PATH"

// DefaultSeparator joins collected values
const DefaultSeparator = ":"

// Record represents one matched paths.d directory
type Record struct {
	dir string
	key string

	// values only grows during Collect and is frozen afterwards
	values    []string
	files     []string
	collected bool
}

// NewRecord creates an uncollected record. An empty key becomes DefaultKey.
func NewRecord(dir, key string) *Record {
	if key == "" {
		key = DefaultKey
	}
	return &Record{dir: dir, key: key}
}

// DirName returns the conventional directory name for key under the default
// pattern: "paths.d" for PATH, "<KEY>paths.d" otherwise.
func DirName(key string) string {
	if key == "" || key == DefaultKey {
		return "paths.d"
	}
	return key + "paths.d"
}

// Dir returns the directory path
func (r *Record) Dir() string {
	return r.dir
}

// Key returns the environment variable name
func (r *Record) Key() string {
	return r.key
}

// Values returns a copy of the collected values in read order
func (r *Record) Values() []string {
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}

// Files returns the fragment files read by Collect, in read order
func (r *Record) Files() []string {
	out := make([]string, len(r.files))
	copy(out, r.files)
	return out
}

// Collected reports whether Collect completed for this record.
// A collected record may still hold zero values.
func (r *Record) Collected() bool {
	return r.collected
}

// PathString returns the values joined by DefaultSeparator, or false when
// nothing was collected.
func (r *Record) PathString() (string, bool) {
	return r.Join(DefaultSeparator)
}

// Join returns the values joined by sep, or false when nothing was collected
func (r *Record) Join(sep string) (string, bool) {
	if len(r.values) == 0 {
		return "", false
	}
	return strings.Join(r.values, sep), true
}

// isValid reports whether the directory exists, is a directory and holds
// at least one entry.
func (r *Record) isValid(fsys types.FS) (bool, error) {
	info, err := fsys.Stat(r.dir)
	if err != nil {
		if isNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if !info.IsDir() {
		return false, nil
	}

	entries, err := fsys.ReadDir(r.dir)
	if err != nil {
		return false, err
	}
	return len(entries) > 0, nil
}
