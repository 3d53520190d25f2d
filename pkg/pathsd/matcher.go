package pathsd

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"regexp"
	"unicode/utf8"

	"github.com/arthur-debert/pathmaster/pkg/errors"
	"github.com/arthur-debert/pathmaster/pkg/logging"
	"github.com/arthur-debert/pathmaster/pkg/types"
	"github.com/rs/zerolog"
)

const (
	// DefaultRoot is the directory scanned for paths.d directories
	DefaultRoot = "/etc/"

	// DefaultPattern captures an optional variable prefix before "paths.d"
	DefaultPattern = `(?P<env>.*?)paths.d$`

	// KeyGroup is the named group holding the variable prefix
	KeyGroup = "env"
)

// Matcher selects paths.d directories by base name and derives their keys
type Matcher struct {
	re       *regexp.Regexp
	keyIndex int
	logger   zerolog.Logger
}

// NewMatcher compiles pattern. The pattern must declare the named group "env".
func NewMatcher(pattern string) (*Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRegexCompile, "invalid directory pattern %q", pattern)
	}

	keyIndex := re.SubexpIndex(KeyGroup)
	if keyIndex < 0 {
		return nil, errors.Newf(errors.ErrRegexCompile, "directory pattern %q has no named group %q", pattern, KeyGroup).
			WithDetail("pattern", pattern)
	}

	return &Matcher{
		re:       re,
		keyIndex: keyIndex,
		logger:   logging.GetLogger("pathsd.matcher"),
	}, nil
}

// Pattern returns the source of the compiled pattern
func (m *Matcher) Pattern() string {
	return m.re.String()
}

// Match tests a directory base name and returns the variable key from the
// same match. An empty or non-participating capture yields DefaultKey.
func (m *Matcher) Match(name string) (string, bool) {
	loc := m.re.FindStringSubmatchIndex(name)
	if loc == nil {
		return "", false
	}

	start, end := loc[2*m.keyIndex], loc[2*m.keyIndex+1]
	if start < 0 || start == end {
		return DefaultKey, true
	}
	return name[start:end], true
}

// Discover is a convenience wrapper compiling pattern and scanning root
func Discover(fsys types.FS, root, pattern string) ([]*Record, error) {
	m, err := NewMatcher(pattern)
	if err != nil {
		return nil, err
	}
	return m.Discover(fsys, root)
}

// Discover lists the immediate subdirectories of root and returns a record
// for every non-empty directory whose base name matches. Failing to list
// root is fatal; problems with a single entry are logged and skipped.
// Records follow the listing order of fsys. A relative root is resolved
// against the working directory, so every Record.Dir is absolute.
func (m *Matcher) Discover(fsys types.FS, root string) ([]*Record, error) {
	done := logging.LogOperationStart(m.logger, "discover")
	defer done()

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot resolve root %s", root).
			WithDetail("root", root)
	}
	root = abs

	entries, err := fsys.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot list root %s", root).
			WithDetail("root", root)
	}

	var records []*Record
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(root, name)

		info, err := fsys.Stat(path)
		if err != nil {
			m.logger.Debug().Err(err).Str("path", path).Msg("Skipping entry that cannot be stat-ed")
			continue
		}
		if !info.IsDir() {
			continue
		}

		if !utf8.ValidString(name) {
			m.logger.Warn().
				Str("code", string(errors.ErrNonUTF8Name)).
				Str("path", path).
				Msg("Skipping non-UTF-8 directory name")
			continue
		}

		key, ok := m.Match(name)
		if !ok {
			m.logger.Trace().Str("name", name).Msg("Directory does not match pattern")
			continue
		}

		record := NewRecord(path, key)
		valid, err := record.isValid(fsys)
		if err != nil {
			m.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable paths.d directory")
			continue
		}
		if !valid {
			m.logger.Debug().Str("path", path).Msg("Skipping empty paths.d directory")
			continue
		}

		m.logger.Debug().Str("path", path).Str("key", key).Msg("Found paths.d directory")
		records = append(records, record)
	}

	return records, nil
}

func isNotExist(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist)
}
