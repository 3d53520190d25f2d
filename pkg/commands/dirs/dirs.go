// Package dirs lists and creates paths.d directories.
package dirs

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"regexp"

	"github.com/arthur-debert/pathmaster/pkg/commands/scan"
	"github.com/arthur-debert/pathmaster/pkg/errors"
	"github.com/arthur-debert/pathmaster/pkg/logging"
	"github.com/arthur-debert/pathmaster/pkg/pathsd"
	"github.com/arthur-debert/pathmaster/pkg/types"
)

var keyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// DirInfo describes one paths.d directory
type DirInfo struct {
	Key     string `json:"key" yaml:"key" toml:"key"`
	Dir     string `json:"dir" yaml:"dir" toml:"dir"`
	Created bool   `json:"created" yaml:"created" toml:"created"`
}

// ListDirs returns the valid paths.d directories under the root without
// reading their files.
func ListDirs(opts scan.Options) ([]DirInfo, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "ListDirs").Str("root", opts.Root).Msg("Executing command")

	discovered, err := scan.Discover(opts)
	if err != nil {
		return nil, err
	}

	dirs := make([]DirInfo, len(discovered.Records))
	for i, r := range discovered.Records {
		dirs[i] = DirInfo{Key: r.Key(), Dir: r.Dir()}
	}
	return dirs, nil
}

// CreateDirOptions defines the options for the CreateDir command.
type CreateDirOptions struct {
	scan.Options
	// Keys are the variables to create directories for
	Keys []string
}

// CreateDir creates <root>/<KEY>paths.d for every key. Existing directories
// are reported with Created false. The root itself must already exist.
func CreateDir(opts CreateDirOptions) ([]DirInfo, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "CreateDir").Strs("keys", opts.Keys).Msg("Executing command")

	if len(opts.Keys) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "at least one key is required")
	}

	resolved, err := opts.Options.Resolve()
	if err != nil {
		return nil, err
	}
	if err := requireDir(resolved.FileSystem, resolved.Root); err != nil {
		return nil, err
	}

	matcher, err := pathsd.NewMatcher(resolved.Pattern)
	if err != nil {
		return nil, err
	}

	var created []DirInfo
	for _, key := range opts.Keys {
		dir, err := DirFor(matcher, resolved.Root, key)
		if err != nil {
			return created, err
		}

		info := DirInfo{Key: key, Dir: dir}
		stat, err := resolved.FileSystem.Stat(dir)
		switch {
		case err == nil && stat.IsDir():
			log.Info().Str("dir", dir).Msg("Directory already exists")
		case err == nil:
			return created, errors.Newf(errors.ErrAlreadyExists, "%s exists and is not a directory", dir).
				WithDetail("path", dir)
		default:
			if err := resolved.FileSystem.MkdirAll(dir, 0755); err != nil {
				return created, errors.Wrapf(err, errors.ErrIO, "cannot create %s", dir).
					WithDetail("path", dir)
			}
			info.Created = true
			log.Info().Str("dir", dir).Msg("Created directory")
		}
		created = append(created, info)
	}

	return created, nil
}

// DirFor validates key and returns the directory it maps to under root.
// The name must be one that matcher would discover with the same key.
func DirFor(matcher *pathsd.Matcher, root, key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", errors.Newf(errors.ErrInvalidInput, "%q is not a valid variable name", key).
			WithDetail("key", key)
	}

	name := pathsd.DirName(key)
	if got, ok := matcher.Match(name); !ok || got != key {
		return "", errors.Newf(errors.ErrInvalidInput,
			"%s would not be discovered as %s by pattern %s", name, key, matcher.Pattern()).
			WithDetail("key", key)
	}
	return filepath.Join(root, name), nil
}

func requireDir(fsys types.FS, path string) error {
	info, err := fsys.Stat(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(err, errors.ErrNotFound, "root %s does not exist", path).
				WithDetail("path", path)
		}
		return errors.Wrapf(err, errors.ErrIO, "cannot stat %s", path)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, "root %s is not a directory", path).
			WithDetail("path", path)
	}
	return nil
}
