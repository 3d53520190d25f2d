// Package files lists and creates the fragment files inside paths.d
// directories.
package files

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/pathmaster/pkg/commands/dirs"
	"github.com/arthur-debert/pathmaster/pkg/commands/scan"
	"github.com/arthur-debert/pathmaster/pkg/errors"
	"github.com/arthur-debert/pathmaster/pkg/logging"
	"github.com/arthur-debert/pathmaster/pkg/pathsd"
)

// DirFiles lists the fragment files of one directory in read order
type DirFiles struct {
	Key   string   `json:"key" yaml:"key" toml:"key"`
	Dir   string   `json:"dir" yaml:"dir" toml:"dir"`
	Files []string `json:"files" yaml:"files" toml:"files"`
	Error string   `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}

// ListFiles returns, per matched directory, the text files that would be
// read, in the order they are read.
func ListFiles(opts scan.Options) ([]DirFiles, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "ListFiles").Str("root", opts.Root).Msg("Executing command")

	scanned, err := scan.Run(opts)
	if err != nil {
		return nil, err
	}

	result := make([]DirFiles, 0, len(scanned.Outcomes))
	for _, o := range scanned.Outcomes {
		if f := o.Failure; f != nil {
			result = append(result, DirFiles{Key: f.Key, Dir: f.Dir, Error: f.Err.Error()})
			continue
		}
		result = append(result, DirFiles{Key: o.Record.Key(), Dir: o.Record.Dir(), Files: o.Record.Files()})
	}
	return result, nil
}

// CreateFileOptions defines the options for the CreateFile command.
type CreateFileOptions struct {
	scan.Options
	// Key selects the directory, e.g. PATH for paths.d
	Key string
	// Name is the fragment file name, without directories
	Name string
	// Lines are written one per line
	Lines []string
	// Force overwrites an existing file
	Force bool
}

// FileResult describes a created fragment file
type FileResult struct {
	Key         string `json:"key" yaml:"key" toml:"key"`
	Path        string `json:"path" yaml:"path" toml:"path"`
	Lines       int    `json:"lines" yaml:"lines" toml:"lines"`
	Overwritten bool   `json:"overwritten" yaml:"overwritten" toml:"overwritten"`
}

// CreateFile writes a fragment file into the directory for Key, creating
// the directory when needed. Lines that would be dropped for invalid
// characters are refused so the file always means what was asked for.
func CreateFile(opts CreateFileOptions) (*FileResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "CreateFile").Str("key", opts.Key).Str("name", opts.Name).Msg("Executing command")

	if err := validateName(opts.Name); err != nil {
		return nil, err
	}
	for i, line := range opts.Lines {
		if pathsd.CheckLine(line) == pathsd.RejectedInvalidChar {
			return nil, errors.Newf(errors.ErrInvalidInput, "line %d %q contains a character that is not allowed", i+1, line).
				WithDetail("line", i+1)
		}
	}

	resolved, err := opts.Options.Resolve()
	if err != nil {
		return nil, err
	}
	created, err := dirs.CreateDir(dirs.CreateDirOptions{Options: resolved, Keys: []string{opts.Key}})
	if err != nil {
		return nil, err
	}

	path := filepath.Join(created[0].Dir, opts.Name)
	result := &FileResult{Key: opts.Key, Path: path, Lines: len(opts.Lines)}

	if info, err := resolved.FileSystem.Stat(path); err == nil {
		if info.IsDir() || !opts.Force {
			return nil, errors.Newf(errors.ErrAlreadyExists, "%s already exists", path).
				WithDetail("path", path)
		}
		result.Overwritten = true
	}

	var content string
	if len(opts.Lines) > 0 {
		content = strings.Join(opts.Lines, "\n") + "\n"
	}
	if err := resolved.FileSystem.WriteFile(path, []byte(content), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot write %s", path).
			WithDetail("path", path)
	}

	log.Info().Str("path", path).Int("lines", len(opts.Lines)).Bool("overwritten", result.Overwritten).Msg("Wrote fragment file")
	return result, nil
}

func validateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return errors.Newf(errors.ErrInvalidInput, "%q is not a valid file name", name)
	case strings.ContainsRune(name, filepath.Separator), strings.ContainsRune(name, '/'):
		return errors.Newf(errors.ErrInvalidInput, "file name %q must not contain a path separator", name)
	case !utf8.ValidString(name):
		return errors.New(errors.ErrInvalidInput, "file name is not valid UTF-8")
	}
	return nil
}
