package pathsd

import (
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/arthur-debert/pathmaster/pkg/errors"
	"github.com/arthur-debert/pathmaster/pkg/expand"
	"github.com/arthur-debert/pathmaster/pkg/logging"
	"github.com/arthur-debert/pathmaster/pkg/types"
	"github.com/rs/zerolog"
)

// Aggregator reads fragment files into records
type Aggregator struct {
	fs     types.FS
	env    expand.Environ
	logger zerolog.Logger
}

// NewAggregator creates an aggregator reading from fsys and expanding with env
func NewAggregator(fsys types.FS, env expand.Environ) *Aggregator {
	return &Aggregator{
		fs:     fsys,
		env:    env,
		logger: logging.GetLogger("pathsd.aggregator"),
	}
}

// Collect is shorthand for NewAggregator(fsys, env).Collect(r)
func (r *Record) Collect(fsys types.FS, env expand.Environ) error {
	return NewAggregator(fsys, env).Collect(r)
}

type fragment struct {
	path    string
	content string
}

// Collect reads the fragment files of r and appends the surviving lines.
// A record can only be collected once. On any read error nothing is
// appended, so a record never holds part of a directory.
func (a *Aggregator) Collect(r *Record) error {
	if r.collected {
		return errors.Newf(errors.ErrAlreadyCollected, "%s was already collected", r.dir).
			WithDetail("dir", r.dir)
	}

	logger := a.logger.With().Str("dir", r.dir).Str("key", r.key).Logger()
	done := logging.LogOperationStart(logger, "collect")
	defer done()

	fragments, err := a.textFiles(r.dir)
	if err != nil {
		return err
	}

	var (
		values []string
		files  = make([]string, 0, len(fragments))
	)
	for _, frag := range fragments {
		files = append(files, frag.path)
		for i, line := range splitLines(frag.content) {
			expanded := expand.Expand(line, a.env)
			for _, miss := range expanded.Misses {
				logger.Debug().
					Str("file", frag.path).
					Int("line", i+1).
					Str("var", miss.Name).
					Stringer("status", miss.Status).
					Msg("Variable left unexpanded")
			}

			verdict := CheckLine(line)
			if verdict != Accepted {
				if verdict == RejectedInvalidChar {
					logger.Debug().Str("file", frag.path).Int("line", i+1).Msg("Dropping line with invalid characters")
				}
				continue
			}
			values = append(values, expanded.Value)
		}
	}

	r.values = append(r.values, values...)
	r.files = files
	r.collected = true

	logger.Debug().Int("files", len(files)).Int("values", len(values)).Msg("Collected paths.d directory")
	return nil
}

// textFiles returns the UTF-8 regular files of dir sorted by path.
// Files that do not decode are skipped without error.
func (a *Aggregator) textFiles(dir string) ([]fragment, error) {
	entries, err := a.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot list %s", dir).WithDetail("dir", dir)
	}

	var fragments []fragment
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		// a dangling symlink or an unreachable target is not a regular file
		info, err := a.fs.Stat(path)
		if err != nil {
			a.logger.Debug().Err(err).Str("path", path).Msg("Skipping entry that cannot be stat-ed")
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		data, err := a.fs.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrIO, "cannot read %s", path).WithDetail("path", path)
		}
		if !utf8.Valid(data) {
			a.logger.Trace().Str("path", path).Msg("Skipping non-UTF-8 file")
			continue
		}

		fragments = append(fragments, fragment{path: path, content: string(data)})
	}

	sort.Slice(fragments, func(i, j int) bool {
		return fragments[i].path < fragments[j].path
	})
	return fragments, nil
}
