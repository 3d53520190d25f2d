// Package scan holds the discover-then-collect flow shared by the commands.
package scan

import (
	"path/filepath"

	"github.com/arthur-debert/pathmaster/pkg/errors"
	"github.com/arthur-debert/pathmaster/pkg/expand"
	"github.com/arthur-debert/pathmaster/pkg/filesystem"
	"github.com/arthur-debert/pathmaster/pkg/logging"
	"github.com/arthur-debert/pathmaster/pkg/pathsd"
	"github.com/arthur-debert/pathmaster/pkg/types"
)

// Options selects what to scan
type Options struct {
	// Root is the directory holding the paths.d directories
	Root string
	// Pattern is the directory name pattern, with the named group "env"
	Pattern string
	// Environ resolves $NAME references. Defaults to an empty environment.
	Environ expand.Environ
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// Failure is a directory that was discovered but could not be collected
type Failure struct {
	Dir string
	Key string
	Err error
}

// Outcome is one discovered directory, collected or failed.
// Exactly one of Record and Failure is set.
type Outcome struct {
	Record  *pathsd.Record
	Failure *Failure
}

// Result is the outcome of a scan. Outcomes holds every discovered
// directory in discovery order; Records and Failures split it by result.
type Result struct {
	Root     string
	Records  []*pathsd.Record
	Failures []Failure
	Outcomes []Outcome
}

// Resolve fills defaults, makes Root absolute and sets FileSystem
func (o Options) Resolve() (Options, error) {
	if o.FileSystem == nil {
		o.FileSystem = filesystem.NewOS()
	}
	if o.Pattern == "" {
		o.Pattern = pathsd.DefaultPattern
	}
	if o.Root == "" {
		o.Root = pathsd.DefaultRoot
	}
	if o.Environ == nil {
		o.Environ = expand.MapEnv{}
	}

	root, err := filepath.Abs(o.Root)
	if err != nil {
		return o, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve root %s", o.Root)
	}
	o.Root = root
	return o, nil
}

// Discover finds the valid paths.d directories without reading them
func Discover(opts Options) (*Result, error) {
	opts, err := opts.Resolve()
	if err != nil {
		return nil, err
	}
	return discover(opts)
}

func discover(opts Options) (*Result, error) {
	records, err := pathsd.Discover(opts.FileSystem, opts.Root, opts.Pattern)
	if err != nil {
		return nil, err
	}
	return &Result{Root: opts.Root, Records: records}, nil
}

// Run discovers and collects every directory. A directory that fails to
// collect is reported in Failures and left out of Records.
func Run(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.scan")

	opts, err := opts.Resolve()
	if err != nil {
		return nil, err
	}

	discovered, err := discover(opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Root: discovered.Root}
	aggregator := pathsd.NewAggregator(opts.FileSystem, opts.Environ)
	for _, r := range discovered.Records {
		if err := aggregator.Collect(r); err != nil {
			log.Warn().Err(err).Str("dir", r.Dir()).Msg("Skipping directory that could not be read")
			failure := Failure{Dir: r.Dir(), Key: r.Key(), Err: err}
			result.Failures = append(result.Failures, failure)
			result.Outcomes = append(result.Outcomes, Outcome{Failure: &failure})
			continue
		}
		result.Records = append(result.Records, r)
		result.Outcomes = append(result.Outcomes, Outcome{Record: r})
	}

	log.Debug().
		Int("records", len(result.Records)).
		Int("failures", len(result.Failures)).
		Msg("Scan finished")
	return result, nil
}
