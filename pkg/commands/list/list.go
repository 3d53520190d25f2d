// Package list reports every matched paths.d directory with what it yields.
package list

import (
	"github.com/arthur-debert/pathmaster/pkg/commands/scan"
	"github.com/arthur-debert/pathmaster/pkg/logging"
	"github.com/arthur-debert/pathmaster/pkg/pathsd"
)

// ListOptions defines the options for the List command.
type ListOptions struct {
	scan.Options
	// Separator joins Values into Value. Defaults to ":".
	Separator string
}

// Entry describes one matched directory
type Entry struct {
	Key    string   `json:"key" yaml:"key" toml:"key"`
	Dir    string   `json:"dir" yaml:"dir" toml:"dir"`
	Files  []string `json:"files" yaml:"files" toml:"files"`
	Values []string `json:"values" yaml:"values" toml:"values"`
	Value  string   `json:"value" yaml:"value" toml:"value"`
	Error  string   `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}

// ListResult is the outcome of List. Entries holds every directory in
// discovery order, failed ones included; Records only the collected ones.
type ListResult struct {
	Root    string           `json:"root" yaml:"root" toml:"root"`
	Entries []Entry          `json:"entries" yaml:"entries" toml:"entries"`
	Records []*pathsd.Record `json:"-" yaml:"-" toml:"-"`
}

// List discovers and collects every paths.d directory, including the ones
// that yield no value.
func List(opts ListOptions) (*ListResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "List").Str("root", opts.Root).Msg("Executing command")

	sep := opts.Separator
	if sep == "" {
		sep = pathsd.DefaultSeparator
	}

	scanned, err := scan.Run(opts.Options)
	if err != nil {
		return nil, err
	}

	result := &ListResult{
		Root:    scanned.Root,
		Entries: make([]Entry, 0, len(scanned.Outcomes)),
		Records: scanned.Records,
	}
	for _, o := range scanned.Outcomes {
		if f := o.Failure; f != nil {
			result.Entries = append(result.Entries, Entry{
				Key:   f.Key,
				Dir:   f.Dir,
				Error: f.Err.Error(),
			})
			continue
		}
		r := o.Record
		value, _ := r.Join(sep)
		result.Entries = append(result.Entries, Entry{
			Key:    r.Key(),
			Dir:    r.Dir(),
			Files:  r.Files(),
			Values: r.Values(),
			Value:  value,
		})
	}

	log.Info().Str("command", "List").Int("entries", len(result.Entries)).Msg("Command finished")
	return result, nil
}
