package env

import (
	"github.com/arthur-debert/pathmaster/pkg/commands/scan"
	"github.com/arthur-debert/pathmaster/pkg/logging"
	"github.com/arthur-debert/pathmaster/pkg/output"
	"github.com/arthur-debert/pathmaster/pkg/pathsd"
)

// EnvOptions defines the options for the Env command.
type EnvOptions struct {
	scan.Options
	// Separator joins the values of one variable. Defaults to ":".
	Separator string
}

// EnvResult holds the variables to emit and the directories that were skipped
type EnvResult struct {
	Variables []output.Variable
	Failures  []scan.Failure
}

// Env discovers and collects every paths.d directory and returns one
// variable per directory that produced at least one value.
func Env(opts EnvOptions) (*EnvResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Env").Str("root", opts.Root).Msg("Executing command")

	sep := opts.Separator
	if sep == "" {
		sep = pathsd.DefaultSeparator
	}

	scanned, err := scan.Run(opts.Options)
	if err != nil {
		return nil, err
	}

	result := &EnvResult{
		Variables: output.Variables(scanned.Records, sep),
		Failures:  scanned.Failures,
	}

	log.Info().Str("command", "Env").Int("variables", len(result.Variables)).Msg("Command finished")
	return result, nil
}
