package pathmaster

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/arthur-debert/pathmaster/internal/version"
	"github.com/arthur-debert/pathmaster/pkg/cobrax/topics"
	"github.com/arthur-debert/pathmaster/pkg/commands"
	"github.com/arthur-debert/pathmaster/pkg/config"
	"github.com/arthur-debert/pathmaster/pkg/expand"
	"github.com/arthur-debert/pathmaster/pkg/logging"
	"github.com/arthur-debert/pathmaster/pkg/types"
	"github.com/arthur-debert/pathmaster/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// Flags that map onto configuration keys when the user sets them
var configFlags = map[string]string{
	"root":      "scan.root",
	"pattern":   "scan.pattern",
	"verbose":   "log.verbosity",
	"format":    "output.format",
	"separator": "output.separator",
}

// annotationOutput marks commands whose --format and --separator flags are
// the env output settings
const annotationOutput = "pathmaster/output-flags"

// Commands that work without a valid configuration
var skipConfig = map[string]bool{
	"help":                          true,
	"completion":                    true,
	"man":                           true,
	"version":                       true,
	cobra.ShellCompRequestCmd:       true,
	cobra.ShellCompNoDescRequestCmd: true,
}

// cli holds what every command needs once flags and config are resolved
type cli struct {
	verbosity  int
	configFile string
	color      string

	cfg  *config.Config
	mode ui.Mode

	// fs and environ are swapped in tests
	fs      types.FS
	environ expand.Environ
}

// scanOptions builds the options shared by every scanning command
func (c *cli) scanOptions() commands.ScanOptions {
	return commands.ScanOptions{
		Root:       c.cfg.Scan.Root,
		Pattern:    c.cfg.Scan.Pattern,
		Environ:    c.environ,
		FileSystem: c.fs,
	}
}

// modeFor resolves the color mode for w; anything but a file is plain
func (c *cli) modeFor(w io.Writer) ui.Mode {
	if c.mode != ui.ModeAuto {
		return c.mode
	}
	if f, ok := w.(*os.File); ok {
		return ui.DetectMode(f)
	}
	return ui.ModeText
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&cli{environ: expand.ProcessEnv()})
}

func newRootCmd(c *cli) *cobra.Command {
	initTemplateFormatting()

	var (
		root    string
		pattern string
		envOpts outputFlags
	)

	rootCmd := &cobra.Command{
		Use:         "pathmaster",
		Short:       MsgRootShort,
		Long:        MsgRootLong,
		Example:     MsgEnvExample,
		Version:     version.Version,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationOutput: "true"},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(c.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			if skipConfig[cmd.Name()] {
				return nil
			}
			return c.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEnv(cmd)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&c.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&root, "root", "", MsgFlagRoot)
	flags.StringVar(&pattern, "pattern", "", MsgFlagPattern)
	flags.StringVar(&c.configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&c.color, "color", "auto", MsgFlagColor)
	_ = rootCmd.RegisterFlagCompletionFunc("color", cobra.FixedCompletions(
		[]string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.MarkPersistentFlagDirname("root")
	_ = rootCmd.MarkPersistentFlagFilename("config", "toml", "yaml", "yml")

	// Running without a command behaves like `env`
	envOpts.register(rootCmd)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newEnvCmd(c))
	rootCmd.AddCommand(newListCmd(c))
	rootCmd.AddCommand(newDirsCmd(c))
	rootCmd.AddCommand(newFilesCmd(c))
	rootCmd.AddCommand(newConfigCmd(c))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newVersionCmd())

	source, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		plain := helpMode == ui.ModeText
		_, err = topics.Initialize(rootCmd, source, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(plain),
		})
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize help topics")
	}

	return rootCmd
}

// setup loads the configuration, layering the flags the user set on top,
// and applies logging and color settings from it.
func (c *cli) setup(cmd *cobra.Command) error {
	overrides := make(map[string]interface{})
	for name, key := range configFlags {
		if (name == "format" || name == "separator") && cmd.Annotations[annotationOutput] != "true" {
			continue
		}
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if name == "verbose" {
			overrides[key] = c.verbosity
			continue
		}
		overrides[key] = flag.Value.String()
	}

	cfg, err := config.Load(config.LoadOptions{ConfigFile: c.configFile, Overrides: overrides})
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	c.cfg = cfg

	if cfg.Log.Verbosity != c.verbosity {
		logging.SetupLogger(cfg.Log.Verbosity)
	}

	mode, err := ui.ParseMode(c.color)
	if err != nil {
		return fmt.Errorf(MsgErrColorFlag, err)
	}
	c.mode = mode

	return nil
}
