package pathmaster

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Build PATH-style variables from paths.d directories"
	MsgEnvShort        = "Print the variables collected from paths.d directories"
	MsgListShort       = "Show every paths.d directory with its files and value"
	MsgDirsShort       = "List or create paths.d directories"
	MsgFilesShort      = "List or create files inside paths.d directories"
	MsgConfigShort     = "Print the effective configuration"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"
	MsgManLong         = "Print the man page to stdout, or write one page per command into DIR."
	MsgVersionShort    = "Print version information"

	// Status messages
	MsgNoDirsFound      = "No paths.d directories found."
	MsgDirCreated       = "created  %s\n"
	MsgDirExists        = "exists   %s\n"
	MsgFileWritten      = "wrote    %s (%d lines)\n"
	MsgFileOverwritten  = "replaced %s (%d lines)\n"
	MsgSkippedDirectory = "skipped %s: %v"
	MsgNoFiles          = "  (no files)"

	// Error messages
	MsgErrLoadConfig  = "failed to load configuration: %w"
	MsgErrCollect     = "failed to collect paths.d directories: %w"
	MsgErrList        = "failed to list paths.d directories: %w"
	MsgErrCreateDir   = "failed to create directory: %w"
	MsgErrCreateFile  = "failed to create file: %w"
	MsgErrNoKeys      = "--create needs at least one KEY"
	MsgErrCreateArgs  = "--create needs KEY and NAME"
	MsgErrListFormat  = "unknown list format %q (want table, json, yaml or toml)"
	MsgErrColorFlag   = "invalid --color value: %w"
	MsgErrManDir      = "failed to write man pages: %w"
	MsgErrShowConfig  = "failed to render configuration: %w"
	MsgErrForceNeeded = "--force only applies with --create"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot      = "Directory whose subdirectories are scanned (default /etc/)"
	MsgFlagPattern   = "Directory name pattern with a named group \"env\""
	MsgFlagConfig    = "Config file (default $XDG_CONFIG_HOME/pathmaster/config.toml)"
	MsgFlagColor     = "Color output: auto, always or never"
	MsgFlagFormat    = "Output format: env, sh, csh, fish, json, yaml or toml"
	MsgFlagSeparator = "Separator joining the values of a variable"
	MsgFlagListFmt   = "Output format: table, json, yaml or toml"
	MsgFlagCreate    = "Create instead of listing"
	MsgFlagForce     = "Overwrite an existing file"
	MsgFlagDefaults  = "Print the commented built-in defaults"
	MsgFlagCfgFormat = "Config format: toml or yaml"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/env-long.txt
	msgEnvLongRaw string
	MsgEnvLong    = strings.TrimSpace(msgEnvLongRaw)

	//go:embed msgs/env-example.txt
	msgEnvExampleRaw string
	MsgEnvExample    = strings.TrimRight(msgEnvExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/dirs-long.txt
	msgDirsLongRaw string
	MsgDirsLong    = strings.TrimSpace(msgDirsLongRaw)

	//go:embed msgs/dirs-example.txt
	msgDirsExampleRaw string
	MsgDirsExample    = strings.TrimRight(msgDirsExampleRaw, "\n")

	//go:embed msgs/files-long.txt
	msgFilesLongRaw string
	MsgFilesLong    = strings.TrimSpace(msgFilesLongRaw)

	//go:embed msgs/files-example.txt
	msgFilesExampleRaw string
	MsgFilesExample    = strings.TrimRight(msgFilesExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
