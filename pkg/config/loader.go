package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/pathmaster/pkg/errors"
	"github.com/arthur-debert/pathmaster/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override, e.g. PATHMASTER_SCAN_ROOT
const EnvPrefix = "PATHMASTER_"

// userConfigNames are tried in order under $XDG_CONFIG_HOME/pathmaster
var userConfigNames = []string{"config.toml", "config.yaml", "config.yml"}

// LoadOptions controls which user inputs are layered over the defaults
type LoadOptions struct {
	// ConfigFile is an explicit config file. It must exist when set.
	ConfigFile string
	// Overrides holds flag values keyed by dotted path, e.g. "scan.root".
	// Only flags the user actually set should be present.
	Overrides map[string]interface{}
}

// Load builds the configuration from, in increasing priority: embedded
// defaults, the user config file, PATHMASTER_* variables and overrides.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	source, err := resolveConfigFile(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if source != "" {
		if err := k.Load(file.Provider(source), parserFor(source)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", source).
				WithDetail("path", source)
		}
		logger.Debug().Str("path", source).Msg("Loaded user config")
	}

	// 3. Environment variables
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flag overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			// env values arrive as strings, e.g. PATHMASTER_LOG_VERBOSITY=2
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UserConfigDir returns $XDG_CONFIG_HOME/pathmaster
func UserConfigDir() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, "pathmaster")
}

func resolveConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s is not readable", explicit).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}

	dir := UserConfigDir()
	for _, name := range userConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
