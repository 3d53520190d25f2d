package config

import (
	"strings"

	"github.com/arthur-debert/pathmaster/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// GenerateConfigContent returns the embedded defaults with every value
// commented out, ready to be saved as a user config file.
func GenerateConfigContent() string {
	return commentOutConfigValues(DefaultConfigContent())
}

// commentOutConfigValues comments out assignment lines, keeping comments,
// blank lines and section headers as they are
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}

// Marshal renders the effective configuration as "toml" or "yaml"
func (c *Config) Marshal(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "toml", "":
		data, err := toml.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrRender, "failed to render config as toml")
		}
		return data, nil
	case "yaml", "yml":
		data, err := yaml.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrRender, "failed to render config as yaml")
		}
		return data, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported config format %q (want toml or yaml)", format)
	}
}
