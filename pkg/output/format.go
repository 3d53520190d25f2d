package output

import (
	"fmt"
	"strings"
)

// Format represents an emission format for collected variables
type Format int

const (
	// FormatEnv prints KEY="value" with Go quoting
	FormatEnv Format = iota
	// FormatSh prints KEY='value'; export KEY; for Bourne shells
	FormatSh
	// FormatCsh prints setenv KEY 'value'; for csh and tcsh
	FormatCsh
	// FormatFish prints set -gx KEY 'v1' 'v2'; with one word per value
	FormatFish
	// FormatJSON renders a machine-readable variable list
	FormatJSON
	// FormatYAML renders a machine-readable variable list
	FormatYAML
	// FormatTOML renders a machine-readable variable list
	FormatTOML
)

var formatNames = map[Format]string{
	FormatEnv:  "env",
	FormatSh:   "sh",
	FormatCsh:  "csh",
	FormatFish: "fish",
	FormatJSON: "json",
	FormatYAML: "yaml",
	FormatTOML: "toml",
}

// String returns the string representation of the format
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// IsStructured reports whether the format is a document rather than shell lines
func (f Format) IsStructured() bool {
	return f == FormatJSON || f == FormatYAML || f == FormatTOML
}

// FormatNames lists the accepted format names, for help text and completion
func FormatNames() []string {
	return []string{"env", "sh", "csh", "fish", "json", "yaml", "toml"}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "env", "":
		return FormatEnv, nil
	case "sh", "bash", "zsh":
		return FormatSh, nil
	case "csh", "tcsh":
		return FormatCsh, nil
	case "fish":
		return FormatFish, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatEnv, fmt.Errorf("unknown format: %s", s)
	}
}
