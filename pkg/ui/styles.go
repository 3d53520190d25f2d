package ui

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// StylesConfig represents the complete styles configuration
type StylesConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

var styleRegistry map[string]lipgloss.Style

func init() {
	registry, err := LoadStyles(stylesYAML)
	if err != nil {
		panic(fmt.Sprintf("failed to load embedded styles: %v", err))
	}
	styleRegistry = registry
}

// LoadStyles parses a styles document into named lipgloss styles
func LoadStyles(data []byte) (map[string]lipgloss.Style, error) {
	var config StylesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry := make(map[string]lipgloss.Style, len(config.Styles))
	for name, def := range config.Styles {
		style, err := buildStyle(def, colors)
		if err != nil {
			return nil, fmt.Errorf("style %s: %w", name, err)
		}
		registry[name] = style
	}
	return registry, nil
}

func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) (lipgloss.Style, error) {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		color, ok := colors[def.Foreground]
		if !ok {
			return style, fmt.Errorf("unknown color %q", def.Foreground)
		}
		style = style.Foreground(color)
	}
	if def.Background != "" {
		color, ok := colors[def.Background]
		if !ok {
			return style, fmt.Errorf("unknown color %q", def.Background)
		}
		style = style.Background(color)
	}

	return style, nil
}

// GetStyle retrieves a named style, or an empty style when unknown
func GetStyle(name string) lipgloss.Style {
	if style, ok := styleRegistry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Styler applies named styles unless it is in text mode
type Styler struct {
	mode Mode
}

// NewStyler returns a Styler for a resolved mode
func NewStyler(mode Mode) Styler {
	return Styler{mode: mode}
}

// Render styles text with the named style
func (s Styler) Render(name, text string) string {
	if s.mode == ModeText {
		return text
	}
	return GetStyle(name).Render(text)
}
