// Package ui renders human-facing output: styled messages, errors and the
// record table printed by `pathmaster list`.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Mode selects whether human output carries colors
type Mode int

const (
	// ModeAuto detects color support from the output and environment
	ModeAuto Mode = iota
	// ModeTerminal renders colors and styling
	ModeTerminal
	// ModeText renders plain text
	ModeText
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeTerminal:
		return "term"
	case ModeText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseMode parses a string into a Mode value
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ModeAuto, nil
	case "term", "terminal", "always":
		return ModeTerminal, nil
	case "text", "plain", "never":
		return ModeText, nil
	default:
		return ModeAuto, fmt.Errorf("unknown color mode: %s", s)
	}
}

// DetectMode determines the mode for output based on NO_COLOR, whether
// output is a terminal and the terminal's color profile
func DetectMode(output *os.File) Mode {
	if os.Getenv("NO_COLOR") != "" {
		return ModeText
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return ModeText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return ModeText
	}

	return ModeTerminal
}

// Resolve turns ModeAuto into a concrete mode for output
func (m Mode) Resolve(output *os.File) Mode {
	if m != ModeAuto {
		return m
	}
	if output == nil {
		return ModeText
	}
	return DetectMode(output)
}
