package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour. Other topics are
// returned unchanged.
type GlamourRenderer struct {
	// Style is a glamour style name such as "dark", "light" or "notty".
	// Empty means detect from the terminal.
	Style string
	// Width wraps output at this column; 0 keeps glamour's default
	Width int
}

// NewGlamourRenderer creates a markdown renderer. Pass plain to get
// unstyled text for pipes and NO_COLOR.
func NewGlamourRenderer(plain bool) *GlamourRenderer {
	r := &GlamourRenderer{}
	if plain {
		r.Style = "notty"
	}
	return r
}

// Render converts markdown to terminal output, falling back to the raw text
func (r *GlamourRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style != "" {
		options = append(options, glamour.WithStandardStyle(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
