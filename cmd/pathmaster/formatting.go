package pathmaster

import (
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/pathmaster/pkg/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// helpMode decides once whether help text is styled
var helpMode = ui.ModeAuto.Resolve(os.Stdout)

func formatBold(s string) string {
	if helpMode == ui.ModeText {
		return s
	}
	return pterm.Bold.Sprint(s)
}

func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": formatBoldUpper,
	})
}
