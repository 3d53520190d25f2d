package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/pathmaster/pkg/pathsd"
	"github.com/pterm/pterm"
)

// RecordTable renders discovered records as a table with one row per
// directory: key, directory, number of files read and the joined value.
func RecordTable(w io.Writer, records []*pathsd.Record, sep string, mode Mode) error {
	styler := NewStyler(mode)

	data := pterm.TableData{{"KEY", "DIRECTORY", "FILES", "VALUE"}}
	for _, r := range records {
		value, ok := r.Join(sep)
		if !ok {
			value = styler.Render("Muted", "(empty)")
		}
		data = append(data, []string{
			styler.Render("Key", r.Key()),
			styler.Render("Path", r.Dir()),
			strconv.Itoa(len(r.Files())),
			value,
		})
	}

	if len(records) == 0 {
		_, err := fmt.Fprintln(w, styler.Render("Muted", "no paths.d directories found"))
		return err
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	if mode == ModeText {
		table = pterm.RemoveColorFromString(table)
	}

	_, err = fmt.Fprintln(w, strings.TrimRight(table, "\n"))
	return err
}
