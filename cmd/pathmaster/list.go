package pathmaster

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/pathmaster/pkg/commands"
	"github.com/arthur-debert/pathmaster/pkg/output"
	"github.com/arthur-debert/pathmaster/pkg/ui"
	"github.com/spf13/cobra"
)

func newListCmd(c *cli) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.List(commands.ListOptions{
				Options:   c.scanOptions(),
				Separator: c.cfg.Output.Separator,
			})
			if err != nil {
				return fmt.Errorf(MsgErrList, err)
			}

			out := cmd.OutOrStdout()
			if strings.EqualFold(format, "table") {
				mode := c.modeFor(out)
				if err := ui.RecordTable(out, result.Records, c.cfg.Output.Separator, mode); err != nil {
					return err
				}
				styler := ui.NewStyler(mode)
				for _, e := range result.Entries {
					if e.Error != "" {
						fmt.Fprintln(out, styler.Render("Warning", fmt.Sprintf(MsgSkippedDirectory, e.Dir, e.Error)))
					}
				}
				return nil
			}

			f, err := output.ParseFormat(format)
			if err != nil || !f.IsStructured() {
				return fmt.Errorf(MsgErrListFormat, format)
			}
			return output.Encode(out, result, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", MsgFlagListFmt)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"table", "json", "yaml", "toml"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
