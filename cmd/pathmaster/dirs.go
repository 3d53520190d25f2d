package pathmaster

import (
	"errors"
	"fmt"

	"github.com/arthur-debert/pathmaster/pkg/commands"
	"github.com/arthur-debert/pathmaster/pkg/ui"
	"github.com/spf13/cobra"
)

func newDirsCmd(c *cli) *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:     "dirs [--create KEY...]",
		Short:   MsgDirsShort,
		Long:    MsgDirsLong,
		Example: MsgDirsExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			styler := ui.NewStyler(c.modeFor(out))

			if !create {
				if len(args) > 0 {
					return fmt.Errorf("unexpected arguments %v (did you mean --create?)", args)
				}
				dirs, err := commands.ListDirs(c.scanOptions())
				if err != nil {
					return fmt.Errorf(MsgErrList, err)
				}
				if len(dirs) == 0 {
					fmt.Fprintln(out, MsgNoDirsFound)
					return nil
				}
				for _, d := range dirs {
					fmt.Fprintf(out, "%s\t%s\n", styler.Render("Key", d.Key), styler.Render("Path", d.Dir))
				}
				return nil
			}

			if len(args) == 0 {
				return errors.New(MsgErrNoKeys)
			}
			created, err := commands.CreateDir(commands.CreateDirOptions{
				Options: c.scanOptions(),
				Keys:    args,
			})
			// report what was done before a failing key
			for _, d := range created {
				if d.Created {
					fmt.Fprintf(out, MsgDirCreated, styler.Render("Path", d.Dir))
				} else {
					fmt.Fprintf(out, MsgDirExists, styler.Render("Path", d.Dir))
				}
			}
			if err != nil {
				return fmt.Errorf(MsgErrCreateDir, err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&create, "create", false, MsgFlagCreate)

	return cmd
}
