package pathmaster

import (
	"errors"
	"fmt"

	"github.com/arthur-debert/pathmaster/pkg/commands"
	"github.com/arthur-debert/pathmaster/pkg/ui"
	"github.com/spf13/cobra"
)

func newFilesCmd(c *cli) *cobra.Command {
	var (
		create bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:     "files [KEY...] | files --create KEY NAME [LINE...]",
		Short:   MsgFilesShort,
		Long:    MsgFilesLong,
		Example: MsgFilesExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			styler := ui.NewStyler(c.modeFor(out))

			if !create {
				if force {
					return errors.New(MsgErrForceNeeded)
				}
				return c.listFiles(cmd, styler, args)
			}

			if len(args) < 2 {
				return errors.New(MsgErrCreateArgs)
			}
			result, err := commands.CreateFile(commands.CreateFileOptions{
				Options: c.scanOptions(),
				Key:     args[0],
				Name:    args[1],
				Lines:   args[2:],
				Force:   force,
			})
			if err != nil {
				return fmt.Errorf(MsgErrCreateFile, err)
			}

			msg := MsgFileWritten
			if result.Overwritten {
				msg = MsgFileOverwritten
			}
			fmt.Fprintf(out, msg, styler.Render("Path", result.Path), result.Lines)
			return nil
		},
	}

	cmd.Flags().BoolVar(&create, "create", false, MsgFlagCreate)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}

func (c *cli) listFiles(cmd *cobra.Command, styler ui.Styler, keys []string) error {
	listing, err := commands.ListFiles(c.scanOptions())
	if err != nil {
		return fmt.Errorf(MsgErrList, err)
	}

	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[k] = true
	}

	out := cmd.OutOrStdout()
	shown := 0
	for _, d := range listing {
		if len(wanted) > 0 && !wanted[d.Key] {
			continue
		}
		shown++

		fmt.Fprintf(out, "%s %s\n", styler.Render("Key", d.Key), styler.Render("Path", d.Dir))
		switch {
		case d.Error != "":
			fmt.Fprintln(out, "  "+styler.Render("Warning", d.Error))
		case len(d.Files) == 0:
			fmt.Fprintln(out, styler.Render("Muted", MsgNoFiles))
		default:
			for _, f := range d.Files {
				fmt.Fprintf(out, "  %s\n", f)
			}
		}
	}

	if shown == 0 {
		fmt.Fprintln(out, MsgNoDirsFound)
	}
	return nil
}
