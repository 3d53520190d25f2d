package pathmaster

import (
	"fmt"
	"os"

	"github.com/arthur-debert/pathmaster/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// ManHeader is shared by `pathmaster man` and the pathmaster-manpage tool
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "PATHMASTER",
		Section: "1",
		Source:  "pathmaster " + version.Version,
		Manual:  "pathmaster manual",
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man [DIR]",
		Short:   MsgManShort,
		Long:    MsgManLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return doc.GenMan(cmd.Root(), ManHeader(), cmd.OutOrStdout())
			}

			dir := args[0]
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf(MsgErrManDir, err)
			}
			if err := doc.GenManTree(cmd.Root(), ManHeader(), dir); err != nil {
				return fmt.Errorf(MsgErrManDir, err)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.Info())
		},
	}
}
