package pathmaster

import (
	"fmt"

	"github.com/arthur-debert/pathmaster/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(c *cli) *cobra.Command {
	var (
		defaults bool
		format   string
	)

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if defaults {
				_, err := fmt.Fprint(out, config.GenerateConfigContent())
				return err
			}

			data, err := c.cfg.Marshal(format)
			if err != nil {
				return fmt.Errorf(MsgErrShowConfig, err)
			}
			if c.cfg.Source != "" {
				fmt.Fprintf(out, "# loaded from %s\n", c.cfg.Source)
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	cmd.Flags().StringVarP(&format, "format", "f", "toml", MsgFlagCfgFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"toml", "yaml"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
