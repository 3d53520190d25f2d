package pathmaster

import (
	"fmt"

	"github.com/arthur-debert/pathmaster/pkg/commands"
	"github.com/arthur-debert/pathmaster/pkg/output"
	"github.com/spf13/cobra"
)

// outputFlags are the env output settings. Their values reach the command
// through the configuration overrides, so the fields only back the flags.
type outputFlags struct {
	format    string
	separator string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", output.FormatEnv.String(), MsgFlagFormat)
	cmd.Flags().StringVar(&o.separator, "separator", ":", MsgFlagSeparator)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		output.FormatNames(), cobra.ShellCompDirectiveNoFileComp))
}

func newEnvCmd(c *cli) *cobra.Command {
	var opts outputFlags

	cmd := &cobra.Command{
		Use:         "env",
		Short:       MsgEnvShort,
		Long:        MsgEnvLong,
		Example:     MsgEnvExample,
		Args:        cobra.NoArgs,
		GroupID:     "core",
		Annotations: map[string]string{annotationOutput: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEnv(cmd)
		},
	}
	opts.register(cmd)

	return cmd
}

func (c *cli) runEnv(cmd *cobra.Command) error {
	format, err := output.ParseFormat(c.cfg.Output.Format)
	if err != nil {
		return err
	}

	result, err := commands.Env(commands.EnvOptions{
		Options:   c.scanOptions(),
		Separator: c.cfg.Output.Separator,
	})
	if err != nil {
		return fmt.Errorf(MsgErrCollect, err)
	}

	return output.Render(cmd.OutOrStdout(), result.Variables, format)
}
