package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/vetagenda/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "vetagenda",
		Short: base.Wrap80("Veterinary clinic scheduling on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGet(topLevel)
	addAdd(topLevel)
	addConfirm(topLevel)
	addNotify(topLevel)
	addVersion(topLevel)
}
