package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/vetagenda/pkg/app"
	"tableflip.dev/vetagenda/pkg/notify"
	"tableflip.dev/vetagenda/pkg/runner/tui"
	"tableflip.dev/vetagenda/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based agenda",
		Example: `
vetagenda ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			svc := &app.Service{Store: s, Notifier: notify.NewSimulated()}
			return tui.Run(svc)
		},
	}

	topLevel.AddCommand(cmd)
}
