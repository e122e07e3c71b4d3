package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/vetagenda/pkg/app"
	ntf "tableflip.dev/vetagenda/pkg/notify"
	"tableflip.dev/vetagenda/pkg/runner/notify"
	"tableflip.dev/vetagenda/pkg/store"
)

func addNotify(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "notify <id>",
		Short: "send a reminder to the tutor of an appointment",
		Example: `
vetagenda notify 171dff69f8b99dca
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one appointment id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			n := notify.Notify{
				ID:      args[0],
				Service: &app.Service{Store: s, Notifier: ntf.NewSimulated()},
			}
			return oo.HandleError(n.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
