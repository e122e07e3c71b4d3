package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/vetagenda/pkg/app"
	"tableflip.dev/vetagenda/pkg/runner/confirm"
	"tableflip.dev/vetagenda/pkg/store"
)

func addConfirm(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "confirm <id>",
		Short: "confirm a pending appointment",
		Example: `
vetagenda confirm 171dff69f8b99dca
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
			c := confirm.Confirm{
				ID:      args[0],
				Service: &app.Service{Store: s},
			}
			return oo.HandleError(c.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
