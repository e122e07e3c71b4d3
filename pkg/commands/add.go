package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/vetagenda/pkg/app"
	"tableflip.dev/vetagenda/pkg/commands/options"
	"tableflip.dev/vetagenda/pkg/runner/add"
	"tableflip.dev/vetagenda/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	do := &options.DraftOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add [patient]",
		Short: "schedule an appointment",
		Example: `
vetagenda add Rex --procedimento Limpeza --data 2024-03-10 --inicio 09:00 --fim 10:00
vetagenda add --paciente "Trovão" --especie equino --vet "Dra. Santos"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && do.Patient == "" {
				do.Patient = strings.Join(args, " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			a := add.Add{
				ShowID:  io.ShowID,
				Draft:   do.GetDraft(),
				Service: &app.Service{Store: s},
			}
			return oo.HandleError(a.Do(context.Background()))
		},
	}

	options.AddDraftArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
