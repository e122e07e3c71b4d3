package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/vetagenda/pkg/agenda"
	"tableflip.dev/vetagenda/pkg/app"
	"tableflip.dev/vetagenda/pkg/commands/options"
	"tableflip.dev/vetagenda/pkg/runner/get"
	"tableflip.dev/vetagenda/pkg/store"
)

// viewForAlias maps the CLI argument onto a calendar granularity.
func viewForAlias(alias string) (agenda.ViewMode, error) {
	switch strings.ToLower(alias) {
	case "", "hoje", "dia":
		return agenda.ViewDay, nil
	case "semana":
		return agenda.ViewWeek, nil
	case "mes", "mês":
		return agenda.ViewMonth, nil
	}
	return agenda.ViewDay, errors.New("unknown view: " + alias)
}

func addGet(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}
	fo := &options.FilterOptions{}

	var view agenda.ViewMode

	cmd := &cobra.Command{
		Use:   "get [hoje|semana|mes]",
		Short: "print the agenda for a day, week or month",
		Example: `
vetagenda get
vetagenda get semana --on 2024-03-10
vetagenda get mes --vet silva
`,
		ValidArgs: []string{"hoje", "semana", "mes"},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("too many views set, confused")
			}
			alias := ""
			if len(args) == 1 {
				alias = args[0]
			}
			var err error
			view, err = viewForAlias(alias)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			on, err := vo.GetOn()
			if err != nil {
				return err
			}
			g := get.Get{
				ShowID:  vo.ShowID,
				Mode:    view,
				On:      on,
				Filters: fo.GetFilters(),
				Service: &app.Service{Store: s},
			}
			return oo.HandleError(g.Do(context.Background()))
		},
	}

	options.AddViewArgs(cmd, vo)
	options.AddFilterArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
