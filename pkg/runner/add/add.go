// Package add provides the runner logic for scheduling a new appointment.
package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/vetagenda/pkg/agenda"
	"tableflip.dev/vetagenda/pkg/app"
	"tableflip.dev/vetagenda/pkg/appointment"
	"tableflip.dev/vetagenda/pkg/draft"
	"tableflip.dev/vetagenda/pkg/printers"
)

// Add schedules a single appointment from a draft and prints the updated day.
type Add struct {
	ShowID  bool
	Draft   draft.Draft
	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	created, err := n.Service.Create(ctx, n.Draft)
	if err != nil {
		return err
	}

	all, err := n.Service.Appointments(ctx)
	if err != nil {
		return err
	}

	day := make([]*appointment.Appointment, 0, len(all))
	for _, a := range all {
		if a.Start.SameDay(created.Start.Time) {
			day = append(day, a)
		}
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title(agenda.LongDate(created.Start.Time))
	pp.Agenda(day...)

	return nil
}
