// Package confirm provides the runner logic for confirming appointments.
package confirm

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/vetagenda/pkg/agenda"
	"tableflip.dev/vetagenda/pkg/app"
	"tableflip.dev/vetagenda/pkg/appointment"
	"tableflip.dev/vetagenda/pkg/printers"
)

// Confirm marks an appointment as confirmed and prints its day.
type Confirm struct {
	ID      string
	Service *app.Service
}

func (n *Confirm) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not confirm, no service")
	}

	updated, err := n.Service.Confirm(ctx, n.ID)
	if err != nil {
		return err
	}
	if updated == nil {
		return fmt.Errorf("no appointment with id %q", n.ID)
	}

	all, err := n.Service.Appointments(ctx)
	if err != nil {
		return err
	}

	day := make([]*appointment.Appointment, 0, len(all))
	for _, a := range all {
		if a.Start.SameDay(updated.Start.Time) {
			day = append(day, a)
		}
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title(agenda.LongDate(updated.Start.Time))
	pp.Agenda(day...)

	return nil
}
