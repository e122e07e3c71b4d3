// Package notify provides the runner logic for sending tutor reminders.
package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/vetagenda/pkg/app"
	"tableflip.dev/vetagenda/pkg/appointment"
)

// Notify sends a reminder to the tutor of a single appointment.
type Notify struct {
	ID      string
	Service *app.Service
}

func (n *Notify) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not notify, no service")
	}

	if err := n.Service.Notify(ctx, n.ID); err != nil {
		return err
	}

	all, err := n.Service.Appointments(ctx)
	if err != nil {
		return err
	}
	var a *appointment.Appointment
	for _, x := range all {
		if x.ID == n.ID {
			a = x
			break
		}
	}
	if a == nil {
		return app.ErrNotFound
	}

	ok := color.New(color.FgGreen)
	_, _ = ok.Printf("lembrete enviado: %s\n", a.Title)
	fmt.Printf("  %s %s-%s, %s\n", a.Start.DayKey(), a.Start.Clock(), a.End.Clock(), a.Veterinarian)

	return nil
}
