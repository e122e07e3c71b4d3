// Package get provides the runner logic for printing the agenda.
package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/vetagenda/pkg/agenda"
	"tableflip.dev/vetagenda/pkg/app"
	"tableflip.dev/vetagenda/pkg/appointment"
	"tableflip.dev/vetagenda/pkg/filter"
	"tableflip.dev/vetagenda/pkg/printers"
)

// Get prints the appointments visible in a single view mode anchored on a day.
type Get struct {
	ShowID  bool
	Mode    agenda.ViewMode
	On      time.Time
	Filters *filter.State
	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}
	if n.On.IsZero() {
		n.On = time.Now()
	}

	all, err := n.Service.Appointments(ctx)
	if err != nil {
		return err
	}
	all = n.filtered(all)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.Mode == agenda.ViewMonth {
		pp.Calendar(n.On, all...)
	}

	days := agenda.VisibleDays(n.Mode, n.On)
	for _, day := range days {
		visible := onDay(all, day)
		if n.Mode != agenda.ViewDay && len(visible) == 0 {
			continue
		}
		pp.Title(agenda.LongDate(day))
		pp.Agenda(visible...)
	}

	return nil
}

func (n *Get) filtered(all []*appointment.Appointment) []*appointment.Appointment {
	if n.Filters == nil {
		return all
	}
	keep := n.Filters.Predicate()
	c := make([]*appointment.Appointment, 0, len(all))
	for _, a := range all {
		if keep(a) {
			c = append(c, a)
		}
	}
	return c
}

func onDay(all []*appointment.Appointment, day time.Time) []*appointment.Appointment {
	c := make([]*appointment.Appointment, 0, len(all))
	for _, a := range all {
		if a.Start.SameDay(day) {
			c = append(c, a)
		}
	}
	return c
}
