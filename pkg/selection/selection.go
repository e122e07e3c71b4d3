// Package selection drives the single-selection model behind the detail
// panel.
package selection

import (
	"context"
	"errors"

	"tableflip.dev/vetagenda/pkg/app"
	"tableflip.dev/vetagenda/pkg/appointment"
	"tableflip.dev/vetagenda/pkg/draft"
)

// ErrNoSelection is returned by commands invoked while nothing is selected.
var ErrNoSelection = errors.New("selection: nothing selected")

// Controller holds at most one selected appointment id and exposes the
// commands available on it. The detail surface is open exactly while a
// selection exists; there is no independent open flag.
type Controller struct {
	svc        *app.Service
	list       []*appointment.Appointment
	selectedID string
}

// NewController binds the controller to the shared service.
func NewController(svc *app.Service) *Controller {
	return &Controller{svc: svc}
}

// SetAppointments replaces the controller's view of the list. A selection
// pointing at an id that no longer exists is cleared.
func (c *Controller) SetAppointments(list []*appointment.Appointment) {
	c.list = list
	if c.selectedID == "" {
		return
	}
	if _, ok := c.find(c.selectedID); !ok {
		c.selectedID = ""
	}
}

// Select sets the selection, replacing any prior one, and opens the detail
// surface. Unknown ids are ignored.
func (c *Controller) Select(id string) {
	if _, ok := c.find(id); !ok {
		return
	}
	c.selectedID = id
}

// Clear empties the selection and closes the detail surface.
func (c *Controller) Clear() {
	c.selectedID = ""
}

// Selected returns the live selected record, if any.
func (c *Controller) Selected() (*appointment.Appointment, bool) {
	if c.selectedID == "" {
		return nil, false
	}
	return c.find(c.selectedID)
}

// Open reports whether the detail surface is showing.
func (c *Controller) Open() bool {
	_, ok := c.Selected()
	return ok
}

// Confirm updates the selection to confirmado through the store. A stale id
// the store no longer knows is a silent no-op with the selection unchanged.
func (c *Controller) Confirm(ctx context.Context) (*appointment.Appointment, error) {
	a, ok := c.Selected()
	if !ok {
		return nil, ErrNoSelection
	}
	updated, err := c.svc.Confirm(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}
	c.replace(updated)
	return updated, nil
}

// BeginReschedule builds a prefilled creation draft from the selection and
// hands it to the form flow. The original record is not touched.
func (c *Controller) BeginReschedule(ctx context.Context) (draft.Draft, error) {
	a, ok := c.Selected()
	if !ok {
		return draft.Draft{}, ErrNoSelection
	}
	return c.svc.BeginReschedule(ctx, a.ID)
}

// Notify fires the best-effort reminder for the selection.
func (c *Controller) Notify(ctx context.Context) error {
	a, ok := c.Selected()
	if !ok {
		return ErrNoSelection
	}
	return c.svc.Notify(ctx, a.ID)
}

func (c *Controller) find(id string) (*appointment.Appointment, bool) {
	if id == "" {
		return nil, false
	}
	for _, a := range c.list {
		if a != nil && a.ID == id {
			return a, true
		}
	}
	return nil, false
}

// replace swaps the updated record into the local list in place (same id)
// and keeps the live selection pointing at it.
func (c *Controller) replace(updated *appointment.Appointment) {
	for i, a := range c.list {
		if a != nil && a.ID == updated.ID {
			c.list[i] = updated
			return
		}
	}
}
