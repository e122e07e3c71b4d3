package selection

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/vetagenda/pkg/app"
	"tableflip.dev/vetagenda/pkg/appointment"
	"tableflip.dev/vetagenda/pkg/draft"
	"tableflip.dev/vetagenda/pkg/notify"
	"tableflip.dev/vetagenda/pkg/store"
)

func fixture(t *testing.T) (*app.Service, *Controller, *appointment.Appointment) {
	t.Helper()
	svc := &app.Service{
		Store:    store.NewMemory(),
		Notifier: &notify.Simulated{Delay: time.Millisecond},
	}
	d := draft.New(time.Now())
	d.PatientName = "Rex"
	d.Procedure = "Limpeza"
	created, err := svc.Create(context.Background(), d)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	c := NewController(svc)
	list, _ := svc.Appointments(context.Background())
	c.SetAppointments(list)
	return svc, c, created
}

func TestSelectAndClear(t *testing.T) {
	_, c, created := fixture(t)

	if c.Open() {
		t.Fatalf("detail surface must start closed")
	}
	c.Select(created.ID)
	if got, ok := c.Selected(); !ok || got.ID != created.ID {
		t.Fatalf("expected selection %q, got %v %v", created.ID, got, ok)
	}
	if !c.Open() {
		t.Fatalf("selecting must open the detail surface")
	}
	c.Clear()
	if c.Open() {
		t.Fatalf("clear must close the detail surface")
	}
}

func TestSelectUnknownIDIgnored(t *testing.T) {
	_, c, _ := fixture(t)
	c.Select("nope")
	if c.Open() {
		t.Fatalf("unknown id must not select")
	}
}

func TestCommandsRejectedWhileEmpty(t *testing.T) {
	_, c, _ := fixture(t)

	if _, err := c.Confirm(context.Background()); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection from confirm, got %v", err)
	}
	if _, err := c.BeginReschedule(context.Background()); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection from reschedule, got %v", err)
	}
	if err := c.Notify(context.Background()); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection from notify, got %v", err)
	}
}

func TestConfirmReplacesInPlace(t *testing.T) {
	_, c, created := fixture(t)
	c.Select(created.ID)

	updated, err := c.Confirm(context.Background())
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if updated.Status != appointment.StatusConfirmado {
		t.Fatalf("expected confirmado, got %q", updated.Status)
	}
	live, ok := c.Selected()
	if !ok || live.Status != appointment.StatusConfirmado {
		t.Fatalf("live selection not updated: %v %v", live, ok)
	}
}

func TestConfirmStaleSelectionIsNoOp(t *testing.T) {
	_, c, created := fixture(t)

	// Selection survives locally but the store forgot the id.
	stale := &appointment.Appointment{ID: "stale", Title: created.Title}
	c.SetAppointments([]*appointment.Appointment{stale})
	c.Select("stale")

	updated, err := c.Confirm(context.Background())
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if updated != nil {
		t.Fatalf("expected silent no-op, got %v", updated)
	}
	if got, ok := c.Selected(); !ok || got.ID != "stale" {
		t.Fatalf("selection must be left unchanged, got %v %v", got, ok)
	}
}

func TestSetAppointmentsDropsVanishedSelection(t *testing.T) {
	_, c, created := fixture(t)
	c.Select(created.ID)
	c.SetAppointments(nil)
	if c.Open() {
		t.Fatalf("selection should clear when the id vanishes from the list")
	}
}

func TestBeginReschedulePrefills(t *testing.T) {
	_, c, created := fixture(t)
	c.Select(created.ID)

	d, err := c.BeginReschedule(context.Background())
	if err != nil {
		t.Fatalf("begin reschedule: %v", err)
	}
	if d.PatientName != "Rex" || d.Procedure != "Limpeza" {
		t.Fatalf("draft not prefilled: %+v", d)
	}
	if _, ok := c.Selected(); !ok {
		t.Fatalf("reschedule must not clear the selection")
	}
}
