package app

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/vetagenda/pkg/appointment"
	"tableflip.dev/vetagenda/pkg/draft"
	"tableflip.dev/vetagenda/pkg/notify"
	"tableflip.dev/vetagenda/pkg/store"
)

// Service provides the high-level agenda operations so the TUI and the CLI
// commands share one code path. The store and notifier are injected; there
// is no ambient default.
type Service struct {
	Store    store.Store
	Notifier notify.Notifier
}

// ErrNotFound reports a command against an id the store does not know.
var ErrNotFound = errors.New("app: appointment not found")

// Appointments lists every stored appointment in start order.
func (s *Service) Appointments(ctx context.Context) ([]*appointment.Appointment, error) {
	if s.Store == nil {
		return nil, errors.New("app: no store configured")
	}
	return s.Store.Appointments(ctx), nil
}

// Patients lists the clinic roster for the autocomplete collaborator.
func (s *Service) Patients(ctx context.Context) ([]*appointment.Patient, error) {
	if s.Store == nil {
		return nil, errors.New("app: no store configured")
	}
	return s.Store.Patients(ctx), nil
}

// Watch subscribes to store change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Store == nil {
		return nil, errors.New("app: no store configured")
	}
	return s.Store.Watch(ctx)
}

// PatientByID resolves an autocomplete selection back to the full record.
func (s *Service) PatientByID(ctx context.Context, id string) (*appointment.Patient, bool) {
	if s.Store == nil || id == "" {
		return nil, false
	}
	for _, p := range s.Store.Patients(ctx) {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Create validates the draft and stores a new appointment. The title is
// composed from patient and procedure, the color token derived from the
// species, and the status forced to pendente.
func (s *Service) Create(ctx context.Context, d draft.Draft) (*appointment.Appointment, error) {
	if s.Store == nil {
		return nil, errors.New("app: no store configured")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	start, end, err := d.Times()
	if err != nil {
		return nil, err
	}

	species := d.Species
	if species == "" {
		species = appointment.SpeciesCanino
	}

	a := &appointment.Appointment{
		PatientID:    d.PatientID,
		PatientName:  d.PatientName,
		Species:      species,
		Veterinarian: d.Veterinarian,
		Start:        start,
		End:          end,
		Title:        appointment.ComposeTitle(d.PatientName, d.Procedure),
		Procedure:    d.Procedure,
		Notes:        d.Notes,
		Status:       appointment.StatusPendente,
		Color:        appointment.ColorFor(species),
	}
	created, err := s.Store.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("app: create appointment: %w", err)
	}
	return created, nil
}

// Confirm transitions the appointment to confirmado. An unknown id returns
// (nil, nil) so callers can treat stale selections as a silent no-op.
func (s *Service) Confirm(ctx context.Context, id string) (*appointment.Appointment, error) {
	if s.Store == nil {
		return nil, errors.New("app: no store configured")
	}
	status := appointment.StatusConfirmado
	updated, err := s.Store.Update(ctx, id, store.Patch{Status: &status})
	if err != nil {
		return nil, fmt.Errorf("app: confirm appointment: %w", err)
	}
	return updated, nil
}

// BeginReschedule reads the appointment and returns a prefilled creation
// draft. Committing the draft creates a new record; the original stays as
// it is.
func (s *Service) BeginReschedule(ctx context.Context, id string) (draft.Draft, error) {
	if s.Store == nil {
		return draft.Draft{}, errors.New("app: no store configured")
	}
	for _, a := range s.Store.Appointments(ctx) {
		if a.ID == id {
			return draft.FromAppointment(a), nil
		}
	}
	return draft.Draft{}, ErrNotFound
}

// CommitReschedule submits a reschedule draft through the create path.
func (s *Service) CommitReschedule(ctx context.Context, d draft.Draft) (*appointment.Appointment, error) {
	return s.Create(ctx, d)
}

// Notify fires a reminder for the appointment's tutor. Delivery is best
// effort and mutates nothing.
func (s *Service) Notify(ctx context.Context, id string) error {
	if s.Store == nil {
		return errors.New("app: no store configured")
	}
	if s.Notifier == nil {
		return errors.New("app: no notifier configured")
	}
	for _, a := range s.Store.Appointments(ctx) {
		if a.ID == id {
			return s.Notifier.Send(ctx, a)
		}
	}
	return ErrNotFound
}
