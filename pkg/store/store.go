// Package store persists appointments and the clinic's patient roster.
package store

import (
	"context"

	"tableflip.dev/vetagenda/pkg/appointment"
)

// Patch carries the partial fields an update may change. Nil fields are left
// as stored.
type Patch struct {
	Status       *appointment.Status
	Start        *appointment.Timestamp
	End          *appointment.Timestamp
	Title        *string
	Procedure    *string
	Notes        *string
	Veterinarian *string
}

// Store is the appointment/patient collaborator contract. Implementations
// assign ids on Create; Update returns (nil, nil) when the id is unknown so
// callers can treat stale ids as a no-op.
type Store interface {
	Appointments(ctx context.Context) []*appointment.Appointment
	Patients(ctx context.Context) []*appointment.Patient
	Create(ctx context.Context, a *appointment.Appointment) (*appointment.Appointment, error)
	Update(ctx context.Context, id string, patch Patch) (*appointment.Appointment, error)
	Watch(ctx context.Context) (<-chan Event, error)
}

func (p Patch) apply(a *appointment.Appointment) {
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Start != nil {
		a.Start = *p.Start
	}
	if p.End != nil {
		a.End = *p.End
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Procedure != nil {
		a.Procedure = *p.Procedure
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	if p.Veterinarian != nil {
		a.Veterinarian = *p.Veterinarian
	}
}
