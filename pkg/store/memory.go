package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"tableflip.dev/vetagenda/pkg/appointment"
)

// Memory is an in-process Store for tests and demo mode. It is injected
// explicitly wherever the agenda needs a store; there is no ambient default.
type Memory struct {
	mu       sync.Mutex
	appts    []*appointment.Appointment
	patients []*appointment.Patient
	watchers map[chan Event]struct{}
}

// NewMemory builds an empty in-memory store seeded with the given roster.
// An empty roster falls back to the default clinic patients.
func NewMemory(patients ...*appointment.Patient) *Memory {
	if len(patients) == 0 {
		patients = seedPatients()
	}
	return &Memory{
		patients: patients,
		watchers: make(map[chan Event]struct{}),
	}
}

func (m *Memory) Appointments(ctx context.Context) []*appointment.Appointment {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*appointment.Appointment, 0, len(m.appts))
	for _, a := range m.appts {
		clone := *a
		out = append(out, &clone)
	}
	sortAppointments(out)
	return out
}

func (m *Memory) Patients(ctx context.Context) []*appointment.Patient {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*appointment.Patient, 0, len(m.patients))
	for _, p := range m.patients {
		clone := *p
		out = append(out, &clone)
	}
	return out
}

func (m *Memory) Create(ctx context.Context, a *appointment.Appointment) (*appointment.Appointment, error) {
	if a == nil {
		return nil, errors.New("store: nil appointment")
	}
	clone := *a
	clone.ID = uuid.NewString()

	m.mu.Lock()
	m.appts = append(m.appts, &clone)
	m.emitLocked(Event{Type: EventAppointmentsChanged, Day: clone.Day()})
	m.mu.Unlock()

	out := clone
	return &out, nil
}

func (m *Memory) Update(ctx context.Context, id string, patch Patch) (*appointment.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.appts {
		if a.ID != id {
			continue
		}
		patch.apply(a)
		m.emitLocked(Event{Type: EventAppointmentsChanged, Day: a.Day()})
		clone := *a
		return &clone, nil
	}
	return nil, nil
}

// Watch returns a channel fed by Create/Update calls until ctx is done.
func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 8)
	m.mu.Lock()
	m.watchers[ch] = struct{}{}
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		delete(m.watchers, ch)
		m.mu.Unlock()
		close(ch)
	}()
	return ch, nil
}

func (m *Memory) emitLocked(ev Event) {
	for w := range m.watchers {
		select {
		case w <- ev:
		default:
			fmt.Fprintln(os.Stderr, "store: dropping event, watcher is slow")
		}
	}
}
