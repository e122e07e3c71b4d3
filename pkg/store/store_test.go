package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/vetagenda/pkg/appointment"
)

func newAppt(day time.Time, hour int, name string) *appointment.Appointment {
	return &appointment.Appointment{
		PatientName: name,
		Title:       name,
		Status:      appointment.StatusPendente,
		Start:       appointment.At(day, hour, 0),
		End:         appointment.At(day, hour+1, 0),
	}
}

func TestMemoryCreateAssignsID(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)
	created, err := m.Create(ctx, newAppt(day, 9, "Rex"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected the store to assign an id")
	}

	all := m.Appointments(ctx)
	if len(all) != 1 || all[0].ID != created.ID {
		t.Fatalf("expected the created appointment listed, got %v", all)
	}
}

func TestMemoryUpdateUnknownIDIsNil(t *testing.T) {
	m := NewMemory()
	status := appointment.StatusConfirmado
	got, err := m.Update(context.Background(), "missing", Patch{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil record for unknown id, got %v", got)
	}
}

func TestMemoryUpdateAppliesPatch(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)
	created, err := m.Create(ctx, newAppt(day, 9, "Rex"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	status := appointment.StatusConfirmado
	updated, err := m.Update(ctx, created.ID, Patch{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated == nil || updated.Status != appointment.StatusConfirmado {
		t.Fatalf("expected confirmado, got %v", updated)
	}
	if updated.Title != "Rex" {
		t.Fatalf("unpatched fields should be preserved, got %q", updated.Title)
	}
}

func TestMemorySortsByStart(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)
	if _, err := m.Create(ctx, newAppt(day, 14, "tarde")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := m.Create(ctx, newAppt(day, 9, "manhã")); err != nil {
		t.Fatalf("create: %v", err)
	}

	all := m.Appointments(ctx)
	if all[0].PatientName != "manhã" {
		t.Fatalf("expected start-time ordering, got %q first", all[0].PatientName)
	}
}

func TestMemoryPatientsCopiesRoster(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	first := m.Patients(ctx)
	if len(first) == 0 {
		t.Fatalf("expected a seeded roster")
	}
	first[0].Name = "mudado"

	second := m.Patients(ctx)
	if second[0].Name == "mudado" {
		t.Fatalf("mutating a returned patient must not touch the store")
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	ctx := context.Background()

	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)
	created, err := p.Create(ctx, newAppt(day, 9, "Rex"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	all := p.Appointments(ctx)
	if len(all) != 1 {
		t.Fatalf("expected one stored appointment, got %d", len(all))
	}
	if all[0].ID != created.ID || all[0].PatientName != "Rex" {
		t.Fatalf("round-trip mismatch: %+v", all[0])
	}
	if all[0].Start.Clock() != "09:00" {
		t.Fatalf("expected 09:00 start, got %q", all[0].Start.Clock())
	}
}

func TestPersistenceUpdateRekeysAcrossDays(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	ctx := context.Background()

	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)
	created, err := p.Create(ctx, newAppt(day, 9, "Rex"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	moved := day.AddDate(0, 0, 2)
	start := appointment.At(moved, 14, 0)
	end := appointment.At(moved, 15, 0)
	updated, err := p.Update(ctx, created.ID, Patch{Start: &start, End: &end})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated == nil || !updated.Start.SameDay(moved) {
		t.Fatalf("expected the record on the new day, got %v", updated)
	}

	all := p.Appointments(ctx)
	if len(all) != 1 {
		t.Fatalf("rekeying must not duplicate or drop the record, got %d", len(all))
	}
	if all[0].ID != created.ID || !all[0].Start.SameDay(moved) {
		t.Fatalf("expected the moved appointment only, got %+v", all[0])
	}
}

func TestPersistencePatientsSeededOnce(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	ctx := context.Background()

	first := p.Patients(ctx)
	if len(first) == 0 {
		t.Fatalf("expected a seeded roster")
	}
	second := p.Patients(ctx)
	if len(second) != len(first) {
		t.Fatalf("roster changed between reads: %d then %d", len(first), len(second))
	}
}
