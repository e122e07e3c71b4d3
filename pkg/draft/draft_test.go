package draft

import (
	"testing"
	"time"

	"tableflip.dev/vetagenda/pkg/appointment"
)

func TestNewDefaults(t *testing.T) {
	now := time.Date(2024, time.March, 10, 14, 0, 0, 0, time.Local)
	d := New(now)
	if d.Date != "2024-03-10" {
		t.Fatalf("expected today's date, got %q", d.Date)
	}
	if d.Start != "09:00" || d.End != "10:00" {
		t.Fatalf("expected 09:00–10:00 defaults, got %q–%q", d.Start, d.End)
	}
	if d.Species != appointment.SpeciesCanino {
		t.Fatalf("expected Canino default, got %q", d.Species)
	}
}

func TestValidateRequiresCoreFields(t *testing.T) {
	d := New(time.Now())
	if err := d.Validate(); err == nil {
		t.Fatalf("expected validation failure without a patient")
	}
	d.PatientName = "Rex"
	if err := d.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	d.End = ""
	if err := d.Validate(); err == nil {
		t.Fatalf("expected validation failure with empty end time")
	}
	d.End = "25:99"
	if err := d.Validate(); err == nil {
		t.Fatalf("expected validation failure with malformed end time")
	}
}

func TestValidateDoesNotOrderTimes(t *testing.T) {
	d := New(time.Now())
	d.PatientName = "Rex"
	d.Start = "10:00"
	d.End = "09:00"
	if err := d.Validate(); err != nil {
		t.Fatalf("end before start is accepted, got %v", err)
	}
}

func TestBindPatientInfersSpecies(t *testing.T) {
	d := New(time.Now())
	d.BindPatient(appointment.Patient{ID: "p1", Name: "Trovão", Species: appointment.SpeciesEquino})
	if d.PatientID != "p1" || d.PatientName != "Trovão" {
		t.Fatalf("patient binding did not overwrite id/name: %+v", d)
	}
	if d.Species != appointment.SpeciesEquino {
		t.Fatalf("expected inferred species equino, got %q", d.Species)
	}

	d.BindPatient(appointment.Patient{ID: "p2", Name: "Bicho"})
	if d.Species != appointment.SpeciesCanino {
		t.Fatalf("expected Canino fallback, got %q", d.Species)
	}
}

func TestFromAppointmentSplitsTitle(t *testing.T) {
	a := &appointment.Appointment{
		Title: "Rex - Limpeza",
		Start: appointment.At(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local), 9, 0),
		End:   appointment.At(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local), 10, 0),
	}
	d := FromAppointment(a)
	if d.PatientName != "Rex" {
		t.Fatalf("expected patient from title, got %q", d.PatientName)
	}
	if d.Procedure != "Limpeza" {
		t.Fatalf("expected procedure from title, got %q", d.Procedure)
	}
	if d.Date != "2024-03-10" || d.Start != "09:00" || d.End != "10:00" {
		t.Fatalf("time prefill mismatch: %+v", d)
	}
}

func TestTimes(t *testing.T) {
	d := New(time.Date(2024, time.March, 10, 8, 0, 0, 0, time.Local))
	d.Start = "09:30"
	start, end, err := d.Times()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Hour() != 9 || start.Minute() != 30 {
		t.Fatalf("start mismatch: %v", start)
	}
	if !start.SameDay(end.Time) {
		t.Fatalf("start and end should share the calendar day")
	}
}
