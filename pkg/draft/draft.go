// Package draft models the unsaved appointment creation/reschedule form.
package draft

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"tableflip.dev/vetagenda/pkg/appointment"
)

const (
	layoutISO   = "2006-01-02"
	layoutClock = "15:04"

	defaultStart = "09:00"
	defaultEnd   = "10:00"
)

// Veterinarians are the fixed practitioner choices on the form.
var Veterinarians = []string{"Dr. Silva", "Dra. Santos"}

// Draft carries the in-progress form fields. Times stay as text until submit
// so the form can round-trip partial input.
type Draft struct {
	PatientID    string
	PatientName  string
	Species      appointment.Species
	Veterinarian string
	Procedure    string
	Date         string // "2006-01-02"
	Start        string // "15:04"
	End          string // "15:04"
	Notes        string
}

// New returns the default draft: today, 09:00–10:00, Canino, first
// practitioner, empty text fields.
func New(now time.Time) Draft {
	return Draft{
		Species:      appointment.SpeciesCanino,
		Veterinarian: Veterinarians[0],
		Date:         now.Format(layoutISO),
		Start:        defaultStart,
		End:          defaultEnd,
	}
}

// FromAppointment prefills a reschedule draft from an existing record. The
// procedure is recovered from the stored title when the procedure field
// itself is empty. The resulting draft feeds the create path; the original
// appointment is left untouched.
func FromAppointment(a *appointment.Appointment) Draft {
	d := Draft{
		PatientID:    a.PatientID,
		PatientName:  a.PatientName,
		Species:      a.Species,
		Veterinarian: a.Veterinarian,
		Procedure:    a.Procedure,
		Date:         a.Start.DayKey(),
		Start:        a.Start.Clock(),
		End:          a.End.Clock(),
		Notes:        a.Notes,
	}
	if d.PatientName == "" {
		d.PatientName, _ = appointment.SplitTitle(a.Title)
	}
	if d.Procedure == "" {
		_, d.Procedure = appointment.SplitTitle(a.Title)
	}
	if d.Species == "" {
		d.Species = appointment.SpeciesCanino
	}
	if d.Veterinarian == "" {
		d.Veterinarian = Veterinarians[0]
	}
	return d
}

// BindPatient applies an autocomplete selection: the patient id and name are
// overwritten and the species re-inferred from the record, defaulting to
// Canino when the record carries none.
func (d *Draft) BindPatient(p appointment.Patient) {
	d.PatientID = p.ID
	d.PatientName = p.Name
	if p.Species != "" {
		d.Species = p.Species
	} else {
		d.Species = appointment.SpeciesCanino
	}
}

// Validate rejects drafts missing patient name, date, start or end time.
// End is deliberately not compared against start; the store accepts whatever
// interval the form produced.
func (d Draft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.PatientName,
			validation.Required.Error("informe o paciente")),
		validation.Field(&d.Date,
			validation.Required.Error("informe a data"),
			validation.Date(layoutISO).Error("data inválida")),
		validation.Field(&d.Start,
			validation.Required.Error("informe o horário inicial"),
			validation.Date(layoutClock).Error("horário inválido")),
		validation.Field(&d.End,
			validation.Required.Error("informe o horário final"),
			validation.Date(layoutClock).Error("horário inválido")),
	)
}

// Times resolves the date plus the two clock fields into local instants.
func (d Draft) Times() (appointment.Timestamp, appointment.Timestamp, error) {
	day, err := time.ParseInLocation(layoutISO, d.Date, time.Local)
	if err != nil {
		return appointment.Timestamp{}, appointment.Timestamp{}, fmt.Errorf("draft: parse date: %w", err)
	}
	start, err := time.Parse(layoutClock, d.Start)
	if err != nil {
		return appointment.Timestamp{}, appointment.Timestamp{}, fmt.Errorf("draft: parse start: %w", err)
	}
	end, err := time.Parse(layoutClock, d.End)
	if err != nil {
		return appointment.Timestamp{}, appointment.Timestamp{}, fmt.Errorf("draft: parse end: %w", err)
	}
	return appointment.At(day, start.Hour(), start.Minute()),
		appointment.At(day, end.Hour(), end.Minute()),
		nil
}
