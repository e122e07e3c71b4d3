package appointment

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of an appointment.
type Status string

const (
	StatusPendente   Status = "pendente"
	StatusConfirmado Status = "confirmado"
	StatusCancelado  Status = "cancelado"
	StatusRealizado  Status = "realizado"
)

// Statuses lists every lifecycle state in display order.
func Statuses() []Status {
	return []Status{StatusConfirmado, StatusPendente, StatusCancelado, StatusRealizado}
}

// Species is the animal type tag used for color coding.
type Species string

const (
	SpeciesEquino Species = "equino"
	SpeciesCanino Species = "canino"
	SpeciesFelino Species = "felino"
	SpeciesOutros Species = "outros"
)

// AllSpecies lists the closed species set in display order.
func AllSpecies() []Species {
	return []Species{SpeciesEquino, SpeciesCanino, SpeciesFelino, SpeciesOutros}
}

// ParseSpecies normalizes free-form species text into the closed set.
// Anything unrecognized maps to Canino, matching the creation default.
func ParseSpecies(s string) Species {
	switch Species(strings.ToLower(strings.TrimSpace(s))) {
	case SpeciesEquino:
		return SpeciesEquino
	case SpeciesCanino:
		return SpeciesCanino
	case SpeciesFelino:
		return SpeciesFelino
	case SpeciesOutros:
		return SpeciesOutros
	default:
		return SpeciesCanino
	}
}

// Patient is the minimal patient record the agenda needs.
type Patient struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Species Species `json:"species,omitempty"`
	Tutor   string  `json:"tutor,omitempty"`
}

// Appointment is a single scheduled visit. Start and End always fall on the
// same calendar day and the time grid assumes one hour-row slot per visit.
type Appointment struct {
	ID           string    `json:"id"`
	PatientID    string    `json:"patientId,omitempty"`
	PatientName  string    `json:"patientName"`
	Species      Species   `json:"species,omitempty"`
	Veterinarian string    `json:"veterinarian,omitempty"`
	Start        Timestamp `json:"start"`
	End          Timestamp `json:"end"`
	Title        string    `json:"title,omitempty"`
	Procedure    string    `json:"procedure,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Status       Status    `json:"status,omitempty"`
	Color        string    `json:"color,omitempty"`
}

// ComposeTitle joins patient name and procedure the way the detail panel and
// the grid display them.
func ComposeTitle(patient, procedure string) string {
	patient = strings.TrimSpace(patient)
	procedure = strings.TrimSpace(procedure)
	if procedure == "" {
		return patient
	}
	return fmt.Sprintf("%s - %s", patient, procedure)
}

// SplitTitle recovers the procedure component from a "Nome - Procedimento"
// title. The patient part is returned first; a title with no separator comes
// back with an empty procedure.
func SplitTitle(title string) (string, string) {
	parts := strings.SplitN(title, " - ", 2)
	if len(parts) == 1 {
		return strings.TrimSpace(parts[0]), ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

func (a *Appointment) String() string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("%s %s  %s", a.Start.Clock(), a.Status, a.Title)
}

// Hour returns the grid row for the appointment (start hour, truncated).
func (a *Appointment) Hour() int {
	return a.Start.Local().Hour()
}

// Day returns the ISO date the appointment occupies.
func (a *Appointment) Day() string {
	return a.Start.DayKey()
}
