package form

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/vetagenda/pkg/appointment"
	"tableflip.dev/vetagenda/pkg/draft"
)

func roster() []*appointment.Patient {
	return []*appointment.Patient{
		{ID: "p1", Name: "Rex", Species: appointment.SpeciesCanino, Tutor: "Ana"},
		{ID: "p2", Name: "Trovão", Species: appointment.SpeciesEquino, Tutor: "Bruno"},
		{ID: "p3", Name: "Mimi", Species: appointment.SpeciesFelino, Tutor: "Carla"},
	}
}

func newForm() *Model {
	now := time.Date(2024, time.March, 10, 10, 0, 0, 0, time.Local)
	return New("Nova consulta", draft.New(now), roster())
}

func typeText(m *Model, text string) *Model {
	for _, r := range text {
		m, _ = m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return m
}

func TestSuggestionsFilterRoster(t *testing.T) {
	m := newForm()
	m = typeText(m, "tro")

	if len(m.suggestions) != 1 || m.suggestions[0].Name != "Trovão" {
		t.Fatalf("expected a single suggestion for Trovão, got %v", m.suggestions)
	}
}

func TestAcceptSuggestionBindsPatientAndSpecies(t *testing.T) {
	m := newForm()
	m = typeText(m, "tro")

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	d := m.Draft()
	if d.PatientID != "p2" || d.PatientName != "Trovão" {
		t.Fatalf("expected bound patient, got %+v", d)
	}
	if d.Species != appointment.SpeciesEquino {
		t.Fatalf("expected species inferred from roster, got %v", d.Species)
	}
	if m.focus != fieldSpecies {
		t.Fatalf("expected focus to advance after accepting")
	}
}

func TestEditingNameUnbindsPatient(t *testing.T) {
	m := newForm()
	m = typeText(m, "rex")
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.Draft().PatientID != "p1" {
		t.Fatalf("expected Rex bound first")
	}

	// back to the patient field, then keep typing
	m.focus = fieldPatient
	m.updateInputFocus()
	m = typeText(m, "o")

	if m.Draft().PatientID != "" {
		t.Fatalf("expected edit to unbind the roster pick")
	}
}

func TestOptionCyclersWrap(t *testing.T) {
	m := newForm()
	m.focus = fieldVeterinarian

	before := m.Draft().Veterinarian
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	after := m.Draft().Veterinarian
	if before == after {
		t.Fatalf("expected right to cycle the practitioner")
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if m.Draft().Veterinarian != before {
		t.Fatalf("expected left to cycle back")
	}
}

func TestSubmitRejectsInvalidDraftInPlace(t *testing.T) {
	m := newForm()
	m.date.SetValue("not-a-date")
	m.focus = fieldNotes

	var got tea.Msg
	m, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		got = cmd()
	}
	if _, ok := got.(SubmitMsg); ok {
		t.Fatalf("expected invalid draft to stay on the form")
	}
	if m.Error() == "" {
		t.Fatalf("expected a validation message")
	}
}

func TestSubmitEmitsDraft(t *testing.T) {
	m := newForm()
	m = typeText(m, "Luna")
	m.focus = fieldNotes

	m, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected submit command")
	}
	msg, ok := cmd().(SubmitMsg)
	if !ok {
		t.Fatalf("expected SubmitMsg, got %T", cmd())
	}
	if msg.Draft.PatientName != "Luna" || msg.Draft.Start != "09:00" {
		t.Fatalf("unexpected draft %+v", msg.Draft)
	}
	if m.Error() != "" {
		t.Fatalf("expected no validation message, got %q", m.Error())
	}
}

func TestEscCancels(t *testing.T) {
	m := newForm()
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatalf("expected cancel command")
	}
	if _, ok := cmd().(CancelMsg); !ok {
		t.Fatalf("expected CancelMsg")
	}
}
