// Package form renders the overlay for creating or rescheduling an
// appointment.
package form

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/vetagenda/pkg/appointment"
	"tableflip.dev/vetagenda/pkg/draft"
)

var focusColor = lipgloss.Color("212")

type focusField int

const (
	fieldPatient focusField = iota
	fieldSpecies
	fieldVeterinarian
	fieldProcedure
	fieldDate
	fieldStart
	fieldEnd
	fieldNotes
	fieldCount
)

// SubmitMsg carries the completed draft back to the agenda model.
type SubmitMsg struct {
	Draft draft.Draft
}

// CancelMsg reports the form was dismissed without submitting.
type CancelMsg struct{}

// Model is the appointment form overlay.
type Model struct {
	title string
	focus focusField

	patients      []*appointment.Patient
	suggestions   []*appointment.Patient
	suggestionIdx int
	boundID       string

	speciesOptions []appointment.Species
	speciesIndex   int
	vetOptions     []string
	vetIndex       int

	patient   textinput.Model
	procedure textinput.Model
	date      textinput.Model
	start     textinput.Model
	end       textinput.Model
	notes     textinput.Model

	errorMsg string
	width    int
}

// New builds the form prefilled from a draft. The patient roster feeds the
// autocomplete suggestions.
func New(title string, d draft.Draft, patients []*appointment.Patient) *Model {
	mk := func(placeholder, value string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		ti.Prompt = ""
		ti.SetValue(value)
		return ti
	}

	m := &Model{
		title:          title,
		focus:          fieldPatient,
		patients:       patients,
		boundID:        d.PatientID,
		speciesOptions: appointment.AllSpecies(),
		vetOptions:     draft.Veterinarians,
		patient:        mk("nome do paciente", d.PatientName, 64),
		procedure:      mk("procedimento", d.Procedure, 64),
		date:           mk("2006-01-02", d.Date, 10),
		start:          mk("09:00", d.Start, 5),
		end:            mk("10:00", d.End, 5),
		notes:          mk("observações", d.Notes, 256),
	}
	m.speciesIndex = m.findSpecies(d.Species)
	m.vetIndex = m.findVet(d.Veterinarian)
	m.updateInputFocus()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.patient.Focus(), textinput.Blink)
}

// Update processes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, m.routeToInput(msg)
	}

	switch key.String() {
	case "esc":
		return m, func() tea.Msg { return CancelMsg{} }
	case "tab", "down":
		m.nextField(1)
		return m, nil
	case "shift+tab", "up":
		m.nextField(-1)
		return m, nil
	case "left":
		if m.cycleOption(-1) {
			return m, nil
		}
	case "right":
		if m.cycleOption(1) {
			return m, nil
		}
	case "ctrl+n":
		if m.focus == fieldPatient && len(m.suggestions) > 0 {
			m.suggestionIdx = (m.suggestionIdx + 1) % len(m.suggestions)
			return m, nil
		}
	case "ctrl+p":
		if m.focus == fieldPatient && len(m.suggestions) > 0 {
			m.suggestionIdx = (m.suggestionIdx - 1 + len(m.suggestions)) % len(m.suggestions)
			return m, nil
		}
	case "enter":
		if m.focus == fieldPatient && len(m.suggestions) > 0 {
			m.acceptSuggestion()
			m.nextField(1)
			return m, nil
		}
		return m, m.submit()
	}

	cmd := m.routeToInput(msg)
	if m.focus == fieldPatient {
		m.refreshSuggestions()
	}
	return m, cmd
}

// Draft assembles the current field values.
func (m *Model) Draft() draft.Draft {
	return draft.Draft{
		PatientID:    m.boundID,
		PatientName:  strings.TrimSpace(m.patient.Value()),
		Species:      m.speciesOptions[m.speciesIndex],
		Veterinarian: m.vetOptions[m.vetIndex],
		Procedure:    strings.TrimSpace(m.procedure.Value()),
		Date:         strings.TrimSpace(m.date.Value()),
		Start:        strings.TrimSpace(m.start.Value()),
		End:          strings.TrimSpace(m.end.Value()),
		Notes:        strings.TrimSpace(m.notes.Value()),
	}
}

// Error returns the current validation message, empty when clean.
func (m *Model) Error() string { return m.errorMsg }

// SetWidth updates the rendered width.
func (m *Model) SetWidth(w int) { m.width = w }

func (m *Model) submit() tea.Cmd {
	d := m.Draft()
	if err := d.Validate(); err != nil {
		m.errorMsg = err.Error()
		return nil
	}
	m.errorMsg = ""
	return func() tea.Msg { return SubmitMsg{Draft: d} }
}

func (m *Model) nextField(dir int) {
	m.focus = focusField((int(m.focus) + dir + int(fieldCount)) % int(fieldCount))
	m.updateInputFocus()
}

// cycleOption moves the species or practitioner picker; it reports whether
// the focused field consumed the key.
func (m *Model) cycleOption(dir int) bool {
	switch m.focus {
	case fieldSpecies:
		n := len(m.speciesOptions)
		m.speciesIndex = (m.speciesIndex + dir + n) % n
		return true
	case fieldVeterinarian:
		n := len(m.vetOptions)
		m.vetIndex = (m.vetIndex + dir + n) % n
		return true
	}
	return false
}

func (m *Model) refreshSuggestions() {
	query := strings.ToLower(strings.TrimSpace(m.patient.Value()))
	m.suggestions = m.suggestions[:0]
	m.suggestionIdx = 0
	// editing the name unbinds any previous roster pick
	m.boundID = ""
	if query == "" {
		return
	}
	for _, p := range m.patients {
		if strings.Contains(strings.ToLower(p.Name), query) {
			m.suggestions = append(m.suggestions, p)
		}
		if len(m.suggestions) == 4 {
			break
		}
	}
}

func (m *Model) acceptSuggestion() {
	p := m.suggestions[m.suggestionIdx]
	d := m.Draft()
	d.BindPatient(*p)
	m.boundID = d.PatientID
	m.patient.SetValue(d.PatientName)
	m.patient.CursorEnd()
	m.speciesIndex = m.findSpecies(d.Species)
	m.suggestions = nil
}

func (m *Model) routeToInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case fieldPatient:
		m.patient, cmd = m.patient.Update(msg)
	case fieldProcedure:
		m.procedure, cmd = m.procedure.Update(msg)
	case fieldDate:
		m.date, cmd = m.date.Update(msg)
	case fieldStart:
		m.start, cmd = m.start.Update(msg)
	case fieldEnd:
		m.end, cmd = m.end.Update(msg)
	case fieldNotes:
		m.notes, cmd = m.notes.Update(msg)
	}
	return cmd
}

func (m *Model) updateInputFocus() {
	inputs := []*textinput.Model{&m.patient, &m.procedure, &m.date, &m.start, &m.end, &m.notes}
	active := map[focusField]*textinput.Model{
		fieldPatient:   &m.patient,
		fieldProcedure: &m.procedure,
		fieldDate:      &m.date,
		fieldStart:     &m.start,
		fieldEnd:       &m.end,
		fieldNotes:     &m.notes,
	}[m.focus]
	for _, in := range inputs {
		if in == active {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (m *Model) findSpecies(s appointment.Species) int {
	for i, opt := range m.speciesOptions {
		if opt == s {
			return i
		}
	}
	return 0
}

func (m *Model) findVet(v string) int {
	for i, opt := range m.vetOptions {
		if opt == v {
			return i
		}
	}
	return 0
}

// View renders the form panel.
func (m *Model) View() string {
	label := func(f focusField, text string) string {
		st := lipgloss.NewStyle().Width(13)
		if m.focus == f {
			st = st.Foreground(focusColor).Bold(true)
		}
		return st.Render(text)
	}
	pick := func(f focusField, value string) string {
		if m.focus == f {
			return lipgloss.NewStyle().Foreground(focusColor).Render("‹ " + value + " ›")
		}
		return value
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Underline(true).Render(m.title),
		"",
		label(fieldPatient, "paciente") + m.patient.View(),
	}
	for i, p := range m.suggestions {
		marker := "   "
		if i == m.suggestionIdx {
			marker = " → "
		}
		lines = append(lines, fmt.Sprintf("%s%s (%s, %s)", marker, p.Name, p.Species, p.Tutor))
	}
	lines = append(lines,
		label(fieldSpecies, "espécie")+pick(fieldSpecies, string(m.speciesOptions[m.speciesIndex])),
		label(fieldVeterinarian, "veterinário")+pick(fieldVeterinarian, m.vetOptions[m.vetIndex]),
		label(fieldProcedure, "procedimento")+m.procedure.View(),
		label(fieldDate, "data")+m.date.View(),
		label(fieldStart, "início")+m.start.View(),
		label(fieldEnd, "fim")+m.end.View(),
		label(fieldNotes, "observações")+m.notes.View(),
		"",
	)
	if m.errorMsg != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render(m.errorMsg))
	} else {
		lines = append(lines, lipgloss.NewStyle().Faint(true).Render("enter salvar · esc cancelar · tab próximo campo"))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	panel := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2)
	if m.width > 0 {
		panel = panel.Width(min(m.width-4, 64))
	}
	return panel.Render(body)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
