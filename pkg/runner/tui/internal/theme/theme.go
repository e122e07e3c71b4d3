package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/vetagenda/pkg/appointment"
)

// Theme centralizes Lip Gloss styles for the agenda UI.
type Theme struct {
	Header    lipgloss.Style
	Tab       lipgloss.Style
	TabActive lipgloss.Style

	DayHeader lipgloss.Style
	HourLabel lipgloss.Style
	Cell      lipgloss.Style
	Cursor    lipgloss.Style
	Today     lipgloss.Style
	Overflow  lipgloss.Style

	Panel      lipgloss.Style
	PanelTitle lipgloss.Style

	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Header:    lipgloss.NewStyle().Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		TabActive: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Padding(0, 1),

		DayHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		HourLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Cell:      lipgloss.NewStyle(),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		Today:     lipgloss.NewStyle().Bold(true).Underline(true),
		Overflow:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),

		Panel:      lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2),
		PanelTitle: lipgloss.NewStyle().Bold(true).Underline(true),

		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// Species returns a style tinted with the appointment's species color.
func (t Theme) Species(a *appointment.Appointment) lipgloss.Style {
	hex := a.Color
	if hex == "" {
		hex = appointment.ColorFor(a.Species)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// SpeciesDim returns a muted variant for cancelled or past appointments.
func (t Theme) SpeciesDim(a *appointment.Appointment) lipgloss.Style {
	hex := a.Color
	if hex == "" {
		hex = appointment.ColorFor(a.Species)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(appointment.DimColor(hex))).Faint(true)
}
