// Package detailpanel renders the side panel for the selected appointment.
package detailpanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/vetagenda/pkg/agenda"
	"tableflip.dev/vetagenda/pkg/appointment"
	"tableflip.dev/vetagenda/pkg/runner/tui/internal/theme"
	"tableflip.dev/vetagenda/pkg/timeutil"
)

// Render draws the detail card for one appointment. The caller decides
// whether a selection is open; a nil appointment renders nothing.
func Render(a *appointment.Appointment, th theme.Theme) string {
	if a == nil {
		return ""
	}

	accent := th.Species(a)
	if a.Status == appointment.StatusCancelado || a.Status == appointment.StatusPendente {
		accent = th.SpeciesDim(a)
	}

	var b strings.Builder
	b.WriteString(th.PanelTitle.Render(a.Title))
	b.WriteString("\n\n")
	b.WriteString(accent.Render("■ "))
	b.WriteString(string(a.Species))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s, %s–%s (%s)\n", agenda.LongDate(a.Start.Time), a.Start.Clock(), a.End.Clock(),
		timeutil.FormatSpan(a.End.Sub(a.Start.Time)))
	fmt.Fprintf(&b, "%s\n", a.Veterinarian)
	fmt.Fprintf(&b, "status: %s\n", statusLine(a.Status, th))
	if a.Notes != "" {
		b.WriteString("\n")
		b.WriteString(th.Status.Render(a.Notes))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(th.Help.Render("c confirmar · r remarcar · n notificar · esc fechar"))

	return th.Panel.Render(b.String())
}

func statusLine(s appointment.Status, th theme.Theme) string {
	switch s {
	case appointment.StatusConfirmado:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render(string(s))
	case appointment.StatusPendente:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render(string(s))
	case appointment.StatusCancelado:
		return th.Error.Render(string(s))
	default:
		return th.Status.Render(string(s))
	}
}
