package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/vetagenda/pkg/appointment"
	"tableflip.dev/vetagenda/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" consulta")
	default:
		_, _ = c.Println(" consultas")
	}
}

// Agenda prints a day's appointments as an aligned table: hour range,
// status, title, practitioner.
func (pp *PrettyPrint) Agenda(appts ...*appointment.Appointment) {
	if len(appts) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" nenhuma consulta\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	for _, a := range appts {
		hours := fmt.Sprintf("%s–%s", a.Start.Clock(), a.End.Clock())
		span := timeutil.FormatSpan(a.End.Sub(a.Start.Time))
		if pp.ShowID {
			tbl.AddRow(a.ID, hours, span, statusBadge(a.Status), a.Title, a.Veterinarian)
		} else {
			tbl.AddRow(hours, span, statusBadge(a.Status), a.Title, a.Veterinarian)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func statusBadge(s appointment.Status) string {
	switch s {
	case appointment.StatusConfirmado:
		return color.New(color.FgGreen).Sprint(string(s))
	case appointment.StatusPendente:
		return color.New(color.FgYellow).Sprint(string(s))
	case appointment.StatusCancelado:
		return color.New(color.FgRed, color.Faint).Sprint(string(s))
	case appointment.StatusRealizado:
		return color.New(color.Faint).Sprint(string(s))
	default:
		return string(s)
	}
}
