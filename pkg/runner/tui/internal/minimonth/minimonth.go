// Package minimonth renders the compact month summary shown beside the grid.
package minimonth

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/vetagenda/pkg/agenda"
)

// Day describes a single day rendered in the mini calendar.
type Day struct {
	Day            int
	HasAppointment bool
	IsToday        bool
	IsAnchor       bool
}

// Options controls mini calendar styling.
type Options struct {
	HeaderStyle lipgloss.Style
	EmptyStyle  lipgloss.Style
	BusyStyle   lipgloss.Style
	TodayStyle  lipgloss.Style
	AnchorStyle lipgloss.Style
	ShowHeader  bool
}

// DefaultOptions returns the styling used by the agenda sidebar.
func DefaultOptions() Options {
	return Options{
		HeaderStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		EmptyStyle:  lipgloss.NewStyle().Faint(true),
		BusyStyle:   lipgloss.NewStyle().Bold(true),
		TodayStyle:  lipgloss.NewStyle().Underline(true),
		AnchorStyle: lipgloss.NewStyle().Reverse(true),
		ShowHeader:  true,
	}
}

// Render produces a multi-line mini calendar for the given month. Weeks run
// Sunday to Saturday like the full month grid.
func Render(month time.Time, days []Day, opts Options) string {
	if month.IsZero() {
		return ""
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := agenda.DaysIn(month)

	byDay := make(map[int]Day, len(days))
	for _, d := range days {
		if d.Day >= 1 && d.Day <= daysInMonth {
			byDay[d.Day] = d
		}
	}

	var lines []string
	title := fmt.Sprintf("%s %d", agenda.MonthName(month.Month()), month.Year())
	lines = append(lines, opts.HeaderStyle.Render(title))
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("Do Se Te Qa Qi Sx Sá"))
	}

	startOffset := int(first.Weekday())
	totalCells := startOffset + daysInMonth
	rows := (totalCells + 6) / 7

	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			cellIdx := row*7 + col
			day := cellIdx - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			cells = append(cells, renderDay(byDay[day], day, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(info Day, day int, opts Options) string {
	text := fmt.Sprintf("%2d", day)

	style := opts.EmptyStyle
	if info.HasAppointment {
		style = opts.BusyStyle
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsAnchor {
		style = style.Inherit(opts.AnchorStyle)
	}
	return style.Render(text)
}
