package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/vetagenda/pkg/agenda"
	"tableflip.dev/vetagenda/pkg/appointment"
	"tableflip.dev/vetagenda/pkg/runner/tui/internal/detailpanel"
	"tableflip.dev/vetagenda/pkg/runner/tui/internal/minimonth"
)

const sidebarWidth = 26

// View renders the agenda: header, grid, sidebar and the active overlay.
func (m Model) View() string {
	switch m.mode {
	case modeForm:
		if m.form != nil {
			return m.renderHeader() + "\n\n" + m.form.View() + "\n\n" + m.renderFooter()
		}
	case modeFilter:
		return m.renderHeader() + "\n\n" + m.renderFilters() + "\n\n" + m.renderFooter()
	case modeHelp:
		return m.renderHeader() + "\n\n" + m.renderHelp() + "\n\n" + m.renderFooter()
	}

	var body string
	if m.view == agenda.ViewMonth {
		body = m.renderMonthGrid()
	} else {
		body = m.renderTimeGrid()
	}

	side := m.renderSidebar()
	if side != "" {
		gap := lipgloss.NewStyle().Padding(0, 1).Render(" ")
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, gap, side)
	}

	out := m.renderHeader() + "\n\n" + body + "\n\n" + m.renderFooter()
	if m.mode == modeCommand {
		out += "\n:" + m.input.View()
	}
	return out
}

func (m Model) renderHeader() string {
	var tabs []string
	for _, v := range agenda.ViewModes() {
		if v == m.view {
			tabs = append(tabs, m.th.TabActive.Render(string(v)))
		} else {
			tabs = append(tabs, m.th.Tab.Render(string(v)))
		}
	}
	label := m.th.Header.Render(agenda.RangeLabel(m.view, m.anchor))
	return strings.Join(tabs, "") + "  " + label
}

func (m Model) renderFooter() string {
	return m.th.Status.Render(m.status)
}

// renderTimeGrid draws the day or week view: an hour column plus one column
// per visible day, cells stacked in store order.
func (m Model) renderTimeGrid() string {
	days := agenda.VisibleDays(m.view, m.anchor)
	hours := agenda.Hours()
	grid := agenda.TimeBuckets(m.visible(), days, hours)

	colWidth := (m.bodyWidth() - sidebarWidth - 8) / len(days)
	if colWidth < 12 {
		colWidth = 12
	}
	if colWidth > 24 {
		colWidth = 24
	}

	var b strings.Builder

	// day header row
	b.WriteString(strings.Repeat(" ", 6))
	for _, d := range days {
		head := fmt.Sprintf("%s %s", agenda.WeekdayName(d.Weekday()), agenda.DayMonth(d))
		if sameDay(d, m.now()) {
			head = m.th.Today.Render(head)
		} else {
			head = m.th.DayHeader.Render(head)
		}
		b.WriteString(pad(head, colWidth))
	}
	b.WriteString("\n")

	for _, h := range hours {
		b.WriteString(m.th.HourLabel.Render(fmt.Sprintf("%02d:00 ", h)))
		for _, d := range days {
			bucket := grid.At(d, h)
			cell := m.renderTimeCell(bucket, colWidth-1)
			if sameDay(d, m.cursorDate) && h == m.cursorHour {
				cell = m.th.Cursor.Render(cell)
			}
			b.WriteString(cell)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderTimeCell(bucket []*appointment.Appointment, width int) string {
	if len(bucket) == 0 {
		return strings.Repeat(" ", width)
	}
	// stacked slots show the last record on top
	top := bucket[len(bucket)-1]
	label := fmt.Sprintf("%s %s", top.Start.Clock(), top.Title)
	if len(bucket) > 1 {
		label = fmt.Sprintf("%s +%d", label, len(bucket)-1)
	}
	label = truncate.StringWithTail(label, uint(width), "…")
	style := m.th.Species(top)
	if top.Status == appointment.StatusCancelado || top.Status == appointment.StatusPendente {
		style = m.th.SpeciesDim(top)
	}
	if sel, ok := m.sel.Selected(); ok && sel.ID == top.ID {
		style = style.Reverse(true)
	}
	return pad(style.Render(label), width)
}

// renderMonthGrid draws the month view: seven columns, at most three titles
// per cell, the remainder summarized as "+N mais".
func (m Model) renderMonthGrid() string {
	cells := agenda.MonthCells(m.visible(), m.anchor.Year(), m.anchor.Month(), m.now())

	colWidth := (m.bodyWidth() - sidebarWidth - 4) / 7
	if colWidth < 12 {
		colWidth = 12
	}
	if colWidth > 22 {
		colWidth = 22
	}

	var b strings.Builder
	for _, wd := range []string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"} {
		b.WriteString(pad(m.th.DayHeader.Render(wd), colWidth))
	}
	b.WriteString("\n")

	for row := 0; row*7 < len(cells); row++ {
		week := cells[row*7 : minInt((row+1)*7, len(cells))]
		lines := make([][]string, agenda.MaxPerMonthCell+2)
		for _, cell := range week {
			for i, line := range m.renderMonthCell(cell, colWidth-1) {
				lines[i] = append(lines[i], pad(line, colWidth))
			}
		}
		for _, line := range lines {
			b.WriteString(strings.Join(line, ""))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderMonthCell returns a fixed number of lines so week rows stay aligned.
func (m Model) renderMonthCell(cell agenda.MonthCell, width int) []string {
	lines := make([]string, 0, agenda.MaxPerMonthCell+2)
	if cell.Day == 0 {
		for i := 0; i < agenda.MaxPerMonthCell+2; i++ {
			lines = append(lines, "")
		}
		return lines
	}

	head := fmt.Sprintf("%2d", cell.Day)
	if cell.Today {
		head = m.th.Today.Render(head)
	}
	if sameDay(cell.Date, m.cursorDate) {
		head = m.th.Cursor.Render(head)
	}
	lines = append(lines, head)

	for _, a := range cell.Appointments {
		label := truncate.StringWithTail(a.Title, uint(width), "…")
		style := m.th.Species(a)
		if a.Status == appointment.StatusCancelado || a.Status == appointment.StatusPendente {
			style = m.th.SpeciesDim(a)
		}
		lines = append(lines, style.Render(label))
	}
	for len(lines) < agenda.MaxPerMonthCell+1 {
		lines = append(lines, "")
	}

	if cell.Overflow > 0 {
		lines = append(lines, m.th.Overflow.Render(fmt.Sprintf("+%d mais", cell.Overflow)))
	} else {
		lines = append(lines, "")
	}
	return lines
}

func (m Model) renderSidebar() string {
	month := agenda.StartOfDay(m.anchor)
	busy := map[int]bool{}
	for _, a := range m.visible() {
		if a.Start.SameMonth(month) {
			busy[a.Start.Local().Day()] = true
		}
	}
	days := make([]minimonth.Day, 0, 31)
	now := m.now()
	for day := 1; day <= agenda.DaysIn(month); day++ {
		days = append(days, minimonth.Day{
			Day:            day,
			HasAppointment: busy[day],
			IsToday:        now.Year() == month.Year() && now.Month() == month.Month() && now.Day() == day,
			IsAnchor:       m.cursorDate.Year() == month.Year() && m.cursorDate.Month() == month.Month() && m.cursorDate.Day() == day,
		})
	}
	parts := []string{minimonth.Render(month, days, minimonth.DefaultOptions())}

	if sel, ok := m.sel.Selected(); ok {
		parts = append(parts, detailpanel.Render(sel, m.th))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderFilters() string {
	var lines []string
	lines = append(lines, m.th.PanelTitle.Render("Filtros"), "")
	var lastCat string
	for i, row := range m.filterRows {
		if string(row.cat) != lastCat {
			lines = append(lines, m.th.DayHeader.Render(string(row.cat)))
			lastCat = string(row.cat)
		}
		box := "[ ]"
		if m.filters.Included(row.cat, row.key) {
			box = "[x]"
		}
		prefix := "  "
		if i == m.filterIdx {
			prefix = "→ "
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", prefix, box, row.key))
	}
	lines = append(lines, "", m.th.Help.Render("espaço alternar · esc fechar"))
	return m.th.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) renderHelp() string {
	help := []string{
		"t/w/m        visão dia / semana / mês",
		"[ ] ou h/l   período anterior / seguinte",
		"g            hoje",
		"setas        mover cursor na grade",
		"enter        selecionar consulta (repetir alterna a pilha)",
		"esc          limpar seleção",
		"c            confirmar consulta selecionada",
		"r            remarcar consulta selecionada",
		"n            notificar tutor",
		"o            nova consulta",
		"f            filtros",
		":q           sair",
	}
	return m.th.Panel.Render(strings.Join(help, "\n"))
}

func pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
