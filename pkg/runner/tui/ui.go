// Package tui hosts the Bubble Tea agenda: the calendar grid, the detail
// panel, the appointment form and the filter overlay wired to one Service.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/vetagenda/pkg/agenda"
	"tableflip.dev/vetagenda/pkg/app"
	"tableflip.dev/vetagenda/pkg/appointment"
	"tableflip.dev/vetagenda/pkg/draft"
	"tableflip.dev/vetagenda/pkg/filter"
	"tableflip.dev/vetagenda/pkg/runner/tui/internal/form"
	"tableflip.dev/vetagenda/pkg/runner/tui/internal/theme"
	"tableflip.dev/vetagenda/pkg/selection"
	"tableflip.dev/vetagenda/pkg/store"
)

type mode int

const (
	modeNormal mode = iota
	modeForm
	modeFilter
	modeCommand
	modeHelp
)

// filterRow flattens the filter categories for the overlay cursor.
type filterRow struct {
	cat filter.Category
	key string
}

// Model contains the agenda UI state.
type Model struct {
	svc *app.Service
	ctx context.Context

	mode   mode
	view   agenda.ViewMode
	anchor time.Time
	now    func() time.Time

	appts    []*appointment.Appointment
	patients []*appointment.Patient
	filters  *filter.State
	sel      *selection.Controller
	form     *form.Model
	input    textinput.Model

	cursorDate time.Time
	cursorHour int

	filterRows []filterRow
	filterIdx  int

	watch <-chan store.Event

	th     theme.Theme
	status string

	termWidth  int
	termHeight int
}

// New creates the agenda model backed by the Service.
func New(svc *app.Service) Model {
	ti := textinput.New()
	ti.Placeholder = "comando"
	ti.CharLimit = 64
	ti.Prompt = ""

	now := time.Now()
	m := Model{
		svc:        svc,
		ctx:        context.Background(),
		mode:       modeNormal,
		view:       agenda.ViewWeek,
		anchor:     now,
		now:        time.Now,
		filters:    filter.New(),
		sel:        selection.NewController(svc),
		input:      ti,
		cursorDate: agenda.StartOfDay(now),
		cursorHour: agenda.FirstHour,
		th:         theme.Default(),
		status:     "t/w/m visão · [ ] navegar · g hoje · o nova · f filtros · ? ajuda",
	}
	m.filterRows = buildFilterRows(m.filters)
	if svc != nil {
		if ch, err := svc.Watch(m.ctx); err == nil {
			m.watch = ch
		}
	}
	return m
}

func buildFilterRows(s *filter.State) []filterRow {
	var rows []filterRow
	for _, cat := range filter.Categories() {
		for _, key := range s.Keys(cat) {
			rows = append(rows, filterRow{cat: cat, key: key})
		}
	}
	return rows
}

// Init loads initial data and starts the store watch loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadAppointments(), m.loadPatients(), m.waitForEvent())
}

// messages
type errMsg struct{ err error }
type apptsLoadedMsg struct{ appts []*appointment.Appointment }
type patientsLoadedMsg struct{ patients []*appointment.Patient }
type storeEventMsg struct{ ev store.Event }
type notifySentMsg struct{ title string }

func (m *Model) loadAppointments() tea.Cmd {
	return func() tea.Msg {
		appts, err := m.svc.Appointments(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return apptsLoadedMsg{appts}
	}
}

func (m *Model) loadPatients() tea.Cmd {
	return func() tea.Msg {
		patients, err := m.svc.Patients(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return patientsLoadedMsg{patients}
	}
}

func (m *Model) waitForEvent() tea.Cmd {
	ch := m.watch
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return storeEventMsg{ev}
	}
}

// visible returns the appointments that pass the current filters. The grid
// layout itself never consults the filter state; it lays out whatever the
// view hands it.
func (m *Model) visible() []*appointment.Appointment {
	keep := m.filters.Predicate()
	out := make([]*appointment.Appointment, 0, len(m.appts))
	for _, a := range m.appts {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func (m *Model) applyAppointments() {
	m.sel.SetAppointments(m.visible())
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		if m.form != nil {
			m.form.SetWidth(msg.Width)
		}
	case errMsg:
		m.status = "ERRO: " + msg.err.Error()
	case apptsLoadedMsg:
		m.appts = msg.appts
		m.applyAppointments()
	case patientsLoadedMsg:
		m.patients = msg.patients
	case storeEventMsg:
		cmds = append(cmds, m.loadAppointments(), m.waitForEvent())
	case notifySentMsg:
		m.status = "lembrete enviado: " + msg.title
	case form.SubmitMsg:
		if _, err := m.svc.Create(m.ctx, msg.Draft); err != nil {
			cmds = append(cmds, func() tea.Msg { return errMsg{err} })
		} else {
			m.status = "consulta agendada"
			cmds = append(cmds, m.loadAppointments())
		}
		m.mode = modeNormal
		m.form = nil
	case form.CancelMsg:
		m.mode = modeNormal
		m.form = nil
		m.status = "formulário cancelado"
	case tea.KeyPressMsg:
		switch m.mode {
		case modeForm:
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			cmds = append(cmds, cmd)
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
			}
		case modeFilter:
			m.updateFilterMode(msg.String())
		case modeCommand:
			m.updateCommandMode(msg, &cmds)
		case modeNormal:
			m.updateNormalMode(msg.String(), &cmds)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateFilterMode(key string) {
	switch key {
	case "esc", "f", "q":
		m.mode = modeNormal
	case "up", "k":
		if m.filterIdx > 0 {
			m.filterIdx--
		}
	case "down", "j":
		if m.filterIdx < len(m.filterRows)-1 {
			m.filterIdx++
		}
	case "space", " ":
		row := m.filterRows[m.filterIdx]
		m.filters.Toggle(row.cat, row.key)
		m.applyAppointments()
	}
}

func (m *Model) updateCommandMode(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		input := strings.TrimSpace(m.input.Value())
		switch input {
		case "q", "quit", "sair":
			*cmds = append(*cmds, tea.Quit)
		case "":
		default:
			m.status = fmt.Sprintf("comando desconhecido: %s", input)
		}
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
	case "esc":
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) updateNormalMode(key string, cmds *[]tea.Cmd) {
	switch key {
	case ":":
		m.mode = modeCommand
		m.input.Reset()
		if cmd := m.input.Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		*cmds = append(*cmds, textinput.Blink)

	// view modes
	case "t":
		// the day view always opens on today
		m.anchor = m.now()
		m.cursorDate = agenda.StartOfDay(m.anchor)
		m.setView(agenda.ViewDay)
	case "w":
		m.setView(agenda.ViewWeek)
	case "m":
		m.setView(agenda.ViewMonth)

	// range navigation
	case "[", "h":
		m.anchor = agenda.Prev(m.view, m.anchor)
		m.cursorDate = agenda.VisibleDays(m.view, m.anchor)[0]
	case "]", "l":
		m.anchor = agenda.Next(m.view, m.anchor)
		m.cursorDate = agenda.VisibleDays(m.view, m.anchor)[0]
	case "g":
		m.anchor = m.now()
		m.cursorDate = agenda.StartOfDay(m.anchor)

	// grid cursor
	case "left":
		m.moveCursorDays(-1)
	case "right":
		m.moveCursorDays(1)
	case "up":
		m.moveCursorRows(-1)
	case "down":
		m.moveCursorRows(1)

	// selection
	case "enter":
		m.selectAtCursor()
	case "esc":
		m.sel.Clear()

	// commands on the selection
	case "c":
		m.confirmSelection(cmds)
	case "r":
		m.beginReschedule(cmds)
	case "n":
		m.notifySelection(cmds)

	// new appointment
	case "o":
		d := m.newDraft()
		m.form = form.New("Nova consulta", d, m.patients)
		m.form.SetWidth(m.termWidth)
		m.mode = modeForm
		*cmds = append(*cmds, m.form.Init())

	case "f":
		m.mode = modeFilter
	case "?":
		m.mode = modeHelp
	case "q":
		m.status = "use :q para sair"
	}
}

func (m *Model) setView(v agenda.ViewMode) {
	m.view = v
	days := agenda.VisibleDays(v, m.anchor)
	if m.cursorDate.Before(days[0]) || m.cursorDate.After(days[len(days)-1]) {
		m.cursorDate = days[0]
	}
}

// moveCursorDays shifts the day cursor, following it across the range edge
// by moving the anchor.
func (m *Model) moveCursorDays(dir int) {
	next := m.cursorDate.AddDate(0, 0, dir)
	days := agenda.VisibleDays(m.view, m.anchor)
	if next.Before(days[0]) {
		m.anchor = agenda.Prev(m.view, m.anchor)
	} else if next.After(days[len(days)-1]) {
		m.anchor = agenda.Next(m.view, m.anchor)
	}
	m.cursorDate = next
}

func (m *Model) moveCursorRows(dir int) {
	if m.view == agenda.ViewMonth {
		m.moveCursorDays(7 * dir)
		return
	}
	next := m.cursorHour + dir
	if next < agenda.FirstHour || next > agenda.LastHour {
		return
	}
	m.cursorHour = next
}

// selectAtCursor picks the appointment under the grid cursor. Repeated
// presses cycle through a stacked slot.
func (m *Model) selectAtCursor() {
	var bucket []*appointment.Appointment
	if m.view == agenda.ViewMonth {
		for _, a := range m.visible() {
			if a.Start.SameDay(m.cursorDate) {
				bucket = append(bucket, a)
			}
		}
	} else {
		grid := agenda.TimeBuckets(m.visible(), agenda.VisibleDays(m.view, m.anchor), agenda.Hours())
		bucket = grid.At(m.cursorDate, m.cursorHour)
	}
	if len(bucket) == 0 {
		return
	}
	if current, ok := m.sel.Selected(); ok {
		for i, a := range bucket {
			if a.ID == current.ID {
				m.sel.Select(bucket[(i+1)%len(bucket)].ID)
				return
			}
		}
	}
	m.sel.Select(bucket[0].ID)
}

func (m *Model) confirmSelection(cmds *[]tea.Cmd) {
	updated, err := m.sel.Confirm(m.ctx)
	switch {
	case err == selection.ErrNoSelection:
		m.status = "nenhuma consulta selecionada"
	case err != nil:
		*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
	case updated == nil:
		m.status = "consulta não está mais na agenda"
	default:
		m.status = "consulta confirmada"
		*cmds = append(*cmds, m.loadAppointments())
	}
}

func (m *Model) beginReschedule(cmds *[]tea.Cmd) {
	d, err := m.sel.BeginReschedule(m.ctx)
	switch {
	case err == selection.ErrNoSelection:
		m.status = "nenhuma consulta selecionada"
	case err != nil:
		*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
	default:
		m.form = form.New("Remarcar consulta", d, m.patients)
		m.form.SetWidth(m.termWidth)
		m.mode = modeForm
		*cmds = append(*cmds, m.form.Init())
	}
}

// notifySelection runs the reminder in a command so the simulated delivery
// delay never blocks the event loop.
func (m *Model) notifySelection(cmds *[]tea.Cmd) {
	a, ok := m.sel.Selected()
	if !ok {
		m.status = "nenhuma consulta selecionada"
		return
	}
	svc, ctx, id, title := m.svc, m.ctx, a.ID, a.Title
	m.status = "enviando lembrete..."
	*cmds = append(*cmds, func() tea.Msg {
		if err := svc.Notify(ctx, id); err != nil {
			return errMsg{err}
		}
		return notifySentMsg{title: title}
	})
}

// newDraft prefills a creation draft with the slot under the grid cursor.
func (m *Model) newDraft() draft.Draft {
	d := draft.New(m.now())
	d.Date = m.cursorDate.Format("2006-01-02")
	if m.view != agenda.ViewMonth {
		d.Start = fmt.Sprintf("%02d:00", m.cursorHour)
		d.End = fmt.Sprintf("%02d:00", m.cursorHour+1)
	}
	return d
}

// Run launches the Bubble Tea agenda UI.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// bodyWidth is the width View lays the grid out in before a WindowSizeMsg
// arrives.
func (m *Model) bodyWidth() int {
	if m.termWidth == 0 {
		return 100
	}
	return m.termWidth
}
