package agenda

import (
	"time"

	"tableflip.dev/vetagenda/pkg/appointment"
)

const (
	// FirstHour and LastHour bound the clinic's time grid (inclusive).
	FirstHour = 8
	LastHour  = 18

	// MaxPerMonthCell is how many appointments a month cell lists before
	// collapsing the rest into a "+N mais" summary.
	MaxPerMonthCell = 3
)

// OverlapPolicy names how concurrent appointments in one slot are laid out.
type OverlapPolicy int

const (
	// OverlapStack draws colliding appointments at the same coordinates,
	// last one on top. It is the only policy implemented; a column-split
	// assignment can replace it without touching bucket computation.
	OverlapStack OverlapPolicy = iota
)

// Hours returns the fixed hour rows of the week/day grid, 8..18 inclusive.
func Hours() []int {
	hours := make([]int, 0, LastHour-FirstHour+1)
	for h := FirstHour; h <= LastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// Slot addresses one (day, hour) cell of the time grid.
type Slot struct {
	Day  string // ISO date, "2006-01-02"
	Hour int
}

// TimeGrid is the computed week/day layout.
type TimeGrid struct {
	Days    []time.Time
	Hours   []int
	Policy  OverlapPolicy
	buckets map[Slot][]*appointment.Appointment
}

// TimeBuckets assigns each appointment to its (day, hour) slot. Appointments
// whose start date is not among the visible days, or whose hour falls outside
// the requested rows, are dropped rather than clamped.
func TimeBuckets(appts []*appointment.Appointment, days []time.Time, hours []int) *TimeGrid {
	visible := make(map[string]bool, len(days))
	for _, d := range days {
		visible[d.Format(layoutISO)] = true
	}
	rows := make(map[int]bool, len(hours))
	for _, h := range hours {
		rows[h] = true
	}

	buckets := make(map[Slot][]*appointment.Appointment)
	for _, a := range appts {
		if a == nil {
			continue
		}
		day := a.Day()
		if !visible[day] || !rows[a.Hour()] {
			continue
		}
		key := Slot{Day: day, Hour: a.Hour()}
		buckets[key] = append(buckets[key], a)
	}

	return &TimeGrid{
		Days:    days,
		Hours:   hours,
		Policy:  OverlapStack,
		buckets: buckets,
	}
}

// At returns the appointments stacked in a cell, in store order.
func (g *TimeGrid) At(day time.Time, hour int) []*appointment.Appointment {
	return g.buckets[Slot{Day: day.Format(layoutISO), Hour: hour}]
}

// Len reports the total number of placed appointments.
func (g *TimeGrid) Len() int {
	n := 0
	for _, b := range g.buckets {
		n += len(b)
	}
	return n
}

const layoutISO = "2006-01-02"

// MonthCell is one rendered cell of the month grid. Leading pad cells have
// Day == 0 and carry no appointments.
type MonthCell struct {
	Day          int
	Date         time.Time
	Appointments []*appointment.Appointment
	Overflow     int
	Today        bool
}

// MonthCells lays out a month: exactly firstWeekday (Sunday=0) empty cells,
// then one cell per day 1..daysInMonth. Cells keep at most MaxPerMonthCell
// appointments in store order; the remainder is reported as Overflow.
func MonthCells(appts []*appointment.Appointment, year int, month time.Month, now time.Time) []MonthCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	total := DaysIn(first)

	byDay := make(map[int][]*appointment.Appointment)
	for _, a := range appts {
		if a == nil {
			continue
		}
		start := a.Start.Local()
		if start.Year() != year || start.Month() != month {
			continue
		}
		byDay[start.Day()] = append(byDay[start.Day()], a)
	}

	offset := int(first.Weekday())
	cells := make([]MonthCell, 0, offset+total)
	for i := 0; i < offset; i++ {
		cells = append(cells, MonthCell{})
	}
	for day := 1; day <= total; day++ {
		date := first.AddDate(0, 0, day-1)
		list := byDay[day]
		cell := MonthCell{
			Day:   day,
			Date:  date,
			Today: sameDay(date, now),
		}
		if len(list) > MaxPerMonthCell {
			cell.Appointments = list[:MaxPerMonthCell]
			cell.Overflow = len(list) - MaxPerMonthCell
		} else {
			cell.Appointments = list
		}
		cells = append(cells, cell)
	}
	return cells
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
