// Package agenda computes the visible calendar range and the per-cell layout
// for the scheduling views.
package agenda

import "time"

// ViewMode selects the calendar granularity.
type ViewMode string

const (
	ViewDay   ViewMode = "Hoje"
	ViewWeek  ViewMode = "Semana"
	ViewMonth ViewMode = "Mês"
)

// ViewModes lists the selectable modes in toolbar order.
func ViewModes() []ViewMode {
	return []ViewMode{ViewDay, ViewWeek, ViewMonth}
}

// StartOfDay truncates a time to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// StartOfWeek returns the Monday of the week containing t. Sunday belongs to
// the week that started six days earlier.
func StartOfWeek(t time.Time) time.Time {
	distance := 1 - int(t.Weekday())
	if t.Weekday() == time.Sunday {
		distance = -6
	}
	return StartOfDay(t).AddDate(0, 0, distance)
}

// VisibleDays returns the ordered day sequence shown for a mode and anchor.
// Month mode enumerates days 1..daysInMonth; the month grid itself is built
// by MonthCells.
func VisibleDays(mode ViewMode, anchor time.Time) []time.Time {
	switch mode {
	case ViewWeek:
		monday := StartOfWeek(anchor)
		days := make([]time.Time, 0, 7)
		for i := 0; i < 7; i++ {
			days = append(days, monday.AddDate(0, 0, i))
		}
		return days
	case ViewMonth:
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.Local)
		total := DaysIn(anchor)
		days := make([]time.Time, 0, total)
		for i := 0; i < total; i++ {
			days = append(days, first.AddDate(0, 0, i))
		}
		return days
	default:
		return []time.Time{StartOfDay(anchor)}
	}
}

// Prev shifts the anchor one unit back for the mode: a day, a week, or a
// calendar month. Month stepping uses AddDate, so anchoring on day 31 may
// land on a shifted day-of-month when the target month is shorter.
func Prev(mode ViewMode, anchor time.Time) time.Time {
	return step(mode, anchor, -1)
}

// Next shifts the anchor one unit forward for the mode.
func Next(mode ViewMode, anchor time.Time) time.Time {
	return step(mode, anchor, 1)
}

func step(mode ViewMode, anchor time.Time, direction int) time.Time {
	switch mode {
	case ViewWeek:
		return anchor.AddDate(0, 0, 7*direction)
	case ViewMonth:
		return anchor.AddDate(0, direction, 0)
	default:
		return anchor.AddDate(0, 0, direction)
	}
}

// DaysIn returns the number of days in the month containing t.
func DaysIn(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 1, -1).Day()
}
