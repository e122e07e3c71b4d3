package agenda

import (
	"fmt"
	"time"
)

// Go carries no locale tables, so the pt-BR names the clinic uses are fixed
// here.
var monthNames = [...]string{
	time.January:   "janeiro",
	time.February:  "fevereiro",
	time.March:     "março",
	time.April:     "abril",
	time.May:       "maio",
	time.June:      "junho",
	time.July:      "julho",
	time.August:    "agosto",
	time.September: "setembro",
	time.October:   "outubro",
	time.November:  "novembro",
	time.December:  "dezembro",
}

var weekdayNames = [...]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

// MonthName returns the lowercase pt-BR month name.
func MonthName(m time.Month) string {
	return monthNames[m]
}

// WeekdayName returns the lowercase pt-BR weekday name.
func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}

// LongDate renders "2 de janeiro de 2006".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), MonthName(t.Month()), t.Year())
}

// DayMonth renders "2 de janeiro" (no year), used inside the week label.
func DayMonth(t time.Time) string {
	return fmt.Sprintf("%d de %s", t.Day(), MonthName(t.Month()))
}

// RangeLabel formats the navigable header label for a mode and anchor.
// Week mode spans Monday through Sunday with the year taken from the Sunday.
func RangeLabel(mode ViewMode, anchor time.Time) string {
	switch mode {
	case ViewWeek:
		monday := StartOfWeek(anchor)
		sunday := monday.AddDate(0, 0, 6)
		return fmt.Sprintf("%s - %s, %d", DayMonth(monday), DayMonth(sunday), sunday.Year())
	case ViewMonth:
		return fmt.Sprintf("%s %d", MonthName(anchor.Month()), anchor.Year())
	default:
		return LongDate(anchor)
	}
}
