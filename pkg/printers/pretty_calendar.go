package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/vetagenda/pkg/agenda"
	"tableflip.dev/vetagenda/pkg/appointment"
)

// Calendar prints a compact month view with appointment counts, weeks
// starting on Sunday to match the month grid.
func (pp *PrettyPrint) Calendar(on time.Time, appts ...*appointment.Appointment) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.Local)
	pp.PrintMonth(then, appts...)
}

const width = len("11 12 13 14 15 16 17") // an example week

func (pp *PrettyPrint) PrintMonth(then time.Time, appts ...*appointment.Appointment) {
	days := agenda.DaysIn(then)

	count := make([]int, days)

	for _, a := range appts {
		if a.Start.SameMonth(then) {
			count[a.Start.Local().Day()-1]++
		}
	}

	pp.PrintMonthCount(then, count)
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	d := startDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", agenda.MonthName(then.Month()), then.Year())
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	tf.Printf("%s%s\n", strings.Repeat(" ", mid), m)

	days := agenda.DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			l2.Printf("%2d ", i+1)
		} else {
			l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func startDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.Local).Weekday()
}
