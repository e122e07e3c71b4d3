package agenda

import (
	"testing"
	"time"
)

func TestVisibleDaysWeekAlwaysMondayStart(t *testing.T) {
	anchor := time.Date(2024, time.February, 26, 10, 0, 0, 0, time.Local)
	for i := 0; i < 21; i++ {
		days := VisibleDays(ViewWeek, anchor.AddDate(0, 0, i))
		if len(days) != 7 {
			t.Fatalf("expected 7 visible days, got %d", len(days))
		}
		if days[0].Weekday() != time.Monday {
			t.Fatalf("week starting %v does not begin on Monday", days[0])
		}
		for j := 1; j < len(days); j++ {
			if !days[j].Equal(days[j-1].AddDate(0, 0, 1)) {
				t.Fatalf("days not strictly increasing by one: %v then %v", days[j-1], days[j])
			}
		}
	}
}

func TestVisibleDaysSundayBelongsToPreviousWeek(t *testing.T) {
	sunday := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)
	days := VisibleDays(ViewWeek, sunday)
	monday := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local)
	if !days[0].Equal(monday) {
		t.Fatalf("expected Monday March 4, got %v", days[0])
	}
	if !days[6].Equal(sunday) {
		t.Fatalf("expected the anchor Sunday as last day, got %v", days[6])
	}
}

func TestVisibleDaysDayMode(t *testing.T) {
	anchor := time.Date(2024, time.March, 10, 15, 30, 0, 0, time.Local)
	days := VisibleDays(ViewDay, anchor)
	if len(days) != 1 {
		t.Fatalf("expected single day, got %d", len(days))
	}
	if days[0].Hour() != 0 || days[0].Day() != 10 {
		t.Fatalf("expected midnight of anchor date, got %v", days[0])
	}
}

func TestPrevNextRoundTrip(t *testing.T) {
	anchor := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	for _, mode := range ViewModes() {
		if got := Prev(mode, Next(mode, anchor)); !got.Equal(anchor) {
			t.Fatalf("%s: next/prev did not round-trip: %v", mode, got)
		}
		if got := Next(mode, Prev(mode, anchor)); !got.Equal(anchor) {
			t.Fatalf("%s: prev/next did not round-trip: %v", mode, got)
		}
	}
}

func TestNextMonthClampsShortMonths(t *testing.T) {
	// Jan 31 + 1 month normalizes past February; the host rollover rule is
	// kept deliberately, so the round-trip exception is the documented one.
	anchor := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.Local)
	got := Next(ViewMonth, anchor)
	if got.Month() != time.March || got.Day() != 2 {
		t.Fatalf("expected normalization to March 2 in a leap year, got %v", got)
	}
}

func TestRangeLabels(t *testing.T) {
	anchor := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)

	if got := RangeLabel(ViewDay, anchor); got != "10 de março de 2024" {
		t.Fatalf("day label mismatch: %q", got)
	}
	if got := RangeLabel(ViewWeek, anchor); got != "4 de março - 10 de março, 2024" {
		t.Fatalf("week label mismatch: %q", got)
	}
	if got := RangeLabel(ViewMonth, anchor); got != "março 2024" {
		t.Fatalf("month label mismatch: %q", got)
	}
}

func TestRangeLabelWeekYearFromSunday(t *testing.T) {
	// Week spanning the year boundary takes the year from the Sunday.
	anchor := time.Date(2024, time.December, 30, 0, 0, 0, 0, time.Local)
	if got := RangeLabel(ViewWeek, anchor); got != "30 de dezembro - 5 de janeiro, 2025" {
		t.Fatalf("cross-year week label mismatch: %q", got)
	}
}

func TestDaysIn(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tc := range cases {
		d := time.Date(tc.year, tc.month, 15, 0, 0, 0, 0, time.Local)
		if got := DaysIn(d); got != tc.want {
			t.Fatalf("DaysIn(%v %d) = %d, want %d", tc.month, tc.year, got, tc.want)
		}
	}
}
