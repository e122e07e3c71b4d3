package appointment

import (
	"encoding/json"
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp wraps time.Time with RFC3339 JSON encoding and the day-oriented
// helpers the grid relies on.
type Timestamp struct {
	time.Time
}

// At builds a local timestamp for a calendar day at hour:minute.
func At(day time.Time, hour, minute int) Timestamp {
	return Timestamp{Time: time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local)}
}

func (t Timestamp) SameDay(then time.Time) bool {
	if t.Local().Day() == then.Day() &&
		t.Local().Month() == then.Month() &&
		t.Local().Year() == then.Year() {
		return true
	}
	return false
}

func (t Timestamp) SameMonth(then time.Time) bool {
	if t.Local().Month() == then.Month() &&
		t.Local().Year() == then.Year() {
		return true
	}
	return false
}

// DayKey renders the local ISO date ("2006-01-02") used to bucket the grid.
func (t Timestamp) DayKey() string {
	return t.Local().Format(layoutISO)
}

// Clock renders the local wall time as "15:04".
func (t Timestamp) Clock() string {
	return t.Local().Format("15:04")
}

func (t *Timestamp) MarshalJSON() ([]byte, error) {
	if t == nil || t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.Local().Format(time.RFC3339)
}
