package timeutil

import (
	"testing"
	"time"
)

func TestFormatSpan(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0min"},
		{-time.Hour, "0min"},
		{30 * time.Minute, "30min"},
		{time.Hour, "1h"},
		{90 * time.Minute, "1h30min"},
		{2*time.Hour + 15*time.Minute, "2h15min"},
		{45 * time.Second, "1min"},
	}
	for _, tc := range cases {
		if got := FormatSpan(tc.in); got != tc.want {
			t.Errorf("FormatSpan(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
