// Package timeutil formats clinic-scale durations.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// FormatSpan renders the length of an appointment using hour and minute
// tokens, for example "1h", "30min" or "1h30min". Non-positive spans render
// as "0min".
func FormatSpan(d time.Duration) string {
	if d <= 0 {
		return "0min"
	}

	type unit struct {
		label string
		value time.Duration
	}
	units := []unit{
		{"h", time.Hour},
		{"min", time.Minute},
	}

	var parts []string
	remaining := d.Round(time.Minute)
	for _, u := range units {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", count, u.label))
	}
	if len(parts) == 0 {
		return "0min"
	}
	return strings.Join(parts, "")
}
