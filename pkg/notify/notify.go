// Package notify delivers best-effort reminders to a patient's tutor.
package notify

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/vetagenda/pkg/appointment"
)

// Notifier sends an appointment reminder. Delivery is fire-and-forget: the
// caller does not retry and no delivery state is recorded.
type Notifier interface {
	Send(ctx context.Context, a *appointment.Appointment) error
}

// Simulated stands in for the clinic's SMS gateway. It suspends for a fixed
// delay before resolving, matching the production gateway's latency.
type Simulated struct {
	Delay time.Duration
}

// NewSimulated returns the default simulated gateway.
func NewSimulated() *Simulated {
	return &Simulated{Delay: 800 * time.Millisecond}
}

func (s *Simulated) Send(ctx context.Context, a *appointment.Appointment) error {
	if a == nil {
		return fmt.Errorf("notify: no appointment")
	}
	delay := s.Delay
	if delay <= 0 {
		delay = time.Millisecond
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
