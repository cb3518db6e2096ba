package fixture

import (
	"context"
	"math/rand/v2"
	"time"
)

// Latency is a simulated network delay drawn uniformly from [Min, Max].
type Latency struct {
	Min time.Duration
	Max time.Duration
}

// DefaultLatency returns the 300-800ms delay of the mock API.
func DefaultLatency() Latency {
	return Latency{Min: 300 * time.Millisecond, Max: 800 * time.Millisecond}
}

// NoLatency disables the simulated delay.
func NoLatency() Latency {
	return Latency{}
}

// Duration draws one delay.
func (l Latency) Duration() time.Duration {
	if l.Max <= l.Min {
		return max(l.Min, 0)
	}
	return l.Min + rand.N(l.Max-l.Min+1)
}

// Wait sleeps for one drawn delay or until ctx is done.
func (l Latency) Wait(ctx context.Context) error {
	d := l.Duration()
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
