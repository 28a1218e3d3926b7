// Package latency simulates the response time of a remote model.
package latency

import (
	"context"
	"math/rand/v2"
	"time"
)

const (
	DefaultBase   = 1500 * time.Millisecond
	DefaultJitter = 1000 * time.Millisecond
)

// Simulator waits Base plus a random duration in [0, Jitter).
type Simulator struct {
	Base   time.Duration
	Jitter time.Duration
}

// Default mirrors the response time of a hosted model.
var Default = Simulator{Base: DefaultBase, Jitter: DefaultJitter}

// None never waits.
var None = Simulator{}

// Delay picks the duration of the next wait.
func (s Simulator) Delay() time.Duration {
	d := s.Base
	if s.Jitter > 0 {
		d += rand.N(s.Jitter)
	}
	return max(d, 0)
}

// Wait blocks for Delay or until ctx is done, returning ctx.Err() in the
// latter case.
func (s Simulator) Wait(ctx context.Context) error {
	d := s.Delay()
	if d == 0 {
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
