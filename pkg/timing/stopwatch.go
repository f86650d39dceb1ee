// Package timing provides a stopwatch for measuring elapsed time, typically
// around pool operations in benchmarks and examples.
package timing

import (
	"time"

	"github.com/bshoshany/thread-pool-sub000/pkg/types"
)

// Stopwatch accumulates elapsed time across Start/Stop cycles. It is not
// goroutine safe; use one stopwatch per measuring goroutine.
type Stopwatch struct {
	clock   types.Clock
	start   time.Time
	elapsed time.Duration
	running bool
}

// New creates a stopwatch backed by the real clock.
func New() *Stopwatch {
	return NewWithClock(types.NewRealClock())
}

// NewWithClock creates a stopwatch backed by the given clock.
func NewWithClock(clock types.Clock) *Stopwatch {
	if clock == nil {
		clock = types.NewRealClock()
	}
	return &Stopwatch{clock: clock}
}

// Start begins (or resumes) measuring. Starting a running stopwatch is a
// no-op.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.start = s.clock.Now()
	s.running = true
}

// Stop pauses measuring, adding the time since Start to the accumulated
// total. Stopping a stopped stopwatch is a no-op.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.elapsed += s.clock.Since(s.start)
	s.running = false
}

// Reset clears the accumulated total and stops the stopwatch.
func (s *Stopwatch) Reset() {
	s.elapsed = 0
	s.running = false
}

// Elapsed returns the accumulated total, including the currently running
// measurement if any.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.elapsed + s.clock.Since(s.start)
	}
	return s.elapsed
}

// ElapsedMilliseconds returns Elapsed truncated to milliseconds.
func (s *Stopwatch) ElapsedMilliseconds() int64 {
	return s.Elapsed().Milliseconds()
}
