package pool

import (
	"sync"
	"time"

	"github.com/bshoshany/thread-pool-sub000/pkg/types"
)

// Future is the caller-side handle of a submitted task. The worker that
// executes the task settles the future exactly once with either the task's
// result or its error; settling again is a no-op rather than a fault.
type Future[T any] struct {
	clock types.Clock
	done  chan struct{}
	once  sync.Once

	// value and err are written before done is closed and never after
	value T
	err   error
}

func newFuture[T any](clock types.Clock) *Future[T] {
	return &Future[T]{
		clock: clock,
		done:  make(chan struct{}),
	}
}

// settle records the outcome and releases all waiters. Idempotent.
func (f *Future[T]) settle(value T, err error) {
	f.once.Do(func() {
		f.value = value
		f.err = err
		close(f.done)
	})
}

// Wait blocks until the task has finished.
func (f *Future[T]) Wait() {
	<-f.done
}

// WaitFor blocks until the task has finished or the duration elapses. It
// reports whether the task finished in time; the task keeps running either
// way.
func (f *Future[T]) WaitFor(d time.Duration) bool {
	select {
	case <-f.done:
		return true
	default:
	}

	timer := f.clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-f.done:
		return true
	case <-timer.C():
		return false
	}
}

// Done reports whether the task has finished, without blocking.
func (f *Future[T]) Done() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Get blocks until the task has finished and returns its result. A task
// that returned an error, or panicked, surfaces that failure here and only
// here.
func (f *Future[T]) Get() (T, error) {
	<-f.done
	return f.value, f.err
}
