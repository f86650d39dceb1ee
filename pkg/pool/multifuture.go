package pool

import "time"

// MultiFuture aggregates the futures produced by one parallelized operation.
// It is built incrementally as blocks are submitted and is owned solely by
// the caller that initiated the operation; it is not goroutine safe.
type MultiFuture[T any] struct {
	futures []*Future[T]
}

// Push appends a future to the collection.
func (m *MultiFuture[T]) Push(f *Future[T]) {
	m.futures = append(m.futures, f)
}

// Size returns the number of collected futures.
func (m *MultiFuture[T]) Size() int {
	return len(m.futures)
}

// At returns the future at index i.
func (m *MultiFuture[T]) At(i int) *Future[T] {
	return m.futures[i]
}

// WaitAll blocks until every collected task has finished.
func (m *MultiFuture[T]) WaitAll() {
	for _, f := range m.futures {
		f.Wait()
	}
}

// WaitAllFor blocks until every collected task has finished or the duration
// elapses, reporting whether all finished in time.
func (m *MultiFuture[T]) WaitAllFor(d time.Duration) bool {
	if len(m.futures) == 0 {
		return true
	}

	clock := m.futures[0].clock
	start := clock.Now()
	for _, f := range m.futures {
		left := d - clock.Since(start)
		if left < 0 {
			left = 0
		}
		if !f.WaitFor(left) {
			return false
		}
	}
	return true
}

// GetAll blocks until every collected task has finished and returns their
// results in index order. If any tasks failed, the error of the lowest
// index is returned; results of the tasks that succeeded are still filled
// in.
func (m *MultiFuture[T]) GetAll() ([]T, error) {
	values := make([]T, len(m.futures))
	var firstErr error
	for i, f := range m.futures {
		v, err := f.Get()
		values[i] = v
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return values, firstErr
}
