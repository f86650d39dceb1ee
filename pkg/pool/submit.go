package pool

import (
	"runtime/debug"

	"github.com/bshoshany/thread-pool-sub000/pkg/types"
)

// Submit enqueues a task and returns a future for its result. The future is
// settled with the task's return value, its returned error, or - if the
// task panics - an error derived from the recovered value, so a failure
// surfaces exactly once, at Get.
//
// Submit never blocks and never fails outright: submitting to a shut-down
// pool yields a future already settled with types.ErrPoolShutdown.
func Submit[T any](p *Pool, fn func() (T, error)) *Future[T] {
	return SubmitPriority(p, fn, 0)
}

// SubmitPriority is Submit with an explicit priority. Priority is ignored
// unless the pool was configured with EnablePriority.
func SubmitPriority[T any](p *Pool, fn func() (T, error), priority int) *Future[T] {
	f := newFuture[T](p.cfg.Clock)
	var zero T

	if fn == nil {
		f.settle(zero, types.ErrNilTask)
		return f
	}

	task := func() {
		defer func() {
			if r := recover(); r != nil {
				f.settle(zero, types.PanicToError(r, debug.Stack()))
			}
		}()
		v, err := fn()
		f.settle(v, err)
	}

	if err := p.enqueue(task, priority); err != nil {
		f.settle(zero, err)
	}
	return f
}

// SubmitVoid enqueues a task with no result value. The returned future is
// usable only for completion signaling and error retrieval.
func SubmitVoid(p *Pool, fn func() error) *Future[struct{}] {
	if fn == nil {
		f := newFuture[struct{}](p.cfg.Clock)
		f.settle(struct{}{}, types.ErrNilTask)
		return f
	}
	return Submit(p, func() (struct{}, error) {
		return struct{}{}, fn()
	})
}
