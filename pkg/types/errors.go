package types

import (
	"errors"
	"fmt"
)

// Predefined errors
var (
	// ErrPoolShutdown indicates the pool has been closed and accepts no new tasks
	ErrPoolShutdown = errors.New("pool is shut down")

	// ErrNilTask indicates a nil callable was submitted
	ErrNilTask = errors.New("task cannot be nil")

	// ErrWaitDeadlock indicates a wait call was made from one of the pool's
	// own workers, which could never complete
	ErrWaitDeadlock = errors.New("wait called from a worker of the same pool")
)

// TaskPanicError represents a panic recovered from a task callable. The
// recovered value and the stack captured at the recovery site are preserved
// so the failure can be diagnosed at the point the result is retrieved.
type TaskPanicError struct {
	// Cause is the value the task panicked with
	Cause any

	// Stack is the goroutine stack captured when the panic was recovered
	Stack []byte
}

// Error implements the error interface
func (e *TaskPanicError) Error() string {
	return fmt.Sprintf("task panicked: %v", e.Cause)
}

// Unwrap returns the cause when the task panicked with an error value
func (e *TaskPanicError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// PanicToError converts a value recovered from a panicking task into an
// error. A recovered error value passes through unchanged, so messages and
// errors.Is matching survive the round trip; any other value is wrapped in
// a *TaskPanicError together with the captured stack.
func PanicToError(cause any, stack []byte) error {
	if err, ok := cause.(error); ok {
		return err
	}
	return &TaskPanicError{Cause: cause, Stack: stack}
}
