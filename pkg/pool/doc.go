/*
Package pool provides a fixed-size worker pool with futures, loop
parallelization, pause/resume control, and lifecycle-safe shutdown and
resize.

# Overview

A Pool owns a set of long-lived worker goroutines and a shared task queue.
Tasks are zero-argument closures; they are dequeued exactly once, executed
exactly once, and discarded. Submission comes in two flavors:

  - Submit / SubmitPriority / SubmitVoid return a Future that carries the
    task's result or failure to the caller.
  - Detach / DetachPriority enqueue fire-and-forget work with lower
    overhead; failures of detached tasks are discarded.

SubmitBlocks and DetachBlocks parallelize a loop over an index range by
partitioning it into contiguous blocks (see Partition) and submitting one
task per block.

# Waiting and lifecycle

Wait blocks until no unfinished tasks remain. Pause stops workers from
dequeuing new tasks while letting in-flight ones finish; on a paused pool,
Wait returns once nothing is running even if tasks remain queued. Reset
swaps the worker generation for a new one of a different size, preserving
the queued backlog and the pause state. Close waits per Wait semantics and
then joins all workers; closing a paused pool discards its remaining queued
tasks without executing them.

Completion order is unrelated to submission order: with more than one
worker, task N+1 may well finish before task N.

# Failure model

An error returned by a submitted task, or a panic escaping it, is carried
by its future and surfaces exactly once, at Get. Detached task failures are
swallowed. A panic that escapes the task boundary itself (for example from
an init or cleanup hook) is catastrophic: the affected worker logs through
the configured PanicHandler and terminates permanently, observable as
NumAlive dropping below NumWorkers. Calling Wait from inside a task running
on the same pool deadlocks; the opt-in DetectWaitDeadlock check turns that
into types.ErrWaitDeadlock instead.
*/
package pool
