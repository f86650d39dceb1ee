package pool

import (
	"log"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bshoshany/thread-pool-sub000/pkg/types"
)

// PanicHandler receives catastrophic worker failures: panics that escaped
// the task boundary and permanently retired a worker goroutine.
type PanicHandler func(workerID int, cause any, stack []byte)

// Config defines configuration for a Pool
type Config struct {
	// Workers is the number of worker goroutines. Zero means one worker per
	// logical CPU; a negative value is an offset from the CPU count (-2 on
	// an 8-CPU machine gives 6). The computed count is floored at 1, never
	// rejected.
	Workers int

	// EnablePriority switches task dispatch from FIFO to descending
	// priority order. Tasks of equal priority are dispatched in an
	// unspecified order.
	EnablePriority bool

	// Clock for time operations (optional, defaults to real clock)
	Clock types.Clock

	// PanicHandler is invoked when a worker is lost to a catastrophic
	// failure. Defaults to logging via the standard logger.
	PanicHandler PanicHandler

	// InitHook runs once on each worker goroutine before it starts
	// dequeuing tasks. A panicking hook retires that worker.
	InitHook func(workerID int)

	// CleanupHook runs once on each worker goroutine right before an
	// orderly exit. A panicking hook retires that worker.
	CleanupHook func(workerID int)

	// DetectWaitDeadlock makes Wait and WaitFor fail with
	// types.ErrWaitDeadlock when called from one of the pool's own
	// workers, instead of blocking forever.
	DetectWaitDeadlock bool
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Workers: 0,
		Clock:   types.NewRealClock(),
	}
}

// Pool executes queued tasks on a fixed set of long-lived worker
// goroutines. See the package documentation for the lifecycle and waiting
// semantics.
type Pool struct {
	cfg *Config

	// mu guards the queue, the counters, and the worker-generation state.
	// The queued/running counters are only ever read or written under mu,
	// so tasksRunning+queue.len() is consistent at every observation.
	mu            sync.Mutex
	taskAvailable *sync.Cond // workers park here for work or shutdown
	tasksDone     *sync.Cond // Wait callers park here
	queue         taskQueue
	tasksRunning  int
	waiters       int
	running       bool // current worker generation may dequeue
	closed        bool // set by Close, never cleared
	alive         int  // workers of the current generation not yet terminated
	workerCount   int  // configured size of the current generation

	// paused is advisory outside mu; the authoritative check happens under
	// mu in the dispatch and wait predicates.
	paused atomic.Bool

	// lifecycle serializes Reset and Close, so a close can never interleave
	// with a generation swap and resurrect workers on a closed pool. It is
	// always acquired before mu and never held by workers.
	lifecycle sync.Mutex

	workerWG  sync.WaitGroup
	closeOnce sync.Once

	// workerIDs maps worker goroutine ids, populated only when
	// DetectWaitDeadlock is enabled. Guarded by mu.
	workerIDs map[uint64]struct{}
}

// New creates a pool and spawns its workers. It does not return until every
// worker has run its init hook and entered its dispatch loop. A nil config
// uses DefaultConfig; out-of-range worker counts are floored to 1.
func New(cfg *Config) *Pool {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cc := *cfg
	if cc.Clock == nil {
		cc.Clock = types.NewRealClock()
	}
	if cc.PanicHandler == nil {
		cc.PanicHandler = logWorkerPanic
	}

	p := &Pool{cfg: &cc}
	if cc.EnablePriority {
		p.queue = newPriorityQueue()
	} else {
		p.queue = newFIFOQueue()
	}
	if cc.DetectWaitDeadlock {
		p.workerIDs = make(map[uint64]struct{})
	}
	p.taskAvailable = sync.NewCond(&p.mu)
	p.tasksDone = sync.NewCond(&p.mu)

	p.startWorkers(resolveWorkers(cc.Workers))
	return p
}

// logWorkerPanic is the default PanicHandler.
func logWorkerPanic(workerID int, cause any, stack []byte) {
	log.Printf("pool: worker %d terminated by panic: %v\n%s", workerID, cause, stack)
}

// resolveWorkers maps the configured worker count to the effective one.
func resolveWorkers(n int) int {
	switch {
	case n == 0:
		n = runtime.NumCPU()
	case n < 0:
		n = runtime.NumCPU() + n
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Detach enqueues a task without creating a future. The caller cannot
// observe completion except through Wait, and a failure of the task is
// discarded: there is no future to carry it.
func (p *Pool) Detach(task func()) error {
	return p.DetachPriority(task, 0)
}

// DetachPriority enqueues a task with the given priority and no future.
// Priority is ignored unless the pool was configured with EnablePriority.
func (p *Pool) DetachPriority(task func(), priority int) error {
	if task == nil {
		return types.ErrNilTask
	}
	return p.enqueue(func() {
		// No future to carry a failure, so swallow it.
		defer func() { _ = recover() }()
		task()
	}, priority)
}

// enqueue pushes a wrapped task and wakes one idle worker. Only one worker
// can pick the task up, so a single-target wake suffices here; shutdown,
// pause transitions, and completion use broadcast instead.
func (p *Pool) enqueue(task func(), priority int) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return types.ErrPoolShutdown
	}
	p.queue.push(task, priority)
	p.mu.Unlock()

	p.taskAvailable.Signal()
	return nil
}

// Wait blocks until the pool has no unfinished tasks. If the pool is
// paused, Wait returns as soon as no tasks are running, even though tasks
// may remain queued. It returns types.ErrWaitDeadlock when called from one
// of the pool's own workers and DetectWaitDeadlock is enabled.
func (p *Pool) Wait() error {
	_, err := p.waitWhile(nil)
	return err
}

// WaitFor is Wait with a deadline. It reports whether completion was
// observed before the duration elapsed; the queued and running tasks are
// unaffected either way.
func (p *Pool) WaitFor(d time.Duration) (bool, error) {
	var expired atomic.Bool
	timer := p.cfg.Clock.NewTimer(d)
	defer timer.Stop()

	cancel := make(chan struct{})
	defer close(cancel)
	go func() {
		select {
		case <-timer.C():
			expired.Store(true)
			p.mu.Lock()
			p.tasksDone.Broadcast()
			p.mu.Unlock()
		case <-cancel:
		}
	}()

	return p.waitWhile(&expired)
}

// waitWhile blocks on the completion condition variable until the wait
// predicate holds, or until expired flips (bounded waits pass a flag armed
// by a timer goroutine that broadcasts tasksDone on expiry).
func (p *Pool) waitWhile(expired *atomic.Bool) (bool, error) {
	if p.workerIDs != nil && p.isWorkerGoroutine() {
		return false, types.ErrWaitDeadlock
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.waiters++
	defer func() { p.waiters-- }()

	for !p.waitSatisfiedLocked() {
		if expired != nil && expired.Load() {
			return false, nil
		}
		p.tasksDone.Wait()
	}
	return true, nil
}

// waitSatisfiedLocked is the wait predicate. Callers hold p.mu.
func (p *Pool) waitSatisfiedLocked() bool {
	if !p.running {
		// Shutdown: released once every worker has terminated.
		return p.alive == 0
	}
	if p.paused.Load() {
		// Paused: queued tasks stay queued; only in-flight work counts.
		return p.tasksRunning == 0
	}
	return p.queue.len() == 0 && p.tasksRunning == 0
}

// Pause stops workers from dequeuing new tasks. Tasks already running are
// unaffected and run to completion.
func (p *Pool) Pause() {
	p.mu.Lock()
	p.paused.Store(true)
	// Waiters must re-evaluate: with nothing running, a paused pool
	// satisfies Wait immediately, and no task completion will come along
	// to signal them.
	if p.waiters > 0 {
		p.tasksDone.Broadcast()
	}
	p.mu.Unlock()
}

// Unpause resumes dequeuing. Every worker is woken, not just one: workers
// that went idle during the pause are all parked on the same condition
// variable and a single wake could be consumed by a worker that finds the
// queue already drained.
func (p *Pool) Unpause() {
	p.mu.Lock()
	p.paused.Store(false)
	p.taskAvailable.Broadcast()
	if p.waiters > 0 {
		p.tasksDone.Broadcast()
	}
	p.mu.Unlock()
}

// IsPaused reports whether the pool is currently paused.
func (p *Pool) IsPaused() bool {
	return p.paused.Load()
}

// QueuedTasks returns the number of tasks waiting to be dequeued.
func (p *Pool) QueuedTasks() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.len()
}

// RunningTasks returns the number of tasks currently executing.
func (p *Pool) RunningTasks() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasksRunning
}

// TotalTasks returns the number of unfinished tasks: queued plus running,
// read under one lock acquisition.
func (p *Pool) TotalTasks() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.len() + p.tasksRunning
}

// NumWorkers returns the configured worker count of the current generation.
func (p *Pool) NumWorkers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.workerCount
}

// NumAlive returns the number of workers that have not been lost to
// catastrophic failures. A value below NumWorkers means workers have died;
// the pool keeps operating with the remainder and never replaces them.
func (p *Pool) NumAlive() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.alive
}

// Reset waits for running tasks to finish, tears down the current worker
// generation, and rebuilds it with the given count. Queued tasks and the
// pause state survive the swap: a paused pool stays paused and its backlog
// resumes only after Unpause. Reset is safe to call concurrently with
// Close; whichever acquires the lifecycle first wins, and a Reset losing
// that race returns types.ErrPoolShutdown.
func (p *Pool) Reset(workers int) error {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return types.ErrPoolShutdown
	}
	p.mu.Unlock()

	wasPaused := p.IsPaused()
	p.Pause()
	if _, err := p.waitWhile(nil); err != nil {
		return err
	}
	p.stopWorkers()
	p.startWorkers(resolveWorkers(workers))
	if !wasPaused {
		p.Unpause()
	}
	return nil
}

// Close waits for completion per Wait semantics, then terminates and joins
// all workers. If the pool is paused, tasks still queued are permanently
// discarded without execution. Close is idempotent. It must not be called
// from a task running on this pool.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.lifecycle.Lock()
		defer p.lifecycle.Unlock()

		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()

		_, _ = p.waitWhile(nil)
		p.stopWorkers()
	})
}

// startWorkers spawns a worker generation and blocks until every worker is
// parked in its dispatch loop.
func (p *Pool) startWorkers(n int) {
	p.mu.Lock()
	p.running = true
	p.workerCount = n
	p.alive = n
	p.mu.Unlock()

	var ready sync.WaitGroup
	ready.Add(n)
	for i := 0; i < n; i++ {
		p.workerWG.Add(1)
		go p.workerLoop(i, ready.Done)
	}
	ready.Wait()
}

// stopWorkers terminates the current generation and joins it. Workers
// finish their in-flight task and exit without draining the queue.
func (p *Pool) stopWorkers() {
	p.mu.Lock()
	p.running = false
	p.taskAvailable.Broadcast()
	p.mu.Unlock()

	p.workerWG.Wait()
}

// isWorkerGoroutine reports whether the calling goroutine is one of this
// pool's workers.
func (p *Pool) isWorkerGoroutine() bool {
	id := goroutineID()
	p.mu.Lock()
	_, ok := p.workerIDs[id]
	p.mu.Unlock()
	return ok
}
