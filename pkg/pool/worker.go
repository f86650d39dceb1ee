package pool

import "runtime/debug"

// workerLoop is the dispatch routine run by each worker goroutine. A worker
// cycles between waiting for work and running one task until the generation
// it belongs to is terminated. ready is called once the worker is fully set
// up, so the constructor can block until the whole generation is parked.
func (p *Pool) workerLoop(id int, ready func()) {
	defer p.workerWG.Done()

	if p.workerIDs != nil {
		gid := goroutineID()
		p.mu.Lock()
		p.workerIDs[gid] = struct{}{}
		p.mu.Unlock()
		defer func() {
			p.mu.Lock()
			delete(p.workerIDs, gid)
			p.mu.Unlock()
		}()
	}

	defer p.retire(id)

	// The init hook must not keep the constructor waiting forever, so the
	// worker reports ready even when the hook panics.
	func() {
		defer ready()
		if p.cfg.InitHook != nil {
			p.cfg.InitHook(id)
		}
	}()

	for {
		task, ok := p.nextTask()
		if !ok {
			break
		}
		p.runTask(task)
	}

	if p.cfg.CleanupHook != nil {
		p.cfg.CleanupHook(id)
	}
}

// nextTask blocks until a task can be dequeued or the worker generation is
// terminated. It reports false on termination. The running counter is
// incremented under the same lock acquisition that pops the task, keeping
// queued+running conserved.
func (p *Pool) nextTask() (func(), bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for {
		if !p.running {
			return nil, false
		}
		if !p.paused.Load() {
			if task, ok := p.queue.pop(); ok {
				p.tasksRunning++
				return task, true
			}
		}
		// Spurious wakes, wakes while paused, and wakes that lost the race
		// for the task all land back here.
		p.taskAvailable.Wait()
	}
}

// runTask executes one dequeued task. The completion bookkeeping runs even
// if a panic escapes the task's own recovery boundary, so the counters stay
// truthful while the panic travels on to retire.
func (p *Pool) runTask(task func()) {
	defer func() {
		p.mu.Lock()
		p.tasksRunning--
		if p.waiters > 0 && p.waitSatisfiedLocked() {
			p.tasksDone.Broadcast()
		}
		p.mu.Unlock()
	}()

	task()
}

// retire finalizes a worker exit, orderly or catastrophic. On a
// catastrophic failure the worker is gone for good: the alive count drops
// below the configured count and the pool keeps running with the rest.
func (p *Pool) retire(id int) {
	cause := recover()

	p.mu.Lock()
	p.alive--
	if p.alive == 0 || p.waiters > 0 {
		p.tasksDone.Broadcast()
	}
	p.mu.Unlock()

	if cause != nil {
		p.cfg.PanicHandler(id, cause, debug.Stack())
	}
}
