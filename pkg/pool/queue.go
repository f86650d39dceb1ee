package pool

import (
	"container/heap"

	"github.com/eapache/queue"
)

// taskQueue is the storage behind the pool's pending tasks. Implementations
// are not goroutine safe: the pool mutates the queue only while holding its
// lock, and pop is only called after checking len under that same lock.
type taskQueue interface {
	push(task func(), priority int)
	pop() (func(), bool)
	len() int
}

// fifoQueue dispatches tasks in submission order, backed by a ring buffer.
type fifoQueue struct {
	q *queue.Queue
}

func newFIFOQueue() *fifoQueue {
	return &fifoQueue{q: queue.New()}
}

func (f *fifoQueue) push(task func(), _ int) {
	f.q.Add(task)
}

func (f *fifoQueue) pop() (func(), bool) {
	if f.q.Length() == 0 {
		return nil, false
	}
	return f.q.Remove().(func()), true
}

func (f *fifoQueue) len() int {
	return f.q.Length()
}

// priorityTaskQueue dispatches tasks in descending priority order. Tasks of
// equal priority come out in an unspecified order: the heap does not
// preserve submission order among ties.
type priorityTaskQueue struct {
	h taskHeap
}

func newPriorityQueue() *priorityTaskQueue {
	return &priorityTaskQueue{h: make(taskHeap, 0)}
}

func (p *priorityTaskQueue) push(task func(), priority int) {
	heap.Push(&p.h, prioritized{task: task, priority: priority})
}

func (p *priorityTaskQueue) pop() (func(), bool) {
	if len(p.h) == 0 {
		return nil, false
	}
	return heap.Pop(&p.h).(prioritized).task, true
}

func (p *priorityTaskQueue) len() int {
	return len(p.h)
}

// prioritized pairs a queued task with its priority.
type prioritized struct {
	task     func()
	priority int
}

// taskHeap is a binary max-heap over task priority (internal use)
type taskHeap []prioritized

// Len implements heap.Interface
func (h taskHeap) Len() int { return len(h) }

// Less implements heap.Interface - higher priority first
func (h taskHeap) Less(i, j int) bool {
	return h[i].priority > h[j].priority
}

// Swap implements heap.Interface
func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push implements heap.Interface
func (h *taskHeap) Push(x interface{}) {
	*h = append(*h, x.(prioritized))
}

// Pop implements heap.Interface
func (h *taskHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = prioritized{}
	*h = old[0 : n-1]
	return item
}
