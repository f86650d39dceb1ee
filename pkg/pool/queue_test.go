package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFOQueue(t *testing.T) {
	q := newFIFOQueue()
	assert.Equal(t, 0, q.len())

	_, ok := q.pop()
	assert.False(t, ok, "popping an empty queue must fail")

	var order []int
	for i := 0; i < 5; i++ {
		v := i
		q.push(func() { order = append(order, v) }, 0)
	}
	assert.Equal(t, 5, q.len())

	for q.len() > 0 {
		task, ok := q.pop()
		require.True(t, ok)
		task()
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestPriorityQueueOrdering(t *testing.T) {
	q := newPriorityQueue()

	var order []int
	for _, priority := range []int{1, 9, 3, 7, 5} {
		pr := priority
		q.push(func() { order = append(order, pr) }, pr)
	}
	assert.Equal(t, 5, q.len())

	for q.len() > 0 {
		task, ok := q.pop()
		require.True(t, ok)
		task()
	}
	assert.Equal(t, []int{9, 7, 5, 3, 1}, order, "tasks must come out in descending priority")

	_, ok := q.pop()
	assert.False(t, ok)
}
