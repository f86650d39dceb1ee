package pool

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHooksRunOncePerWorker(t *testing.T) {
	const n = 3
	var mu sync.Mutex
	initIDs := map[int]int{}
	cleanupIDs := map[int]int{}

	p := New(&Config{
		Workers: n,
		InitHook: func(id int) {
			mu.Lock()
			initIDs[id]++
			mu.Unlock()
		},
		CleanupHook: func(id int) {
			mu.Lock()
			cleanupIDs[id]++
			mu.Unlock()
		},
	})

	// New does not return before every init hook has run.
	mu.Lock()
	assert.Len(t, initIDs, n)
	for id, count := range initIDs {
		assert.Equal(t, 1, count, "init hook for worker %d", id)
	}
	assert.Empty(t, cleanupIDs)
	mu.Unlock()

	p.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, cleanupIDs, n)
	for id, count := range cleanupIDs {
		assert.Equal(t, 1, count, "cleanup hook for worker %d", id)
	}
}

func TestPanickingInitHookRetiresWorker(t *testing.T) {
	var panics int32
	var lostWorker atomic.Int32
	lostWorker.Store(-1)

	p := New(&Config{
		Workers: 3,
		InitHook: func(id int) {
			if id == 0 {
				panic("init refused")
			}
		},
		PanicHandler: func(workerID int, cause any, stack []byte) {
			atomic.AddInt32(&panics, 1)
			lostWorker.Store(int32(workerID))
			assert.Equal(t, "init refused", cause)
			assert.NotEmpty(t, stack)
		},
	})
	defer p.Close()

	require.Eventually(t, func() bool {
		return p.NumAlive() == 2
	}, 2*time.Second, 5*time.Millisecond)

	assert.Equal(t, 3, p.NumWorkers(), "configured count is unchanged by worker loss")
	assert.Equal(t, int32(1), atomic.LoadInt32(&panics))
	assert.Equal(t, int32(0), lostWorker.Load())

	// The survivors keep processing.
	var executed int32
	for i := 0; i < 10; i++ {
		require.NoError(t, p.Detach(func() {
			atomic.AddInt32(&executed, 1)
		}))
	}
	require.NoError(t, p.Wait())
	assert.Equal(t, int32(10), atomic.LoadInt32(&executed))
}

func TestSubmittedPanicIsNotCatastrophic(t *testing.T) {
	var panics int32
	p := New(&Config{
		Workers:      2,
		PanicHandler: func(int, any, []byte) { atomic.AddInt32(&panics, 1) },
	})
	defer p.Close()

	f := SubmitVoid(p, func() error {
		panic("task blew up")
	})
	_, err := f.Get()
	require.Error(t, err)

	assert.Equal(t, 2, p.NumAlive(), "a panicking task is caught at the future bridge")
	assert.Equal(t, int32(0), atomic.LoadInt32(&panics), "the catastrophic handler stays silent")
}
