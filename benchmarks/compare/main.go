// Package main compares task throughput of this pool against alitto/pond
// and devchat-ai/gopool on the same CPU-bound workload.
package main

import (
	"fmt"
	"log"
	"runtime"
	"sync/atomic"

	"github.com/alitto/pond"
	"github.com/devchat-ai/gopool"

	threadpool "github.com/bshoshany/thread-pool-sub000/pkg/pool"
	"github.com/bshoshany/thread-pool-sub000/pkg/timing"
)

const (
	numTasks = 100_000
	spinIter = 1_000
)

// spin burns a fixed amount of CPU so the comparison measures dispatch
// overhead on top of identical work.
func spin() uint64 {
	var acc uint64
	for i := uint64(0); i < spinIter; i++ {
		acc = acc*31 + i
	}
	return acc
}

func main() {
	workers := runtime.NumCPU()
	fmt.Printf("=== Pool Comparison: %d tasks, %d workers ===\n\n", numTasks, workers)

	runBench("thread-pool", func() int64 {
		var done int64
		p := threadpool.New(&threadpool.Config{Workers: workers})
		for i := 0; i < numTasks; i++ {
			if err := p.Detach(func() {
				spin()
				atomic.AddInt64(&done, 1)
			}); err != nil {
				log.Fatalf("Failed to detach task: %v", err)
			}
		}
		p.Close()
		return atomic.LoadInt64(&done)
	})

	runBench("alitto/pond", func() int64 {
		var done int64
		p := pond.New(workers, numTasks)
		for i := 0; i < numTasks; i++ {
			p.Submit(func() {
				spin()
				atomic.AddInt64(&done, 1)
			})
		}
		p.StopAndWait()
		return atomic.LoadInt64(&done)
	})

	runBench("devchat-ai/gopool", func() int64 {
		var done int64
		p := gopool.NewGoPool(workers)
		for i := 0; i < numTasks; i++ {
			p.AddTask(func() (interface{}, error) {
				spin()
				atomic.AddInt64(&done, 1)
				return nil, nil
			})
		}
		p.Wait()
		p.Release()
		return atomic.LoadInt64(&done)
	})
}

func runBench(name string, fn func() int64) {
	sw := timing.New()
	sw.Start()
	done := fn()
	sw.Stop()

	if done != numTasks {
		log.Fatalf("%s: completed %d of %d tasks", name, done, numTasks)
	}
	fmt.Printf("%-18s %6d ms (%.0f tasks/s)\n",
		name, sw.ElapsedMilliseconds(), float64(numTasks)/sw.Elapsed().Seconds())
}
