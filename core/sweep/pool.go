// Package sweep - Parallel cell evaluation
// Sweep cells are mutually independent simulations, so they are fanned out
// over a bounded worker pool and write-indexed into preallocated slots.
// Result order is positional and therefore deterministic regardless of
// scheduling.
package sweep

import (
	"runtime"
	"sync"
)

// Workers is the pool size used by sweep evaluation. Overridable for tests
// and embedders; values below 1 fall back to a single worker.
var Workers = runtime.NumCPU()

// forEach runs fn for every index in [0,n) across the worker pool and
// blocks until all complete.
func forEach(n int, fn func(i int)) {
	workers := Workers
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if n <= 0 {
		return
	}

	indexes := make(chan int, n)
	for i := 0; i < n; i++ {
		indexes <- i
	}
	close(indexes)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				fn(i)
			}
		}()
	}
	wg.Wait()
}
