// Package parallel provides a bounded fork-join helper for independent
// per-index work, used to fan keyframe warps across cores.
package parallel

import (
	"runtime"
	"sync"
)

// For runs fn(i) for i in [0,n) on at most workers goroutines and
// waits for all of them. If workers is 0 or negative, GOMAXPROCS is
// used. All indexes run even after a failure; the first error in index
// order is returned so callers can abort atomically on any failure.
func For(workers, n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	errs := make([]error, n)
	var next int
	var mu sync.Mutex
	var wg sync.WaitGroup

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				mu.Lock()
				i := next
				next++
				mu.Unlock()
				if i >= n {
					return
				}
				errs[i] = fn(i)
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
