// Package parallel provides chunked parallel execution for the
// embarrassingly parallel drivers built on the AD engine: per-index
// evaluation of independent expressions, each body reading a disjoint
// input window and writing a disjoint output slot.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is
// too small to be worth the goroutine overhead.
//
// Bodies must be independent: no two invocations may touch the same
// mutable state. For returns once every invocation has completed.
func For(n int, f func(i int), cfg Config) {
	ForRange(0, n, f, cfg)
}

// ForRange executes f(i) for i in [lo, hi). Stencil drivers use this for
// interior index ranges, where the boundary elements stay untouched.
func ForRange(lo, hi int, f func(i int), cfg Config) {
	n := hi - lo
	if n <= 0 {
		return
	}
	if !cfg.Enabled || n < cfg.MinChunkSize {
		// Sequential fallback.
		for i := lo; i < hi; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := lo; start < hi; start += chunkSize {
		end := min(start+chunkSize, hi)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
