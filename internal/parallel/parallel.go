// Package parallel splits flat element ranges across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how a range is split.
type Config struct {
	Workers  int // Upper bound on goroutines; <= 1 runs inline.
	MinChunk int // Fewest elements a goroutine is given.
}

// DefaultConfig uses one worker per CPU and chunks large enough that
// goroutine startup is negligible next to elementwise arithmetic.
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.NumCPU(),
		MinChunk: 1 << 14,
	}
}

// Chunks returns the [lo, hi) bounds Range would hand to its callback.
func (c Config) Chunks(n int) [][2]int {
	if n <= 0 {
		return nil
	}
	size := n
	if c.Workers > 1 && n >= 2*c.MinChunk {
		size = max((n+c.Workers-1)/c.Workers, c.MinChunk)
	}
	chunks := make([][2]int, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		chunks = append(chunks, [2]int{lo, min(lo+size, n)})
	}
	return chunks
}

// Range calls f over disjoint [lo, hi) sub-ranges covering [0, n) and
// returns when every call has finished. Small ranges run on the calling
// goroutine.
func Range(n int, cfg Config, f func(lo, hi int)) {
	chunks := cfg.Chunks(n)
	if len(chunks) <= 1 {
		if n > 0 {
			f(0, n)
		}
		return
	}

	var wg sync.WaitGroup
	for _, c := range chunks[1:] {
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			f(lo, hi)
		}(c[0], c[1])
	}
	f(chunks[0][0], chunks[0][1])
	wg.Wait()
}
