package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeCoversEveryIndex(t *testing.T) {
	for _, n := range []int{0, 1, 7, 100, 1000, 4097} {
		cfg := Config{Workers: 4, MinChunk: 16}
		seen := make([]int32, n)

		Range(n, cfg, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				atomic.AddInt32(&seen[i], 1)
			}
		})

		for i, v := range seen {
			if v != 1 {
				t.Fatalf("n=%d: index %d visited %d times", n, i, v)
			}
		}
	}
}

func TestRangeSequentialFallback(t *testing.T) {
	var calls int32
	Range(100, Config{Workers: 1, MinChunk: 1}, func(lo, hi int) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, 0, lo)
		assert.Equal(t, 100, hi)
	})
	assert.Equal(t, int32(1), calls)

	// Too small to be worth splitting.
	calls = 0
	Range(10, Config{Workers: 8, MinChunk: 64}, func(_, _ int) {
		atomic.AddInt32(&calls, 1)
	})
	assert.Equal(t, int32(1), calls)
}

func TestChunks(t *testing.T) {
	cfg := Config{Workers: 4, MinChunk: 10}

	assert.Nil(t, cfg.Chunks(0))
	assert.Equal(t, [][2]int{{0, 15}}, cfg.Chunks(15))
	assert.Equal(t, [][2]int{{0, 25}, {25, 50}, {50, 75}, {75, 100}}, cfg.Chunks(100))
	// Chunks never shrink below MinChunk.
	assert.Equal(t, [][2]int{{0, 10}, {10, 20}, {20, 25}}, cfg.Chunks(25))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.GreaterOrEqual(t, cfg.Workers, 1)
	assert.Positive(t, cfg.MinChunk)
}
