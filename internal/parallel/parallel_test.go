package parallel

import (
	"sync/atomic"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestForRange(t *testing.T) {
	cfg := DefaultConfig()

	lo, hi := 1, 999
	seen := make([]bool, 1000)

	ForRange(lo, hi, func(i int) {
		seen[i] = true
	}, cfg)

	if seen[0] || seen[999] {
		t.Error("ForRange touched indices outside [lo, hi)")
	}
	for i := lo; i < hi; i++ {
		if !seen[i] {
			t.Errorf("Missing invocation at index %d", i)
		}
	}
}

func TestForRange_Empty(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	ForRange(5, 5, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)
	ForRange(7, 3, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 0 {
		t.Errorf("Expected 0 invocations on empty ranges, got %d", counter)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 100 {
		t.Errorf("Expected 100, got %d", counter)
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Small work units fall back to sequential.
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinChunkSize - 1

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfgSeq)
		}
	})
}
