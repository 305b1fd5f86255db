package regexcache

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func countingCompile(calls *atomic.Int64) CompileFunc[string] {
	return func(pattern string) (string, error) {
		calls.Add(1)
		if pattern == "(" {
			return "", errors.New("missing closing )")
		}
		return "compiled:" + pattern, nil
	}
}

func TestCompileMemoizes(t *testing.T) {
	var calls atomic.Int64
	c := New(8, countingCompile(&calls))

	first, err := c.Compile(`\d+`)
	require.NoError(t, err)
	second, err := c.Compile(`\d+`)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, int64(1), calls.Load(), "same pattern text must compile once")
	require.Equal(t, 1, c.Len())

	stats := c.Stats()
	require.Equal(t, uint64(1), stats.Misses)
	require.NotZero(t, stats.Hits)
}

func TestCompileIdentity(t *testing.T) {
	type compiled struct{ src string }
	c := New(8, func(p string) (*compiled, error) {
		return &compiled{src: p}, nil
	})

	a, err := c.Compile("abc")
	require.NoError(t, err)
	b, err := c.Compile("abc")
	require.NoError(t, err)
	require.Same(t, a, b, "memoized compile must return the identical value")
}

func TestCompileErrorNotCached(t *testing.T) {
	var calls atomic.Int64
	c := New(8, countingCompile(&calls))

	_, err := c.Compile("(")
	require.Error(t, err)
	_, err = c.Compile("(")
	require.Error(t, err)

	require.Equal(t, int64(2), calls.Load(), "failed compiles are not cached")
	require.Equal(t, 0, c.Len())
}

func TestLRUEviction(t *testing.T) {
	var calls atomic.Int64
	c := New(3, countingCompile(&calls))

	for _, p := range []string{"a", "b", "c"} {
		_, err := c.Compile(p)
		require.NoError(t, err)
	}

	// Touch "a" so "b" becomes the least recently used.
	_, ok := c.Get("a")
	require.True(t, ok)

	_, err := c.Compile("d")
	require.NoError(t, err)

	require.Equal(t, 3, c.Len())
	_, ok = c.Get("b")
	require.False(t, ok, "least recently used entry must be evicted")
	_, ok = c.Get("a")
	require.True(t, ok)

	require.Equal(t, uint64(1), c.Stats().Evictions)
}

func TestCapacityFallback(t *testing.T) {
	c := New[string](0, func(p string) (string, error) { return p, nil })
	require.Equal(t, DefaultCapacity, c.Capacity())
}

func TestConcurrentCompileSamePattern(t *testing.T) {
	var calls atomic.Int64
	gate := make(chan struct{})
	c := New(8, func(pattern string) (string, error) {
		<-gate
		calls.Add(1)
		return "compiled:" + pattern, nil
	})

	const workers = 16
	results := make([]string, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.Compile("shared")
		}(i)
	}
	close(gate)
	wg.Wait()

	require.Equal(t, int64(1), calls.Load(), "concurrent compiles must be deduplicated")
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, "compiled:shared", results[i])
	}
}

func TestConcurrentCompileDistinctPatterns(t *testing.T) {
	var calls atomic.Int64
	c := New(64, countingCompile(&calls))

	const workers = 32
	results := make([]string, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := fmt.Sprintf("pattern-%d", i%8)
			results[i], errs[i] = c.Compile(p)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, fmt.Sprintf("compiled:pattern-%d", i%8), results[i])
	}

	require.Equal(t, 8, c.Len())
	require.LessOrEqual(t, calls.Load(), int64(8))
}
