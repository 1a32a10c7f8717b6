package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPartial_KeepsOrderAndErrors(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	results := MapPartial(context.Background(), 2, items, func(_ context.Context, n int) (int, error) {
		if n%2 == 0 {
			return 0, errors.New("even")
		}

		return n * 10, nil
	})

	require.Len(t, results, 5)

	for i, r := range results {
		if items[i]%2 == 0 {
			assert.Error(t, r.Err)
			continue
		}

		require.NoError(t, r.Err)
		assert.Equal(t, items[i]*10, r.Value)
	}
}

func TestMapPartial_RespectsLimit(t *testing.T) {
	var inFlight, peak atomic.Int32

	items := make([]int, 12)

	MapPartial(context.Background(), 3, items, func(context.Context, int) (struct{}, error) {
		n := inFlight.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}

		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)

		return struct{}{}, nil
	})

	assert.LessOrEqual(t, peak.Load(), int32(3))
	assert.Positive(t, peak.Load())
}

func TestMapPartial_EmptyAndZeroLimit(t *testing.T) {
	assert.Empty(t, MapPartial(context.Background(), 4, []int{}, func(context.Context, int) (int, error) {
		return 0, nil
	}))

	results := MapPartial(context.Background(), 0, []int{7}, func(_ context.Context, n int) (int, error) {
		return n, nil
	})

	require.Len(t, results, 1)
	assert.Equal(t, 7, results[0].Value)
}
