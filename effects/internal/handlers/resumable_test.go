package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/on-the-ground/ballsinboxes/effects/internal/handlers"
	effectmodel "github.com/on-the-ground/ballsinboxes/effects/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lookup string

func (l lookup) PartitionKey() string { return string(l) }

type half int

func (h half) PartitionKey() string { return strconv.Itoa(int(h)) }

func awaitResult[R any](t *testing.T, ch <-chan handlers.ResumableResult[R]) handlers.ResumableResult[R] {
	t.Helper()
	select {
	case res, ok := <-ch:
		require.True(t, ok, "result channel closed without a result")
		return res
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for resumable result")
	}
	return handlers.ResumableResult[R]{}
}

func TestResumableHandler_ReturnsValueAndError(t *testing.T) {
	ctx := context.Background()
	errOdd := errors.New("odd")

	handler := handlers.NewPartitionableResumableHandler(
		ctx,
		effectmodel.NewEffectScopeConfig(1, 2),
		func(ctx context.Context, n half) (int, error) {
			if n%2 == 1 {
				return 0, errOdd
			}
			return int(n) / 2, nil
		},
		func() {},
	)
	defer handler.Close()

	res := awaitResult(t, handler.PerformEffect(ctx, 8))
	assert.NoError(t, res.Err)
	assert.Equal(t, 4, res.Value)

	res = awaitResult(t, handler.PerformEffect(ctx, 3))
	assert.ErrorIs(t, res.Err, errOdd)
}

func TestPartitionableResumableHandler_ConcurrentCallers(t *testing.T) {
	ctx := context.Background()

	handler := handlers.NewPartitionableResumableHandler(
		ctx,
		effectmodel.NewEffectScopeConfig(4, 3),
		func(ctx context.Context, key lookup) (string, error) {
			return "v:" + string(key), nil
		},
		func() {},
	)
	defer handler.Close()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := lookup(fmt.Sprintf("k%d", i%7))
			res := <-handler.PerformEffect(ctx, key)
			assert.NoError(t, res.Err)
			assert.Equal(t, "v:"+string(key), res.Value)
		}(i)
	}
	wg.Wait()
}

func TestResumableHandler_TeardownRunsOnce(t *testing.T) {
	calls := 0
	handler := handlers.NewPartitionableResumableHandler(
		context.Background(),
		effectmodel.NewEffectScopeConfig(1, 1),
		func(ctx context.Context, s lookup) (lookup, error) { return s, nil },
		func() { calls++ },
	)
	handler.Close()
	handler.Close()
	assert.Equal(t, 1, calls)
}

func TestResumableHandler_PerformAfterCloseYieldsNoResult(t *testing.T) {
	ctx := context.Background()
	handler := handlers.NewPartitionableResumableHandler(
		ctx,
		effectmodel.NewEffectScopeConfig(1, 2),
		func(ctx context.Context, s lookup) (lookup, error) { return s, nil },
		func() {},
	)
	handler.Close()

	ch := handler.PerformEffect(ctx, "late")
	require.NotNil(t, ch, "a closed scope must still hand back a channel")

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("result channel was never closed")
	}
}
