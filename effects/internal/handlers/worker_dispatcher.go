package handlers

import (
	"context"
	"sync"

	effectmodel "github.com/on-the-ground/ballsinboxes/effects/internal/model"
)

// --- common interface ---

// WorkerDispatcher routes messages to the worker channel that owns them.
// Close stops accepting messages and blocks until every buffered message
// has been handled, unless the dispatcher context is cancelled first.
type WorkerDispatcher[T any] interface {
	GetChannelOf(msg T) chan T
	Close()
}

func runWorker[T any](
	ctx context.Context,
	ch chan T,
	handleFn func(context.Context, T),
	ready, done *sync.WaitGroup,
) {
	defer done.Done()
	ready.Done()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			handleFn(ctx, msg)
		case <-ctx.Done():
			return
		}
	}
}

// --- single queue ---

type singleQueue[T any] struct {
	effectCh chan T
	done     *sync.WaitGroup
}

func (q singleQueue[T]) GetChannelOf(_ T) chan T {
	return q.effectCh
}

func (q singleQueue[T]) Close() {
	close(q.effectCh)
	q.done.Wait()
}

func NewSingleQueue[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	effCh := make(chan T, bufferSize)
	ready, done := &sync.WaitGroup{}, &sync.WaitGroup{}
	ready.Add(1)
	done.Add(1)
	go runWorker(ctx, effCh, handleFn, ready, done)
	ready.Wait()

	return singleQueue[T]{effectCh: effCh, done: done}
}

// --- partitioned queue ---

type partitionedQueue[T effectmodel.Partitionable] struct {
	effectChs []chan T
	done      *sync.WaitGroup
}

func (pq partitionedQueue[T]) GetChannelOf(msg T) chan T {
	idx := getIndexByHash(msg, len(pq.effectChs))
	return pq.effectChs[idx]
}

func (pq partitionedQueue[T]) Close() {
	for _, ch := range pq.effectChs {
		close(ch)
	}
	pq.done.Wait()
}

func NewPartitionedQueue[T effectmodel.Partitionable](
	ctx context.Context,
	numWorkers, bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	channels := make([]chan T, numWorkers)
	ready, done := &sync.WaitGroup{}, &sync.WaitGroup{}
	for i := 0; i < numWorkers; i++ {
		ready.Add(1)
		done.Add(1)
		ch := make(chan T, bufferSize)
		go runWorker(ctx, ch, handleFn, ready, done)
		channels[i] = ch
	}
	ready.Wait()
	return partitionedQueue[T]{effectChs: channels, done: done}
}
