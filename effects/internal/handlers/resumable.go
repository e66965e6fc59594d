package handlers

import (
	"context"

	effectmodel "github.com/on-the-ground/ballsinboxes/effects/internal/model"
)

func NewPartitionableResumableHandler[P effectmodel.Partitionable, R any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	handleFn func(context.Context, P) (R, error),
	teardown func(),
) ResumableHandler[P, R] {
	ctx, cancelFn := context.WithCancel(ctx)
	return ResumableHandler[P, R]{
		effectScope: newEffectScope(
			NewPartitionedQueue(
				ctx,
				config.NumWorkers,
				config.BufferSize,
				resumeWith(handleFn),
			),
			func() {
				teardown()
				cancelFn()
			},
		),
	}
}

func resumeWith[P any, R any](
	handleFn func(context.Context, P) (R, error),
) func(context.Context, ResumableEffectMessage[P, R]) {
	return func(ctx context.Context, msg ResumableEffectMessage[P, R]) {
		select {
		case <-ctx.Done():
		case msg.ResumeCh <- ResumableResultFrom(handleFn(ctx, msg.Payload)):
		}
		close(msg.ResumeCh)
	}
}

type ResumableHandler[P any, R any] struct {
	*effectScope[ResumableEffectMessage[P, R]]
}

// PerformEffect hands the payload to the owning worker.
// The returned channel yields at most one result and is closed afterwards;
// it is closed without a result when the scope was already closed.
func (rh ResumableHandler[P, R]) PerformEffect(ctx context.Context, payload P) (ch <-chan ResumableResult[R]) {
	// buffered to prevent blocking if handler sends without waiting
	resumeCh := make(chan ResumableResult[R], 1)
	ch = resumeCh

	defer func() {
		if r := recover(); r != nil {
			logClosedScope(rh.EffectId, payload, r)
			close(resumeCh)
		}
	}()

	msg := ResumableEffectMessage[P, R]{
		Payload:  payload,
		ResumeCh: resumeCh,
	}
	select {
	case <-ctx.Done():
	case rh.dispatcher.GetChannelOf(msg) <- msg:
	}

	return ch
}

// ResumableResult represents the result of handled effects.
type ResumableResult[T any] struct {
	Value T
	Err   error
}

func ResumableResultFrom[R any](res R, err error) ResumableResult[R] {
	return ResumableResult[R]{Value: res, Err: err}
}

var _ effectmodel.Partitionable = ResumableEffectMessage[any, any]{}

type ResumableEffectMessage[P any, R any] struct {
	Payload  P
	ResumeCh chan ResumableResult[R]
}

func (rem ResumableEffectMessage[P, R]) PartitionKey() string {
	if p, ok := any(rem.Payload).(effectmodel.Partitionable); ok {
		return p.PartitionKey()
	}
	return ""
}
