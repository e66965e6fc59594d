package handlers

import (
	"context"
)

// NewFireAndForgetHandler starts a single worker that handles payloads in the
// order they were sent. Closing the handler drains what is still buffered.
func NewFireAndForgetHandler[P any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, P),
	teardown func(),
) FireAndForgetHandler[P] {
	ctx, cancelFn := context.WithCancel(ctx)
	return FireAndForgetHandler[P]{
		effectScope: newEffectScope(
			NewSingleQueue(
				ctx,
				bufferSize,
				func(ctx context.Context, msg FireAndForgetEffectMessage[P]) {
					handleFn(ctx, msg.Payload)
				},
			),
			func() {
				teardown()
				cancelFn()
			},
		),
	}
}

type FireAndForgetHandler[P any] struct {
	*effectScope[FireAndForgetEffectMessage[P]]
}

func (ffh FireAndForgetHandler[P]) FireAndForgetEffect(ctx context.Context, payload P) {
	defer func() {
		if r := recover(); r != nil {
			logClosedScope(ffh.EffectId, payload, r)
		}
	}()

	msg := FireAndForgetEffectMessage[P]{Payload: payload}
	select {
	case <-ctx.Done():
	case ffh.dispatcher.GetChannelOf(msg) <- msg:
	}
}

type FireAndForgetEffectMessage[P any] struct {
	Payload P
}
