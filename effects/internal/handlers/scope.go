package handlers

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IMPORTANT:
// This effect handler is **intentionally NOT thread-safe** to close.
//
// Each handler instance is owned by the execution scope that created it.
// Performing effects from several goroutines is fine; closing the scope
// while another goroutine still performs effects is not.
type effectScope[T any] struct {
	EffectId   string
	dispatcher WorkerDispatcher[T]
	closeFn    func()
	closed     bool
}

func (es *effectScope[T]) Close() {
	if !es.closed {
		es.dispatcher.Close()
		es.closeFn()
		es.closed = true
		zap.L().Debug("effect scope closed", zap.String("effectId", es.EffectId))
	}
}

func newEffectScope[T any](
	dispatcher WorkerDispatcher[T],
	teardown func(),
) *effectScope[T] {
	return &effectScope[T]{
		EffectId:   uuid.New().String(),
		dispatcher: dispatcher,
		closeFn:    teardown,
		closed:     false,
	}
}

func logClosedScope(effectId string, payload any, r any) {
	zap.L().Warn(
		"panic while sending to closed channel for effect",
		zap.String("effectId", effectId),
		zap.Any("payload", payload),
		zap.Any("panic", r),
	)
}
