package effects

import (
	"context"

	"github.com/on-the-ground/ballsinboxes/effects/internal/handlers"
	"github.com/on-the-ground/ballsinboxes/effects/internal/helper"
	sharedHelper "github.com/on-the-ground/ballsinboxes/shared/helper"
	"go.uber.org/zap"

	effectmodel "github.com/on-the-ground/ballsinboxes/effects/internal/model"
)

// ErrNoEffectHandler is wrapped by every lookup of an effect that has no handler in scope.
var ErrNoEffectHandler = effectmodel.ErrNoEffectHandler

// WithResumablePartitionableEffectHandler registers a resumable effect handler for a given effect enum.
//
// This handler supports hash-based partitioning via PartitionKey(), and is suitable for effects
// like lookups where per-key ordering matters.
//
// Usage:
//
//	ctx, end := WithResumablePartitionableEffectHandler(ctx, config, MyEffectEnum, handleFn)
//	defer end()
func WithResumablePartitionableEffectHandler[P effectmodel.Partitionable, R any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, P) (R, error),
	teardown ...func(),
) (context.Context, func() context.Context) {
	td := normalizeTeardown(teardown)
	handler := handlers.NewPartitionableResumableHandler(ctx, config, handleFn, td)
	ctxWith := context.WithValue(ctx, enum, handler)
	zap.L().Debug("created resumable effect handler", zap.String("effectId", handler.EffectId), zap.Any("enum", enum))

	return ctxWith, func() context.Context {
		handler.Close()
		zap.L().Debug("closed resumable effect handler", zap.String("effectId", handler.EffectId), zap.Any("enum", enum))
		return ctx
	}
}

// PerformResumableEffect sends a payload to the resumable effect handler.
//
// The returned channel delivers the value produced by the handler logic.
// Panics if no handler is registered for the given effect enum.
func PerformResumableEffect[P effectmodel.Partitionable, R any](
	ctx context.Context,
	enum effectmodel.EffectEnum,
	payload P,
) <-chan handlers.ResumableResult[R] {
	handler := sharedHelper.MustGetTypedValue[handlers.ResumableHandler[P, R]](
		func() (any, error) {
			return helper.GetHandler(ctx, enum)
		},
	)
	return handler.PerformEffect(ctx, payload)
}

// WithFireAndForgetEffectHandler registers a fire-and-forget effect handler for a given effect enum.
//
// Suitable for one-shot effects like logging or tracing.
// Payloads are handled in the order they were performed, and the returned
// teardown blocks until every buffered payload has been handled.
func WithFireAndForgetEffectHandler[P any](
	ctx context.Context,
	bufferSize int,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, P),
	teardown ...func(),
) (context.Context, func() context.Context) {
	td := normalizeTeardown(teardown)
	handler := handlers.NewFireAndForgetHandler(ctx, bufferSize, handleFn, td)
	ctxWith := context.WithValue(ctx, enum, handler)
	zap.L().Debug("created fire/forget effect handler", zap.String("effectId", handler.EffectId), zap.Any("enum", enum))

	return ctxWith, func() context.Context {
		handler.Close()
		zap.L().Debug("closed fire/forget effect handler", zap.String("effectId", handler.EffectId), zap.Any("enum", enum))
		return ctx
	}
}

// FireAndForgetEffect triggers a fire-and-forget effect for the given enum and payload.
//
// Panics if no handler is registered for the given enum.
func FireAndForgetEffect[P any](
	ctx context.Context,
	enum effectmodel.EffectEnum,
	payload P,
) {
	handler := sharedHelper.MustGetTypedValue[handlers.FireAndForgetHandler[P]](
		func() (any, error) {
			return helper.GetHandler(ctx, enum)
		},
	)
	handler.FireAndForgetEffect(ctx, payload)
}

// HasHandler reports whether a handler for the enum is registered in ctx.
func HasHandler(ctx context.Context, enum effectmodel.EffectEnum) bool {
	_, err := helper.GetHandler(ctx, enum)
	return err == nil
}

// normalizeTeardown flattens optional teardown functions into a single callable.
//
// Accepts either 0 or 1 teardown functions. Panics if more than one is passed.
func normalizeTeardown(teardown []func()) func() {
	switch len(teardown) {
	case 1:
		return teardown[0]
	case 0:
		return func() {}
	default:
		panic("normalizeTeardown: only one or zero teardown functions allowed")
	}
}
