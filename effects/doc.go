// Package effects provides the minimal effect system used by ballsinboxes.
//
// Side effects such as logging and configuration lookup are delegated to
// handlers registered in a context.Context, so that the computations which
// perform them stay pure and testable.
//
// # How does it work?
//
// Handlers are registered via `WithXxxEffectHandler(ctx)` and effects are
// performed through `PerformResumableEffect` or `FireAndForgetEffect`.
// Delegation is type-safe, scope-bound, and never implicit.
//
//   - Resumable effects return a result to the performer (see package binding).
//   - Fire-and-forget effects return nothing and are handled in order
//     (see package log).
//
// Every registration returns a teardown function. Calling it closes the
// handler and returns the context the handler was registered on.
//
// Example:
//
//	func run(ctx context.Context, logger *zap.Logger) {
//	    ctx, end := log.WithZapEffectHandler(ctx, 16, logger)
//	    defer end()
//
//	    log.Effect(ctx, log.LogInfo, "hello", nil)
//	}
package effects
