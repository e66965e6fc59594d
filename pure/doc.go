// Package pure provides memo tables for pure functions.
//
// A memo table is only sound when the function it caches is referentially
// transparent: same inputs, same output, no observable side effects.
// Keep tracing and logging outside the cached computation.
package pure
