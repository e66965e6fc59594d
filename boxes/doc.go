// Package boxes counts the ways to distribute k distinguishable balls into
// m indistinguishable boxes with a memoized recurrence:
//
//	F(1, k) = 1
//	F(m, 0) = 1
//	F(m, k) = Σ_{j=0}^{k-1} F(m-1, k-1-j)
//
// An Evaluator owns its memo table; nothing is shared between evaluators.
// Tracing is injected through a Tracer so the recurrence itself stays pure.
package boxes
