package boxes

import (
	"context"
	"errors"
	"fmt"
	"math/bits"

	"github.com/on-the-ground/ballsinboxes/pure"
)

var (
	// ErrInvalidArgument is returned for boxes < 1 or balls < 0.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOverflow is returned when a sum does not fit in a uint64.
	ErrOverflow = errors.New("count overflows uint64")
)

// Key identifies one F(m, k) subproblem.
type Key struct {
	Boxes int
	Balls int
}

func (k Key) String() string {
	return fmt.Sprintf("F(%d, %d)", k.Boxes, k.Balls)
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithTracer installs a tracer; the default is NopTracer.
func WithTracer(tracer Tracer) Option {
	return func(e *Evaluator) {
		if tracer != nil {
			e.tracer = tracer
		}
	}
}

// Evaluator computes F(m, k) and remembers every subproblem that reached
// the recursive branch. It is not safe for concurrent use.
type Evaluator struct {
	memo   *pure.Table[Key, uint64]
	tracer Tracer
}

// New returns an evaluator with an empty memo table.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		memo:   pure.NewTable[Key, uint64](),
		tracer: NopTracer{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate returns F(boxes, balls). It fails with ErrInvalidArgument when
// boxes < 1 or balls < 0, and with ErrOverflow when the count does not fit.
func (e *Evaluator) Evaluate(ctx context.Context, boxes, balls int) (uint64, error) {
	if boxes < 1 {
		return 0, fmt.Errorf("%w: boxes must be at least 1, got %d", ErrInvalidArgument, boxes)
	}
	if balls < 0 {
		return 0, fmt.Errorf("%w: balls must be non-negative, got %d", ErrInvalidArgument, balls)
	}
	return e.evaluate(ctx, Key{Boxes: boxes, Balls: balls})
}

// CacheLen reports how many subproblems have been memoized.
func (e *Evaluator) CacheLen() int {
	return e.memo.Len()
}

func (e *Evaluator) evaluate(ctx context.Context, key Key) (uint64, error) {
	if key.Boxes == 1 {
		return 1, nil
	}
	if key.Balls == 0 {
		return 1, nil
	}
	if v, ok := e.memo.Load(key); ok {
		return v, nil
	}

	e.tracer.Enter(ctx, key)
	var sum uint64
	for j := 0; j < key.Balls; j++ {
		e.tracer.Step(ctx, key, j)
		v, err := e.evaluate(ctx, Key{Boxes: key.Boxes - 1, Balls: key.Balls - 1 - j})
		if err != nil {
			return 0, err
		}
		var carry uint64
		sum, carry = bits.Add64(sum, v, 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: %v", ErrOverflow, key)
		}
	}
	e.tracer.Done(ctx, key, sum)

	e.memo.Store(key, sum)
	return sum, nil
}

// Count evaluates F(boxes, balls) with a fresh evaluator whose memo table
// lives only for this call.
func Count(ctx context.Context, boxes, balls int, opts ...Option) (uint64, error) {
	return New(opts...).Evaluate(ctx, boxes, balls)
}
