package boxes

import (
	"context"
	"fmt"

	"github.com/on-the-ground/ballsinboxes/effects/log"
)

// Tracer observes the uncached recursive branch of an evaluation.
// Base cases and memo hits are never traced.
type Tracer interface {
	// Enter is called once before summing the subproblems of key.
	Enter(ctx context.Context, key Key)
	// Step is called before evaluating F(key.Boxes-1, key.Balls-1-j).
	Step(ctx context.Context, key Key, j int)
	// Done is called with the completed sum, before it is memoized.
	Done(ctx context.Context, key Key, sum uint64)
}

// NopTracer discards every event.
type NopTracer struct{}

func (NopTracer) Enter(context.Context, Key)        {}
func (NopTracer) Step(context.Context, Key, int)    {}
func (NopTracer) Done(context.Context, Key, uint64) {}

var _ Tracer = NopTracer{}

// LogTracer emits one log effect per trace event, so a log effect handler
// must be registered in the context passed to Evaluate.
type LogTracer struct {
	Level log.LogLevel
}

var _ Tracer = LogTracer{}

func (lt LogTracer) level() log.LogLevel {
	if lt.Level == "" {
		return log.LogDebug
	}
	return lt.Level
}

func (lt LogTracer) Enter(ctx context.Context, key Key) {
	log.Effect(ctx, lt.level(), key.String(), nil)
}

func (lt LogTracer) Step(ctx context.Context, key Key, j int) {
	log.Effect(ctx, lt.level(), "step", map[string]interface{}{"j": j})
}

func (lt LogTracer) Done(ctx context.Context, key Key, sum uint64) {
	log.Effect(ctx, lt.level(), fmt.Sprintf("%v = %d", key, sum), nil)
}
