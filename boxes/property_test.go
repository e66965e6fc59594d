package boxes_test

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/on-the-ground/ballsinboxes/boxes"
)

func TestEvaluateProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	ctx := context.Background()

	properties.Property("no balls leaves one way", prop.ForAll(
		func(m int) bool {
			v, err := boxes.Count(ctx, m, 0)
			return err == nil && v == 1
		},
		gen.IntRange(1, 64),
	))

	properties.Property("one box leaves one way", prop.ForAll(
		func(k int) bool {
			v, err := boxes.Count(ctx, 1, k)
			return err == nil && v == 1
		},
		gen.IntRange(0, 1000),
	))

	properties.Property("value is the sum over the reference box", prop.ForAll(
		func(m, k int) bool {
			e := boxes.New()
			v, err := e.Evaluate(ctx, m, k)
			if err != nil {
				return false
			}
			var sum uint64
			for j := 0; j < k; j++ {
				sub, err := boxes.Count(ctx, m-1, k-1-j)
				if err != nil {
					return false
				}
				sum += sub
			}
			return v == sum
		},
		gen.IntRange(2, 12),
		gen.IntRange(1, 12),
	))

	properties.Property("repeated evaluation is stable and cached", prop.ForAll(
		func(m, k int) bool {
			tracer := &recordingTracer{}
			e := boxes.New(boxes.WithTracer(tracer))
			first, err := e.Evaluate(ctx, m, k)
			if err != nil {
				return false
			}
			size := e.CacheLen()
			tracer.events = nil
			second, err := e.Evaluate(ctx, m, k)
			return err == nil && first == second && len(tracer.events) == 0 && size == e.CacheLen()
		},
		gen.IntRange(1, 16),
		gen.IntRange(0, 16),
	))

	properties.Property("cache size matches the recursive subproblems", prop.ForAll(
		func(m, k int) bool {
			tracer := &recordingTracer{}
			e := boxes.New(boxes.WithTracer(tracer))
			if _, err := e.Evaluate(ctx, m, k); err != nil {
				return false
			}
			enters := 0
			for _, ev := range tracer.events {
				if len(ev) > 6 && ev[:6] == "enter " {
					enters++
				}
			}
			return enters == e.CacheLen()
		},
		gen.IntRange(1, 10),
		gen.IntRange(0, 10),
	))

	properties.TestingRun(t)
}
