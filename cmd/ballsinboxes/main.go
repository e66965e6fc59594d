package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/on-the-ground/ballsinboxes/boxes"
	"github.com/on-the-ground/ballsinboxes/config"
	"github.com/on-the-ground/ballsinboxes/effects/binding"
	"github.com/on-the-ground/ballsinboxes/effects/log"
	"go.uber.org/zap"
)

func main() {
	if err := run(context.Background(), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run evaluates the configured instance, tracing to w, and prints the count
// as the last line of w.
func run(ctx context.Context, w io.Writer) error {
	defaults, err := config.Defaults()
	if err != nil {
		return err
	}
	bufferSize, numWorkers, err := config.BindingScope(defaults)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ctx, endOfBinding := binding.WithEffectHandler(ctx, bufferSize, numWorkers, defaults)
	defer endOfBinding()

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	count, err := evaluate(ctx, cfg, w)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, count)
	return err
}

// evaluate returns only after every trace line has been written.
func evaluate(ctx context.Context, cfg config.Config, w io.Writer) (uint64, error) {
	if !cfg.TraceEnabled {
		return boxes.Count(ctx, cfg.Boxes, cfg.Balls)
	}

	ctx, endOfLog := log.WithZapEffectHandler(
		ctx,
		cfg.LogBufferSize,
		log.NewConsoleLogger(w, zap.DebugLevel),
	)
	defer endOfLog()

	return boxes.Count(ctx, cfg.Boxes, cfg.Balls, boxes.WithTracer(boxes.LogTracer{}))
}
