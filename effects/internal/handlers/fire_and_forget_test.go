package handlers_test

import (
	"context"
	"testing"
	"time"

	"github.com/on-the-ground/ballsinboxes/effects/internal/handlers"
	"github.com/stretchr/testify/assert"
)

func TestFireAndForgetHandler_BasicExecution(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var receivedPayload string
	done := make(chan bool)

	handler := handlers.NewFireAndForgetHandler(
		ctx,
		10,
		func(ctx context.Context, msg string) {
			receivedPayload = msg
			done <- true
		},
		func() {}, // no-op teardown
	)
	defer handler.Close()

	handler.FireAndForgetEffect(ctx, "hello")

	select {
	case <-done:
		assert.Equal(t, "hello", receivedPayload)
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for handler")
	}
}

func TestFireAndForgetHandler_CloseFlushesInOrder(t *testing.T) {
	ctx := context.Background()

	var received []int
	tornDown := false
	handler := handlers.NewFireAndForgetHandler(
		ctx,
		4,
		func(ctx context.Context, msg int) {
			received = append(received, msg)
		},
		func() { tornDown = true },
	)

	for i := 0; i < 20; i++ {
		handler.FireAndForgetEffect(ctx, i)
	}
	handler.Close()

	expected := make([]int, 20)
	for i := range expected {
		expected[i] = i
	}
	assert.Equal(t, expected, received)
	assert.True(t, tornDown)
	assert.NotEmpty(t, handler.EffectId)
}

func TestFireAndForgetHandler_SendAfterCloseIsRecovered(t *testing.T) {
	ctx := context.Background()
	handler := handlers.NewFireAndForgetHandler(
		ctx,
		1,
		func(ctx context.Context, msg string) {},
		func() {},
	)
	handler.Close()
	handler.Close() // idempotent

	assert.NotPanics(t, func() {
		handler.FireAndForgetEffect(ctx, "late")
	})
}

func TestFireAndForgetHandler_CancelContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	time.Sleep(100 * time.Millisecond)

	called := make(chan struct{}, 1)

	handler := handlers.NewFireAndForgetHandler(
		ctx,
		10,
		func(ctx context.Context, msg string) {
			called <- struct{}{}
		},
		func() {},
	)
	defer handler.Close()

	handler.FireAndForgetEffect(ctx, "should-not-send")

	select {
	case <-called:
		t.Fatal("handler should not have been called")
	case <-time.After(100 * time.Millisecond):
	}
}
