package async_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrymomot/emailguess/pkg/async"
)

func TestAsyncFunctionality(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	futureString := async.Async(ctx, 42, func(ctx context.Context, num int) (string, error) {
		time.Sleep(20 * time.Millisecond)
		return fmt.Sprintf("Number: %d", num), nil
	})

	futureBool := async.Async(ctx, "test", func(ctx context.Context, s string) (bool, error) {
		return len(s) > 0, nil
	})

	resultString, errString := futureString.Await()
	resultBool, errBool := futureBool.Await()

	if errString != nil || resultString != "Number: 42" {
		t.Errorf("Expected 'Number: 42', got '%s', error: %v", resultString, errString)
	}
	if errBool != nil || !resultBool {
		t.Errorf("Expected true, got %v, error: %v", resultBool, errBool)
	}
	if !futureString.IsComplete() {
		t.Error("Expected future to be complete after Await")
	}
}

func TestAsyncCancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	future := async.Async(ctx, 1, func(ctx context.Context, n int) (int, error) {
		called = true
		return n, nil
	})

	_, err := future.Await()
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if called {
		t.Error("Expected function not to be called with a cancelled context")
	}
}

func TestAwaitContext(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	defer close(release)

	future := async.Async(context.Background(), 0, func(ctx context.Context, _ int) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := future.AwaitContext(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
}
