package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastConfig() Config {
	return Config{
		MaxRetries:      3,
		BaseDelay:       time.Millisecond,
		MaxDelay:        5 * time.Millisecond,
		BackoffMultiple: 2.0,
	}
}

func TestDoSucceedsAfterTransientFailures(t *testing.T) {
	transient := errors.New("transient")
	calls := 0

	err := Do(context.Background(), fastConfig(), func(err error) bool { return true }, func() error {
		calls++
		if calls < 3 {
			return transient
		}
		return nil
	})

	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if calls != 3 {
		t.Errorf("got %d calls, want 3", calls)
	}
}

func TestDoStopsOnNonRetryableError(t *testing.T) {
	fatal := errors.New("fatal")
	calls := 0

	err := Do(context.Background(), fastConfig(), func(err error) bool { return false }, func() error {
		calls++
		return fatal
	})

	if !errors.Is(err, fatal) {
		t.Errorf("got %v, want the fatal error", err)
	}
	if calls != 1 {
		t.Errorf("got %d calls, want 1", calls)
	}
}

func TestDoExhaustsRetries(t *testing.T) {
	transient := errors.New("transient")
	calls := 0

	cfg := fastConfig()
	err := Do(context.Background(), cfg, func(err error) bool { return true }, func() error {
		calls++
		return transient
	})

	if !errors.Is(err, transient) {
		t.Errorf("got %v, want the last transient error", err)
	}
	if calls != cfg.MaxRetries+1 {
		t.Errorf("got %d calls, want %d", calls, cfg.MaxRetries+1)
	}
}

func TestDoHonorsContextDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	// Both delays must be large: delay() caps at MaxDelay, and the point is
	// to cancel while the goroutine is parked in the backoff.
	cfg := fastConfig()
	cfg.BaseDelay = time.Minute
	cfg.MaxDelay = time.Minute

	calls := 0
	done := make(chan error, 1)
	go func() {
		done <- Do(ctx, cfg, func(err error) bool { return true }, func() error {
			calls++
			return errors.New("transient")
		})
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("got %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Do did not return after context cancellation")
	}

	if calls != 1 {
		t.Errorf("got %d calls, want 1", calls)
	}
}

func TestDelayCapped(t *testing.T) {
	cfg := fastConfig()
	if d := cfg.delay(10); d != cfg.MaxDelay {
		t.Errorf("delay(10) = %v, want cap %v", d, cfg.MaxDelay)
	}
}
