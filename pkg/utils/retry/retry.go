// Package retry provides a bounded retry loop with exponential backoff.
// The delay schedule and the sleep itself are both injectable so callers can
// test retry behavior without real waiting.
package retry

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// DelayFunc maps a zero-based attempt number to the delay before the next
// attempt.
type DelayFunc func(attempt int) time.Duration

// Backoff returns a DelayFunc that doubles the base delay on each attempt:
// base, 2*base, 4*base, ...
func Backoff(base time.Duration) DelayFunc {
	return func(attempt int) time.Duration {
		return base << attempt
	}
}

// SleepFunc waits for the given duration, honoring context cancellation
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "canceled while waiting for retry")
	case <-timer.C:
		return nil
	}
}

// Option configures Do
type Option func(*config)

type config struct {
	sleep SleepFunc
}

// WithSleep replaces the sleep implementation (for tests)
func WithSleep(fn SleepFunc) Option {
	return func(c *config) {
		c.sleep = fn
	}
}

// Do runs op up to attempts times, waiting delay(i) after the i-th failure.
// It returns nil as soon as one attempt succeeds. No wait follows the final
// attempt; exhaustion returns the last error.
func Do(ctx context.Context, attempts int, delay DelayFunc, op func(ctx context.Context) error, opts ...Option) error {
	cfg := &config{sleep: sleep}
	for _, opt := range opts {
		opt(cfg)
	}

	if attempts < 1 {
		return goerr.New("retry attempts must be positive", goerr.V("attempts", attempts))
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if lastErr = op(ctx); lastErr == nil {
			return nil
		}

		if i == attempts-1 {
			break
		}
		if err := cfg.sleep(ctx, delay(i)); err != nil {
			return err
		}
	}

	return goerr.Wrap(lastErr, "all retry attempts failed", goerr.V("attempts", attempts))
}
