package analyzer

import (
	"context"
	"fmt"
	"time"
)

const (
	// DefaultMaxAttempts bounds the fetch retry loop.
	DefaultMaxAttempts = 3
	// DefaultRetryDelay is the fixed delay between attempts.
	DefaultRetryDelay = 1 * time.Second
)

// RetryPolicy retries an operation a fixed number of times with a fixed
// inter-attempt delay. The sleeper is injectable so tests can use a fake
// clock.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
	Sleep       func(time.Duration)
}

// NewRetryPolicy returns the default policy: 3 attempts, 1s apart.
func NewRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: DefaultMaxAttempts,
		Delay:       DefaultRetryDelay,
		Sleep:       time.Sleep,
	}
}

// Do runs fn until it succeeds or attempts are exhausted, sleeping between
// attempts. The last error is propagated to the caller; partial progress is
// never returned silently.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if lastErr = fn(); lastErr == nil {
			return nil
		}
		if attempt < attempts {
			sleep(p.Delay)
		}
	}

	return fmt.Errorf("failed after %d attempts: %w", attempts, lastErr)
}
