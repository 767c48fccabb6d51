package generators

import (
	"context"
	"time"
)

// RetryPolicy is the single retry/backoff policy applied to every external
// image call. Attempt n (1-indexed) that fails with a retryable error waits
// 2^(n+1) * BaseDelay before attempt n+1; any other error, or running out of
// attempts, propagates the last observed error.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Retryable   func(error) bool

	// sleep is injectable so tests can verify the schedule with a fake clock
	sleep func(ctx context.Context, d time.Duration) error
}

// NewRetryPolicy builds a policy with the given bounds and predicate
func NewRetryPolicy(maxAttempts int, baseDelay time.Duration, retryable func(error) bool) *RetryPolicy {
	return &RetryPolicy{
		MaxAttempts: maxAttempts,
		BaseDelay:   baseDelay,
		Retryable:   retryable,
		sleep:       sleepContext,
	}
}

// Do runs fn under the policy and returns its first success or last error
func (p *RetryPolicy) Do(ctx context.Context, fn func() error) error {
	var lastErr error

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !p.Retryable(lastErr) || attempt == p.MaxAttempts {
			return lastErr
		}

		delay := p.Backoff(attempt)
		if err := p.sleep(ctx, delay); err != nil {
			return err
		}
	}

	return lastErr
}

// Backoff returns the wait after the given 1-indexed failed attempt
func (p *RetryPolicy) Backoff(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt+1)) * p.BaseDelay
}

func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
