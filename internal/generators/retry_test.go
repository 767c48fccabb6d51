package generators

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeSleep records requested delays instead of waiting
func fakeSleep(delays *[]time.Duration) func(context.Context, time.Duration) error {
	return func(_ context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	}
}

func TestRetryPolicy_BackoffSchedule(t *testing.T) {
	var delays []time.Duration
	policy := NewRetryPolicy(3, 2000*time.Millisecond, func(error) bool { return true })
	policy.sleep = fakeSleep(&delays)

	calls := 0
	err := policy.Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected eventual success, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}

	// Attempt n waits 2^(n+1) * 2000ms before attempt n+1
	want := []time.Duration{8 * time.Second, 16 * time.Second}
	if len(delays) != len(want) {
		t.Fatalf("expected %d sleeps, got %d", len(want), len(delays))
	}
	for i, d := range delays {
		if d != want[i] {
			t.Errorf("sleep %d: expected %v, got %v", i+1, want[i], d)
		}
	}
}

func TestRetryPolicy_AttemptCap(t *testing.T) {
	var delays []time.Duration
	policy := NewRetryPolicy(3, 2000*time.Millisecond, func(error) bool { return true })
	policy.sleep = fakeSleep(&delays)

	calls := 0
	failure := errors.New("still overloaded")
	err := policy.Do(context.Background(), func() error {
		calls++
		return failure
	})
	if calls != 3 {
		t.Errorf("expected exactly 3 attempts, got %d", calls)
	}
	if !errors.Is(err, failure) {
		t.Errorf("expected last error to propagate, got %v", err)
	}
	// No sleep after the final attempt
	if len(delays) != 2 {
		t.Errorf("expected 2 sleeps, got %d", len(delays))
	}
}

func TestRetryPolicy_FatalErrorAbortsImmediately(t *testing.T) {
	var delays []time.Duration
	policy := NewRetryPolicy(3, 2000*time.Millisecond, func(error) bool { return false })
	policy.sleep = fakeSleep(&delays)

	calls := 0
	failure := errors.New("invalid argument")
	err := policy.Do(context.Background(), func() error {
		calls++
		return failure
	})
	if calls != 1 {
		t.Errorf("expected a single attempt, got %d", calls)
	}
	if !errors.Is(err, failure) {
		t.Errorf("expected the fatal error back, got %v", err)
	}
	if len(delays) != 0 {
		t.Errorf("expected no sleeps, got %d", len(delays))
	}
}

func TestRetryPolicy_CancelledContextStopsWaiting(t *testing.T) {
	policy := NewRetryPolicy(3, time.Millisecond, func(error) bool { return true })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := policy.Do(ctx, func() error { return errors.New("transient") })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
