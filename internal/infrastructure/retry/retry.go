// Package retry runs an operation with capped exponential backoff.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Policy controls how an operation is retried.
type Policy struct {
	// Attempts includes the first call. Values below 1 mean a single call.
	Attempts int
	BaseDelay time.Duration
	MaxDelay  time.Duration
	Factor    float64
	// Jitter adds up to Jitter*delay of random wait, in [0,1].
	Jitter float64
	// ShouldRetry decides whether err is worth another attempt. Nil retries
	// everything except errors marked with Stop.
	ShouldRetry func(err error) bool
}

// CacheWritePolicy is tuned for short writes to the session cache.
var CacheWritePolicy = Policy{
	Attempts:  3,
	BaseDelay: 25 * time.Millisecond,
	MaxDelay:  250 * time.Millisecond,
	Factor:    2,
	Jitter:    0.1,
}

// CacheReadPolicy retries a failed cache read once.
var CacheReadPolicy = Policy{
	Attempts:  2,
	BaseDelay: 10 * time.Millisecond,
	MaxDelay:  50 * time.Millisecond,
	Factor:    2,
}

// Run calls fn until it succeeds, the policy gives up or ctx is done.
// The error of the last attempt is returned.
func Run(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	_, err := RunValue(ctx, p, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// RunValue is Run for operations producing a value.
func RunValue[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	shouldRetry := p.ShouldRetry
	if shouldRetry == nil {
		shouldRetry = func(err error) bool { return !IsStopped(err) }
	}

	var (
		val T
		err error
	)
	delay := p.BaseDelay
	for i := 1; i <= attempts; i++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return val, ctxErr
		}

		val, err = fn(ctx)
		if err == nil || !shouldRetry(err) || i == attempts {
			return val, unwrapStop(err)
		}

		timer := time.NewTimer(p.wait(delay))
		select {
		case <-ctx.Done():
			timer.Stop()
			return val, ctx.Err()
		case <-timer.C:
		}

		if p.Factor > 1 {
			delay = time.Duration(float64(delay) * p.Factor)
		}
	}
	return val, unwrapStop(err)
}

func (p Policy) wait(delay time.Duration) time.Duration {
	d := delay
	if p.Jitter > 0 {
		d += time.Duration(rand.Float64() * p.Jitter * float64(delay))
	}
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	return d
}

type stopError struct {
	err error
}

func (s *stopError) Error() string { return s.err.Error() }
func (s *stopError) Unwrap() error { return s.err }

// Stop marks err as not retryable. Run returns the inner error.
func Stop(err error) error {
	if err == nil {
		return nil
	}
	return &stopError{err: err}
}

// IsStopped reports whether err was marked with Stop.
func IsStopped(err error) bool {
	var s *stopError
	return errors.As(err, &s)
}

func unwrapStop(err error) error {
	var s *stopError
	if errors.As(err, &s) {
		return s.err
	}
	return err
}
