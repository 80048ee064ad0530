package retry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy(attempts int) Policy {
	return Policy{
		Attempts:  attempts,
		BaseDelay: time.Millisecond,
		MaxDelay:  5 * time.Millisecond,
		Factor:    2,
	}
}

func TestRun(t *testing.T) {
	errTemp := errors.New("temporary")

	tests := []struct {
		name         string
		policy       Policy
		failFirst    int32
		wantErr      error
		wantAttempts int32
	}{
		{name: "first attempt succeeds", policy: fastPolicy(3), failFirst: 0, wantAttempts: 1},
		{name: "succeeds after retries", policy: fastPolicy(5), failFirst: 2, wantAttempts: 3},
		{name: "gives up after attempts", policy: fastPolicy(3), failFirst: 10, wantErr: errTemp, wantAttempts: 3},
		{name: "zero attempts means one call", policy: fastPolicy(0), failFirst: 10, wantErr: errTemp, wantAttempts: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			err := Run(context.Background(), tt.policy, func(context.Context) error {
				if atomic.AddInt32(&calls, 1) <= tt.failFirst {
					return errTemp
				}
				return nil
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantAttempts, atomic.LoadInt32(&calls))
		})
	}
}

func TestRun_StopIsNotRetried(t *testing.T) {
	errBad := errors.New("bad payload")
	var calls int32

	err := Run(context.Background(), fastPolicy(5), func(context.Context) error {
		atomic.AddInt32(&calls, 1)
		return Stop(errBad)
	})

	assert.Equal(t, errBad, err)
	assert.Equal(t, int32(1), calls)
}

func TestRun_ShouldRetryPredicate(t *testing.T) {
	errRetry := errors.New("retry me")
	errFatal := errors.New("fatal")
	var calls int32

	p := fastPolicy(5)
	p.ShouldRetry = func(err error) bool { return errors.Is(err, errRetry) }

	err := Run(context.Background(), p, func(context.Context) error {
		if atomic.AddInt32(&calls, 1) == 1 {
			return errRetry
		}
		return errFatal
	})

	assert.Equal(t, errFatal, err)
	assert.Equal(t, int32(2), calls)
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := Run(ctx, Policy{Attempts: 10, BaseDelay: 50 * time.Millisecond, MaxDelay: time.Second, Factor: 2},
		func(context.Context) error { return errors.New("down") })

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunValue(t *testing.T) {
	var calls int32
	got, err := RunValue(context.Background(), fastPolicy(3), func(context.Context) (string, error) {
		if atomic.AddInt32(&calls, 1) < 2 {
			return "", errors.New("not yet")
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, int32(2), calls)
}

func TestPolicy_WaitIsCapped(t *testing.T) {
	p := Policy{MaxDelay: 10 * time.Millisecond, Jitter: 1}
	assert.Equal(t, 10*time.Millisecond, p.wait(time.Second))

	p = Policy{Jitter: 0}
	assert.Equal(t, 3*time.Millisecond, p.wait(3*time.Millisecond))
}

func TestStop(t *testing.T) {
	assert.Nil(t, Stop(nil))

	base := errors.New("x")
	err := Stop(base)
	assert.True(t, IsStopped(err))
	assert.ErrorIs(t, err, base)
	assert.False(t, IsStopped(base))
}
