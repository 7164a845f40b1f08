package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(retries int) *Config {
	return &Config{
		MaxRetries:      retries,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		Multiplier:      2,
	}
}

func TestDo_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	var seen []int

	attempts, err := Do(context.Background(), fastConfig(3), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	}, func(attempt int, err error, wait time.Duration) {
		seen = append(seen, attempt)
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	dialErr := errors.New("dial tcp: no route to host")

	attempts, err := Do(context.Background(), fastConfig(2), func(ctx context.Context) error {
		return dialErr
	}, nil)

	assert.Equal(t, 3, attempts)
	assert.ErrorIs(t, err, ErrMaxAttemptsExceeded)
	assert.ErrorIs(t, err, dialErr)
}

func TestDo_PermanentStopsImmediately(t *testing.T) {
	authErr := errors.New("password authentication failed")
	calls := 0

	attempts, err := Do(context.Background(), fastConfig(5), func(ctx context.Context) error {
		calls++
		return Permanent(authErr)
	}, nil)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, authErr, err)
}

func TestDo_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Do(ctx, fastConfig(3), func(ctx context.Context) error {
		t.Fatal("operation must not run on a canceled context")
		return nil
	}, nil)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestBackoff_GrowsAndCaps(t *testing.T) {
	cfg := &Config{InitialInterval: 100 * time.Millisecond, MaxInterval: 300 * time.Millisecond, Multiplier: 2}

	assert.Equal(t, 100*time.Millisecond, Backoff(cfg, 0))
	assert.Equal(t, 200*time.Millisecond, Backoff(cfg, 1))
	assert.Equal(t, 300*time.Millisecond, Backoff(cfg, 2))
	assert.Equal(t, 300*time.Millisecond, Backoff(cfg, 5))
}

func TestBackoff_JitterWithinBounds(t *testing.T) {
	cfg := &Config{InitialInterval: 100 * time.Millisecond, MaxInterval: time.Second, Multiplier: 2, JitterFactor: 0.1}

	for i := 0; i < 50; i++ {
		d := Backoff(cfg, 0)
		assert.GreaterOrEqual(t, d, 90*time.Millisecond)
		assert.LessOrEqual(t, d, 110*time.Millisecond)
	}
}
