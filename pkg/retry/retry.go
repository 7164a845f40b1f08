package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"
)

// Common errors
var (
	ErrMaxAttemptsExceeded = errors.New("max attempts exceeded")
)

// Config contains backoff configuration for establishing connections
type Config struct {
	// MaxRetries is the number of retries after the first attempt (0 = single attempt)
	MaxRetries int
	// InitialInterval is the wait before the first retry
	InitialInterval time.Duration
	// MaxInterval caps the wait between attempts
	MaxInterval time.Duration
	// Multiplier grows the interval after each retry
	Multiplier float64
	// JitterFactor adds +/- random jitter as a fraction of the interval (0-1)
	JitterFactor float64
}

// DefaultConfig returns the backoff used for startup connections: 1s, 2s, 4s
func DefaultConfig() *Config {
	return &Config{
		MaxRetries:      3,
		InitialInterval: time.Second,
		MaxInterval:     10 * time.Second,
		Multiplier:      2.0,
		JitterFactor:    0.1,
	}
}

// Operation is one connection attempt
type Operation func(ctx context.Context) error

// Callback is invoked before waiting for the next attempt
type Callback func(attempt int, err error, wait time.Duration)

// PermanentError stops the loop immediately
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

// Permanent marks err as not worth retrying
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// Do runs op until it succeeds, returns a permanent error, the context ends or
// attempts run out. The returned error wraps the last attempt's error.
func Do(ctx context.Context, cfg *Config, op Operation, cb Callback) (int, error) {
	cfg = normalize(cfg)

	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return attempt, joinLast(err, lastErr)
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return attempt + 1, nil
		}

		var perm *PermanentError
		if errors.As(lastErr, &perm) {
			return attempt + 1, perm.Err
		}

		if attempt == cfg.MaxRetries {
			break
		}

		wait := Backoff(cfg, attempt)
		if cb != nil {
			cb(attempt+1, lastErr, wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return attempt + 1, joinLast(ctx.Err(), lastErr)
		case <-timer.C:
		}
	}

	return cfg.MaxRetries + 1, joinLast(ErrMaxAttemptsExceeded, lastErr)
}

// Backoff returns the wait before retry number attempt+1
func Backoff(cfg *Config, attempt int) time.Duration {
	cfg = normalize(cfg)

	interval := float64(cfg.InitialInterval) * math.Pow(cfg.Multiplier, float64(attempt))
	if cfg.JitterFactor > 0 {
		jitter := interval * cfg.JitterFactor
		interval += (rand.Float64()*2 - 1) * jitter
	}
	if interval > float64(cfg.MaxInterval) {
		interval = float64(cfg.MaxInterval)
	}
	if interval <= 0 {
		interval = float64(cfg.InitialInterval)
	}
	return time.Duration(interval)
}

func normalize(cfg *Config) *Config {
	if cfg == nil {
		return DefaultConfig()
	}
	c := *cfg
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.InitialInterval <= 0 {
		c.InitialInterval = time.Second
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = 10 * time.Second
	}
	if c.Multiplier <= 0 {
		c.Multiplier = 2.0
	}
	if c.JitterFactor < 0 {
		c.JitterFactor = 0
	}
	if c.JitterFactor > 1 {
		c.JitterFactor = 1
	}
	return &c
}

func joinLast(reason, last error) error {
	if last == nil {
		return reason
	}
	return errors.Join(reason, last)
}
