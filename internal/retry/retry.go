package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
)

// Config holds retry configuration.
type Config struct {
	Attempts int
	Delay    time.Duration
}

// Option is a functional option for retry configuration.
type Option func(*Config)

// WithAttempts sets the total number of attempts (first try included).
func WithAttempts(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Attempts = n
		}
	}
}

// WithDelay sets the fixed delay between attempts.
func WithDelay(d time.Duration) Option {
	return func(c *Config) {
		c.Delay = d
	}
}

// Do executes the operation, retrying on failure up to the configured number
// of attempts with a fixed delay between them. Context cancellation is
// respected while waiting. Errors wrapped with Fatal() are not retried.
//
// On exhaustion the last error is returned unmodified so callers can still
// inspect it with errors.Is/As.
func Do(ctx context.Context, log logr.Logger, operation func() error, opts ...Option) error {
	cfg := &Config{
		Attempts: 3,
		Delay:    2 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}
		lastErr = err

		var fatal *FatalError
		if errors.As(err, &fatal) {
			return fatal.Err
		}

		if attempt < cfg.Attempts {
			log.Info("attempt failed, retrying",
				"attempt", attempt, "attempts", cfg.Attempts, "delay", cfg.Delay, "error", err.Error())
			select {
			case <-ctx.Done():
				return fmt.Errorf("cancelled after %d attempts: %w", attempt, ctx.Err())
			case <-time.After(cfg.Delay):
			}
		} else {
			log.Error(err, "giving up after final attempt", "attempts", cfg.Attempts)
		}
	}

	return lastErr
}

// FatalError wraps an error to mark it as fatal (non-retryable).
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Fatal marks an error as fatal so that Do returns it without further attempts.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}
