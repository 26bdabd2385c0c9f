package tracker

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/balkashynov/blueprint/internal/errors"
)

// RetryPolicy controls how history, ledger and overlay writes are retried
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration // doubled after each failed attempt
}

// DefaultRetryPolicy returns 3 attempts starting at 50ms
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Attempts: 3, Delay: 50 * time.Millisecond}
}

// withRetry runs fn until it succeeds or the attempts run out. The returned
// error wraps ErrStorage and every attempt's cause.
func (t *Tracker) withRetry(ctx context.Context, op string, fn func() error) error {
	delay := t.retry.Delay
	var errs error

	for attempt := 1; attempt <= t.retry.Attempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		errs = multierr.Append(errs, err)
		t.log.Warn().Err(err).Str("op", op).Int("attempt", attempt).Msg("storage write failed")

		if attempt == t.retry.Attempts {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%s: %w: %w", op, errors.ErrStorage, multierr.Append(errs, ctx.Err()))
		case <-time.After(delay):
		}
		delay *= 2
	}

	t.log.Error().Err(errs).Str("op", op).Msg("giving up")
	return fmt.Errorf("%s failed after %d attempts: %w: %w", op, t.retry.Attempts, errors.ErrStorage, errs)
}
