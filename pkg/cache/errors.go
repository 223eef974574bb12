package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable marks failures to reach a remote backend. Backends wrap it
// with Transient so RetryWithBackoff tries again.
var ErrUnavailable = errors.New("cache backend unavailable")

// transientError marks an error worth retrying.
type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// Transient marks err as retryable. A nil err stays nil.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &transientError{err: err}
}

// IsTransient reports whether err, or anything it wraps, was marked with
// Transient.
func IsTransient(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}

// backoff is a retry schedule with doubling delays.
type backoff struct {
	attempts int
	initial  time.Duration
	max      time.Duration
}

var defaultBackoff = backoff{attempts: 3, initial: time.Second, max: 4 * time.Second}

// RetryWithBackoff calls fn until it succeeds, returns an error that is not
// transient, or the attempts run out. Waiting stops early when ctx ends.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return defaultBackoff.do(ctx, fn)
}

func (b backoff) do(ctx context.Context, fn func() error) error {
	delay := b.initial
	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(); err == nil || !IsTransient(err) || attempt >= b.attempts {
			return err
		}

		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		delay = min(2*delay, b.max)
	}
}
