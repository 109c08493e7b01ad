package cache

import (
	"context"
	"errors"
	"time"
)

// RetryableError marks a backend failure (timeout, lost connection) as worth
// retrying. The Redis and Mongo backends wrap their errors with Retryable;
// local backends never do.
type RetryableError struct{ Err error }

// Retryable wraps an error as a RetryableError.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// Error returns the error message of the wrapped error.
func (e *RetryableError) Error() string { return e.Err.Error() }

// Unwrap returns the wrapped error.
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable checks if an error is wrapped with RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// retryBaseDelay is the first backoff interval. Tests shorten it.
var retryBaseDelay = time.Second

// RetryWithBackoff retries fn up to 3 times with exponential backoff.
// Only errors wrapped with Retryable will trigger retries.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	const attempts = 3
	delay := retryBaseDelay
	var lastErr error

	for i := 0; i < attempts; i++ {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !IsRetryable(err) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}

// retryingCache wraps a networked backend and retries transient failures.
// A tile miss after exhausted retries is still just a miss to the pipeline,
// but retrying here keeps one dropped packet from forcing a recompose.
type retryingCache struct {
	inner Cache
}

// WithRetry wraps a cache so that retryable Get/Set/Delete failures are
// retried with backoff. The serve command applies it to the Redis and Mongo
// backends.
func WithRetry(inner Cache) Cache {
	return &retryingCache{inner: inner}
}

func (c *retryingCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var (
		data []byte
		hit  bool
	)
	err := RetryWithBackoff(ctx, func() error {
		var err error
		data, hit, err = c.inner.Get(ctx, key)
		return err
	})
	return data, hit, err
}

func (c *retryingCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return RetryWithBackoff(ctx, func() error {
		return c.inner.Set(ctx, key, data, ttl)
	})
}

func (c *retryingCache) Delete(ctx context.Context, key string) error {
	return RetryWithBackoff(ctx, func() error {
		return c.inner.Delete(ctx, key)
	})
}

func (c *retryingCache) Close() error {
	return c.inner.Close()
}

// Ensure retryingCache implements Cache.
var _ Cache = (*retryingCache)(nil)
