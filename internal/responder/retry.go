package responder

import (
	"context"
	"errors"
	"math/rand"
	"net"
	"strings"
	"time"
)

// SleepFunc waits for the given duration or until the context is done.
// Injectable so retry behaviour is testable without real delays.
type SleepFunc func(ctx context.Context, d time.Duration) error

// DefaultSleep is the production sleep implementation.
func DefaultSleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// RetryPolicy controls the generation retry loop. The decision of whether
// an error is worth retrying is separated from the waiting mechanism so
// both are independently testable.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Sleep       SleepFunc
	// Jitter returns a random extra delay; nil uses a uniform draw over
	// half the base delay.
	Jitter func() time.Duration
}

// NewRetryPolicy builds a policy with production sleep and jitter.
func NewRetryPolicy(maxAttempts int, baseDelay time.Duration) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: maxAttempts,
		BaseDelay:   baseDelay,
		Sleep:       DefaultSleep,
		Jitter: func() time.Duration {
			if baseDelay <= 0 {
				return 0
			}
			return time.Duration(rand.Int63n(int64(baseDelay)/2 + 1))
		},
	}
}

// Delay computes the backoff before the given retry attempt (1-based):
// base × 2^(attempt-1) plus jitter.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	d := p.BaseDelay << (attempt - 1)
	if p.Jitter != nil {
		d += p.Jitter()
	}
	return d
}

// Do runs fn up to MaxAttempts times, sleeping between attempts. It stops
// early on a non-retryable error or a cancelled context, and returns the
// last error when all attempts fail.
func (p RetryPolicy) Do(ctx context.Context, fn func(ctx context.Context) (string, error)) (string, error) {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		out, err := fn(ctx)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !IsRetryable(err) {
			return "", err
		}
		if attempt == maxAttempts {
			break
		}
		if sleepErr := p.Sleep(ctx, p.Delay(attempt)); sleepErr != nil {
			return "", sleepErr
		}
	}
	return "", lastErr
}

// retryableFragments are error-message markers for timeout, rate-limit and
// server-side failures. Provider SDKs do not share error types, so message
// matching is the common denominator.
var retryableFragments = []string{
	"timeout",
	"timed out",
	"deadline exceeded",
	"429",
	"rate limit",
	"too many requests",
	"500",
	"502",
	"503",
	"504",
	"internal server error",
	"service unavailable",
	"bad gateway",
	"connection refused",
	"connection reset",
	"no such host",
	"unexpected eof",
}

// IsRetryable reports whether an error is worth retrying: timeouts,
// rate limiting (429), server-side failures (5xx) and transport-level
// network failures. Auth and malformed-request errors are not.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	// A caller-side timeout counts as a timeout-class failure.
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, frag := range retryableFragments {
		if strings.Contains(msg, frag) {
			return true
		}
	}
	return false
}
