package responder

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPolicy records sleeps instead of waiting.
func testPolicy(maxAttempts int) (RetryPolicy, *[]time.Duration) {
	var slept []time.Duration
	p := RetryPolicy{
		MaxAttempts: maxAttempts,
		BaseDelay:   time.Second,
		Sleep: func(ctx context.Context, d time.Duration) error {
			slept = append(slept, d)
			return nil
		},
		Jitter: func() time.Duration { return 0 },
	}
	return p, &slept
}

func TestRetrySucceedsAfterRetryableFailures(t *testing.T) {
	p, slept := testPolicy(3)

	calls := 0
	out, err := p.Do(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("request timed out")
		}
		return "generated answer", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "generated answer", out)
	assert.Equal(t, 3, calls)
	// Exponential backoff without jitter: 1s then 2s.
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *slept)
}

func TestRetryExhaustsAttempts(t *testing.T) {
	p, slept := testPolicy(3)

	calls := 0
	_, err := p.Do(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		return "", errors.New("503 service unavailable")
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Len(t, *slept, 2, "no sleep after the final attempt")
}

func TestRetryStopsOnNonRetryableError(t *testing.T) {
	p, slept := testPolicy(5)

	calls := 0
	_, err := p.Do(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		return "", errors.New("401 invalid api key")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, *slept)
}

func TestRetryStopsWhenContextCancelledDuringSleep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		Sleep: func(ctx context.Context, d time.Duration) error {
			cancel()
			return ctx.Err()
		},
		Jitter: func() time.Duration { return 0 },
	}

	_, err := p.Do(ctx, func(ctx context.Context) (string, error) {
		return "", errors.New("timeout")
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetryDelayGrowsExponentially(t *testing.T) {
	p := NewRetryPolicy(4, 100*time.Millisecond)
	p.Jitter = func() time.Duration { return 0 }

	assert.Equal(t, 100*time.Millisecond, p.Delay(1))
	assert.Equal(t, 200*time.Millisecond, p.Delay(2))
	assert.Equal(t, 400*time.Millisecond, p.Delay(3))
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"timeout message", errors.New("request timed out"), true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped deadline", fmt.Errorf("call failed: %w", context.DeadlineExceeded), true},
		{"http 429", errors.New("status code 429: too many requests"), true},
		{"rate limit words", errors.New("rate limit exceeded, retry later"), true},
		{"http 500", errors.New("500 internal server error"), true},
		{"http 502", errors.New("502 bad gateway"), true},
		{"network error", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, true},
		{"auth failure", errors.New("401 unauthorized"), false},
		{"malformed request", errors.New("400 invalid request body"), false},
		{"unknown", errors.New("something odd"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}
