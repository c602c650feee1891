package guard

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests advance limiter time without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(window time.Duration, max int) (*RateLimiter, *fakeClock) {
	l := NewRateLimiter(window, max)
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	l.mu.Lock()
	l.now = clock.Now
	l.mu.Unlock()
	return l, clock
}

func TestRateLimiterExactCap(t *testing.T) {
	l, _ := newTestLimiter(time.Minute, 5)
	defer l.Close()

	for i := 0; i < 5; i++ {
		allowed, remaining := l.Allow("client-a")
		require.True(t, allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 5-(i+1), remaining)
	}

	allowed, remaining := l.Allow("client-a")
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)

	// Rejected requests do not consume anything further.
	allowed, _ = l.Allow("client-a")
	assert.False(t, allowed)
}

func TestRateLimiterWindowReset(t *testing.T) {
	l, clock := newTestLimiter(time.Minute, 2)
	defer l.Close()

	l.Allow("client-a")
	l.Allow("client-a")
	allowed, _ := l.Allow("client-a")
	require.False(t, allowed)

	clock.Advance(61 * time.Second)

	allowed, remaining := l.Allow("client-a")
	assert.True(t, allowed)
	assert.Equal(t, 1, remaining, "fresh window should count the request as 1 of 2")
}

func TestRateLimiterClientsAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(time.Minute, 1)
	defer l.Close()

	allowed, _ := l.Allow("client-a")
	require.True(t, allowed)
	allowed, _ = l.Allow("client-a")
	require.False(t, allowed)

	allowed, _ = l.Allow("client-b")
	assert.True(t, allowed)
}

func TestRateLimiterConcurrentSameClient(t *testing.T) {
	const maxRequests = 30
	l, _ := newTestLimiter(time.Minute, maxRequests)
	defer l.Close()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.Allow("client-a"); ok {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// No lost updates: exactly the cap gets through.
	assert.Equal(t, maxRequests, allowedCount)
}

func TestRateLimiterActiveClients(t *testing.T) {
	l, clock := newTestLimiter(time.Minute, 5)
	defer l.Close()

	l.Allow("a")
	l.Allow("b")
	assert.Equal(t, 2, l.ActiveClients())

	clock.Advance(2 * time.Minute)
	assert.Equal(t, 0, l.ActiveClients())
}
