package guard

import (
	"sync"
	"time"
)

// RateLimiter is a fixed-window per-client request limiter. It is advisory
// and process-local; counts are guarded by a mutex so concurrent requests
// from the same client cannot lose updates. Expired entries are removed by
// a periodic sweep in addition to overwrite-on-next-request, so the map
// stays bounded under many distinct clients.
type RateLimiter struct {
	mu      sync.Mutex
	window  time.Duration
	max     int
	clients map[string]*windowEntry

	now  func() time.Time
	done chan struct{}
}

type windowEntry struct {
	count   int
	resetAt time.Time
}

// NewRateLimiter creates a limiter allowing max requests per window and
// starts the background sweep. Call Close to stop it.
func NewRateLimiter(window time.Duration, max int) *RateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 30
	}
	l := &RateLimiter{
		window:  window,
		max:     max,
		clients: make(map[string]*windowEntry),
		now:     time.Now,
		done:    make(chan struct{}),
	}
	go l.sweep()
	return l
}

// Allow consumes one request slot for the client. It returns whether the
// request is allowed and how many requests remain in the current window.
// The first request after window expiry resets the window and counts as 1;
// rejected requests do not increment the count further.
func (l *RateLimiter) Allow(clientID string) (allowed bool, remaining int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.clients[clientID]
	if !ok || now.After(entry.resetAt) {
		l.clients[clientID] = &windowEntry{count: 1, resetAt: now.Add(l.window)}
		return true, l.max - 1
	}

	if entry.count >= l.max {
		return false, 0
	}
	entry.count++
	return true, l.max - entry.count
}

// Window returns the configured window duration.
func (l *RateLimiter) Window() time.Duration { return l.window }

// ActiveClients returns the number of tracked, unexpired client windows.
func (l *RateLimiter) ActiveClients() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	n := 0
	for _, entry := range l.clients {
		if !now.After(entry.resetAt) {
			n++
		}
	}
	return n
}

// Close stops the background sweep.
func (l *RateLimiter) Close() {
	close(l.done)
}

func (l *RateLimiter) sweep() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()
	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.mu.Lock()
			now := l.now()
			for id, entry := range l.clients {
				if now.After(entry.resetAt) {
					delete(l.clients, id)
				}
			}
			l.mu.Unlock()
		}
	}
}
