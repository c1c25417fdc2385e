// Package ratelimit provides token bucket limiters keyed by an arbitrary
// string, such as a client IP for inbound writes or a host for outbound
// preview fetches.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL is how long an unused key keeps its bucket.
const idleTTL = 10 * time.Minute

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Keyed manages one independent token bucket per key.
type Keyed struct {
	mu      sync.Mutex
	entries map[string]*entry
	limit   rate.Limit
	burst   int
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a keyed limiter allowing rps events per second with the
// given burst. When cleanupInterval > 0 a background goroutine drops idle
// keys; call Stop on shutdown.
func New(rps float64, burst int, cleanupInterval time.Duration) *Keyed {
	k := &Keyed{
		entries: make(map[string]*entry),
		limit:   rate.Limit(rps),
		burst:   burst,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go k.cleanupLoop(cleanupInterval)
	}
	return k
}

// PerMinute creates a keyed limiter allowing n events per minute with a
// burst of n.
func PerMinute(n int, cleanupInterval time.Duration) *Keyed {
	return New(float64(n)/60.0, n, cleanupInterval)
}

// Allow reports whether an event for key may happen now. It never blocks.
func (k *Keyed) Allow(key string) bool {
	return k.get(key).Allow()
}

// Wait blocks until an event for key is allowed or ctx is done.
func (k *Keyed) Wait(ctx context.Context, key string) error {
	return k.get(key).Wait(ctx)
}

// RetryAfter is the time one token takes to refill.
func (k *Keyed) RetryAfter() time.Duration {
	if k.limit <= 0 {
		return time.Minute
	}
	return time.Duration(float64(time.Second) / float64(k.limit))
}

// Len returns the number of tracked keys.
func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

// Stop terminates the cleanup goroutine. Safe to call more than once.
func (k *Keyed) Stop() {
	k.stopOnce.Do(func() { close(k.stop) })
}

func (k *Keyed) get(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(k.limit, k.burst)}
		k.entries[key] = e
	}
	e.lastSeen = k.now()
	return e.limiter
}

// sweep drops keys idle for longer than idleTTL.
func (k *Keyed) sweep() {
	cutoff := k.now().Add(-idleTTL)

	k.mu.Lock()
	defer k.mu.Unlock()
	for key, e := range k.entries {
		if e.lastSeen.Before(cutoff) {
			delete(k.entries, key)
		}
	}
}

func (k *Keyed) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-k.stop:
			return
		case <-ticker.C:
			k.sweep()
		}
	}
}
