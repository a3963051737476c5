package controller

import "time"

// SetClock replaces the limiter clock in tests.
func (rl *RateLimiter) SetClock(now func() time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.now = now
}

// Tracked returns the number of clients with an open window.
func (rl *RateLimiter) Tracked() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return len(rl.clients)
}

// EvictExpired runs one cleanup pass.
func (rl *RateLimiter) EvictExpired() { rl.evictExpired() }
