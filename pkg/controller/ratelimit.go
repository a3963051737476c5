package controller

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"wcagrep/pkg/logger"
)

// window is the request count of one client in the current window.
type window struct {
	count   int
	resetAt time.Time
}

// RateLimiter enforces a fixed window request limit per client IP. The first
// request of a client opens a window of the configured length; requests beyond
// max within that window are rejected until it resets.
type RateLimiter struct {
	window time.Duration
	max    int
	now    func() time.Time

	mu      sync.Mutex
	clients map[string]*window

	stop chan struct{}
	once sync.Once
}

// NewRateLimiter creates a limiter allowing max requests per client in each
// window of the given length and starts a goroutine that evicts expired
// windows. Close stops it.
func NewRateLimiter(length time.Duration, max int) *RateLimiter {
	rl := &RateLimiter{
		window:  length,
		max:     max,
		now:     time.Now,
		clients: make(map[string]*window),
		stop:    make(chan struct{}),
	}
	go rl.cleanupLoop()

	return rl
}

// Allow records a request from key and reports whether it is within the
// limit. When it is not, the time left until the window resets is returned.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.clients[key]
	if !ok || !now.Before(w.resetAt) {
		rl.clients[key] = &window{count: 1, resetAt: now.Add(rl.window)}

		return true, 0
	}

	w.count++
	if w.count > rl.max {
		return false, w.resetAt.Sub(now)
	}

	return true, 0
}

// Middleware rejects requests over the limit with 429, a Retry-After header
// and a JSON body telling the client when to retry. Clients are keyed by the
// peer address; forwarded headers only count once middleware.RealIP has
// rewritten it behind a trusted proxy.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := PeerIP(r)
		ok, wait := rl.Allow(key)
		if ok {
			next.ServeHTTP(w, r)

			return
		}

		seconds := int(math.Ceil(wait.Seconds()))
		logger.Warn(r.Context(), "Rate limit exceeded for IP",
			zap.String("client_ip", key), zap.String("path", r.URL.Path), zap.Int("retry_after", seconds))
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":      "Too many requests",
			"retryAfter": seconds,
			"message":    fmt.Sprintf("Rate limit exceeded. Try again in %d seconds.", seconds),
		})
	})
}

// Close stops the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Close() {
	rl.once.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) cleanupLoop() {
	interval := min(rl.window, time.Minute)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictExpired()
		}
	}
}

func (rl *RateLimiter) evictExpired() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, w := range rl.clients {
		if !now.Before(w.resetAt) {
			delete(rl.clients, key)
		}
	}
}
