package browser

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"wcagrep/pkg/logger"
	"wcagrep/pkg/metrics"
	"wcagrep/pkg/serrors"
)

// Slot configures one backend of a Pool.
type Slot struct {
	// Name is used for disabled slots, which have no Backend. Enabled slots are
	// named after their backend.
	Name    string
	Backend Backend
	Enabled bool
	// Concurrent is the maximum number of in-flight fetches.
	Concurrent int
	// DailyLimit caps fetches per UTC day. Zero means unlimited.
	DailyLimit int
}

// BackendStats is a point in time view of a pool slot.
type BackendStats struct {
	Name        string `json:"name"`
	Enabled     bool   `json:"enabled"`
	ActiveScans int    `json:"activeScans"`
	Concurrent  int    `json:"concurrent"`
	Available   int    `json:"available"`
	DailyScans  int    `json:"dailyScans"`
	DailyLimit  int    `json:"dailyLimit"`
}

type slot struct {
	Slot

	active int
	daily  int
}

func (s *slot) exhausted() bool {
	return s.DailyLimit > 0 && s.daily >= s.DailyLimit
}

func (s *slot) free() int {
	if !s.Enabled || s.exhausted() {
		return 0
	}

	return max(0, s.Concurrent-s.active)
}

// Pool schedules fetches across several backends.
//
// # Scheduling
//
// Acquire picks the enabled backend with the most free capacity, where free
// capacity is Concurrent minus in-flight fetches and is zero once the daily
// quota is used up. Ties go to the slot configured first.
//
// When no backend has free capacity but at least one still has daily budget,
// Acquire waits until a lease is released, the day rolls over or ctx is done.
// Waiters are woken by closing the current release channel, so every waiter
// re-evaluates after each release and no wake-up is lost between dropping
// the lock and starting to wait.
//
// When every enabled backend has exhausted its daily quota, Acquire fails fast
// with a RATE_LIMITED error wrapping a QuotaError that carries the next UTC
// midnight, so callers can snooze instead of blocking a worker for hours.
//
// Daily counters are reset on the first acquisition or stats call of a new
// UTC day.
type Pool struct {
	metrics *metrics.Metrics
	now     func() time.Time

	// mu protects all fields below it.
	mu    sync.Mutex
	slots []*slot
	day   string
	// released is closed and replaced whenever a lease is released.
	released chan struct{}
}

// NewPool creates a pool over slots. m may be nil.
func NewPool(m *metrics.Metrics, slots ...Slot) (*Pool, error) {
	p := &Pool{
		metrics:  m,
		now:      time.Now,
		released: make(chan struct{}),
	}

	var enabled int
	for _, s := range slots {
		if s.Enabled {
			if s.Backend == nil {
				return nil, fmt.Errorf("enabled slot %q has no backend", s.Name)
			}
			if s.Concurrent < 1 {
				return nil, fmt.Errorf("slot %q: concurrent must be at least 1", s.Backend.Name())
			}
			s.Name = s.Backend.Name()
			enabled++
		}
		p.slots = append(p.slots, &slot{Slot: s})
	}
	if enabled == 0 {
		return nil, errors.New("at least one browser backend must be enabled")
	}

	return p, nil
}

// Lease grants the right to run one fetch on a backend.
type Lease struct {
	pool *Pool
	slot *slot
	once sync.Once
}

// Backend returns the leased backend.
func (l *Lease) Backend() Backend { return l.slot.Backend }

// Release returns the lease to the pool. It is safe to call more than once.
func (l *Lease) Release() {
	l.once.Do(func() {
		l.pool.release(l.slot)
	})
}

// Acquire reserves a fetch slot on the best available backend, blocking while
// every backend is busy. See the Pool documentation for the exact semantics.
func (p *Pool) Acquire(ctx context.Context) (*Lease, error) {
	for {
		p.mu.Lock()
		now := p.now()
		p.rollover(now)

		if best := p.pick(); best != nil {
			best.active++
			best.daily++
			p.observe(best)
			logger.Debug(ctx, "reserved backend slot",
				zap.String("backend", best.Name),
				zap.Int("active", best.active),
				zap.Int("concurrent", best.Concurrent),
				zap.Int("daily", best.daily),
				zap.Int("dailyLimit", best.DailyLimit))
			p.mu.Unlock()

			return &Lease{pool: p, slot: best}, nil
		}

		resetAt := NextReset(now)
		if p.allExhausted() {
			p.mu.Unlock()

			return nil, serrors.Wrap(serrors.ErrRateLimited,
				&QuotaError{ResetAt: resetAt},
				"all browser backends exhausted their daily quota")
		}

		released := p.released
		p.mu.Unlock()

		logger.Debug(ctx, "waiting for backend slot", zap.Time("resetAt", resetAt))

		timer := time.NewTimer(resetAt.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()

			return nil, fmt.Errorf("timeout waiting for backend slot: %w", ctx.Err())
		case <-released:
			timer.Stop()
		case <-timer.C:
		}
	}
}

// Fetch runs one fetch on the leased backend and records its duration.
func (l *Lease) Fetch(ctx context.Context, url string) (*Page, error) {
	backend := l.slot.Backend
	start := time.Now()
	page, err := backend.Fetch(ctx, url)
	if l.pool.metrics != nil {
		l.pool.metrics.ScanDuration.WithLabelValues(backend.Name()).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return nil, fmt.Errorf("%s backend: %w", backend.Name(), err)
	}

	return page, nil
}

// Fetch acquires a lease, fetches url on the leased backend and releases the lease.
func (p *Pool) Fetch(ctx context.Context, url string) (*Page, string, error) {
	lease, err := p.Acquire(ctx)
	if err != nil {
		return nil, "", err
	}
	defer lease.Release()

	page, err := lease.Fetch(ctx, url)

	return page, lease.Backend().Name(), err
}

// Stats returns a snapshot of every slot in configuration order.
func (p *Pool) Stats() []BackendStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.rollover(p.now())

	out := make([]BackendStats, 0, len(p.slots))
	for _, s := range p.slots {
		out = append(out, BackendStats{
			Name:        s.Name,
			Enabled:     s.Enabled,
			ActiveScans: s.active,
			Concurrent:  s.Concurrent,
			Available:   s.free(),
			DailyScans:  s.daily,
			DailyLimit:  s.DailyLimit,
		})
	}

	return out
}

// Close closes every enabled backend.
func (p *Pool) Close() error {
	var errs []error
	for _, s := range p.slots {
		if s.Enabled {
			if err := s.Backend.Close(); err != nil {
				errs = append(errs, fmt.Errorf("could not close %s backend: %w", s.Name, err))
			}
		}
	}

	return errors.Join(errs...)
}

func (p *Pool) release(s *slot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if s.active > 0 {
		s.active--
	}
	p.observe(s)

	close(p.released)
	p.released = make(chan struct{})
}

// pick returns the slot with the most free capacity, or nil. Callers hold mu.
func (p *Pool) pick() *slot {
	var best *slot
	for _, s := range p.slots {
		if s.free() > 0 && (best == nil || s.free() > best.free()) {
			best = s
		}
	}

	return best
}

// allExhausted reports whether no enabled slot has daily budget left. Callers hold mu.
func (p *Pool) allExhausted() bool {
	for _, s := range p.slots {
		if s.Enabled && !s.exhausted() {
			return false
		}
	}

	return true
}

// rollover resets daily counters when the UTC day changed. Callers hold mu.
func (p *Pool) rollover(now time.Time) {
	day := now.UTC().Format(time.DateOnly)
	if day == p.day {
		return
	}

	p.day = day
	for _, s := range p.slots {
		s.daily = 0
		p.observe(s)
	}
}

func (p *Pool) observe(s *slot) {
	if p.metrics == nil || !s.Enabled {
		return
	}

	p.metrics.BackendActiveScans.WithLabelValues(s.Name).Set(float64(s.active))
	p.metrics.BackendDailyScans.WithLabelValues(s.Name).Set(float64(s.daily))
}
