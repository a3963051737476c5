package browser

import "time"

// SetClock replaces the time source of p.
func SetClock(p *Pool, now func() time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.now = now
}
