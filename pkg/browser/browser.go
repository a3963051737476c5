// Package browser defines page fetching backends and a Pool that schedules
// fetches across them while enforcing per-backend concurrency and daily quotas.
package browser

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Page is a fetched web page.
type Page struct {
	// RequestedURL is the URL passed to Fetch.
	RequestedURL string
	// FinalURL is the URL after redirects.
	FinalURL string
	// StatusCode is the HTTP status of the final response. Backends that cannot
	// observe it leave it at zero.
	StatusCode int
	HTML       string
	Title      string
	LoadTime   time.Duration
}

// Backend fetches rendered page sources.
//
//go:generate mockgen -package mockbrowser -destination=mock/mockbrowser.go wcagrep/pkg/browser Backend
type Backend interface {
	// Name identifies the backend in stats, metrics and stored scan jobs.
	Name() string
	// Fetch loads url and returns its source. Failures are reported as semantic
	// errors: BAD_REQUEST for pages that cannot be audited, UNAVAILABLE for
	// transient upstream failures, TIMEOUT when ctx expires and RATE_LIMITED
	// when the site throttles us.
	Fetch(ctx context.Context, url string) (*Page, error)
	// Close releases the resources of the backend.
	Close() error
}

// QuotaError carries the time the daily quota of the pool resets. It is
// wrapped in a serrors.ErrRateLimited error. A page that throttles us is rate
// limited too but never a QuotaError.
type QuotaError struct {
	ResetAt time.Time
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("quota resets at %s", e.ResetAt.UTC().Format(time.RFC3339))
}

// QuotaExhausted reports whether err is the pool running out of daily quota
// and returns the reset time.
func QuotaExhausted(err error) (time.Time, bool) {
	var quota *QuotaError
	if !errors.As(err, &quota) {
		return time.Time{}, false
	}

	return quota.ResetAt, true
}

// NextReset returns the next UTC midnight after now, when daily quotas reset.
func NextReset(now time.Time) time.Time {
	y, m, d := now.UTC().Date()

	return time.Date(y, m, d+1, 0, 0, 0, 0, time.UTC)
}
