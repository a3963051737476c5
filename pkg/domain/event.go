package domain

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// EventType names something that happened in the system.
type EventType string

const (
	EventScanQueued           EventType = "scan.queued"
	EventScanRunning          EventType = "scan.running"
	EventScanCompleted        EventType = "scan.completed"
	EventScanFailed           EventType = "scan.failed"
	EventProspectUnsubscribed EventType = "prospect.unsubscribed"
	EventOutreachSent         EventType = "outreach.sent"
)

// Event is broadcast to live subscribers and evaluated against triggers.
type Event struct {
	ID         string         `json:"id"`
	Type       EventType      `json:"type"`
	ScanJobID  *ScanJobID     `json:"scanJobId,omitempty"`
	ProspectID *ProspectID    `json:"prospectId,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
	At         time.Time      `json:"at"`
}

// NewEvent stamps a new event with a ULID and the current time.
func NewEvent(t EventType, data map[string]any) Event {
	return Event{
		ID:   ulid.Make().String(),
		Type: t,
		Data: data,
		At:   time.Now().UTC(),
	}
}

// ScanEvent builds an event describing job.
func ScanEvent(t EventType, job ScanJob) Event {
	data := map[string]any{
		"url":    job.URL,
		"status": string(job.Status),
	}
	if job.Status == ScanJobStatusCompleted {
		data["wcag_score"] = job.Score()
		data["critical_count"] = job.CriticalCount
		data["serious_count"] = job.SeriousCount
	}
	if job.LastError != "" {
		data["error"] = job.LastError
	}

	e := NewEvent(t, data)
	id := job.ID
	e.ScanJobID = &id
	e.ProspectID = job.ProspectID

	return e
}

// Number returns the numeric value stored under key, accepting the numeric
// types produced by both Go code and JSON decoding.
func (e Event) Number(key string) (float64, bool) {
	switch v := e.Data[key].(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
