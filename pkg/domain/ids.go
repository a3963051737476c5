package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ProspectID uniquely identifies a prospect.
type ProspectID uuid.UUID

// ScanJobID uniquely identifies a scan job.
type ScanJobID uuid.UUID

// ViolationID uniquely identifies a stored accessibility violation.
type ViolationID uuid.UUID

// TriggerID uniquely identifies a notification trigger.
type TriggerID uuid.UUID

// ClientID uniquely identifies an API client.
type ClientID uuid.UUID

// DoNotContactID uniquely identifies a do-not-contact entry.
type DoNotContactID uuid.UUID

// EmailSendID uniquely identifies a recorded outreach email.
type EmailSendID uuid.UUID

// OperatorID identifies the dashboard operator behind a bearer token.
type OperatorID uuid.UUID

func (id ProspectID) String() string     { return uuid.UUID(id).String() }
func (id ScanJobID) String() string      { return uuid.UUID(id).String() }
func (id ViolationID) String() string    { return uuid.UUID(id).String() }
func (id TriggerID) String() string      { return uuid.UUID(id).String() }
func (id ClientID) String() string       { return uuid.UUID(id).String() }
func (id DoNotContactID) String() string { return uuid.UUID(id).String() }
func (id EmailSendID) String() string    { return uuid.UUID(id).String() }
func (id OperatorID) String() string     { return uuid.UUID(id).String() }

func (id ProspectID) MarshalText() ([]byte, error)     { return uuid.UUID(id).MarshalText() }
func (id ScanJobID) MarshalText() ([]byte, error)      { return uuid.UUID(id).MarshalText() }
func (id ViolationID) MarshalText() ([]byte, error)    { return uuid.UUID(id).MarshalText() }
func (id TriggerID) MarshalText() ([]byte, error)      { return uuid.UUID(id).MarshalText() }
func (id ClientID) MarshalText() ([]byte, error)       { return uuid.UUID(id).MarshalText() }
func (id DoNotContactID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id EmailSendID) MarshalText() ([]byte, error)    { return uuid.UUID(id).MarshalText() }

func (id *ProspectID) UnmarshalText(b []byte) error     { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *ScanJobID) UnmarshalText(b []byte) error      { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *ViolationID) UnmarshalText(b []byte) error    { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *TriggerID) UnmarshalText(b []byte) error      { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *ClientID) UnmarshalText(b []byte) error       { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *DoNotContactID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *EmailSendID) UnmarshalText(b []byte) error    { return (*uuid.UUID)(id).UnmarshalText(b) }

// ParseUUID parses s as a canonical, hyphenated UUID. Unlike uuid.Parse it
// rejects the URN and braced forms so the value is safe to use as a path
// segment on disk.
func ParseUUID(s string) (uuid.UUID, error) {
	if len(s) != 36 {
		return uuid.Nil, fmt.Errorf("invalid UUID length: %d", len(s))
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid UUID: %w", err)
	}
	if u.String() != strings.ToLower(s) {
		return uuid.Nil, fmt.Errorf("non canonical UUID: %q", s)
	}

	return u, nil
}

// ParseProspectID parses a canonical UUID string into a ProspectID.
func ParseProspectID(s string) (ProspectID, error) {
	u, err := ParseUUID(s)

	return ProspectID(u), err
}

// ParseScanJobID parses a canonical UUID string into a ScanJobID.
func ParseScanJobID(s string) (ScanJobID, error) {
	u, err := ParseUUID(s)

	return ScanJobID(u), err
}

// ParseTriggerID parses a canonical UUID string into a TriggerID.
func ParseTriggerID(s string) (TriggerID, error) {
	u, err := ParseUUID(s)

	return TriggerID(u), err
}

// ParseClientID parses a canonical UUID string into a ClientID.
func ParseClientID(s string) (ClientID, error) {
	u, err := ParseUUID(s)

	return ClientID(u), err
}

// ParseEmailSendID parses a canonical UUID string into an EmailSendID.
func ParseEmailSendID(s string) (EmailSendID, error) {
	u, err := ParseUUID(s)

	return EmailSendID(u), err
}
