package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TriggerType selects the delivery channel of a trigger.
type TriggerType string

const (
	TriggerTypeEmail   TriggerType = "email"
	TriggerTypeSlack   TriggerType = "slack"
	TriggerTypeWebhook TriggerType = "webhook"
)

// Valid reports whether t is a known trigger type.
func (t TriggerType) Valid() bool {
	return t == TriggerTypeEmail || t == TriggerTypeSlack || t == TriggerTypeWebhook
}

// Trigger notifies an external channel when an event matches its condition.
type Trigger struct {
	ID        TriggerID      `json:"id"`
	Name      string         `json:"name"`
	Type      TriggerType    `json:"type"`
	Condition string         `json:"condition"`
	IsActive  bool           `json:"isActive"`
	Config    map[string]any `json:"config"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt,omitzero"`
}

// ConfigString returns the string value stored under key in the trigger
// config, or an empty string.
func (t Trigger) ConfigString(key string) string {
	s, _ := t.Config[key].(string)

	return s
}

// Validate checks the static fields of a trigger. The condition grammar is
// checked by the triggers package.
func (t Trigger) Validate() error {
	var errs []error
	if strings.TrimSpace(t.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if !t.Type.Valid() {
		errs = append(errs, fmt.Errorf("unknown type %q", t.Type))
	}
	if strings.TrimSpace(t.Condition) == "" {
		errs = append(errs, errors.New("condition is required"))
	}

	return errors.Join(errs...)
}

// TriggerInput carries the client supplied fields of a trigger.
type TriggerInput struct {
	Name      *string        `json:"name"`
	Type      *TriggerType   `json:"type"`
	Condition *string        `json:"condition"`
	IsActive  *bool          `json:"isActive"`
	Config    map[string]any `json:"config"`
}

// Apply copies every set field into t.
func (in TriggerInput) Apply(t *Trigger) {
	if in.Name != nil {
		t.Name = strings.TrimSpace(*in.Name)
	}
	if in.Type != nil {
		t.Type = *in.Type
	}
	if in.Condition != nil {
		t.Condition = strings.TrimSpace(*in.Condition)
	}
	if in.IsActive != nil {
		t.IsActive = *in.IsActive
	}
	if in.Config != nil {
		t.Config = in.Config
	}
}

// Client is an external consumer of the API authenticated by an API key.
type Client struct {
	ID      ClientID `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Company string   `json:"company,omitempty"`
	// APIKey is never serialized; it is returned once on creation.
	APIKey    string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// Validate checks the client fields.
func (c Client) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if err := ValidateEmail(c.Email); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ClientInput carries the client supplied fields of an API client.
type ClientInput struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Company *string `json:"company"`
	APIKey  *string `json:"apiKey"`
}

// Apply copies every set field into c.
func (in ClientInput) Apply(c *Client) {
	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		c.Email = strings.TrimSpace(*in.Email)
	}
	if in.Company != nil {
		c.Company = strings.TrimSpace(*in.Company)
	}
	if in.APIKey != nil {
		c.APIKey = *in.APIKey
	}
}

// DoNotContact is an opt-out record preventing outreach to an email, a
// domain or a prospect.
type DoNotContact struct {
	ID         DoNotContactID `json:"id"`
	Email      string         `json:"email,omitempty"`
	Domain     string         `json:"domain,omitempty"`
	ProspectID *ProspectID    `json:"prospectId,omitempty"`
	Reason     string         `json:"reason"`
	Permanent  bool           `json:"permanent"`
	CreatedAt  time.Time      `json:"createdAt"`
}

var (
	// ErrDoNotContactTarget is returned when an entry names no email, domain or prospect.
	ErrDoNotContactTarget = errors.New("Must provide email, domain, or prospectId") //nolint: stylecheck
	// ErrDoNotContactReason is returned when an entry has no reason.
	ErrDoNotContactReason = errors.New("Reason is required") //nolint: stylecheck
)

// Validate checks that the entry targets something and carries a reason.
func (d DoNotContact) Validate() error {
	if d.Email == "" && d.Domain == "" && d.ProspectID == nil {
		return ErrDoNotContactTarget
	}
	if strings.TrimSpace(d.Reason) == "" {
		return ErrDoNotContactReason
	}

	return nil
}

// EmailType distinguishes first contact from follow-ups.
type EmailType string

const (
	EmailTypeCold     EmailType = "cold"
	EmailTypeFollowUp EmailType = "follow_up"
)

// EngagementKind is a recipient reaction to an outreach email.
type EngagementKind string

const (
	EngagementOpened     EngagementKind = "opened"
	EngagementReplied    EngagementKind = "replied"
	EngagementDemoBooked EngagementKind = "demo_booked"
)

// Valid reports whether k is a known engagement kind.
func (k EngagementKind) Valid() bool {
	return k == EngagementOpened || k == EngagementReplied || k == EngagementDemoBooked
}

// EmailSend records one outreach email; the sends of a prospect form its
// email cadence.
type EmailSend struct {
	ID                EmailSendID `json:"id"`
	ProspectID        *ProspectID `json:"prospectId,omitempty"`
	ScanJobID         *ScanJobID  `json:"scanJobId,omitempty"`
	Email             string      `json:"email"`
	Subject           string      `json:"subject"`
	EmailType         EmailType   `json:"emailType"`
	TouchNumber       int         `json:"touchNumber"`
	PermissionGranted bool        `json:"permissionGranted"`
	OpenedAt          *time.Time  `json:"openedAt,omitempty"`
	RepliedAt         *time.Time  `json:"repliedAt,omitempty"`
	DemoBookedAt      *time.Time  `json:"demoBookedAt,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
}

// AnalyticsDay aggregates outreach activity for one calendar day (UTC).
type AnalyticsDay struct {
	Date                time.Time `json:"date"`
	EmailsSent          int       `json:"emailsSent"`
	EmailsOpened        int       `json:"emailsOpened"`
	EmailsReplied       int       `json:"emailsReplied"`
	DemoBookings        int       `json:"demoBookings"`
	ProspectsDiscovered int       `json:"prospectsDiscovered"`
	ScansCompleted      int       `json:"scansCompleted"`
}

// OutreachMetrics summarizes ethical outreach activity.
type OutreachMetrics struct {
	TotalSent              int `json:"totalSent"`
	PermissionGrantedSends int `json:"permissionGrantedSends"`
	Unsubscribes           int `json:"unsubscribes"`
	DoNotContactEntries    int `json:"doNotContactEntries"`
}
