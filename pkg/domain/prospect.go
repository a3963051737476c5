package domain

import (
	"errors"
	"fmt"
	"math"
	"net/mail"
	"net/url"
	"strings"
	"time"
)

// ProspectStatus is the position of a prospect in the outreach funnel.
type ProspectStatus string

const (
	ProspectStatusDiscovered   ProspectStatus = "discovered"
	ProspectStatusQueued       ProspectStatus = "queued"
	ProspectStatusScanning     ProspectStatus = "scanning"
	ProspectStatusScanned      ProspectStatus = "scanned"
	ProspectStatusOutreachSent ProspectStatus = "outreach_sent"
	ProspectStatusActive       ProspectStatus = "active"
	ProspectStatusConverted    ProspectStatus = "converted"
	ProspectStatusRejected     ProspectStatus = "rejected"
)

// Valid reports whether s is a known prospect status.
func (s ProspectStatus) Valid() bool {
	switch s {
	case ProspectStatusDiscovered, ProspectStatusQueued, ProspectStatusScanning, ProspectStatusScanned,
		ProspectStatusOutreachSent, ProspectStatusActive, ProspectStatusConverted, ProspectStatusRejected:
		return true
	}

	return false
}

// RiskLevel is the estimated legal exposure of a prospect's website.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low-risk"
	RiskLevelMedium RiskLevel = "medium-risk"
	RiskLevelHigh   RiskLevel = "high-risk"
)

// Valid reports whether r is a known risk level.
func (r RiskLevel) Valid() bool {
	return r == RiskLevelLow || r == RiskLevelMedium || r == RiskLevelHigh
}

const (
	// DefaultICPScore is assigned to prospects created without a score.
	DefaultICPScore = 50
	// MaxICPScore is the upper bound of the ICP scale.
	MaxICPScore = 100
)

// Prospect is a company whose website is a candidate for an accessibility audit.
type Prospect struct {
	ID          ProspectID     `json:"id"`
	Company     string         `json:"company"`
	Website     string         `json:"website"`
	Industry    string         `json:"industry"`
	ICPScore    int            `json:"icpScore"`
	Status      ProspectStatus `json:"status"`
	RiskLevel   RiskLevel      `json:"riskLevel"`
	Email       string         `json:"email,omitempty"`
	ContactName string         `json:"contactName,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt,omitzero"`
}

// Host returns the lower-cased host of the prospect website, without a
// leading "www.".
func (p Prospect) Host() string {
	return HostOf(p.Website)
}

// Validate checks that a fully populated prospect is consistent.
func (p Prospect) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Company) == "" {
		errs = append(errs, errors.New("company is required"))
	}
	if err := ValidateWebsite(p.Website); err != nil {
		errs = append(errs, err)
	}
	if p.ICPScore < 0 || p.ICPScore > MaxICPScore {
		errs = append(errs, fmt.Errorf("icpScore must be between 0 and %d", MaxICPScore))
	}
	if !p.Status.Valid() {
		errs = append(errs, fmt.Errorf("unknown status %q", p.Status))
	}
	if !p.RiskLevel.Valid() {
		errs = append(errs, fmt.Errorf("unknown riskLevel %q", p.RiskLevel))
	}
	if p.Email != "" {
		if err := ValidateEmail(p.Email); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// ProspectInput carries the client supplied fields of a prospect. Nil fields
// are left untouched by Apply.
type ProspectInput struct {
	Company     *string         `json:"company"`
	Website     *string         `json:"website"`
	Industry    *string         `json:"industry"`
	ICPScore    *int            `json:"icpScore"`
	Status      *ProspectStatus `json:"status"`
	RiskLevel   *RiskLevel      `json:"riskLevel"`
	Email       *string         `json:"email"`
	ContactName *string         `json:"contactName"`
}

// Empty reports whether no field is set.
func (in ProspectInput) Empty() bool {
	return in.Company == nil && in.Website == nil && in.Industry == nil && in.ICPScore == nil &&
		in.Status == nil && in.RiskLevel == nil && in.Email == nil && in.ContactName == nil
}

// Apply copies every non-nil field into p.
func (in ProspectInput) Apply(p *Prospect) {
	if in.Company != nil {
		p.Company = strings.TrimSpace(*in.Company)
	}
	if in.Website != nil {
		p.Website = strings.TrimSpace(*in.Website)
	}
	if in.Industry != nil {
		p.Industry = strings.TrimSpace(*in.Industry)
	}
	if in.ICPScore != nil {
		p.ICPScore = *in.ICPScore
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.RiskLevel != nil {
		p.RiskLevel = *in.RiskLevel
	}
	if in.Email != nil {
		p.Email = strings.TrimSpace(*in.Email)
	}
	if in.ContactName != nil {
		p.ContactName = strings.TrimSpace(*in.ContactName)
	}
}

// NewProspect builds a prospect from input, filling in the defaults of a
// freshly discovered prospect.
func NewProspect(in ProspectInput) Prospect {
	p := Prospect{
		ICPScore:  DefaultICPScore,
		Status:    ProspectStatusDiscovered,
		RiskLevel: RiskLevelMedium,
	}
	in.Apply(&p)

	return p
}

// RecalculateICP perturbs score by a value in [-5, +5) derived from r, which
// must be in [0, 1), and clamps the result to the ICP scale.
func RecalculateICP(score int, r float64) int {
	next := int(math.Round(float64(score) + r*10 - 5))

	return max(0, min(MaxICPScore, next))
}

// ValidateWebsite checks that raw is an absolute http(s) URL with a host.
func ValidateWebsite(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid website %q", raw)
	}

	return nil
}

// ValidateEmail checks that raw is a bare email address.
func ValidateEmail(raw string) error {
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw {
		return fmt.Errorf("invalid email %q", raw)
	}

	return nil
}

// HostOf returns the lower-cased host of raw without port or a leading "www.".
// Bare domains are accepted as well as URLs. It returns an empty string when no
// host can be derived.
func HostOf(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// EmailDomain returns the lower-cased domain part of an email address.
func EmailDomain(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return ""
	}

	return strings.ToLower(email[at+1:])
}
