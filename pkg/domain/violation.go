package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Severity is the impact of an accessibility violation.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeveritySerious  Severity = "serious"
	SeverityModerate Severity = "moderate"
	SeverityMinor    Severity = "minor"
)

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	return s == SeverityCritical || s == SeveritySerious || s == SeverityModerate || s == SeverityMinor
}

// Weight is the score penalty of one violation of this severity.
func (s Severity) Weight() int {
	switch s {
	case SeverityCritical:
		return 10
	case SeveritySerious:
		return 5
	case SeverityModerate:
		return 2
	case SeverityMinor:
		return 1
	default:
		return 0
	}
}

// Violation is one accessibility problem found on a page.
type Violation struct {
	ID             ViolationID `json:"id"`
	ProspectID     *ProspectID `json:"prospectId,omitempty"`
	ScanJobID      *ScanJobID  `json:"scanJobId,omitempty"`
	Type           string      `json:"type"`
	Severity       Severity    `json:"severity"`
	Element        string      `json:"element,omitempty"`
	Recommendation string      `json:"recommendation,omitempty"`
	WCAGCriterion  string      `json:"wcagCriterion,omitempty"`
	CreatedAt      time.Time   `json:"createdAt,omitzero"`
}

// Validate checks a manually reported violation.
func (v Violation) Validate() error {
	var errs []error
	if v.ProspectID == nil {
		errs = append(errs, errors.New("prospectId is required"))
	}
	if strings.TrimSpace(v.Type) == "" {
		errs = append(errs, errors.New("type is required"))
	}
	if !v.Severity.Valid() {
		errs = append(errs, fmt.Errorf("unknown severity %q", v.Severity))
	}

	return errors.Join(errs...)
}
