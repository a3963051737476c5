package domain

import (
	"time"
)

// ScanJobStatus represents the lifecycle state of a scan job.
type ScanJobStatus string

const (
	// ScanJobStatusPending indicates the job is queued and waiting for a worker,
	// either for its first attempt or for a retry.
	ScanJobStatusPending ScanJobStatus = "pending"
	// ScanJobStatusRunning indicates a worker is fetching and analyzing the page.
	ScanJobStatusRunning ScanJobStatus = "running"
	// ScanJobStatusCompleted indicates the audit finished and results are stored.
	ScanJobStatusCompleted ScanJobStatus = "completed"
	// ScanJobStatusFailed indicates every attempt failed; see LastError.
	ScanJobStatusFailed ScanJobStatus = "failed"
)

// ScanJob is a persisted audit request and its lifecycle status.
type ScanJob struct {
	ID         ScanJobID     `json:"id"`
	URL        string        `json:"url"`
	ProspectID *ProspectID   `json:"prospectId,omitempty"`
	Status     ScanJobStatus `json:"status"`

	WCAGScore     *int `json:"wcagScore,omitempty"`
	CriticalCount int  `json:"criticalCount"`
	SeriousCount  int  `json:"seriousCount"`
	ModerateCount int  `json:"moderateCount"`
	MinorCount    int  `json:"minorCount"`

	// OriginalHTML is the page source the audit ran against. It is kept out of
	// the JSON representation because it can be large.
	OriginalHTML string `json:"-"`
	PageTitle    string `json:"pageTitle,omitempty"`
	Backend      string `json:"backend,omitempty"`

	Attempts  int    `json:"attempts"`
	LastError string `json:"lastError,omitempty"`

	CompanyName   string `json:"companyName,omitempty"`
	ProspectEmail string `json:"prospectEmail,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt,omitzero"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Counts returns the per-severity violation counts of the job.
func (j ScanJob) Counts() SeverityCounts {
	return SeverityCounts{
		Critical: j.CriticalCount,
		Serious:  j.SeriousCount,
		Moderate: j.ModerateCount,
		Minor:    j.MinorCount,
	}
}

// Score returns the stored WCAG score, or the score derived from the counts
// when none was stored.
func (j ScanJob) Score() int {
	if j.WCAGScore != nil {
		return *j.WCAGScore
	}

	return j.Counts().Score()
}

// AuditReport is a completed scan job joined with its prospect.
type AuditReport struct {
	ScanJob

	Company string `json:"company,omitempty"`
	Website string `json:"website,omitempty"`
}

// LegalRisk is the coarse legal exposure derived from critical violations.
type LegalRisk string

const (
	LegalRiskLow    LegalRisk = "low"
	LegalRiskMedium LegalRisk = "medium"
	LegalRiskHigh   LegalRisk = "high"
)

// RiskLevel maps the legal risk to the prospect risk level.
func (l LegalRisk) RiskLevel() RiskLevel {
	switch l {
	case LegalRiskHigh:
		return RiskLevelHigh
	case LegalRiskMedium:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// SeverityCounts aggregates violations per severity.
type SeverityCounts struct {
	Critical int `json:"critical"`
	Serious  int `json:"serious"`
	Moderate int `json:"moderate"`
	Minor    int `json:"minor"`
}

// Total returns the number of violations across all severities.
func (c SeverityCounts) Total() int {
	return c.Critical + c.Serious + c.Moderate + c.Minor
}

// Add increments the counter matching s.
func (c *SeverityCounts) Add(s Severity) {
	switch s {
	case SeverityCritical:
		c.Critical++
	case SeveritySerious:
		c.Serious++
	case SeverityModerate:
		c.Moderate++
	case SeverityMinor:
		c.Minor++
	}
}

// Score returns the WCAG score: 100 minus the weighted violation count,
// clamped to [0, 100].
func (c SeverityCounts) Score() int {
	penalty := c.Critical*SeverityCritical.Weight() +
		c.Serious*SeveritySerious.Weight() +
		c.Moderate*SeverityModerate.Weight() +
		c.Minor*SeverityMinor.Weight()

	return max(0, min(100, 100-penalty))
}

// LegalRisk classifies the counts: more than five critical violations is high,
// any critical violation is medium.
func (c SeverityCounts) LegalRisk() LegalRisk {
	switch {
	case c.Critical > 5:
		return LegalRiskHigh
	case c.Critical > 0:
		return LegalRiskMedium
	default:
		return LegalRiskLow
	}
}

// CountViolations aggregates the severities of vs.
func CountViolations(vs []Violation) SeverityCounts {
	var c SeverityCounts
	for _, v := range vs {
		c.Add(v.Severity)
	}

	return c
}
