package outreach

import (
	"context"

	"wcagrep/pkg/domain"
)

// DraftRequest describes the prospect and sender of an outreach email.
type DraftRequest struct {
	ProspectCompany string             `json:"prospectCompany"`
	ProspectWebsite string             `json:"prospectWebsite"`
	ProspectID      *domain.ProspectID `json:"prospectId"`
	ProspectEmail   string             `json:"prospectEmail"`
	SenderName      string             `json:"senderName"`
	SenderTitle     string             `json:"senderTitle"`
	RecipientName   string             `json:"recipientName"`
	PersonalNote    string             `json:"personalNote"`
	// HasExplicitPermission records that the recipient asked for the report.
	// Only bundles use it.
	HasExplicitPermission bool `json:"hasExplicitPermission"`
}

// DraftEmail is a generated email with its unsubscribe footer.
type DraftEmail struct {
	Email

	Footer string `json:"footer"`
}

// Draft is an email generated from a completed scan.
type Draft struct {
	ScanJobID    domain.ScanJobID `json:"scanJobId"`
	Email        DraftEmail       `json:"email"`
	EthicalCheck *Verdict         `json:"ethicalCheck"`
	Summary      Summary          `json:"summary"`
}

// Bundle statuses.
const (
	BundleReady   = "ready-to-send"
	BundleBlocked = "blocked-by-ethics"
)

// BundleTemplate names the template used for bundles.
const BundleTemplate = "cold-email-with-audit-report"

type BundlePDF struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Bundle is an email with the compact audit report attached.
type Bundle struct {
	ScanJobID domain.ScanJobID `json:"scanJobId"`
	Email     DraftEmail       `json:"email"`
	// EthicalCheck is only run when the request names a prospect.
	EthicalCheck *Verdict `json:"ethicalCheck"`
	PDF          BundlePDF `json:"pdf"`
	Status       string    `json:"status"`
	Template     string    `json:"template"`
}

// TemplateFields are the placeholders of a scan complete email.
type TemplateFields struct {
	ProspectCompany string `json:"prospectCompany"`
	ProspectWebsite string `json:"prospectWebsite"`
	SenderName      string `json:"senderName"`
	SenderTitle     string `json:"senderTitle"`
	RecipientName   string `json:"recipientName"`
	PersonalNote    string `json:"personalNote"`
}

// Template tells a client how to request a bundle for a scan.
type Template struct {
	Template     TemplateFields `json:"template"`
	Endpoint     string         `json:"endpoint"`
	Method       string         `json:"method"`
	Instructions string         `json:"instructions"`
}

// Outreach generates and sends outreach emails while enforcing the opt-out
// rules.
//
//go:generate mockgen -package mockoutreach -source=interface.go -destination=mock/mockoutreach.go *
type Outreach interface {
	// Draft generates an email for a completed scan. The ethical check is
	// informational.
	Draft(ctx context.Context, scanJobID domain.ScanJobID, req DraftRequest) (*Draft, error)
	// Bundle generates an email together with the compact PDF report.
	Bundle(ctx context.Context, scanJobID domain.ScanJobID, req DraftRequest) (*Bundle, error)
	ScanCompleteTemplate(ctx context.Context, scanJobID domain.ScanJobID) (*Template, error)
	// SendOutreach emails a prospect its audit, when delivery is configured
	// and the guard allows it, and moves it to outreach_sent.
	SendOutreach(ctx context.Context, id domain.ProspectID) (*domain.Prospect, error)
	// SendQuick sends the generic outreach email to an address.
	SendQuick(ctx context.Context, email, company string) error
	RecordEngagement(ctx context.Context, id domain.EmailSendID, kind domain.EngagementKind) (*domain.EmailSend, error)

	ProcessUnsubscribe(ctx context.Context, id domain.ProspectID, reason string) error
	AddToDoNotContact(ctx context.Context, entry domain.DoNotContact) (*domain.DoNotContact, error)
	DoNotContactList(ctx context.Context) ([]domain.DoNotContact, error)
	Metrics(ctx context.Context) (*domain.OutreachMetrics, error)
}
