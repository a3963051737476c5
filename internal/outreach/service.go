// Package outreach generates audit emails, checks them against the opt-out
// rules and sends them.
package outreach

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"wcagrep/internal/config"
	"wcagrep/internal/events"
	"wcagrep/internal/report"
	"wcagrep/internal/triggers"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/mailer"
	"wcagrep/pkg/metrics"
	"wcagrep/pkg/serrors"
	"wcagrep/pkg/storage"
)

// ReportGenerator renders compact audit reports.
type ReportGenerator interface {
	Compact(ctx context.Context, in report.Input) (*report.File, error)
}

type Options struct {
	// SenderName signs emails sent without an explicit sender.
	SenderName string
	PDFTimeout time.Duration
	Guard      GuardOptions
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		SenderName: cfg.Outreach.SenderName,
		PDFTimeout: cfg.Outreach.PDFTimeout,
		Guard: GuardOptions{
			UnsubscribeBaseURL:    cfg.Outreach.UnsubscribeBaseURL,
			MaxTouches:            cfg.Outreach.MaxTouchesPerProspect,
			MinTimeBetweenTouches: cfg.Outreach.MinTimeBetweenTouches,
		},
	}
}

// Email outcomes reported to metrics.
const (
	outcomeSent    = "sent"
	outcomeBlocked = "blocked"
	outcomeFailed  = "failed"
)

var whitespace = regexp.MustCompile(`\s+`)

type service struct {
	storage   storage.Storage
	generator *Generator
	guard     *Guard
	reports   ReportGenerator
	mailer    mailer.Sender
	publisher events.Publisher
	metrics   *metrics.Metrics
	options   Options
	now       func() time.Time
}

// New creates the outreach service. mail, publisher and m may be nil; without
// a mailer nothing is sent.
func New(st storage.Storage,
	generator *Generator,
	reports ReportGenerator,
	mail mailer.Sender,
	publisher events.Publisher,
	m *metrics.Metrics,
	options Options) Outreach {
	if publisher == nil {
		publisher = events.Nop{}
	}
	if options.SenderName == "" {
		options.SenderName = "The wcagrep team"
	}

	return &service{
		storage:   st,
		generator: generator,
		guard:     NewGuard(st, publisher, options.Guard),
		reports:   reports,
		mailer:    mail,
		publisher: publisher,
		metrics:   m,
		options:   options,
		now:       time.Now,
	}
}

func (s *service) Draft(ctx context.Context, scanJobID domain.ScanJobID, req DraftRequest) (*Draft, error) {
	job, err := s.completedScan(ctx, scanJobID, req)
	if err != nil {
		return nil, err
	}

	in := emailInput(*job, req)
	email, err := s.generator.ColdEmail(ctx, in)
	if err != nil {
		return nil, err
	}

	host := domain.HostOf(req.ProspectWebsite)
	verdict, err := s.guard.Validate(ctx, SendCheck{
		ProspectID: req.ProspectID,
		Email:      req.ProspectEmail,
		Domain:     host,
		Subject:    email.Subject,
	})
	if err != nil {
		return nil, err
	}

	unsubscribe := "[unsubscribe-" + host + "]"
	switch {
	case req.ProspectID != nil:
		unsubscribe = s.guard.UnsubscribeLink(*req.ProspectID)
	case req.ProspectEmail != "":
		unsubscribe = "[unsubscribe-" + req.ProspectEmail + "]"
	}

	return &Draft{
		ScanJobID:    scanJobID,
		Email:        DraftEmail{Email: email, Footer: email.Body + "\n\nUnsubscribe: " + unsubscribe},
		EthicalCheck: verdict,
		Summary:      s.generator.Summary(in),
	}, nil
}

func (s *service) Bundle(ctx context.Context, scanJobID domain.ScanJobID, req DraftRequest) (*Bundle, error) {
	job, err := s.completedScan(ctx, scanJobID, req)
	if err != nil {
		return nil, err
	}

	violations, err := s.storage.ViolationsByScanJob(ctx, scanJobID)
	if err != nil {
		return nil, fmt.Errorf("could not list violations: %w", err)
	}

	pdfCtx := ctx
	if s.options.PDFTimeout > 0 {
		var cancel context.CancelFunc
		pdfCtx, cancel = context.WithTimeout(ctx, s.options.PDFTimeout)
		defer cancel()
	}
	file, err := s.reports.Compact(pdfCtx, report.Input{
		ScanJob:        *job,
		Company:        req.ProspectCompany,
		Violations:     violations,
		IncludeRoadmap: true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not generate audit report: %w", err)
	}

	in := emailInput(*job, req)
	email, err := s.generator.ColdEmail(ctx, in)
	if err != nil {
		return nil, err
	}

	b := &Bundle{
		ScanJobID: scanJobID,
		Email:     DraftEmail{Email: email, Footer: email.Body},
		PDF: BundlePDF{
			URL:      file.URL,
			Filename: "audit-report-" + whitespace.ReplaceAllString(strings.ToLower(req.ProspectCompany), "-") + ".pdf",
		},
		Status:   BundleReady,
		Template: BundleTemplate,
	}

	if req.ProspectID == nil {
		return b, nil
	}

	verdict, err := s.guard.Validate(ctx, SendCheck{
		ProspectID:            req.ProspectID,
		Email:                 req.ProspectEmail,
		Domain:                domain.HostOf(req.ProspectWebsite),
		Subject:               email.Subject,
		HasExplicitPermission: req.HasExplicitPermission,
	})
	if err != nil {
		return nil, err
	}
	b.EthicalCheck = verdict
	b.Email.Footer = email.Body + "\n\nUnsubscribe: " + s.guard.UnsubscribeLink(*req.ProspectID)
	if !verdict.Allowed {
		b.Status = BundleBlocked

		return b, nil
	}

	if req.HasExplicitPermission {
		if _, err := s.guard.RecordSend(ctx, domain.EmailSend{
			ProspectID:        req.ProspectID,
			ScanJobID:         &scanJobID,
			Email:             req.ProspectEmail,
			Subject:           email.Subject,
			EmailType:         domain.EmailTypeCold,
			PermissionGranted: true,
		}); err != nil {
			return nil, err
		}
	}

	return b, nil
}

func (s *service) ScanCompleteTemplate(ctx context.Context, scanJobID domain.ScanJobID) (*Template, error) {
	job, err := s.storage.ScanJobByID(ctx, scanJobID)
	if err != nil {
		return nil, fmt.Errorf("could not get scan job: %w", err)
	}
	if job == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Scan not found")
	}

	return &Template{
		Template: TemplateFields{
			ProspectCompany: "[Company Name]",
			ProspectWebsite: job.URL,
			SenderName:      "[Your Name]",
			SenderTitle:     "[Your Title]",
			RecipientName:   "[Prospect Name]",
			PersonalNote:    "[Add personal note here]",
		},
		Endpoint:     "/api/email/with-pdf/" + scanJobID.String(),
		Method:       "POST",
		Instructions: "Fill in template fields and POST to endpoint above",
	}, nil
}

func (s *service) SendOutreach(ctx context.Context, id domain.ProspectID) (*domain.Prospect, error) {
	ctx = logger.WithFields(ctx, zap.Stringer("prospectID", id))

	p, err := s.storage.ProspectByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get prospect: %w", err)
	}
	if p == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Prospect not found")
	}

	if s.mailer == nil || p.Email == "" {
		logger.Info(ctx, "no mail delivery for prospect, only recording the status",
			zap.Bool("mailer", s.mailer != nil))

		return s.markSent(ctx, s.storage, id)
	}

	// The prospect row stays locked from the ethical check until the send is
	// recorded, so concurrent sends to one prospect see each other's touches.
	var (
		updated *domain.Prospect
		event   domain.Event
		touch   int
	)
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		p, err := tx.LockProspect(ctx, id)
		if err != nil {
			return err //nolint: wrapcheck
		}
		if p == nil {
			return serrors.With(serrors.ErrNotFound, "Prospect not found")
		}

		verdict, err := s.guard.validate(ctx, tx, SendCheck{ProspectID: &id, Email: p.Email, Domain: p.Website})
		if err != nil {
			return err
		}

		sends, err := tx.EmailSendsByProspect(ctx, id)
		if err != nil {
			return fmt.Errorf("could not list email sends: %w", err)
		}
		touch = len(sends) + 1
		emailType := domain.EmailTypeCold
		if touch > 1 {
			emailType = domain.EmailTypeFollowUp
		}

		if !verdict.Allowed {
			s.count(emailType, outcomeBlocked)

			return serrors.With(serrors.ErrForbidden, "Outreach blocked: %s", verdict.Reason)
		}

		job, err := tx.LatestScanJobByProspect(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get latest scan job: %w", err)
		}
		if job == nil || job.Status != domain.ScanJobStatusCompleted {
			return serrors.With(serrors.ErrBadRequest, "Prospect has no completed scan")
		}

		in := emailInput(*job, DraftRequest{
			ProspectCompany: p.Company,
			ProspectWebsite: p.Website,
			SenderName:      s.options.SenderName,
			RecipientName:   p.ContactName,
		})
		in.Industry = p.Industry
		email, err := s.generator.FollowUp(ctx, in, touch)
		if err != nil {
			return err
		}

		unsubscribe := s.guard.UnsubscribeLink(id)
		if err := s.mailer.Send(ctx, mailer.Message{
			To:             p.Email,
			ToName:         p.ContactName,
			Subject:        email.Subject,
			Text:           email.Body + "\n\nUnsubscribe: " + unsubscribe,
			UnsubscribeURL: unsubscribe,
		}); err != nil {
			s.count(emailType, outcomeFailed)

			return fmt.Errorf("could not send outreach email: %w", err)
		}
		s.count(emailType, outcomeSent)

		send, err := recordSend(ctx, tx, domain.EmailSend{
			ProspectID: &id,
			ScanJobID:  &job.ID,
			Email:      p.Email,
			Subject:    email.Subject,
			EmailType:  emailType,
		})
		if err != nil {
			return err
		}

		if updated, err = s.markSent(ctx, tx, id); err != nil {
			return err
		}

		event = domain.NewEvent(domain.EventOutreachSent, map[string]any{
			"email":        p.Email,
			"subject":      send.Subject,
			"touch_number": send.TouchNumber,
			"icp_score":    updated.ICPScore,
		})
		event.ProspectID = &id
		event.ScanJobID = &job.ID
		if _, err := triggers.Dispatch(ctx, tx, event); err != nil {
			return fmt.Errorf("could not dispatch triggers: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	logger.Info(ctx, "outreach email sent", zap.Int("touch", touch))
	s.publisher.Publish(ctx, event)

	return updated, nil
}

func (s *service) SendQuick(ctx context.Context, email, company string) error {
	email, company = strings.TrimSpace(email), strings.TrimSpace(company)
	if email == "" || company == "" {
		return serrors.With(serrors.ErrBadRequest, "Email and company name are required")
	}
	if err := domain.ValidateEmail(email); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "Invalid email address")
	}
	if s.mailer == nil {
		return serrors.With(serrors.ErrUnavailable, "Email delivery is not configured")
	}

	verdict, err := s.guard.Validate(ctx, SendCheck{Email: email, Domain: domain.EmailDomain(email)})
	if err != nil {
		return err
	}
	if !verdict.Allowed {
		s.count(domain.EmailTypeCold, outcomeBlocked)

		return serrors.With(serrors.ErrForbidden, "Outreach blocked: %s", verdict.Reason)
	}

	subject := "Free accessibility audit for " + company
	if err := s.mailer.Send(ctx, mailer.Message{
		To:      email,
		Subject: subject,
		Text: fmt.Sprintf("Hi there,\n\nWe help companies like %s make their websites accessible to everyone "+
			"and compliant with WCAG 2.1 AA. We would be happy to run a free audit of your website and walk "+
			"you through the results.\n\nJust reply to this email if you are interested.\n\nBest,\n%s",
			company, s.options.SenderName),
	}); err != nil {
		s.count(domain.EmailTypeCold, outcomeFailed)

		return fmt.Errorf("could not send outreach email: %w", err)
	}
	s.count(domain.EmailTypeCold, outcomeSent)

	if _, err := s.guard.RecordSend(ctx, domain.EmailSend{
		Email:     email,
		Subject:   subject,
		EmailType: domain.EmailTypeCold,
	}); err != nil {
		return err
	}

	return nil
}

func (s *service) RecordEngagement(ctx context.Context,
	id domain.EmailSendID,
	kind domain.EngagementKind) (*domain.EmailSend, error) {
	if !kind.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "Invalid engagement kind: %s", kind)
	}

	send, err := s.storage.RecordEngagement(ctx, id, kind, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("could not record engagement: %w", err)
	}
	if send == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Email send not found")
	}

	// a reply or a booked demo makes the prospect an active conversation
	if kind != domain.EngagementOpened && send.ProspectID != nil {
		p, err := s.storage.ProspectByID(ctx, *send.ProspectID)
		if err != nil {
			return nil, fmt.Errorf("could not get prospect: %w", err)
		}
		if p != nil && p.Status == domain.ProspectStatusOutreachSent {
			active := domain.ProspectStatusActive
			if _, err := s.storage.UpdateProspect(ctx, p.ID, domain.ProspectInput{Status: &active}); err != nil {
				return nil, fmt.Errorf("could not activate prospect: %w", err)
			}
		}
	}

	return send, nil
}

func (s *service) ProcessUnsubscribe(ctx context.Context, id domain.ProspectID, reason string) error {
	return s.guard.ProcessUnsubscribe(ctx, id, reason)
}

func (s *service) AddToDoNotContact(ctx context.Context, entry domain.DoNotContact) (*domain.DoNotContact, error) {
	return s.guard.AddToDoNotContact(ctx, entry)
}

func (s *service) DoNotContactList(ctx context.Context) ([]domain.DoNotContact, error) {
	return s.guard.DoNotContactList(ctx)
}

func (s *service) Metrics(ctx context.Context) (*domain.OutreachMetrics, error) {
	return s.guard.Metrics(ctx)
}

// completedScan validates a draft request and loads its scan job, which must
// be completed.
func (s *service) completedScan(ctx context.Context, id domain.ScanJobID, req DraftRequest) (*domain.ScanJob, error) {
	if strings.TrimSpace(req.ProspectCompany) == "" ||
		strings.TrimSpace(req.ProspectWebsite) == "" ||
		strings.TrimSpace(req.SenderName) == "" {
		return nil, serrors.With(serrors.ErrBadRequest,
			"Missing required fields: scanJobId, prospectCompany, prospectWebsite, and senderName are required")
	}
	if req.ProspectID == nil && req.ProspectEmail == "" {
		return nil, serrors.With(serrors.ErrBadRequest,
			"Either prospectId or prospectEmail is required for ethical validation")
	}
	if err := domain.ValidateWebsite(req.ProspectWebsite); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid prospectWebsite")
	}

	job, err := s.storage.ScanJobByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get scan job: %w", err)
	}
	switch {
	case job == nil:
		return nil, serrors.With(serrors.ErrNotFound,
			"Scan job not found. Please verify the scan job ID or run a new scan.")
	case job.Status == domain.ScanJobStatusFailed:
		return nil, serrors.With(serrors.ErrBadRequest, "Cannot generate email from a failed scan. Please re-run the scan.")
	case job.Status != domain.ScanJobStatusCompleted:
		return nil, serrors.With(serrors.ErrBadRequest,
			"Scan is still %s. Wait for completion or check scan status.", job.Status)
	}

	return job, nil
}

func (s *service) markSent(ctx context.Context, st storage.AllStorage, id domain.ProspectID) (*domain.Prospect, error) {
	sent := domain.ProspectStatusOutreachSent
	updated, err := st.UpdateProspect(ctx, id, domain.ProspectInput{Status: &sent})
	if err != nil {
		return nil, fmt.Errorf("could not update prospect status: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Prospect not found")
	}

	return updated, nil
}

func (s *service) count(t domain.EmailType, outcome string) {
	if s.metrics != nil {
		s.metrics.EmailsTotal.WithLabelValues(string(t), outcome).Inc()
	}
}

func emailInput(job domain.ScanJob, req DraftRequest) EmailInput {
	return EmailInput{
		Company:        req.ProspectCompany,
		Website:        req.ProspectWebsite,
		WCAGScore:      job.Score(),
		CriticalIssues: job.CriticalCount,
		LegalRisk:      job.Counts().LegalRisk(),
		SenderName:     req.SenderName,
		SenderTitle:    req.SenderTitle,
		RecipientName:  req.RecipientName,
		PersonalNote:   req.PersonalNote,
	}
}
