package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wcagrep/pkg/domain"
)

// TODO: use https://github.com/jmattheis/goverter for converting

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func nullTimePtr(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time

	return &v
}

func nullUUID[T ~[16]byte](id *T) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}

	return uuid.NullUUID{UUID: uuid.UUID(*id), Valid: true}
}

func idPtr[T ~[16]byte](id uuid.NullUUID) *T {
	if !id.Valid {
		return nil
	}
	v := T(id.UUID)

	return &v
}

type PgProspect struct {
	ID          uuid.UUID      `db:"id"           goqu:"skipinsert"`
	Company     string         `db:"company"`
	Website     string         `db:"website"`
	Industry    string         `db:"industry"`
	ICPScore    int            `db:"icp_score"`
	Status      string         `db:"status"`
	RiskLevel   string         `db:"risk_level"`
	Email       sql.NullString `db:"email"`
	ContactName sql.NullString `db:"contact_name"`
	CreatedAt   time.Time      `db:"created_at"   goqu:"skipinsert"`
	UpdatedAt   sql.NullTime   `db:"updated_at"   goqu:"skipinsert"`
}

func (p *PgProspect) ToDomain() domain.Prospect {
	return domain.Prospect{
		ID:          domain.ProspectID(p.ID),
		Company:     p.Company,
		Website:     p.Website,
		Industry:    p.Industry,
		ICPScore:    p.ICPScore,
		Status:      domain.ProspectStatus(p.Status),
		RiskLevel:   domain.RiskLevel(p.RiskLevel),
		Email:       p.Email.String,
		ContactName: p.ContactName.String,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgProspect) FromDomain(prospect domain.Prospect) {
	*p = PgProspect{
		ID:          uuid.UUID(prospect.ID),
		Company:     prospect.Company,
		Website:     prospect.Website,
		Industry:    prospect.Industry,
		ICPScore:    prospect.ICPScore,
		Status:      string(prospect.Status),
		RiskLevel:   string(prospect.RiskLevel),
		Email:       nullString(prospect.Email),
		ContactName: nullString(prospect.ContactName),
		CreatedAt:   prospect.CreatedAt,
		UpdatedAt:   nullTime(prospect.UpdatedAt),
	}
}

func pgProspectsToDomain(rows []PgProspect) []domain.Prospect {
	out := make([]domain.Prospect, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}

type PgScanJob struct {
	ID         uuid.UUID     `db:"id"          goqu:"skipinsert"`
	URL        string        `db:"url"`
	ProspectID uuid.NullUUID `db:"prospect_id"`
	Status     string        `db:"status"`

	WCAGScore     sql.NullInt64 `db:"wcag_score"`
	CriticalCount int           `db:"critical_count"`
	SeriousCount  int           `db:"serious_count"`
	ModerateCount int           `db:"moderate_count"`
	MinorCount    int           `db:"minor_count"`

	OriginalHTML sql.NullString `db:"original_html"`
	PageTitle    sql.NullString `db:"page_title"`
	Backend      sql.NullString `db:"backend"`

	Attempts  int            `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CompanyName   sql.NullString `db:"company_name"`
	ProspectEmail sql.NullString `db:"prospect_email"`

	CreatedAt   time.Time    `db:"created_at"   goqu:"skipinsert"`
	UpdatedAt   sql.NullTime `db:"updated_at"   goqu:"skipinsert"`
	CompletedAt sql.NullTime `db:"completed_at" goqu:"skipinsert"`
}

func (p *PgScanJob) ToDomain() *domain.ScanJob {
	job := &domain.ScanJob{
		ID:            domain.ScanJobID(p.ID),
		URL:           p.URL,
		ProspectID:    idPtr[domain.ProspectID](p.ProspectID),
		Status:        domain.ScanJobStatus(p.Status),
		CriticalCount: p.CriticalCount,
		SeriousCount:  p.SeriousCount,
		ModerateCount: p.ModerateCount,
		MinorCount:    p.MinorCount,
		OriginalHTML:  p.OriginalHTML.String,
		PageTitle:     p.PageTitle.String,
		Backend:       p.Backend.String,
		Attempts:      p.Attempts,
		LastError:     p.LastError.String,
		CompanyName:   p.CompanyName.String,
		ProspectEmail: p.ProspectEmail.String,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
		CompletedAt:   timePtr(p.CompletedAt),
	}
	if p.WCAGScore.Valid {
		score := int(p.WCAGScore.Int64)
		job.WCAGScore = &score
	}

	return job
}

func (p *PgScanJob) FromDomain(job domain.ScanJob) {
	*p = PgScanJob{
		ID:            uuid.UUID(job.ID),
		URL:           job.URL,
		ProspectID:    nullUUID(job.ProspectID),
		Status:        string(job.Status),
		CriticalCount: job.CriticalCount,
		SeriousCount:  job.SeriousCount,
		ModerateCount: job.ModerateCount,
		MinorCount:    job.MinorCount,
		OriginalHTML:  nullString(job.OriginalHTML),
		PageTitle:     nullString(job.PageTitle),
		Backend:       nullString(job.Backend),
		Attempts:      job.Attempts,
		LastError:     nullString(job.LastError),
		CompanyName:   nullString(job.CompanyName),
		ProspectEmail: nullString(job.ProspectEmail),
		CreatedAt:     job.CreatedAt,
		UpdatedAt:     nullTime(job.UpdatedAt),
		CompletedAt:   nullTimePtr(job.CompletedAt),
	}
	if job.WCAGScore != nil {
		p.WCAGScore = sql.NullInt64{Int64: int64(*job.WCAGScore), Valid: true}
	}
}

type PgViolation struct {
	ID             uuid.UUID      `db:"id"             goqu:"skipinsert"`
	ProspectID     uuid.NullUUID  `db:"prospect_id"`
	ScanJobID      uuid.NullUUID  `db:"scan_job_id"`
	Type           string         `db:"type"`
	Severity       string         `db:"severity"`
	Element        sql.NullString `db:"element"`
	Recommendation sql.NullString `db:"recommendation"`
	WCAGCriterion  sql.NullString `db:"wcag_criterion"`
	CreatedAt      time.Time      `db:"created_at"     goqu:"skipinsert"`
}

func (p *PgViolation) ToDomain() domain.Violation {
	return domain.Violation{
		ID:             domain.ViolationID(p.ID),
		ProspectID:     idPtr[domain.ProspectID](p.ProspectID),
		ScanJobID:      idPtr[domain.ScanJobID](p.ScanJobID),
		Type:           p.Type,
		Severity:       domain.Severity(p.Severity),
		Element:        p.Element.String,
		Recommendation: p.Recommendation.String,
		WCAGCriterion:  p.WCAGCriterion.String,
		CreatedAt:      p.CreatedAt,
	}
}

func (p *PgViolation) FromDomain(v domain.Violation) {
	*p = PgViolation{
		ID:             uuid.UUID(v.ID),
		ProspectID:     nullUUID(v.ProspectID),
		ScanJobID:      nullUUID(v.ScanJobID),
		Type:           v.Type,
		Severity:       string(v.Severity),
		Element:        nullString(v.Element),
		Recommendation: nullString(v.Recommendation),
		WCAGCriterion:  nullString(v.WCAGCriterion),
		CreatedAt:      v.CreatedAt,
	}
}

func pgViolationsToDomain(rows []PgViolation) []domain.Violation {
	out := make([]domain.Violation, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}

type PgTrigger struct {
	ID        uuid.UUID       `db:"id"         goqu:"skipinsert"`
	Name      string          `db:"name"`
	Type      string          `db:"type"`
	Condition string          `db:"condition"`
	IsActive  bool            `db:"is_active"`
	Config    json.RawMessage `db:"config"`
	CreatedAt time.Time       `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime    `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgTrigger) ToDomain() (*domain.Trigger, error) {
	config := map[string]any{}
	if len(p.Config) > 0 {
		if err := json.Unmarshal(p.Config, &config); err != nil {
			return nil, fmt.Errorf("could not unmarshal trigger config: %w", err)
		}
	}

	return &domain.Trigger{
		ID:        domain.TriggerID(p.ID),
		Name:      p.Name,
		Type:      domain.TriggerType(p.Type),
		Condition: p.Condition,
		IsActive:  p.IsActive,
		Config:    config,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}, nil
}

func (p *PgTrigger) FromDomain(t domain.Trigger) error {
	config := t.Config
	if config == nil {
		config = map[string]any{}
	}
	b, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("could not marshal trigger config: %w", err)
	}

	*p = PgTrigger{
		ID:        uuid.UUID(t.ID),
		Name:      t.Name,
		Type:      string(t.Type),
		Condition: t.Condition,
		IsActive:  t.IsActive,
		Config:    b,
		CreatedAt: t.CreatedAt,
		UpdatedAt: nullTime(t.UpdatedAt),
	}

	return nil
}

func pgTriggersToDomain(rows []PgTrigger) ([]domain.Trigger, error) {
	out := make([]domain.Trigger, 0, len(rows))
	for i := range rows {
		t, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *t)
	}

	return out, nil
}

type PgClient struct {
	ID        uuid.UUID      `db:"id"         goqu:"skipinsert"`
	Name      string         `db:"name"`
	Email     string         `db:"email"`
	Company   sql.NullString `db:"company"`
	APIKey    string         `db:"api_key"`
	CreatedAt time.Time      `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime   `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgClient) ToDomain() domain.Client {
	return domain.Client{
		ID:        domain.ClientID(p.ID),
		Name:      p.Name,
		Email:     p.Email,
		Company:   p.Company.String,
		APIKey:    p.APIKey,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgClient) FromDomain(c domain.Client) {
	*p = PgClient{
		ID:        uuid.UUID(c.ID),
		Name:      c.Name,
		Email:     c.Email,
		Company:   nullString(c.Company),
		APIKey:    c.APIKey,
		CreatedAt: c.CreatedAt,
		UpdatedAt: nullTime(c.UpdatedAt),
	}
}

type PgDoNotContact struct {
	ID         uuid.UUID      `db:"id"          goqu:"skipinsert"`
	Email      sql.NullString `db:"email"`
	Domain     sql.NullString `db:"domain"`
	ProspectID uuid.NullUUID  `db:"prospect_id"`
	Reason     string         `db:"reason"`
	Permanent  bool           `db:"permanent"`
	CreatedAt  time.Time      `db:"created_at"  goqu:"skipinsert"`
}

func (p *PgDoNotContact) ToDomain() domain.DoNotContact {
	return domain.DoNotContact{
		ID:         domain.DoNotContactID(p.ID),
		Email:      p.Email.String,
		Domain:     p.Domain.String,
		ProspectID: idPtr[domain.ProspectID](p.ProspectID),
		Reason:     p.Reason,
		Permanent:  p.Permanent,
		CreatedAt:  p.CreatedAt,
	}
}

func (p *PgDoNotContact) FromDomain(d domain.DoNotContact) {
	*p = PgDoNotContact{
		ID:         uuid.UUID(d.ID),
		Email:      nullString(d.Email),
		Domain:     nullString(d.Domain),
		ProspectID: nullUUID(d.ProspectID),
		Reason:     d.Reason,
		Permanent:  d.Permanent,
		CreatedAt:  d.CreatedAt,
	}
}

type PgEmailSend struct {
	ID                uuid.UUID     `db:"id"                 goqu:"skipinsert"`
	ProspectID        uuid.NullUUID `db:"prospect_id"`
	ScanJobID         uuid.NullUUID `db:"scan_job_id"`
	Email             string        `db:"email"`
	Subject           string        `db:"subject"`
	EmailType         string        `db:"email_type"`
	TouchNumber       int           `db:"touch_number"`
	PermissionGranted bool          `db:"permission_granted"`
	OpenedAt          sql.NullTime  `db:"opened_at"          goqu:"skipinsert"`
	RepliedAt         sql.NullTime  `db:"replied_at"         goqu:"skipinsert"`
	DemoBookedAt      sql.NullTime  `db:"demo_booked_at"     goqu:"skipinsert"`
	CreatedAt         time.Time     `db:"created_at"         goqu:"skipinsert"`
}

func (p *PgEmailSend) ToDomain() domain.EmailSend {
	return domain.EmailSend{
		ID:                domain.EmailSendID(p.ID),
		ProspectID:        idPtr[domain.ProspectID](p.ProspectID),
		ScanJobID:         idPtr[domain.ScanJobID](p.ScanJobID),
		Email:             p.Email,
		Subject:           p.Subject,
		EmailType:         domain.EmailType(p.EmailType),
		TouchNumber:       p.TouchNumber,
		PermissionGranted: p.PermissionGranted,
		OpenedAt:          timePtr(p.OpenedAt),
		RepliedAt:         timePtr(p.RepliedAt),
		DemoBookedAt:      timePtr(p.DemoBookedAt),
		CreatedAt:         p.CreatedAt,
	}
}

func (p *PgEmailSend) FromDomain(s domain.EmailSend) {
	*p = PgEmailSend{
		ID:                uuid.UUID(s.ID),
		ProspectID:        nullUUID(s.ProspectID),
		ScanJobID:         nullUUID(s.ScanJobID),
		Email:             s.Email,
		Subject:           s.Subject,
		EmailType:         string(s.EmailType),
		TouchNumber:       s.TouchNumber,
		PermissionGranted: s.PermissionGranted,
		OpenedAt:          nullTimePtr(s.OpenedAt),
		RepliedAt:         nullTimePtr(s.RepliedAt),
		DemoBookedAt:      nullTimePtr(s.DemoBookedAt),
		CreatedAt:         s.CreatedAt,
	}
}
