package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"wcagrep/pkg/domain"
)

const (
	emailSendsTable = "email_sends"
)

func (p *PgSQL) StoreEmailSend(ctx context.Context, send domain.EmailSend) (*domain.EmailSend, error) {
	var row PgEmailSend
	row.FromDomain(send)

	var result PgEmailSend
	if _, err := p.Builder.Insert(emailSendsTable).
		Rows(row).
		Returning(&PgEmailSend{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store email send into pg: %w", err)
	}

	stored := result.ToDomain()

	return &stored, nil
}

func (p *PgSQL) EmailSendsByProspect(ctx context.Context, id domain.ProspectID) ([]domain.EmailSend, error) {
	var rows []PgEmailSend
	if err := p.Builder.From(emailSendsTable).
		Where(goqu.I("prospect_id").Eq(uuid.UUID(id))).
		Order(goqu.I("touch_number").Asc(), goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch email sends of prospect: %w", err)
	}

	out := make([]domain.EmailSend, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

var engagementColumns = map[domain.EngagementKind]string{ //nolint: gochecknoglobals
	domain.EngagementOpened:     "opened_at",
	domain.EngagementReplied:    "replied_at",
	domain.EngagementDemoBooked: "demo_booked_at",
}

// RecordEngagement stamps the column of kind, keeping an earlier value.
func (p *PgSQL) RecordEngagement(ctx context.Context,
	id domain.EmailSendID,
	kind domain.EngagementKind,
	at time.Time) (*domain.EmailSend, error) {
	column, ok := engagementColumns[kind]
	if !ok {
		return nil, fmt.Errorf("unknown engagement kind %q", kind)
	}

	var row PgEmailSend
	found, err := p.Builder.Update(emailSendsTable).
		Set(goqu.Record{
			column: goqu.COALESCE(goqu.I(column), at.UTC()),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgEmailSend{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not record engagement in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	send := row.ToDomain()

	return &send, nil
}

func (p *PgSQL) OutreachMetrics(ctx context.Context) (domain.OutreachMetrics, error) {
	var sends struct {
		Total      int `db:"total"`
		Permission int `db:"permission"`
	}
	if _, err := p.Builder.From(emailSendsTable).
		Select(
			goqu.COUNT(goqu.Star()).As("total"),
			goqu.L("COUNT(*) FILTER (WHERE permission_granted)").As("permission"),
		).
		Executor().ScanStructContext(ctx, &sends); err != nil {
		return domain.OutreachMetrics{}, fmt.Errorf("could not aggregate email sends: %w", err)
	}

	var dnc struct {
		Total        int `db:"total"`
		Unsubscribes int `db:"unsubscribes"`
	}
	if _, err := p.Builder.From(doNotContactTable).
		Select(
			goqu.COUNT(goqu.Star()).As("total"),
			goqu.L("COUNT(*) FILTER (WHERE prospect_id IS NOT NULL)").As("unsubscribes"),
		).
		Executor().ScanStructContext(ctx, &dnc); err != nil {
		return domain.OutreachMetrics{}, fmt.Errorf("could not aggregate do not contact list: %w", err)
	}

	return domain.OutreachMetrics{
		TotalSent:              sends.Total,
		PermissionGrantedSends: sends.Permission,
		Unsubscribes:           dnc.Unsubscribes,
		DoNotContactEntries:    dnc.Total,
	}, nil
}

// analyticsQuery builds one row per UTC day between $1 and $2 from the
// activity recorded in email_sends, prospects and scan_jobs.
const analyticsQuery = `
WITH days AS (
    SELECT generate_series($1::date, $2::date, interval '1 day')::date AS day
)
SELECT d.day,
       (SELECT COUNT(*) FROM email_sends e WHERE (e.created_at AT TIME ZONE 'UTC')::date = d.day),
       (SELECT COUNT(*) FROM email_sends e WHERE (e.opened_at AT TIME ZONE 'UTC')::date = d.day),
       (SELECT COUNT(*) FROM email_sends e WHERE (e.replied_at AT TIME ZONE 'UTC')::date = d.day),
       (SELECT COUNT(*) FROM email_sends e WHERE (e.demo_booked_at AT TIME ZONE 'UTC')::date = d.day),
       (SELECT COUNT(*) FROM prospects p WHERE (p.created_at AT TIME ZONE 'UTC')::date = d.day),
       (SELECT COUNT(*) FROM scan_jobs s WHERE s.status = 'completed'
                                          AND (s.completed_at AT TIME ZONE 'UTC')::date = d.day)
FROM days d
ORDER BY d.day`

func (p *PgSQL) Analytics(ctx context.Context, start, end time.Time) ([]domain.AnalyticsDay, error) {
	rows, err := p.DB.QueryContext(ctx, analyticsQuery,
		start.UTC().Format(time.DateOnly),
		end.UTC().Format(time.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("could not query analytics: %w", err)
	}
	defer rows.Close()

	var out []domain.AnalyticsDay
	for rows.Next() {
		var day domain.AnalyticsDay
		if err := rows.Scan(
			&day.Date,
			&day.EmailsSent,
			&day.EmailsOpened,
			&day.EmailsReplied,
			&day.DemoBookings,
			&day.ProspectsDiscovered,
			&day.ScansCompleted,
		); err != nil {
			return nil, fmt.Errorf("could not scan analytics row: %w", err)
		}
		day.Date = day.Date.UTC()
		out = append(out, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate analytics rows: %w", err)
	}

	return out, nil
}
