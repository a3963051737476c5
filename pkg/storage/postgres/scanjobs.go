package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"wcagrep/pkg/domain"
	"wcagrep/pkg/storage"
)

const (
	scanJobsTable   = "scan_jobs"
	violationsTable = "violations"
)

func (p *PgSQL) StoreScanJob(ctx context.Context, job domain.ScanJob) (*domain.ScanJob, error) {
	var row PgScanJob
	row.FromDomain(job)

	var result PgScanJob
	if _, err := p.Builder.Insert(scanJobsTable).
		Rows(row).
		Returning(&PgScanJob{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store scan job into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) ScanJobByID(ctx context.Context, id domain.ScanJobID) (*domain.ScanJob, error) {
	var row PgScanJob
	found, err := p.Builder.From(scanJobsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch scan job by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateScanJob applies a status transition. Only the fields present in
// updates are touched, and updated_at is always refreshed.
func (p *PgSQL) UpdateScanJob(ctx context.Context,
	id domain.ScanJobID,
	updates storage.ScanJobUpdates) (*domain.ScanJob, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"status":     string(updates.Status),
	}
	if updates.IncrementAttempts {
		rec["attempts"] = goqu.L("attempts + 1")
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}
	if updates.Status == domain.ScanJobStatusCompleted {
		rec["completed_at"] = goqu.L("CURRENT_TIMESTAMP")
	}
	if r := updates.Result; r != nil {
		rec["wcag_score"] = r.Score
		rec["critical_count"] = r.Counts.Critical
		rec["serious_count"] = r.Counts.Serious
		rec["moderate_count"] = r.Counts.Moderate
		rec["minor_count"] = r.Counts.Minor
		rec["original_html"] = nullString(r.HTML)
		rec["page_title"] = nullString(r.Title)
		rec["backend"] = nullString(r.Backend)
	}

	var row PgScanJob
	found, err := p.Builder.Update(scanJobsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgScanJob{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update scan job in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) LatestScanJobByProspect(ctx context.Context, id domain.ProspectID) (*domain.ScanJob, error) {
	var row PgScanJob
	found, err := p.Builder.From(scanJobsTable).
		Where(goqu.I("prospect_id").Eq(uuid.UUID(id))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch latest scan job of prospect: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) AuditReport(ctx context.Context, id domain.ScanJobID) (*domain.AuditReport, error) {
	var row struct {
		PgScanJob

		Company sql.NullString `db:"company"`
		Website sql.NullString `db:"website"`
	}
	found, err := p.Builder.From(scanJobsTable).
		Select(
			goqu.T(scanJobsTable).All(),
			goqu.T(prospectsTable).Col("company"),
			goqu.T(prospectsTable).Col("website"),
		).
		LeftJoin(goqu.T(prospectsTable), goqu.On(
			goqu.T(prospectsTable).Col("id").Eq(goqu.T(scanJobsTable).Col("prospect_id")),
		)).
		Where(
			goqu.T(scanJobsTable).Col("id").Eq(uuid.UUID(id)),
			goqu.T(scanJobsTable).Col("status").Eq(string(domain.ScanJobStatusCompleted)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch audit report: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &domain.AuditReport{
		ScanJob: *row.ToDomain(),
		Company: row.Company.String,
		Website: row.Website.String,
	}, nil
}

func (p *PgSQL) StoreViolations(ctx context.Context, violations ...domain.Violation) ([]domain.Violation, error) {
	if len(violations) == 0 {
		return nil, nil
	}

	rows := make([]PgViolation, len(violations))
	for i := range violations {
		rows[i].FromDomain(violations[i])
	}

	var result []PgViolation
	if err := p.Builder.Insert(violationsTable).
		Rows(rows).
		Returning(&PgViolation{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store violations into pg: %w", err)
	}

	return pgViolationsToDomain(result), nil
}

// severityOrder sorts violations from critical to minor.
func severityOrder() goqu.Expression {
	return goqu.Case().Value(goqu.I("severity")).
		When(string(domain.SeverityCritical), 0).
		When(string(domain.SeveritySerious), 1).
		When(string(domain.SeverityModerate), 2).
		When(string(domain.SeverityMinor), 3).
		Else(4)
}

func (p *PgSQL) violationsWhere(ctx context.Context, where goqu.Expression) ([]domain.Violation, error) {
	var rows []PgViolation
	if err := p.Builder.From(violationsTable).
		Where(where).
		Order(goqu.L("?", severityOrder()).Asc(), goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch violations from pg: %w", err)
	}

	return pgViolationsToDomain(rows), nil
}

func (p *PgSQL) ViolationsByProspect(ctx context.Context, id domain.ProspectID) ([]domain.Violation, error) {
	return p.violationsWhere(ctx, goqu.I("prospect_id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) ViolationsByScanJob(ctx context.Context, id domain.ScanJobID) ([]domain.Violation, error) {
	return p.violationsWhere(ctx, goqu.I("scan_job_id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) DeleteViolationsByScanJob(ctx context.Context, id domain.ScanJobID) error {
	if _, err := p.Builder.Delete(violationsTable).
		Where(goqu.I("scan_job_id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete violations of scan job: %w", err)
	}

	return nil
}
