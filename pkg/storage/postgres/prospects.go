package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"

	"wcagrep/pkg/domain"
	"wcagrep/pkg/storage"
)

const (
	prospectsTable = "prospects"
)

// hostExpr derives the bare host of the website column the same way
// domain.HostOf does: lower-cased, without scheme, "www.", port or path.
func hostExpr() exp.LiteralExpression {
	return goqu.L("regexp_replace(regexp_replace(lower(website), ?, ''), ?, '', 'g')",
		`^[a-z][a-z0-9+.-]*://`,
		`^www\.|[:/?#].*$`)
}

func (p *PgSQL) StoreProspects(ctx context.Context, prospects ...domain.Prospect) ([]domain.Prospect, error) {
	if len(prospects) == 0 {
		return nil, nil
	}

	rows := make([]PgProspect, len(prospects))
	for i := range prospects {
		rows[i].FromDomain(prospects[i])
	}

	var result []PgProspect
	if err := p.Builder.Insert(prospectsTable).
		Rows(rows).
		Returning(&PgProspect{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store prospects into pg: %w", err)
	}

	return pgProspectsToDomain(result), nil
}

// Prospects lists prospects ordered by created_at, newest first unless
// filter.OldestFirst is set.
func (p *PgSQL) Prospects(ctx context.Context, filter storage.ProspectFilter) ([]domain.Prospect, error) {
	ds := p.Builder.From(prospectsTable)
	if filter.Status != "" {
		ds = ds.Where(goqu.I("status").Eq(string(filter.Status)))
	}
	if filter.OldestFirst {
		ds = ds.Order(goqu.I("created_at").Asc(), goqu.I("id").Asc())
	} else {
		ds = ds.Order(goqu.I("created_at").Desc(), goqu.I("id").Desc())
	}
	if filter.Limit > 0 {
		ds = ds.Limit(filter.Limit)
	}

	var rows []PgProspect
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch prospects from pg: %w", err)
	}

	return pgProspectsToDomain(rows), nil
}

func (p *PgSQL) ProspectByID(ctx context.Context, id domain.ProspectID) (*domain.Prospect, error) {
	var row PgProspect
	found, err := p.Builder.From(prospectsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch prospect by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	prospect := row.ToDomain()

	return &prospect, nil
}

func (p *PgSQL) LockProspect(ctx context.Context, id domain.ProspectID) (*domain.Prospect, error) {
	var row PgProspect
	found, err := p.Builder.From(prospectsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		ForUpdate(exp.Wait).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not lock prospect: %w", err)
	}
	if !found {
		return nil, nil
	}

	prospect := row.ToDomain()

	return &prospect, nil
}

func (p *PgSQL) ProspectsByHosts(ctx context.Context, hosts []string) ([]domain.Prospect, error) {
	if len(hosts) == 0 {
		return nil, nil
	}

	var rows []PgProspect
	if err := p.Builder.From(prospectsTable).
		Where(hostExpr().In(hosts)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch prospects by hosts: %w", err)
	}

	return pgProspectsToDomain(rows), nil
}

// UpdateProspect sets the non-nil fields of in and refreshes updated_at.
func (p *PgSQL) UpdateProspect(ctx context.Context,
	id domain.ProspectID,
	in domain.ProspectInput) (*domain.Prospect, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if in.Company != nil {
		rec["company"] = *in.Company
	}
	if in.Website != nil {
		rec["website"] = *in.Website
	}
	if in.Industry != nil {
		rec["industry"] = *in.Industry
	}
	if in.ICPScore != nil {
		rec["icp_score"] = *in.ICPScore
	}
	if in.Status != nil {
		rec["status"] = string(*in.Status)
	}
	if in.RiskLevel != nil {
		rec["risk_level"] = string(*in.RiskLevel)
	}
	if in.Email != nil {
		rec["email"] = nullString(*in.Email)
	}
	if in.ContactName != nil {
		rec["contact_name"] = nullString(*in.ContactName)
	}

	var row PgProspect
	found, err := p.Builder.Update(prospectsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgProspect{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update prospect in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	prospect := row.ToDomain()

	return &prospect, nil
}

func (p *PgSQL) UpdateProspectsStatus(ctx context.Context,
	ids []domain.ProspectID,
	status domain.ProspectStatus) ([]domain.Prospect, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		raw[i] = uuid.UUID(id)
	}

	var rows []PgProspect
	if err := p.Builder.Update(prospectsTable).
		Set(goqu.Record{
			"status":     string(status),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").In(raw)).
		Returning(&PgProspect{}).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not update prospects status in pg: %w", err)
	}

	return pgProspectsToDomain(rows), nil
}

func (p *PgSQL) DeleteProspect(ctx context.Context, id domain.ProspectID) (bool, error) {
	res, err := p.Builder.Delete(prospectsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete prospect in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not count deleted prospects: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) ProspectStats(ctx context.Context) (storage.ProspectStats, error) {
	var row struct {
		Total  int             `db:"total"`
		Active int             `db:"active"`
		AvgICP sql.NullFloat64 `db:"avg_icp"`
	}
	_, err := p.Builder.From(prospectsTable).
		Select(
			goqu.COUNT(goqu.Star()).As("total"),
			goqu.L("COUNT(*) FILTER (WHERE status = ?)", string(domain.ProspectStatusActive)).As("active"),
			goqu.L("AVG(icp_score)::float8").As("avg_icp"),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return storage.ProspectStats{}, fmt.Errorf("could not aggregate prospects: %w", err)
	}

	return storage.ProspectStats{
		Total:       row.Total,
		Active:      row.Active,
		AvgICPScore: row.AvgICP.Float64,
	}, nil
}
