package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"

	"wcagrep/pkg/domain"
	"wcagrep/pkg/storage"
)

const (
	triggersTable     = "triggers"
	clientsTable      = "clients"
	doNotContactTable = "do_not_contact"
)

func (p *PgSQL) Triggers(ctx context.Context, active *bool) ([]domain.Trigger, error) {
	ds := p.Builder.From(triggersTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc())
	if active != nil {
		ds = ds.Where(goqu.I("is_active").Eq(*active))
	}

	var rows []PgTrigger
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch triggers from pg: %w", err)
	}

	return pgTriggersToDomain(rows)
}

func (p *PgSQL) TriggerByID(ctx context.Context, id domain.TriggerID) (*domain.Trigger, error) {
	var row PgTrigger
	found, err := p.Builder.From(triggersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch trigger by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) StoreTrigger(ctx context.Context, trigger domain.Trigger) (*domain.Trigger, error) {
	var row PgTrigger
	if err := row.FromDomain(trigger); err != nil {
		return nil, err
	}

	var result PgTrigger
	if _, err := p.Builder.Insert(triggersTable).
		Rows(row).
		Returning(&PgTrigger{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store trigger into pg: %w", err)
	}

	return result.ToDomain()
}

func (p *PgSQL) UpdateTrigger(ctx context.Context, trigger domain.Trigger) (*domain.Trigger, error) {
	var row PgTrigger
	if err := row.FromDomain(trigger); err != nil {
		return nil, err
	}

	var result PgTrigger
	found, err := p.Builder.Update(triggersTable).
		Set(goqu.Record{
			"name":       row.Name,
			"type":       row.Type,
			"condition":  row.Condition,
			"is_active":  row.IsActive,
			"config":     row.Config,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(row.ID)).
		Returning(&PgTrigger{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not update trigger in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return result.ToDomain()
}

func (p *PgSQL) DeleteTrigger(ctx context.Context, id domain.TriggerID) (bool, error) {
	res, err := p.Builder.Delete(triggersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete trigger in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not count deleted triggers: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) Clients(ctx context.Context) ([]domain.Client, error) {
	var rows []PgClient
	if err := p.Builder.From(clientsTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch clients from pg: %w", err)
	}

	out := make([]domain.Client, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) clientWhere(ctx context.Context, where exp.Expression) (*domain.Client, error) {
	var row PgClient
	found, err := p.Builder.From(clientsTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch client: %w", err)
	}
	if !found {
		return nil, nil
	}

	client := row.ToDomain()

	return &client, nil
}

func (p *PgSQL) ClientByID(ctx context.Context, id domain.ClientID) (*domain.Client, error) {
	return p.clientWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) ClientByAPIKey(ctx context.Context, key string) (*domain.Client, error) {
	return p.clientWhere(ctx, goqu.I("api_key").Eq(key))
}

func (p *PgSQL) StoreClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	var row PgClient
	row.FromDomain(client)

	var result PgClient
	if _, err := p.Builder.Insert(clientsTable).
		Rows(row).
		Returning(&PgClient{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store client into pg: %w", mapError(err))
	}

	stored := result.ToDomain()

	return &stored, nil
}

func (p *PgSQL) UpdateClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	var row PgClient
	row.FromDomain(client)

	var result PgClient
	found, err := p.Builder.Update(clientsTable).
		Set(goqu.Record{
			"name":       row.Name,
			"email":      row.Email,
			"company":    row.Company,
			"api_key":    row.APIKey,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(row.ID)).
		Returning(&PgClient{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not update client in pg: %w", mapError(err))
	}
	if !found {
		return nil, nil
	}

	updated := result.ToDomain()

	return &updated, nil
}

func (p *PgSQL) StoreDoNotContact(ctx context.Context, entry domain.DoNotContact) (*domain.DoNotContact, error) {
	var row PgDoNotContact
	row.FromDomain(entry)

	var result PgDoNotContact
	if _, err := p.Builder.Insert(doNotContactTable).
		Rows(row).
		Returning(&PgDoNotContact{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store do not contact entry into pg: %w", err)
	}

	stored := result.ToDomain()

	return &stored, nil
}

func (p *PgSQL) DoNotContactList(ctx context.Context) ([]domain.DoNotContact, error) {
	var rows []PgDoNotContact
	if err := p.Builder.From(doNotContactTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch do not contact list from pg: %w", err)
	}

	out := make([]domain.DoNotContact, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) MatchDoNotContact(ctx context.Context, q storage.DoNotContactQuery) (*domain.DoNotContact, error) {
	var or []exp.Expression
	if q.ProspectID != nil {
		or = append(or, goqu.I("prospect_id").Eq(uuid.UUID(*q.ProspectID)))
	}
	if q.Email != "" {
		or = append(or, goqu.Func("lower", goqu.I("email")).Eq(strings.ToLower(q.Email)))
	}
	if q.Domain != "" {
		or = append(or, goqu.Func("lower", goqu.I("domain")).Eq(strings.ToLower(q.Domain)))
	}
	if len(or) == 0 {
		return nil, nil
	}

	var row PgDoNotContact
	found, err := p.Builder.From(doNotContactTable).
		Where(goqu.Or(or...)).
		Order(goqu.I("created_at").Asc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not match do not contact list: %w", err)
	}
	if !found {
		return nil, nil
	}

	entry := row.ToDomain()

	return &entry, nil
}

func (p *PgSQL) BlockedDomains(ctx context.Context, domains []string) ([]string, error) {
	if len(domains) == 0 {
		return nil, nil
	}

	lowered := make([]string, len(domains))
	for i, d := range domains {
		lowered[i] = strings.ToLower(d)
	}

	var out []string
	if err := p.Builder.From(doNotContactTable).
		Select(goqu.Func("lower", goqu.I("domain"))).
		Distinct().
		Where(goqu.Func("lower", goqu.I("domain")).In(lowered)).
		Executor().ScanValsContext(ctx, &out); err != nil {
		return nil, fmt.Errorf("could not fetch blocked domains: %w", err)
	}

	return out, nil
}
