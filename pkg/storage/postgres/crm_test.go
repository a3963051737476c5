package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"wcagrep/pkg/domain"
	"wcagrep/pkg/storage"
)

func TestPgSQL_Triggers(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	trigger, err := pgSQL.StoreTrigger(ctx, domain.Trigger{
		Name:      "critical sites",
		Type:      domain.TriggerTypeSlack,
		Condition: "scan.completed when critical_count > 3",
		IsActive:  true,
		Config:    map[string]any{"webhookUrl": "https://hooks.slack.test/x"},
	})
	require.NoError(t, err)
	require.Equal(t, "https://hooks.slack.test/x", trigger.ConfigString("webhookUrl"))

	trigger.IsActive = false
	trigger.Config = nil
	updated, err := pgSQL.UpdateTrigger(ctx, *trigger)
	require.NoError(t, err)
	require.False(t, updated.IsActive)
	require.Empty(t, updated.Config)

	active := true
	list, err := pgSQL.Triggers(ctx, &active)
	require.NoError(t, err)
	require.Empty(t, list)

	list, err = pgSQL.Triggers(ctx, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)

	deleted, err := pgSQL.DeleteTrigger(ctx, trigger.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	got, err := pgSQL.TriggerByID(ctx, trigger.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_Clients(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	client, err := pgSQL.StoreClient(ctx, domain.Client{Name: "Agency", Email: "ops@agency.example", APIKey: "k1"})
	require.NoError(t, err)

	byKey, err := pgSQL.ClientByAPIKey(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, client.ID, byKey.ID)

	client.Company = "Agency LLC"
	client.APIKey = "k2"
	updated, err := pgSQL.UpdateClient(ctx, *client)
	require.NoError(t, err)
	require.Equal(t, "Agency LLC", updated.Company)

	old, err := pgSQL.ClientByAPIKey(ctx, "k1")
	require.NoError(t, err)
	require.Nil(t, old)

	byID, err := pgSQL.ClientByID(ctx, client.ID)
	require.NoError(t, err)
	require.Equal(t, "k2", byID.APIKey)

	clients, err := pgSQL.Clients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)

	_, err = pgSQL.StoreClient(ctx, domain.Client{Name: "Copycat", Email: "x@copy.example", APIKey: "k2"})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	missing, err := pgSQL.UpdateClient(ctx, domain.Client{ID: domain.ClientID(uuid.New()), Name: "x", APIKey: "k3"})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_DoNotContact(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	prospects, err := pgSQL.StoreProspects(ctx, newProspect("Acme", "https://acme.example"))
	require.NoError(t, err)
	prospectID := prospects[0].ID

	_, err = pgSQL.StoreDoNotContact(ctx, domain.DoNotContact{Email: "Boss@Acme.example", Reason: "asked", Permanent: true})
	require.NoError(t, err)
	_, err = pgSQL.StoreDoNotContact(ctx, domain.DoNotContact{Domain: "blocked.example", Reason: "legal", Permanent: true})
	require.NoError(t, err)
	_, err = pgSQL.StoreDoNotContact(ctx, domain.DoNotContact{ProspectID: &prospectID, Reason: "unsubscribed via link"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		query storage.DoNotContactQuery
		match bool
	}{
		{name: "email case insensitive", query: storage.DoNotContactQuery{Email: "boss@acme.example"}, match: true},
		{name: "domain", query: storage.DoNotContactQuery{Domain: "BLOCKED.example"}, match: true},
		{name: "prospect", query: storage.DoNotContactQuery{ProspectID: &prospectID}, match: true},
		{name: "no match", query: storage.DoNotContactQuery{Email: "x@y.example", Domain: "y.example"}, match: false},
		{name: "empty query", query: storage.DoNotContactQuery{}, match: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pgSQL.MatchDoNotContact(ctx, tc.query)
			require.NoError(t, err)
			require.Equal(t, tc.match, got != nil)
		})
	}

	blocked, err := pgSQL.BlockedDomains(ctx, []string{"Blocked.example", "free.example"})
	require.NoError(t, err)
	require.Equal(t, []string{"blocked.example"}, blocked)

	list, err := pgSQL.DoNotContactList(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
}
