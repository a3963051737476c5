package crm_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"wcagrep/internal/crm"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/serrors"
	"wcagrep/pkg/storage"
	mockstorage "wcagrep/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func ptr[T any](v T) *T { return &v }

func setup(t *testing.T) (*mockstorage.MockStorage, crm.CRM) {
	t.Helper()
	st := mockstorage.NewMockStorage(gomock.NewController(t))

	return st, crm.New(st)
}

func TestProspects(t *testing.T) {
	ctx := context.Background()
	st, c := setup(t)

	st.EXPECT().Prospects(ctx, storage.ProspectFilter{Status: domain.ProspectStatusQueued}).
		Return([]domain.Prospect{{Company: "Acme"}}, nil)

	list, err := c.Prospects(ctx, domain.ProspectStatusQueued)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = c.Prospects(ctx, "sleeping")
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(err))
}

func TestProspect_NotFound(t *testing.T) {
	ctx := context.Background()
	st, c := setup(t)

	id := domain.ProspectID(uuid.New())
	st.EXPECT().ProspectByID(ctx, id).Return(nil, nil)

	_, err := c.Prospect(ctx, id)
	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(err))
	require.Equal(t, "Prospect not found", serrors.MessageOf(err))
}

func TestCreateProspect(t *testing.T) {
	ctx := context.Background()
	st, c := setup(t)

	st.EXPECT().StoreProspects(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, ps ...domain.Prospect) ([]domain.Prospect, error) {
			require.Len(t, ps, 1)
			require.Equal(t, domain.ProspectStatusDiscovered, ps[0].Status)
			require.Equal(t, domain.DefaultICPScore, ps[0].ICPScore)
			require.Equal(t, domain.RiskLevelMedium, ps[0].RiskLevel)

			return ps, nil
		})

	p, err := c.CreateProspect(ctx, domain.ProspectInput{
		Company: ptr("Acme"),
		Website: ptr("https://acme.example"),
	})
	require.NoError(t, err)
	require.Equal(t, "Acme", p.Company)

	_, err = c.CreateProspect(ctx, domain.ProspectInput{Company: ptr("Acme"), Website: ptr("acme")})
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(err))
	require.Equal(t, "Invalid prospect data", serrors.MessageOf(err))
}

func TestUpdateProspect(t *testing.T) {
	ctx := context.Background()
	id := domain.ProspectID(uuid.New())
	current := domain.Prospect{
		ID:        id,
		Company:   "Acme",
		Website:   "https://acme.example",
		ICPScore:  50,
		Status:    domain.ProspectStatusDiscovered,
		RiskLevel: domain.RiskLevelLow,
	}

	t.Run("applies the patch", func(t *testing.T) {
		st, c := setup(t)
		in := domain.ProspectInput{Status: ptr(domain.ProspectStatusActive)}
		updated := current
		updated.Status = domain.ProspectStatusActive

		st.EXPECT().ProspectByID(ctx, id).Return(&current, nil)
		st.EXPECT().UpdateProspect(ctx, id, in).Return(&updated, nil)

		p, err := c.UpdateProspect(ctx, id, in)
		require.NoError(t, err)
		require.Equal(t, domain.ProspectStatusActive, p.Status)
	})

	t.Run("rejects empty and invalid patches", func(t *testing.T) {
		st, c := setup(t)

		_, err := c.UpdateProspect(ctx, id, domain.ProspectInput{})
		require.Equal(t, "Invalid update data", serrors.MessageOf(err))

		st.EXPECT().ProspectByID(ctx, id).Return(&current, nil)
		_, err = c.UpdateProspect(ctx, id, domain.ProspectInput{ICPScore: ptr(101)})
		require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(err))
		require.Equal(t, "Invalid update data", serrors.MessageOf(err))
	})

	t.Run("unknown prospect", func(t *testing.T) {
		st, c := setup(t)
		st.EXPECT().ProspectByID(ctx, id).Return(nil, nil)

		_, err := c.UpdateProspect(ctx, id, domain.ProspectInput{Industry: ptr("Retail")})
		require.Equal(t, serrors.ErrNotFound, serrors.KindOf(err))
	})
}

func TestDeleteProspect(t *testing.T) {
	ctx := context.Background()
	st, c := setup(t)
	id := domain.ProspectID(uuid.New())

	st.EXPECT().DeleteProspect(ctx, id).Return(true, nil)
	require.NoError(t, c.DeleteProspect(ctx, id))

	st.EXPECT().DeleteProspect(ctx, id).Return(false, nil)
	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(c.DeleteProspect(ctx, id)))
}

func TestQueueProspects(t *testing.T) {
	ctx := context.Background()
	st, c := setup(t)
	known, unknown := domain.ProspectID(uuid.New()), domain.ProspectID(uuid.New())

	st.EXPECT().UpdateProspectsStatus(ctx, []domain.ProspectID{known, unknown}, domain.ProspectStatusQueued).
		Return([]domain.Prospect{{ID: known, Status: domain.ProspectStatusQueued}}, nil)

	queued, err := c.QueueProspects(ctx, []domain.ProspectID{known, unknown})
	require.NoError(t, err)
	require.Len(t, queued, 1)
	require.Equal(t, known, queued[0].ID)

	_, err = c.QueueProspects(ctx, nil)
	require.Equal(t, "Prospect IDs array is required", serrors.MessageOf(err))
}

func TestRecalculateICP(t *testing.T) {
	ctx := context.Background()
	st, c := setup(t)
	crm.SetRand(c, func() float64 { return 0.9 })
	id := domain.ProspectID(uuid.New())

	st.EXPECT().ProspectByID(ctx, id).Return(&domain.Prospect{ID: id, ICPScore: 98}, nil)
	st.EXPECT().UpdateProspect(ctx, id, domain.ProspectInput{ICPScore: ptr(100)}).
		Return(&domain.Prospect{ID: id, ICPScore: 100}, nil)

	p, err := c.RecalculateICP(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 100, p.ICPScore)
}

func TestCreateViolation(t *testing.T) {
	ctx := context.Background()
	st, c := setup(t)
	id := domain.ProspectID(uuid.New())
	v := domain.Violation{ProspectID: &id, Type: "missing-alt-text", Severity: domain.SeverityCritical}

	st.EXPECT().ProspectByID(ctx, id).Return(&domain.Prospect{ID: id}, nil)
	st.EXPECT().StoreViolations(ctx, v).Return([]domain.Violation{v}, nil)

	stored, err := c.CreateViolation(ctx, v)
	require.NoError(t, err)
	require.Equal(t, "missing-alt-text", stored.Type)

	_, err = c.CreateViolation(ctx, domain.Violation{Type: "x", Severity: "fatal"})
	require.Equal(t, "Invalid violation data", serrors.MessageOf(err))
}

func TestTriggers(t *testing.T) {
	ctx := context.Background()
	id := domain.TriggerID(uuid.New())

	t.Run("create validates the condition", func(t *testing.T) {
		st, c := setup(t)
		st.EXPECT().StoreTrigger(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, tr domain.Trigger) (*domain.Trigger, error) {
				require.True(t, tr.IsActive)

				return &tr, nil
			})

		tr, err := c.CreateTrigger(ctx, domain.TriggerInput{
			Name:      ptr("Low scores"),
			Type:      ptr(domain.TriggerTypeSlack),
			Condition: ptr("scan.completed when wcag_score < 50"),
		})
		require.NoError(t, err)
		require.Equal(t, "Low scores", tr.Name)

		_, err = c.CreateTrigger(ctx, domain.TriggerInput{
			Name:      ptr("Broken"),
			Type:      ptr(domain.TriggerTypeSlack),
			Condition: ptr("scan.completed when mood > 3"),
		})
		require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(err))
	})

	t.Run("update merges the patch", func(t *testing.T) {
		st, c := setup(t)
		current := domain.Trigger{
			ID:        id,
			Name:      "Failures",
			Type:      domain.TriggerTypeWebhook,
			Condition: "scan.failed",
			IsActive:  true,
		}
		st.EXPECT().TriggerByID(ctx, id).Return(&current, nil)
		st.EXPECT().UpdateTrigger(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, tr domain.Trigger) (*domain.Trigger, error) {
				require.False(t, tr.IsActive)
				require.Equal(t, "Failures", tr.Name)

				return &tr, nil
			})

		tr, err := c.UpdateTrigger(ctx, id, domain.TriggerInput{IsActive: ptr(false)})
		require.NoError(t, err)
		require.False(t, tr.IsActive)
	})

	t.Run("delete unknown", func(t *testing.T) {
		st, c := setup(t)
		st.EXPECT().DeleteTrigger(ctx, id).Return(false, nil)
		require.Equal(t, serrors.ErrNotFound, serrors.KindOf(c.DeleteTrigger(ctx, id)))
	})
}

func TestCreateClient_GeneratesAPIKey(t *testing.T) {
	ctx := context.Background()
	st, c := setup(t)

	st.EXPECT().StoreClient(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, cl domain.Client) (*domain.Client, error) {
			return &cl, nil
		})

	client, err := c.CreateClient(ctx, domain.ClientInput{Name: ptr("Agency"), Email: ptr("ops@agency.example")})
	require.NoError(t, err)
	require.Len(t, client.APIKey, 64)

	_, err = c.CreateClient(ctx, domain.ClientInput{Name: ptr("Agency"), Email: ptr("nope")})
	require.Equal(t, "Invalid client data", serrors.MessageOf(err))
}

func TestCreateClient_DuplicateAPIKey(t *testing.T) {
	ctx := context.Background()
	st, c := setup(t)

	st.EXPECT().StoreClient(ctx, gomock.Any()).Return(nil, fmt.Errorf("could not store client into pg: %w", storage.ErrDuplicate))

	_, err := c.CreateClient(ctx, domain.ClientInput{
		Name: ptr("Agency"), Email: ptr("ops@agency.example"), APIKey: ptr("taken"),
	})
	require.Equal(t, serrors.ErrConflict, serrors.KindOf(err))
	require.ErrorIs(t, err, storage.ErrDuplicate)
}

func TestAuthenticateClient(t *testing.T) {
	ctx := context.Background()
	st, c := setup(t)

	st.EXPECT().ClientByAPIKey(ctx, "secret").Return(&domain.Client{Name: "Agency", APIKey: "secret"}, nil)
	client, err := c.AuthenticateClient(ctx, "secret")
	require.NoError(t, err)
	require.Equal(t, "Agency", client.Name)

	st.EXPECT().ClientByAPIKey(ctx, "wrong").Return(nil, nil)
	_, err = c.AuthenticateClient(ctx, "wrong")
	require.Equal(t, serrors.ErrUnauthorized, serrors.KindOf(err))

	_, err = c.AuthenticateClient(ctx, "")
	require.Equal(t, serrors.ErrUnauthorized, serrors.KindOf(err))
}

func TestAnalytics(t *testing.T) {
	ctx := context.Background()
	st, c := setup(t)
	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)
	crm.SetClock(c, func() time.Time { return now })

	st.EXPECT().Analytics(ctx, now.Add(-30*24*time.Hour), now).Return([]domain.AnalyticsDay{{EmailsSent: 1}}, nil)
	days, err := c.Analytics(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, days, 1)

	_, err = c.Analytics(ctx, now, now.Add(-time.Hour))
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(err))
}

func TestDashboardMetrics(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)

	t.Run("rates", func(t *testing.T) {
		st, c := setup(t)
		crm.SetClock(c, func() time.Time { return now })

		st.EXPECT().ProspectStats(ctx).Return(storage.ProspectStats{Total: 4, Active: 2, AvgICPScore: 72.5}, nil)
		st.EXPECT().Analytics(ctx, now.Add(-7*24*time.Hour), now).Return([]domain.AnalyticsDay{
			{EmailsSent: 2, EmailsOpened: 1, EmailsReplied: 1},
			{EmailsSent: 1, EmailsOpened: 1, DemoBookings: 1},
		}, nil)

		m, err := c.DashboardMetrics(ctx)
		require.NoError(t, err)
		require.Equal(t, &crm.DashboardMetrics{
			ActiveProspects: 2,
			ReplyRate:       33.3,
			OpenRate:        66.7,
			DemoBookings:    1,
			AvgICPScore:     73,
		}, m)
	})

	t.Run("nothing sent", func(t *testing.T) {
		st, c := setup(t)
		st.EXPECT().ProspectStats(ctx).Return(storage.ProspectStats{}, nil)
		st.EXPECT().Analytics(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)

		m, err := c.DashboardMetrics(ctx)
		require.NoError(t, err)
		require.Zero(t, m.ReplyRate)
		require.Zero(t, m.OpenRate)
		require.Zero(t, m.AvgICPScore)
	})
}

func TestSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("empty database", func(t *testing.T) {
		st, c := setup(t)
		st.EXPECT().Prospects(ctx, storage.ProspectFilter{Limit: 1}).Return(nil, nil)
		st.EXPECT().StoreProspects(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, ps ...domain.Prospect) ([]domain.Prospect, error) {
				require.Equal(t, "TechCorp Inc", ps[0].Company)
				require.Equal(t, domain.ProspectStatusQueued, ps[1].Status)

				return ps, nil
			})

		n, err := c.Seed(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, n)
	})

	t.Run("already seeded", func(t *testing.T) {
		st, c := setup(t)
		st.EXPECT().Prospects(ctx, storage.ProspectFilter{Limit: 1}).Return([]domain.Prospect{{}}, nil)

		n, err := c.Seed(ctx)
		require.NoError(t, err)
		require.Zero(t, n)
	})
}

func TestHealth(t *testing.T) {
	ctx := context.Background()
	st, c := setup(t)

	st.EXPECT().Ping(ctx).Return(nil)
	require.NoError(t, c.Health(ctx))

	st.EXPECT().Ping(ctx).Return(errors.New("connection refused"))
	require.Equal(t, serrors.ErrUnavailable, serrors.KindOf(c.Health(ctx)))
}
