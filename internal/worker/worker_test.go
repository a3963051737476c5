package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"wcagrep/internal/agents"
	"wcagrep/internal/scanner"
	mockscanner "wcagrep/internal/scanner/mock"
	"wcagrep/internal/triggers"
	"wcagrep/internal/worker"
	"wcagrep/pkg/browser"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/serrors"
	mockstorage "wcagrep/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob[T river.JobArgs](id int64, args T) *river.Job[T] {
	return &river.Job[T]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: 1, MaxAttempts: 3},
		Args:   args,
	}
}

func scanJob(id int64) (domain.ScanJobID, *river.Job[scanner.ScanJobArgs]) {
	scanJobID := domain.ScanJobID(uuid.New())

	return scanJobID, makeJob(id, scanner.ScanJobArgs{ScanJobID: scanJobID})
}

func TestScanWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockscanner.NewMockScanner(ctrl)
	w := worker.NewScanWorker(mock, time.Minute)

	id, job := scanJob(1)
	mock.EXPECT().Execute(gomock.Any(), id, 1, 3).Return(nil)

	require.NoError(t, w.Work(context.Background(), job))
}

func TestScanWorker_Work_Cancels(t *testing.T) {
	for name, err := range map[string]error{
		"conflict":    serrors.With(serrors.ErrConflict, "scan job no longer exists"),
		"bad request": serrors.With(serrors.ErrBadRequest, "page is not HTML"),
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mock := mockscanner.NewMockScanner(ctrl)
			w := worker.NewScanWorker(mock, time.Minute)

			id, job := scanJob(2)
			mock.EXPECT().Execute(gomock.Any(), id, 1, 3).Return(err)

			werr := w.Work(context.Background(), job)
			var cancelErr *river.JobCancelError
			require.ErrorAs(t, werr, &cancelErr)
		})
	}
}

func TestScanWorker_Work_QuotaSnoozesUntilReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockscanner.NewMockScanner(ctrl)
	w := worker.NewScanWorker(mock, time.Minute)

	resetAt := time.Now().Add(1500 * time.Millisecond)
	id, job := scanJob(3)
	mock.EXPECT().Execute(gomock.Any(), id, 1, 3).
		Return(serrors.Wrap(serrors.ErrRateLimited, &browser.QuotaError{ResetAt: resetAt}, "quota exhausted"))

	err := w.Work(context.Background(), job)
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.GreaterOrEqual(t, snoozeErr.Duration, 1200*time.Millisecond)
	require.LessOrEqual(t, snoozeErr.Duration, 2*time.Second)
}

func TestScanWorker_Work_ThrottledSiteRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockscanner.NewMockScanner(ctrl)
	w := worker.NewScanWorker(mock, time.Minute)

	id, job := scanJob(4)
	mock.EXPECT().Execute(gomock.Any(), id, 1, 3).
		Return(serrors.With(serrors.ErrRateLimited, "site returned 429"))

	err := w.Work(context.Background(), job)
	require.ErrorIs(t, err, serrors.ErrRateLimited)
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr, "snoozing would never use up the attempts")
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
}

func TestScanWorker_Work_GenericErrorWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockscanner.NewMockScanner(ctrl)
	w := worker.NewScanWorker(mock, time.Minute)

	id, job := scanJob(5)
	scanErr := errors.New("boom")
	mock.EXPECT().Execute(gomock.Any(), id, 1, 3).Return(scanErr)

	err := w.Work(context.Background(), job)
	require.ErrorIs(t, err, scanErr)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "did not expect JobCancelError")
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr, "did not expect JobSnoozeError")
}

func TestScanWorker_Timeout(t *testing.T) {
	require.Equal(t, 90*time.Second, worker.NewScanWorker(nil, time.Minute).Timeout(nil))
	require.Zero(t, worker.NewScanWorker(nil, 0).Timeout(nil))
}

func TestReauditWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockscanner.NewMockScanner(ctrl)
	w := worker.NewReauditWorker(mock)

	prospectID := domain.ProspectID(uuid.New())
	mock.EXPECT().EnqueueProspect(gomock.Any(), prospectID).
		Return(&domain.ScanJob{ID: domain.ScanJobID(uuid.New())}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(6, scanner.ReauditJobArgs{ProspectID: prospectID})))
}

func TestReauditWorker_Work_DeletedProspectCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockscanner.NewMockScanner(ctrl)
	w := worker.NewReauditWorker(mock)

	prospectID := domain.ProspectID(uuid.New())
	mock.EXPECT().EnqueueProspect(gomock.Any(), prospectID).
		Return(nil, serrors.With(serrors.ErrNotFound, "Prospect or website not found"))

	err := w.Work(context.Background(), makeJob(7, scanner.ReauditJobArgs{ProspectID: prospectID}))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

type delivererFunc func(ctx context.Context, t domain.Trigger, e domain.Event) error

func (f delivererFunc) Deliver(ctx context.Context, t domain.Trigger, e domain.Event) error {
	return f(ctx, t, e)
}

func notifyJob(triggerID domain.TriggerID) *river.Job[triggers.NotifyJobArgs] {
	return makeJob(8, triggers.NotifyJobArgs{
		TriggerID: triggerID,
		Event:     domain.NewEvent(domain.EventScanCompleted, map[string]any{"url": "https://example.com"}),
	})
}

func TestNotifyWorker_Work(t *testing.T) {
	trigger := domain.Trigger{
		ID:        domain.TriggerID(uuid.New()),
		Name:      "low scores",
		Type:      domain.TriggerTypeSlack,
		Condition: "scan.completed when wcag_score < 50",
		IsActive:  true,
	}

	tests := []struct {
		name      string
		stored    *domain.Trigger
		deliver   error
		delivered bool
		check     func(t *testing.T, err error)
	}{
		{
			name:      "delivers",
			stored:    &trigger,
			delivered: true,
			check:     func(t *testing.T, err error) { require.NoError(t, err) },
		},
		{
			name:   "deleted trigger cancels",
			stored: nil,
			check: func(t *testing.T, err error) {
				var cancelErr *river.JobCancelError
				require.ErrorAs(t, err, &cancelErr)
			},
		},
		{
			name: "inactive trigger is skipped",
			stored: func() *domain.Trigger {
				inactive := trigger
				inactive.IsActive = false

				return &inactive
			}(),
			check: func(t *testing.T, err error) { require.NoError(t, err) },
		},
		{
			name:      "misconfigured channel cancels",
			stored:    &trigger,
			deliver:   serrors.With(serrors.ErrBadRequest, "slack: webhookUrl is not configured"),
			delivered: true,
			check: func(t *testing.T, err error) {
				var cancelErr *river.JobCancelError
				require.ErrorAs(t, err, &cancelErr)
			},
		},
		{
			name:      "unavailable channel retries",
			stored:    &trigger,
			deliver:   serrors.With(serrors.ErrUnavailable, "slack: webhook returned 503"),
			delivered: true,
			check: func(t *testing.T, err error) {
				require.Error(t, err)
				var cancelErr *river.JobCancelError
				require.NotErrorAs(t, err, &cancelErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			st := mockstorage.NewMockStorage(ctrl)
			st.EXPECT().TriggerByID(gomock.Any(), trigger.ID).Return(tt.stored, nil)

			var delivered bool
			w := worker.NewNotifyWorker(st, delivererFunc(func(_ context.Context, got domain.Trigger, e domain.Event) error {
				delivered = true
				require.Equal(t, trigger.ID, got.ID)
				require.Equal(t, domain.EventScanCompleted, e.Type)

				return tt.deliver
			}))

			tt.check(t, w.Work(context.Background(), notifyJob(trigger.ID)))
			require.Equal(t, tt.delivered, delivered)
		})
	}
}

type runnerFunc func(ctx context.Context, name agents.Name) (*agents.Result, error)

func (f runnerFunc) Run(ctx context.Context, name agents.Name) (*agents.Result, error) {
	return f(ctx, name)
}

func TestAgentWorker_Work(t *testing.T) {
	var ran []agents.Name
	w := worker.NewAgentWorker(runnerFunc(func(_ context.Context, name agents.Name) (*agents.Result, error) {
		ran = append(ran, name)
		if name == agents.Executor {
			return nil, serrors.With(serrors.ErrConflict, "executor agent is already running")
		}

		return &agents.Result{Agent: name}, nil
	}))

	require.NoError(t, w.Work(context.Background(), makeJob(9, worker.AgentJobArgs{Agent: agents.Planner})))

	err := w.Work(context.Background(), makeJob(10, worker.AgentJobArgs{Agent: agents.Executor}))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
	require.Equal(t, []agents.Name{agents.Planner, agents.Executor}, ran)
}

func TestPeriodicJobs(t *testing.T) {
	require.Len(t, worker.PeriodicJobs(worker.Options{PlannerInterval: time.Hour, ExecutorInterval: time.Minute}), 2)
	require.Len(t, worker.PeriodicJobs(worker.Options{PlannerInterval: time.Hour}), 1)
	require.Empty(t, worker.PeriodicJobs(worker.Options{}))
}
