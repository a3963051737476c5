package scanner_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"wcagrep/internal/scanner"
	"wcagrep/pkg/browser"
	mockbrowser "wcagrep/pkg/browser/mock"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/metrics"
	"wcagrep/pkg/serrors"
	"wcagrep/pkg/storage"
	mockstorage "wcagrep/pkg/storage/mock"
)

const (
	url = "https://example.com/"

	page = `<!doctype html><html><head><title>Example</title></head>` +
		`<body><h1>Welcome</h1><img src="hero.png"></body></html>`
)

type recorder struct {
	mu     sync.Mutex
	events []domain.Event
}

func (r *recorder) Publish(_ context.Context, e domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) types() []domain.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}

	return out
}

type fixture struct {
	ctrl    *gomock.Controller
	st      *mockstorage.MockStorage
	backend *mockbrowser.MockBackend
	pool    *browser.Pool
	events  *recorder
	metrics *metrics.Metrics
	s       scanner.Scanner
}

func newFixture(t *testing.T, dailyLimit int) *fixture {
	t.Helper()
	logger.Setup(logger.DevelopmentEnvironment)

	ctrl := gomock.NewController(t)
	backend := mockbrowser.NewMockBackend(ctrl)
	backend.EXPECT().Name().Return("http").AnyTimes()

	m := metrics.New(nil)
	pool, err := browser.NewPool(m, browser.Slot{Backend: backend, Enabled: true, Concurrent: 1, DailyLimit: dailyLimit})
	require.NoError(t, err)

	f := &fixture{
		ctrl:    ctrl,
		st:      mockstorage.NewMockStorage(ctrl),
		backend: backend,
		pool:    pool,
		events:  &recorder{},
		metrics: m,
	}
	f.s = scanner.New(f.st, pool, f.events, m, scanner.Options{
		MaxAttempts:     3,
		ScanTimeout:     time.Minute,
		ReauditInterval: 30 * 24 * time.Hour,
	})

	return f
}

// expectWithTx wires Storage.WithTx to execute the callback with a MockAllStorage.
func (f *fixture) expectWithTx(fn func(tx *mockstorage.MockAllStorage)) {
	f.st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(f.ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestScanner_Enqueue(t *testing.T) {
	f := newFixture(t, 0)
	jobID := domain.ScanJobID(uuid.New())

	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreScanJob(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, job domain.ScanJob) (*domain.ScanJob, error) {
				require.Equal(t, url, job.URL)
				require.Equal(t, domain.ScanJobStatusPending, job.Status)
				require.Equal(t, "Example Co", job.CompanyName)
				job.ID = jobID

				return &job, nil
			})
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				scanArgs, ok := args.(scanner.ScanJobArgs)
				require.True(t, ok)
				require.Equal(t, jobID, scanArgs.ScanJobID)
				opts := scanArgs.InsertOpts()
				require.Equal(t, 3, opts.MaxAttempts)
				require.Equal(t, scanner.QueueScans, opts.Queue)
				require.True(t, opts.UniqueOpts.ByArgs)

				return true, nil
			})
	})

	job, err := f.s.Enqueue(context.Background(), scanner.ScanRequest{URL: "HTTPS://Example.com", CompanyName: "Example Co"})
	require.NoError(t, err)
	require.Equal(t, jobID, job.ID)
	require.Equal(t, domain.ScanJobStatusPending, job.Status)
	require.Equal(t, []domain.EventType{domain.EventScanQueued}, f.events.types())
}

func TestScanner_Enqueue_InvalidURL(t *testing.T) {
	f := newFixture(t, 0)

	for _, in := range []string{"", "not a url", "ftp://example.com/file", "example.com", "http://exa mple.com", "https://"} {
		_, err := f.s.Enqueue(context.Background(), scanner.ScanRequest{URL: in})
		require.ErrorIs(t, err, serrors.ErrBadRequest, in)
		require.Equal(t, "Invalid URL format", serrors.MessageOf(err), in)
	}
	require.Empty(t, f.events.types())
}

func TestScanner_Enqueue_UnknownProspect(t *testing.T) {
	f := newFixture(t, 0)
	id := domain.ProspectID(uuid.New())

	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ProspectByID(gomock.Any(), id).Return(nil, nil)
	})

	_, err := f.s.Enqueue(context.Background(), scanner.ScanRequest{URL: url, ProspectID: &id})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestScanner_EnqueueProspect(t *testing.T) {
	f := newFixture(t, 0)
	prospect := domain.Prospect{
		ID:      domain.ProspectID(uuid.New()),
		Company: "TechCorp Inc",
		Website: "https://example.com",
		Email:   "jane@example.com",
	}

	f.st.EXPECT().ProspectByID(gomock.Any(), prospect.ID).Return(&prospect, nil)
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ProspectByID(gomock.Any(), prospect.ID).Return(&prospect, nil)
		tx.EXPECT().StoreScanJob(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, job domain.ScanJob) (*domain.ScanJob, error) {
				require.Equal(t, url, job.URL)
				require.Equal(t, prospect.ID, *job.ProspectID)
				require.Equal(t, "TechCorp Inc", job.CompanyName)
				require.Equal(t, "jane@example.com", job.ProspectEmail)
				job.ID = domain.ScanJobID(uuid.New())

				return &job, nil
			})
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	_, err := f.s.EnqueueProspect(context.Background(), prospect.ID)
	require.NoError(t, err)

	missing := domain.ProspectID(uuid.New())
	f.st.EXPECT().ProspectByID(gomock.Any(), missing).Return(nil, nil)
	_, err = f.s.EnqueueProspect(context.Background(), missing)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.Equal(t, "Prospect or website not found", serrors.MessageOf(err))
}

func TestScanner_Lookups_NotFound(t *testing.T) {
	f := newFixture(t, 0)
	id := domain.ScanJobID(uuid.New())

	f.st.EXPECT().ScanJobByID(gomock.Any(), id).Return(nil, nil).Times(2)
	f.st.EXPECT().AuditReport(gomock.Any(), id).Return(nil, nil)

	_, err := f.s.ScanJob(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.Equal(t, "Scan job not found", serrors.MessageOf(err))

	_, err = f.s.Results(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, err = f.s.Report(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.Equal(t, "Report not found", serrors.MessageOf(err))
}

func TestScanner_Execute_MissingJobConflicts(t *testing.T) {
	f := newFixture(t, 0)
	id := domain.ScanJobID(uuid.New())
	f.st.EXPECT().ScanJobByID(gomock.Any(), id).Return(nil, nil)

	err := f.s.Execute(context.Background(), id, 1, 3)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestScanner_Execute_FinishedJobIsNoop(t *testing.T) {
	f := newFixture(t, 0)
	id := domain.ScanJobID(uuid.New())
	f.st.EXPECT().ScanJobByID(gomock.Any(), id).Return(&domain.ScanJob{ID: id, Status: domain.ScanJobStatusCompleted}, nil)

	require.NoError(t, f.s.Execute(context.Background(), id, 1, 3))
	require.Empty(t, f.events.types())
}

func TestScanner_Execute_Completes(t *testing.T) {
	f := newFixture(t, 0)
	prospectID := domain.ProspectID(uuid.New())
	job := domain.ScanJob{
		ID:         domain.ScanJobID(uuid.New()),
		URL:        url,
		ProspectID: &prospectID,
		Status:     domain.ScanJobStatusPending,
	}

	f.st.EXPECT().ScanJobByID(gomock.Any(), job.ID).Return(&job, nil)
	f.st.EXPECT().UpdateScanJob(gomock.Any(), job.ID, storage.ScanJobUpdates{
		Status:            domain.ScanJobStatusRunning,
		IncrementAttempts: true,
	}).DoAndReturn(func(_ context.Context, _ domain.ScanJobID, _ storage.ScanJobUpdates) (*domain.ScanJob, error) {
		running := job
		running.Status = domain.ScanJobStatusRunning
		running.Attempts = 1

		return &running, nil
	})
	f.backend.EXPECT().Fetch(gomock.Any(), url).Return(&browser.Page{
		RequestedURL: url,
		FinalURL:     url,
		StatusCode:   200,
		HTML:         page,
		Title:        "Example",
	}, nil)

	var stored []domain.Violation
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteViolationsByScanJob(gomock.Any(), job.ID).Return(nil)
		tx.EXPECT().StoreViolations(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, vs ...domain.Violation) ([]domain.Violation, error) {
				stored = vs

				return vs, nil
			})
		tx.EXPECT().UpdateScanJob(gomock.Any(), job.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.ScanJobID, u storage.ScanJobUpdates) (*domain.ScanJob, error) {
				require.Equal(t, domain.ScanJobStatusCompleted, u.Status)
				require.NotNil(t, u.LastError)
				require.Empty(t, *u.LastError)
				require.NotNil(t, u.Result)
				require.Equal(t, "http", u.Result.Backend)
				require.Equal(t, "Example", u.Result.Title)
				require.Equal(t, page, u.Result.HTML)
				require.Equal(t, domain.CountViolations(stored), u.Result.Counts)

				completed := job
				completed.Status = domain.ScanJobStatusCompleted
				completed.WCAGScore = &u.Result.Score

				return &completed, nil
			})
		tx.EXPECT().UpdateProspect(gomock.Any(), prospectID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.ProspectID, in domain.ProspectInput) (*domain.Prospect, error) {
				require.Equal(t, domain.ProspectStatusScanned, *in.Status)
				require.NotNil(t, in.RiskLevel)

				return &domain.Prospect{ID: prospectID, ICPScore: 70}, nil
			})
		tx.EXPECT().Triggers(gomock.Any(), gomock.Any()).Return(nil, nil)
	})

	require.NoError(t, f.s.Execute(context.Background(), job.ID, 1, 3))

	require.NotEmpty(t, stored)
	for _, v := range stored {
		require.Equal(t, job.ID, *v.ScanJobID)
		require.Equal(t, prospectID, *v.ProspectID)
	}
	require.Equal(t, []domain.EventType{domain.EventScanRunning, domain.EventScanCompleted}, f.events.types())
	require.InDelta(t, 1, testutil.ToFloat64(f.metrics.ScansTotal.WithLabelValues("completed")), 0)
	require.Equal(t, 0, f.pool.Stats()[0].ActiveScans)
}

func TestScanner_Execute_RetriesTransientFailures(t *testing.T) {
	f := newFixture(t, 0)
	job := domain.ScanJob{ID: domain.ScanJobID(uuid.New()), URL: url, Status: domain.ScanJobStatusPending}

	f.st.EXPECT().ScanJobByID(gomock.Any(), job.ID).Return(&job, nil)
	f.st.EXPECT().UpdateScanJob(gomock.Any(), job.ID, gomock.Any()).Return(&job, nil)
	f.backend.EXPECT().Fetch(gomock.Any(), url).Return(nil, serrors.With(serrors.ErrUnavailable, "connection reset"))
	f.st.EXPECT().UpdateScanJob(gomock.Any(), job.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.ScanJobID, u storage.ScanJobUpdates) (*domain.ScanJob, error) {
			require.Equal(t, domain.ScanJobStatusPending, u.Status)
			require.Contains(t, *u.LastError, "connection reset")

			return &job, nil
		})

	err := f.s.Execute(context.Background(), job.ID, 1, 3)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Equal(t, []domain.EventType{domain.EventScanRunning}, f.events.types())
}

func TestScanner_Execute_FailsOnLastAttempt(t *testing.T) {
	f := newFixture(t, 0)
	job := domain.ScanJob{ID: domain.ScanJobID(uuid.New()), URL: url, Status: domain.ScanJobStatusPending}

	f.st.EXPECT().ScanJobByID(gomock.Any(), job.ID).Return(&job, nil)
	f.st.EXPECT().UpdateScanJob(gomock.Any(), job.ID, gomock.Any()).Return(&job, nil)
	f.backend.EXPECT().Fetch(gomock.Any(), url).Return(nil, serrors.With(serrors.ErrTimeout, "page load timed out"))
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateScanJob(gomock.Any(), job.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.ScanJobID, u storage.ScanJobUpdates) (*domain.ScanJob, error) {
				require.Equal(t, domain.ScanJobStatusFailed, u.Status)
				failed := job
				failed.Status = domain.ScanJobStatusFailed
				failed.LastError = *u.LastError

				return &failed, nil
			})
		tx.EXPECT().Triggers(gomock.Any(), gomock.Any()).Return(nil, nil)
	})

	err := f.s.Execute(context.Background(), job.ID, 3, 3)
	require.ErrorIs(t, err, serrors.ErrTimeout)
	require.Equal(t, []domain.EventType{domain.EventScanRunning, domain.EventScanFailed}, f.events.types())
	require.InDelta(t, 1, testutil.ToFloat64(f.metrics.ScansTotal.WithLabelValues("failed")), 0)
}

func TestScanner_Execute_UnauditablePageFailsImmediately(t *testing.T) {
	f := newFixture(t, 0)
	job := domain.ScanJob{ID: domain.ScanJobID(uuid.New()), URL: url, Status: domain.ScanJobStatusPending}

	f.st.EXPECT().ScanJobByID(gomock.Any(), job.ID).Return(&job, nil)
	f.st.EXPECT().UpdateScanJob(gomock.Any(), job.ID, gomock.Any()).Return(&job, nil)
	f.backend.EXPECT().Fetch(gomock.Any(), url).Return(nil, serrors.With(serrors.ErrBadRequest, "page returned 404"))
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateScanJob(gomock.Any(), job.ID, gomock.Any()).Return(&domain.ScanJob{
			ID:     job.ID,
			Status: domain.ScanJobStatusFailed,
		}, nil)
		tx.EXPECT().Triggers(gomock.Any(), gomock.Any()).Return(nil, nil)
	})

	err := f.s.Execute(context.Background(), job.ID, 1, 3)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestScanner_Execute_QuotaExhaustedKeepsJobPending(t *testing.T) {
	f := newFixture(t, 1)
	job := domain.ScanJob{ID: domain.ScanJobID(uuid.New()), URL: url, Status: domain.ScanJobStatusPending}

	// use up the daily quota
	lease, err := f.pool.Acquire(context.Background())
	require.NoError(t, err)
	lease.Release()

	f.st.EXPECT().ScanJobByID(gomock.Any(), job.ID).Return(&job, nil)

	err = f.s.Execute(context.Background(), job.ID, 1, 3)
	require.ErrorIs(t, err, serrors.ErrRateLimited)

	var quota *browser.QuotaError
	require.True(t, errors.As(err, &quota))
	require.True(t, quota.ResetAt.After(time.Now()))
	require.Empty(t, f.events.types())
}

func TestScanner_Execute_ThrottledSite(t *testing.T) {
	for name, tc := range map[string]struct {
		attempt int
		status  domain.ScanJobStatus
		events  []domain.EventType
	}{
		"retried while attempts remain": {
			attempt: 1,
			status:  domain.ScanJobStatusPending,
			events:  []domain.EventType{domain.EventScanRunning},
		},
		"failed on the last attempt": {
			attempt: 3,
			status:  domain.ScanJobStatusFailed,
			events:  []domain.EventType{domain.EventScanRunning, domain.EventScanFailed},
		},
	} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, 0)
			job := domain.ScanJob{ID: domain.ScanJobID(uuid.New()), URL: url, Status: domain.ScanJobStatusPending}

			f.st.EXPECT().ScanJobByID(gomock.Any(), job.ID).Return(&job, nil)
			f.st.EXPECT().UpdateScanJob(gomock.Any(), job.ID, gomock.Any()).Return(&job, nil)
			f.backend.EXPECT().Fetch(gomock.Any(), url).Return(nil, serrors.With(serrors.ErrRateLimited, "upstream 429"))

			update := func(_ context.Context, _ domain.ScanJobID, u storage.ScanJobUpdates) (*domain.ScanJob, error) {
				require.Equal(t, tc.status, u.Status)
				out := job
				out.Status = u.Status

				return &out, nil
			}
			if tc.status == domain.ScanJobStatusFailed {
				f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
					tx.EXPECT().UpdateScanJob(gomock.Any(), job.ID, gomock.Any()).DoAndReturn(update)
					tx.EXPECT().Triggers(gomock.Any(), gomock.Any()).Return(nil, nil)
				})
			} else {
				f.st.EXPECT().UpdateScanJob(gomock.Any(), job.ID, gomock.Any()).DoAndReturn(update)
			}

			err := f.s.Execute(context.Background(), job.ID, tc.attempt, 3)
			require.ErrorIs(t, err, serrors.ErrRateLimited)
			require.Equal(t, tc.events, f.events.types())
		})
	}
}

func TestScanner_Execute_LeaseWaitTimesOutOnLastAttempt(t *testing.T) {
	f := newFixture(t, 0)
	f.s = scanner.New(f.st, f.pool, f.events, f.metrics, scanner.Options{
		MaxAttempts: 3,
		ScanTimeout: 50 * time.Millisecond,
	})
	job := domain.ScanJob{ID: domain.ScanJobID(uuid.New()), URL: url, Status: domain.ScanJobStatusPending}

	// the only slot stays busy
	lease, err := f.pool.Acquire(context.Background())
	require.NoError(t, err)
	defer lease.Release()

	f.st.EXPECT().ScanJobByID(gomock.Any(), job.ID).Return(&job, nil)
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateScanJob(gomock.Any(), job.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.ScanJobID, u storage.ScanJobUpdates) (*domain.ScanJob, error) {
				require.Equal(t, domain.ScanJobStatusFailed, u.Status)
				require.Contains(t, *u.LastError, "waiting for backend slot")
				failed := job
				failed.Status = domain.ScanJobStatusFailed

				return &failed, nil
			})
		tx.EXPECT().Triggers(gomock.Any(), gomock.Any()).Return(nil, nil)
	})

	err = f.s.Execute(context.Background(), job.ID, 3, 3)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, []domain.EventType{domain.EventScanFailed}, f.events.types())
}

func TestScanner_Execute_LeaseWaitTimeoutRetried(t *testing.T) {
	f := newFixture(t, 0)
	f.s = scanner.New(f.st, f.pool, f.events, f.metrics, scanner.Options{
		MaxAttempts: 3,
		ScanTimeout: 50 * time.Millisecond,
	})
	job := domain.ScanJob{ID: domain.ScanJobID(uuid.New()), URL: url, Status: domain.ScanJobStatusPending}

	lease, err := f.pool.Acquire(context.Background())
	require.NoError(t, err)
	defer lease.Release()

	f.st.EXPECT().ScanJobByID(gomock.Any(), job.ID).Return(&job, nil)
	f.st.EXPECT().UpdateScanJob(gomock.Any(), job.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.ScanJobID, u storage.ScanJobUpdates) (*domain.ScanJob, error) {
			require.Equal(t, domain.ScanJobStatusPending, u.Status)
			require.False(t, u.IncrementAttempts)

			return &job, nil
		})

	err = f.s.Execute(context.Background(), job.ID, 1, 3)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Empty(t, f.events.types())
}

func TestScanner_ScheduleReaudit(t *testing.T) {
	f := newFixture(t, 0)
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	scanner.SetClock(f.s, func() time.Time { return now })

	id := domain.ProspectID(uuid.New())
	f.st.EXPECT().ProspectByID(gomock.Any(), id).Return(&domain.Prospect{ID: id}, nil).Times(2)

	var scheduled []time.Time
	f.st.EXPECT().AddJob(gomock.Any(), scanner.ReauditJobArgs{ProspectID: id}, gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, _ river.JobArgs, opts *river.InsertOpts) (bool, error) {
			scheduled = append(scheduled, opts.ScheduledAt)

			return true, nil
		})

	at, err := f.s.ScheduleReaudit(context.Background(), id, 0)
	require.NoError(t, err)
	require.Equal(t, now.Add(30*24*time.Hour), at)

	at, err = f.s.ScheduleReaudit(context.Background(), id, 48*time.Hour)
	require.NoError(t, err)
	require.Equal(t, now.Add(48*time.Hour), at)

	require.Equal(t, []time.Time{now.Add(30 * 24 * time.Hour), now.Add(48 * time.Hour)}, scheduled)
}

func TestScanner_ScheduleReaudit_UnknownProspect(t *testing.T) {
	f := newFixture(t, 0)
	id := domain.ProspectID(uuid.New())
	f.st.EXPECT().ProspectByID(gomock.Any(), id).Return(nil, nil)

	_, err := f.s.ScheduleReaudit(context.Background(), id, 0)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
