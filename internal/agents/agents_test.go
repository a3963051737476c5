package agents_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"wcagrep/internal/agents"
	"wcagrep/internal/report"
	mockscanner "wcagrep/internal/scanner/mock"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/serrors"
	"wcagrep/pkg/storage"
	mockstorage "wcagrep/pkg/storage/mock"
)

type fakeReports struct {
	mu     sync.Mutex
	inputs []report.Input
	err    error
	block  chan struct{}
}

func (f *fakeReports) Compact(_ context.Context, in report.Input) (*report.File, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, in)

	return &report.File{Path: "/tmp/x.pdf"}, f.err
}

func prospect(status domain.ProspectStatus) domain.Prospect {
	return domain.Prospect{
		ID:      domain.ProspectID(uuid.New()),
		Company: "Acme",
		Website: "https://acme.example",
		Status:  status,
	}
}

func setup(t *testing.T) (*mockstorage.MockStorage, *mockscanner.MockScanner, *fakeReports) {
	t.Helper()
	logger.Setup(logger.DevelopmentEnvironment)

	ctrl := gomock.NewController(t)

	return mockstorage.NewMockStorage(ctrl), mockscanner.NewMockScanner(ctrl), &fakeReports{}
}

func TestPlanner(t *testing.T) {
	ctx := context.Background()
	st, sc, reports := setup(t)
	runner := agents.NewRunner(st, sc, reports, agents.Options{PlannerBatchSize: 2})

	ok, broken := prospect(domain.ProspectStatusQueued), prospect(domain.ProspectStatusQueued)
	st.EXPECT().Prospects(gomock.Any(), storage.ProspectFilter{
		Status:      domain.ProspectStatusQueued,
		Limit:       2,
		OldestFirst: true,
	}).Return([]domain.Prospect{ok, broken}, nil)
	sc.EXPECT().EnqueueProspect(gomock.Any(), ok.ID).
		Return(&domain.ScanJob{ID: domain.ScanJobID(uuid.New())}, nil)
	sc.EXPECT().EnqueueProspect(gomock.Any(), broken.ID).
		Return(nil, serrors.With(serrors.ErrNotFound, "Prospect or website not found"))
	st.EXPECT().UpdateProspectsStatus(gomock.Any(), []domain.ProspectID{ok.ID}, domain.ProspectStatusScanning).
		Return([]domain.Prospect{ok}, nil)

	res, err := runner.Run(ctx, agents.Planner)
	require.NoError(t, err)
	require.Equal(t, 1, res.Queued)
	require.Equal(t, 1, res.Failed)

	status := runner.Status()
	require.Equal(t, agents.StatusIdle, status.Planner.Status)
	require.Equal(t, 1, status.Planner.Runs)
	require.NotNil(t, status.Planner.LastRun)
	require.Nil(t, status.Executor.LastRun)
	require.Equal(t, agents.StatusRunning, status.Monitor.Status)
}

func TestExecutor(t *testing.T) {
	ctx := context.Background()
	st, sc, reports := setup(t)
	runner := agents.NewRunner(st, sc, reports, agents.Options{})

	done, failed, running, orphan := prospect(domain.ProspectStatusScanning),
		prospect(domain.ProspectStatusScanning),
		prospect(domain.ProspectStatusScanning),
		prospect(domain.ProspectStatusScanning)
	completedJob := domain.ScanJob{ID: domain.ScanJobID(uuid.New()), Status: domain.ScanJobStatusCompleted}
	violations := []domain.Violation{{Type: "image-alt", Severity: domain.SeverityCritical}}

	st.EXPECT().Prospects(gomock.Any(), storage.ProspectFilter{Status: domain.ProspectStatusScanning}).
		Return([]domain.Prospect{done, failed, running, orphan}, nil)
	st.EXPECT().LatestScanJobByProspect(gomock.Any(), done.ID).Return(&completedJob, nil)
	st.EXPECT().LatestScanJobByProspect(gomock.Any(), failed.ID).
		Return(&domain.ScanJob{Status: domain.ScanJobStatusFailed}, nil)
	st.EXPECT().LatestScanJobByProspect(gomock.Any(), running.ID).
		Return(&domain.ScanJob{Status: domain.ScanJobStatusRunning}, nil)
	st.EXPECT().LatestScanJobByProspect(gomock.Any(), orphan.ID).Return(nil, nil)
	st.EXPECT().ViolationsByScanJob(gomock.Any(), completedJob.ID).Return(violations, nil)
	st.EXPECT().UpdateProspectsStatus(gomock.Any(), []domain.ProspectID{done.ID}, domain.ProspectStatusScanned).
		Return(nil, nil)
	st.EXPECT().UpdateProspectsStatus(gomock.Any(), []domain.ProspectID{failed.ID, orphan.ID}, domain.ProspectStatusQueued).
		Return(nil, nil)

	res, err := runner.Run(ctx, agents.Executor)
	require.NoError(t, err)
	require.Equal(t, 1, res.Scanned)
	require.Equal(t, 2, res.Requeued)
	require.Equal(t, 1, res.Pending)
	require.Zero(t, res.Failed)

	require.Len(t, reports.inputs, 1)
	require.Equal(t, completedJob.ID, reports.inputs[0].ScanJob.ID)
	require.Equal(t, "Acme", reports.inputs[0].Company)
	require.Equal(t, violations, reports.inputs[0].Violations)
	require.True(t, reports.inputs[0].IncludeRoadmap)
}

func TestExecutorReportFailure(t *testing.T) {
	ctx := context.Background()
	st, sc, reports := setup(t)
	reports.err = serrors.With(serrors.ErrTimeout, "PDF generation timed out")
	runner := agents.NewRunner(st, sc, reports, agents.Options{})

	p := prospect(domain.ProspectStatusScanning)
	st.EXPECT().Prospects(gomock.Any(), gomock.Any()).Return([]domain.Prospect{p}, nil)
	st.EXPECT().LatestScanJobByProspect(gomock.Any(), p.ID).
		Return(&domain.ScanJob{Status: domain.ScanJobStatusCompleted}, nil)
	st.EXPECT().ViolationsByScanJob(gomock.Any(), gomock.Any()).Return(nil, nil)
	st.EXPECT().UpdateProspectsStatus(gomock.Any(), []domain.ProspectID{p.ID}, domain.ProspectStatusScanned).Return(nil, nil)
	st.EXPECT().UpdateProspectsStatus(gomock.Any(), nil, domain.ProspectStatusQueued).Return(nil, nil)

	res, err := runner.Run(ctx, agents.Executor)
	require.NoError(t, err)
	require.Equal(t, 1, res.Scanned)
	require.Equal(t, 1, res.Failed)
}

func TestRunError(t *testing.T) {
	ctx := context.Background()
	st, sc, reports := setup(t)
	runner := agents.NewRunner(st, sc, reports, agents.Options{})

	st.EXPECT().Prospects(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := runner.Run(ctx, agents.Planner)
	require.ErrorContains(t, err, "connection refused")

	status := runner.Status()
	require.Equal(t, agents.StatusError, status.Planner.Status)
	require.Contains(t, status.Planner.LastError, "connection refused")
	require.Equal(t, 1, status.Planner.Runs)
}

func TestRunUnknownAgent(t *testing.T) {
	st, sc, reports := setup(t)
	runner := agents.NewRunner(st, sc, reports, agents.Options{})

	_, err := runner.Run(context.Background(), agents.Monitor)
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(err))
}

func TestRunConcurrent(t *testing.T) {
	ctx := context.Background()
	st, sc, reports := setup(t)
	reports.block = make(chan struct{})
	runner := agents.NewRunner(st, sc, reports, agents.Options{})

	p := prospect(domain.ProspectStatusScanning)
	st.EXPECT().Prospects(gomock.Any(), gomock.Any()).Return([]domain.Prospect{p}, nil)
	st.EXPECT().LatestScanJobByProspect(gomock.Any(), p.ID).
		Return(&domain.ScanJob{Status: domain.ScanJobStatusCompleted}, nil)
	st.EXPECT().ViolationsByScanJob(gomock.Any(), gomock.Any()).Return(nil, nil)
	st.EXPECT().UpdateProspectsStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	errCh := make(chan error, 1)
	go func() {
		_, err := runner.Run(ctx, agents.Executor)
		errCh <- err
	}()

	require.Eventually(t, func() bool {
		return runner.Status().Executor.Status == agents.StatusRunning
	}, time.Second, 5*time.Millisecond)

	_, err := runner.Run(ctx, agents.Executor)
	require.Equal(t, serrors.ErrConflict, serrors.KindOf(err))

	close(reports.block)
	require.NoError(t, <-errCh)
	require.Equal(t, agents.StatusIdle, runner.Status().Executor.Status)
}

func TestRunPanicIsRecorded(t *testing.T) {
	st, sc, reports := setup(t)
	runner := agents.NewRunner(st, sc, reports, agents.Options{})

	st.EXPECT().Prospects(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, storage.ProspectFilter) ([]domain.Prospect, error) {
			panic("nil map")
		})

	_, err := runner.Run(context.Background(), agents.Planner)
	require.ErrorContains(t, err, "planner agent panicked: nil map")

	status := runner.Status()
	require.Equal(t, agents.StatusError, status.Planner.Status)
	require.Equal(t, 1, status.Planner.Runs)

	// the next run is not blocked
	st.EXPECT().Prospects(gomock.Any(), gomock.Any()).Return(nil, nil)
	st.EXPECT().UpdateProspectsStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	_, err = runner.Run(context.Background(), agents.Planner)
	require.NoError(t, err)
	require.Equal(t, agents.StatusIdle, runner.Status().Planner.Status)
}
