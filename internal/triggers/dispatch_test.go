package triggers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"wcagrep/internal/triggers"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/logger"
	mockstorage "wcagrep/pkg/storage/mock"
)

func TestDispatch_EnqueuesMatchingTriggers(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockAllStorage(ctrl)

	lowScore := domain.Trigger{ID: domain.TriggerID(uuid.New()), Condition: "scan.completed when wcag_score < 50"}
	anyScan := domain.Trigger{ID: domain.TriggerID(uuid.New()), Condition: "scan.completed"}
	highScore := domain.Trigger{ID: domain.TriggerID(uuid.New()), Condition: "scan.completed when wcag_score >= 90"}
	broken := domain.Trigger{ID: domain.TriggerID(uuid.New()), Condition: "whenever"}

	st.EXPECT().Triggers(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, active *bool) ([]domain.Trigger, error) {
			require.NotNil(t, active)
			require.True(t, *active)

			return []domain.Trigger{lowScore, anyScan, highScore, broken}, nil
		})

	e := domain.NewEvent(domain.EventScanCompleted, map[string]any{"wcag_score": 30})
	var enqueued []domain.TriggerID
	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Times(2).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			notify, ok := args.(triggers.NotifyJobArgs)
			require.True(t, ok)
			require.Equal(t, e.ID, notify.Event.ID)
			enqueued = append(enqueued, notify.TriggerID)

			return true, nil
		})

	n, err := triggers.Dispatch(context.Background(), st, e)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []domain.TriggerID{lowScore.ID, anyScan.ID}, enqueued)
}

func TestDispatch_IgnoresNonTriggerEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockAllStorage(ctrl)

	n, err := triggers.Dispatch(context.Background(), st, domain.NewEvent(domain.EventScanRunning, nil))
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestDispatch_PropagatesStorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockAllStorage(ctrl)
	st.EXPECT().Triggers(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	_, err := triggers.Dispatch(context.Background(), st, domain.NewEvent(domain.EventScanFailed, nil))
	require.ErrorContains(t, err, "boom")
}
