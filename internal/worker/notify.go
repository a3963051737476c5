package worker

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"wcagrep/internal/triggers"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/storage"
)

// Deliverer sends an event through a trigger's channel.
type Deliverer interface {
	Deliver(ctx context.Context, t domain.Trigger, e domain.Event) error
}

// NotifyWorker delivers queued trigger notifications. The trigger is loaded
// when the job runs, so a trigger that was deleted or deactivated after the
// event fired sends nothing.
type NotifyWorker struct {
	river.WorkerDefaults[triggers.NotifyJobArgs]

	storage   storage.TriggerStorage
	deliverer Deliverer
}

func NewNotifyWorker(st storage.TriggerStorage, d Deliverer) *NotifyWorker {
	return &NotifyWorker{storage: st, deliverer: d}
}

func (w *NotifyWorker) Work(ctx context.Context, job *river.Job[triggers.NotifyJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Stringer("triggerID", job.Args.TriggerID),
		zap.String("event", string(job.Args.Event.Type)))

	t, err := w.storage.TriggerByID(ctx, job.Args.TriggerID)
	if err != nil {
		return fmt.Errorf("could not get trigger: %w", err)
	}
	if t == nil {
		logger.Info(ctx, "trigger was deleted, dropping notification")

		return river.JobCancel(fmt.Errorf("trigger %s no longer exists", job.Args.TriggerID)) //nolint: wrapcheck
	}
	if !t.IsActive {
		logger.Info(ctx, "trigger is inactive, dropping notification")

		return nil
	}

	if err := w.deliverer.Deliver(ctx, *t, job.Args.Event); err != nil {
		return jobError(ctx, "deliver notification", err)
	}

	logger.Info(ctx, "notification delivered", zap.String("type", string(t.Type)))

	return nil
}
