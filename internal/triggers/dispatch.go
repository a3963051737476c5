package triggers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"wcagrep/pkg/domain"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/storage"
)

// Dispatch enqueues a notification job for every active trigger whose
// condition matches e and returns the number of jobs enqueued. Passing a
// transactional storage makes the jobs part of that transaction.
//
// Triggers with a stored condition that no longer parses are skipped.
func Dispatch(ctx context.Context, st storage.AllStorage, e domain.Event) (int, error) {
	if !triggerEvents[e.Type] {
		return 0, nil
	}

	active := true
	list, err := st.Triggers(ctx, &active)
	if err != nil {
		return 0, fmt.Errorf("could not list active triggers: %w", err)
	}

	var n int
	for _, t := range list {
		cond, err := ParseCondition(t.Condition)
		if err != nil {
			logger.Warn(ctx, "skipping trigger with invalid condition",
				zap.Stringer("triggerID", t.ID),
				zap.String("condition", t.Condition),
				zap.Error(err))

			continue
		}
		if !cond.Match(e) {
			continue
		}

		if _, err := st.AddJob(ctx, NotifyJobArgs{TriggerID: t.ID, Event: e}, nil); err != nil {
			return n, fmt.Errorf("could not enqueue notification for trigger %s: %w", t.ID, err)
		}
		n++
	}

	if n > 0 {
		logger.Debug(ctx, "dispatched event to triggers", zap.String("type", string(e.Type)), zap.Int("triggers", n))
	}

	return n, nil
}
