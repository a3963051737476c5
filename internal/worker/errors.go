package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"wcagrep/pkg/browser"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/serrors"
)

// jobError maps a semantic error to a River action:
//   - permanent errors (see serrors.Permanent) cancel the job.
//   - an exhausted browser pool snoozes the job until the quota resets.
//     Snoozing does not consume an attempt.
//   - anything else, upstream throttling included, is returned and River
//     retries with its backoff until the attempts run out.
func jobError(ctx context.Context, action string, err error) error {
	if serrors.Permanent(err) {
		logger.Warn(ctx, "canceling job", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	}
	if resetAt, ok := browser.QuotaExhausted(err); ok {
		dur := max(0, time.Until(resetAt))
		logger.Warn(ctx, "snoozing job until quota resets", zap.Duration("duration", dur), zap.Error(err))

		return river.JobSnooze(dur) //nolint: wrapcheck
	}

	logger.Error(ctx, "job failed", zap.Error(err))

	return fmt.Errorf("could not %s: %w", action, err)
}
