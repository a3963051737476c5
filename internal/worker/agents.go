package worker

import (
	"context"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"wcagrep/internal/agents"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/storage"
)

// AgentJobArgs runs one agent. Periodic jobs insert it on the configured
// intervals.
type AgentJobArgs struct {
	Agent agents.Name `json:"agent"`
}

func (args AgentJobArgs) Kind() string { return "AgentJob" }

// InsertOpts skips a run while the previous one for the same agent is still
// queued or running. Agents run again on the next tick, so a failed run is
// not retried.
func (args AgentJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts:  storage.UniqueWhileLive(),
	}
}

// AgentRunner runs agents by name.
type AgentRunner interface {
	Run(ctx context.Context, name agents.Name) (*agents.Result, error)
}

type AgentWorker struct {
	river.WorkerDefaults[AgentJobArgs]

	runner AgentRunner
}

func NewAgentWorker(runner AgentRunner) *AgentWorker {
	return &AgentWorker{runner: runner}
}

func (w *AgentWorker) Work(ctx context.Context, job *river.Job[AgentJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	if _, err := w.runner.Run(ctx, job.Args.Agent); err != nil {
		return jobError(ctx, "run agent", err)
	}

	return nil
}
