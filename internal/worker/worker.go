// Package worker runs the background jobs of wcagrep on River: scans,
// scheduled re-audits, trigger notifications and the periodic agents.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	"wcagrep/internal/agents"
	"wcagrep/internal/config"
	"wcagrep/internal/scanner"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/storage"
)

// defaultQueueWorkers is the concurrency of the default queue, which runs
// notifications, re-audits and agents.
const defaultQueueWorkers = 20

// Deps are the services the workers call into.
type Deps struct {
	Storage   storage.Storage
	Scanner   scanner.Scanner
	Deliverer Deliverer
	Agents    AgentRunner
}

type Options struct {
	// ScanWorkers is the concurrency of the scans queue.
	ScanWorkers int
	ScanTimeout time.Duration
	// PlannerInterval and ExecutorInterval schedule the agents. A non-positive
	// interval disables the periodic run of that agent.
	PlannerInterval  time.Duration
	ExecutorInterval time.Duration
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		ScanWorkers:      cfg.Scanner.Workers,
		ScanTimeout:      cfg.Scanner.ScanTimeout,
		PlannerInterval:  cfg.Agents.PlannerInterval,
		ExecutorInterval: cfg.Agents.ExecutorInterval,
	}
}

// Workers registers every worker of the application.
func Workers(deps Deps, options Options) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewScanWorker(deps.Scanner, options.ScanTimeout))
	river.AddWorker(workers, NewReauditWorker(deps.Scanner))
	river.AddWorker(workers, NewNotifyWorker(deps.Storage, deps.Deliverer))
	river.AddWorker(workers, NewAgentWorker(deps.Agents))

	return workers
}

// PeriodicJobs returns the agent schedules.
func PeriodicJobs(options Options) []*river.PeriodicJob {
	var jobs []*river.PeriodicJob
	add := func(name agents.Name, interval time.Duration) {
		if interval <= 0 {
			return
		}
		jobs = append(jobs, river.NewPeriodicJob(
			river.PeriodicInterval(interval),
			func() (river.JobArgs, *river.InsertOpts) {
				return AgentJobArgs{Agent: name}, nil
			},
			nil,
		))
	}
	add(agents.Planner, options.PlannerInterval)
	add(agents.Executor, options.ExecutorInterval)

	return jobs
}

func Start(ctx context.Context, dbPool *pgxpool.Pool, deps Deps, options Options) (*river.Client[pgx.Tx], error) {
	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: defaultQueueWorkers},
			scanner.QueueScans: {MaxWorkers: max(1, options.ScanWorkers)},
		},
		Workers:      Workers(deps, options),
		PeriodicJobs: PeriodicJobs(options),
		Logger:       logger.Slog(logger.Named(ctx, "river")),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}

// NewInsertOnlyClient creates a client that inserts and inspects jobs without
// working them, for processes that only serve the API.
func NewInsertOnlyClient(ctx context.Context, dbPool *pgxpool.Pool) (*river.Client[pgx.Tx], error) {
	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Logger: logger.Slog(logger.Named(ctx, "river")),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return riverClient, nil
}
