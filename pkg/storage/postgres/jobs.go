package postgres

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.opentelemetry.io/otel/attribute"
)

// AddJob inserts a river job. Inside a transaction the job only becomes
// visible on commit, so a scan job row is never seen without its river job.
// It reports false when river skipped the insert as a unique duplicate.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	ctx, span := tracer.Start(ctx, "postgres.AddJob")
	defer span.End()
	span.SetAttributes(attribute.String("river.kind", args.Kind()))

	var (
		res *rivertype.JobInsertResult
		err error
	)
	if tx, ok := p.tx(); ok {
		res, err = p.jobs.InsertTx(ctx, tx, args, opts)
	} else {
		res, err = p.jobs.Insert(ctx, args, opts)
	}
	if err != nil {
		span.RecordError(err)

		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
