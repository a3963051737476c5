package scanner

import (
	"github.com/riverqueue/river"

	"wcagrep/pkg/domain"
	"wcagrep/pkg/storage"
)

// QueueScans keeps page fetches from starving notifications and agents on the
// default queue.
const QueueScans = "scans"

// ScanJobArgs runs one stored scan job.
type ScanJobArgs struct {
	ScanJobID domain.ScanJobID `json:"scanJobId" river:"unique"`

	maxAttempts int
}

func (ScanJobArgs) Kind() string { return "ScanJob" }

func (args ScanJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		Queue:       QueueScans,
		UniqueOpts:  storage.UniqueWhileLive(),
	}
}

// ReauditJobArgs schedules a fresh scan of a prospect's website. At most one
// is pending per prospect.
type ReauditJobArgs struct {
	ProspectID domain.ProspectID `json:"prospectId" river:"unique"`
}

func (ReauditJobArgs) Kind() string { return "ReauditJob" }

func (ReauditJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{UniqueOpts: storage.UniqueWhileLive()}
}
