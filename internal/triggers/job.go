package triggers

import (
	"github.com/riverqueue/river"

	"wcagrep/pkg/domain"
)

// deliveryAttempts is the number of times a notification is tried before it is discarded.
const deliveryAttempts = 5

// NotifyJobArgs delivers one event to one trigger.
type NotifyJobArgs struct {
	TriggerID domain.TriggerID `json:"triggerId"`
	Event     domain.Event     `json:"event"`
}

// Kind returns the River job kind used to register and dispatch the notify worker.
func (args NotifyJobArgs) Kind() string { return "NotifyTriggerJob" }

func (args NotifyJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: deliveryAttempts,
	}
}
