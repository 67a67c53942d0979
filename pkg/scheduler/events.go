package scheduler

import (
	"time"

	"github.com/logicjwell/Chinese-BukkitAPI/pkg/eventbus"
)

const (
	EventScheduled = "task.scheduled"
	EventRejected  = "task.rejected"
	EventCancelled = "task.cancelled"
)

// TaskEvent is emitted on the event bus for task lifecycle events.
type TaskEvent struct {
	Name      string `json:"name"`
	ID        int    `json:"id"`
	Mode      string `json:"mode,omitempty"`
	Submitter string `json:"submitter,omitempty"`
	Error     string `json:"error,omitempty"`
}

func (t *Task) publish(typ string, ev TaskEvent) {
	if t.bus == nil {
		return
	}
	ev.Name = t.name
	t.bus.Publish(eventbus.Event{Type: typ, Time: time.Now(), Data: ev})
}
