package scheduler

import (
	"strings"

	"github.com/logicjwell/Chinese-BukkitAPI/pkg/eventbus"
	logx "github.com/logicjwell/Chinese-BukkitAPI/pkg/logx"
)

// Option configures a Task before it is used.
type Option func(t *Task)

// WithName sets the label used in logs and lifecycle events.
func WithName(name string) Option {
	return func(t *Task) {
		if name = strings.TrimSpace(name); name != "" {
			t.name = name
		}
	}
}

func WithLogger(log logx.Logger) Option {
	return func(t *Task) {
		t.log = log
	}
}

// WithEventBus publishes task.scheduled, task.rejected and task.cancelled
// events on bus.
func WithEventBus(bus eventbus.Bus) Option {
	return func(t *Task) {
		t.bus = bus
	}
}
