package scheduler

import (
	"reflect"
	"time"
)

// NoID is the identifier of a task that has not been registered.
const NoID = -1

// TicksPerSecond is the nominal tick rate of the scheduler.
const TicksPerSecond = 20

// Ticks counts discrete scheduler time units.
type Ticks int64

const tickDuration = time.Second / TicksPerSecond

// TicksOf converts d to whole ticks, rounding down.
func TicksOf(d time.Duration) Ticks { return Ticks(d / tickDuration) }

func (t Ticks) Duration() time.Duration { return time.Duration(t) * tickDuration }

// Submitter is the entity a task runs on behalf of.
type Submitter interface {
	Name() string
}

// Mode selects when and on which execution context a task runs.
type Mode int

const (
	ModeNow Mode = iota
	ModeNowAsync
	ModeDelayed
	ModeDelayedAsync
	ModeRepeating
	ModeRepeatingAsync
)

func (m Mode) Async() bool {
	return m == ModeNowAsync || m == ModeDelayedAsync || m == ModeRepeatingAsync
}

func (m Mode) Delayed() bool { return m == ModeDelayed || m == ModeDelayedAsync }

func (m Mode) Repeating() bool { return m == ModeRepeating || m == ModeRepeatingAsync }

func (m Mode) String() string {
	switch m {
	case ModeNow:
		return "now"
	case ModeNowAsync:
		return "now-async"
	case ModeDelayed:
		return "delayed"
	case ModeDelayedAsync:
		return "delayed-async"
	case ModeRepeating:
		return "repeating"
	case ModeRepeatingAsync:
		return "repeating-async"
	default:
		return "unknown"
	}
}

// Request is a single registration handed to a Scheduler.
//
// Delay is zero for the now modes. Period is zero unless Mode is repeating.
// Tick ranges are not validated here; that is the Scheduler's job.
type Request struct {
	Submitter Submitter
	Run       func()
	Mode      Mode
	Delay     Ticks
	Period    Ticks
}

// Registration is the record a Scheduler returns for an accepted Request.
type Registration struct {
	ID    int
	Owner Submitter
	Mode  Mode
}

// Sync reports whether the task runs on the primary execution context.
func (r Registration) Sync() bool { return !r.Mode.Async() }

// Scheduler is the external service tasks are registered with.
//
// Register and Cancel are called while the Task's lock is held, so
// implementations must not run the payload inline or call back into the Task.
// Register must return a non-negative ID on success.
type Scheduler interface {
	Register(req Request) (Registration, error)
	Cancel(id int)
}

// absent reports whether s is nil, including a typed nil pointer.
func absent(s Submitter) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
