package scheduler

import (
	"errors"
	"sync"

	"github.com/logicjwell/Chinese-BukkitAPI/pkg/eventbus"
	logx "github.com/logicjwell/Chinese-BukkitAPI/pkg/logx"
)

// Task is a unit of work that registers itself with a Scheduler exactly once.
//
// All methods are safe for concurrent use. Of any number of concurrent
// scheduling calls on a fresh Task, exactly one succeeds; the rest fail with
// an *AlreadyScheduledError.
type Task struct {
	mu sync.Mutex

	sched Scheduler
	run   func()
	name  string
	log   logx.Logger
	bus   eventbus.Bus

	// guarded by mu
	id int
}

// New creates an unregistered task that will hand run to s.
func New(s Scheduler, run func(), opts ...Option) (*Task, error) {
	if s == nil {
		return nil, ErrNilScheduler
	}
	if run == nil {
		return nil, ErrNilRunnable
	}
	t := &Task{
		sched: s,
		run:   run,
		name:  "task",
		id:    NoID,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.log.IsZero() {
		t.log = logx.Nop()
	}
	return t, nil
}

func (t *Task) Name() string { return t.name }

// ScheduleNow runs the task on the next tick on the primary context.
func (t *Task) ScheduleNow(sub Submitter) (Registration, error) {
	return t.schedule(Request{Submitter: sub, Mode: ModeNow})
}

// ScheduleAsync runs the task on the next tick on a background context.
func (t *Task) ScheduleAsync(sub Submitter) (Registration, error) {
	return t.schedule(Request{Submitter: sub, Mode: ModeNowAsync})
}

// ScheduleDelayed runs the task once after delay ticks.
func (t *Task) ScheduleDelayed(sub Submitter, delay Ticks) (Registration, error) {
	return t.schedule(Request{Submitter: sub, Mode: ModeDelayed, Delay: delay})
}

// ScheduleDelayedAsync runs the task once after delay ticks on a background context.
func (t *Task) ScheduleDelayedAsync(sub Submitter, delay Ticks) (Registration, error) {
	return t.schedule(Request{Submitter: sub, Mode: ModeDelayedAsync, Delay: delay})
}

// ScheduleRepeating runs the task after delay ticks, then every period ticks
// until cancelled.
func (t *Task) ScheduleRepeating(sub Submitter, delay, period Ticks) (Registration, error) {
	return t.schedule(Request{Submitter: sub, Mode: ModeRepeating, Delay: delay, Period: period})
}

// ScheduleRepeatingAsync is ScheduleRepeating on a background context.
func (t *Task) ScheduleRepeatingAsync(sub Submitter, delay, period Ticks) (Registration, error) {
	return t.schedule(Request{Submitter: sub, Mode: ModeRepeatingAsync, Delay: delay, Period: period})
}

// ID returns the identifier assigned by the Scheduler, or ErrNotScheduled.
func (t *Task) ID() (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.idLocked()
}

// Scheduled reports whether the task has been registered.
func (t *Task) Scheduled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.id != NoID
}

// Cancel asks the Scheduler to cancel the task. The identifier is kept, so the
// task stays registered and cannot be scheduled again.
func (t *Task) Cancel() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id, err := t.idLocked()
	if err != nil {
		return err
	}
	t.sched.Cancel(id)
	t.log.Debug("task cancelled", logx.String("task", t.name), logx.Int("id", id))
	t.publish(EventCancelled, TaskEvent{ID: id})
	return nil
}

func (t *Task) idLocked() (int, error) {
	if t.id == NoID {
		return NoID, ErrNotScheduled
	}
	return t.id, nil
}

// schedule is the single check/forward/store path for every mode.
func (t *Task) schedule(req Request) (Registration, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.id != NoID {
		return Registration{}, t.reject(req, &AlreadyScheduledError{ID: t.id})
	}
	if absent(req.Submitter) {
		return Registration{}, t.reject(req, ErrInvalidSubmitter)
	}

	req.Run = t.run
	reg, err := t.sched.Register(req)
	if err != nil {
		return Registration{}, t.reject(req, err)
	}
	if reg.ID < 0 {
		return Registration{}, t.reject(req, ErrInvalidRegistration)
	}
	t.id = reg.ID

	t.log.Debug("task scheduled",
		logx.String("task", t.name),
		logx.Int("id", reg.ID),
		logx.String("mode", req.Mode.String()),
		logx.String("submitter", req.Submitter.Name()),
		logx.Int64("delay", int64(req.Delay)),
		logx.Int64("period", int64(req.Period)),
	)
	t.publish(EventScheduled, TaskEvent{ID: reg.ID, Mode: req.Mode.String(), Submitter: req.Submitter.Name()})
	return reg, nil
}

// reject logs and publishes a failed scheduling call and returns err unchanged.
func (t *Task) reject(req Request, err error) error {
	fields := []logx.Field{logx.String("task", t.name), logx.String("mode", req.Mode.String()), logx.Err(err)}
	if errors.Is(err, ErrAlreadyScheduled) || errors.Is(err, ErrInvalidSubmitter) {
		// Misuse by the caller, not a transient condition.
		t.log.Warn("task schedule rejected", fields...)
	} else {
		t.log.Debug("task schedule rejected", fields...)
	}

	ev := TaskEvent{ID: t.id, Mode: req.Mode.String(), Error: err.Error()}
	if !absent(req.Submitter) {
		ev.Submitter = req.Submitter.Name()
	}
	t.publish(EventRejected, ev)
	return err
}
