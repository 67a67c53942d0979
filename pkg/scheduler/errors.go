package scheduler

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyScheduled = errors.New("task already scheduled")
	ErrInvalidSubmitter = errors.New("submitter cannot be nil")
	ErrNotScheduled     = errors.New("not scheduled yet")

	ErrNilScheduler        = errors.New("scheduler cannot be nil")
	ErrNilRunnable         = errors.New("runnable cannot be nil")
	ErrInvalidRegistration = errors.New("scheduler returned an invalid task id")
)

// AlreadyScheduledError is returned when a registered task is scheduled again.
// It matches ErrAlreadyScheduled under errors.Is.
type AlreadyScheduledError struct {
	ID int
}

func (e *AlreadyScheduledError) Error() string { return fmt.Sprintf("already scheduled as %d", e.ID) }

func (e *AlreadyScheduledError) Is(target error) bool { return target == ErrAlreadyScheduled }
