// Package schedulertest provides an in-memory Scheduler for tests.
//
// It records every call and never runs payloads on its own; tests drive
// execution explicitly with Run.
package schedulertest

import (
	"sync"

	"github.com/logicjwell/Chinese-BukkitAPI/pkg/scheduler"
)

type Option func(s *Scheduler)

// WithFirstID sets the identifier handed to the first registration.
func WithFirstID(id int) Option {
	return func(s *Scheduler) {
		s.next = id
	}
}

// Scheduler records registrations and cancellations. Safe for concurrent use.
type Scheduler struct {
	mu sync.Mutex

	next      int
	failNext  []error
	requests  []scheduler.Request
	regs      []scheduler.Registration
	payloads  map[int]func()
	cancelled []int
}

var _ scheduler.Scheduler = (*Scheduler)(nil)

func New(opts ...Option) *Scheduler {
	s := &Scheduler{next: 1, payloads: map[int]func(){}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FailNext makes the next Register call return err. Calls queue up in order.
func (s *Scheduler) FailNext(err error) {
	s.mu.Lock()
	s.failNext = append(s.failNext, err)
	s.mu.Unlock()
}

func (s *Scheduler) Register(req scheduler.Request) (scheduler.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)
	if len(s.failNext) > 0 {
		err := s.failNext[0]
		s.failNext = s.failNext[1:]
		return scheduler.Registration{}, err
	}

	reg := scheduler.Registration{ID: s.next, Owner: req.Submitter, Mode: req.Mode}
	s.next++
	s.regs = append(s.regs, reg)
	s.payloads[reg.ID] = req.Run
	return reg, nil
}

// Cancel records id and forgets its payload. Unknown ids are recorded too.
func (s *Scheduler) Cancel(id int) {
	s.mu.Lock()
	s.cancelled = append(s.cancelled, id)
	delete(s.payloads, id)
	s.mu.Unlock()
}

// Run invokes the payload registered under id on the caller's goroutine.
// It reports false if id is unknown or cancelled.
func (s *Scheduler) Run(id int) bool {
	s.mu.Lock()
	run, ok := s.payloads[id]
	s.mu.Unlock()
	if !ok || run == nil {
		return false
	}
	run()
	return true
}

// Requests returns every Register call, including failed ones.
func (s *Scheduler) Requests() []scheduler.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]scheduler.Request(nil), s.requests...)
}

// Registrations returns the successful registrations in order.
func (s *Scheduler) Registrations() []scheduler.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]scheduler.Registration(nil), s.regs...)
}

func (s *Scheduler) Cancelled() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.cancelled...)
}
