// Package eventbus is a small in-memory fanout for lifecycle signals.
package eventbus

import (
	"sync"
	"time"
)

// Event is a lightweight signal used to decouple components.
//
// Contract:
//   - Publish never blocks.
//   - Subscribers receive on buffered channels; a full subscriber drops events.
type Event struct {
	Type string
	Time time.Time
	Data any
}

type Bus interface {
	Publish(e Event)
	Subscribe(buffer int) *Subscription
}

// Subscription is one receiver registered on a bus.
type Subscription struct {
	C <-chan Event

	bus  *memBus
	ch   chan Event
	once sync.Once
}

// Close unsubscribes and closes C. It may be called more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		delete(s.bus.subs, s)
		s.bus.mu.Unlock()
		close(s.ch)
	})
}

// New returns an in-memory bus. It owns no goroutines.
func New() Bus {
	return &memBus{subs: map[*Subscription]struct{}{}}
}

type memBus struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

func (b *memBus) Publish(e Event) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	// Close takes the write lock before closing, so sends under the read lock
	// never hit a closed channel.
	b.mu.RLock()
	defer b.mu.RUnlock()
	for s := range b.subs {
		select {
		case s.ch <- e:
		default:
		}
	}
}

func (b *memBus) Subscribe(buffer int) *Subscription {
	if buffer <= 0 {
		buffer = 8
	}
	ch := make(chan Event, buffer)
	s := &Subscription{C: ch, bus: b, ch: ch}

	b.mu.Lock()
	b.subs[s] = struct{}{}
	b.mu.Unlock()
	return s
}
