// Package statestore keeps the live label workflow state of every order in
// memory. Each order has its own lock, so transitions of one order are
// serialized while different orders never wait on each other.
package statestore

import (
	"context"
	"sync"
	"time"

	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/labelstate"
	"shippinglabel/internal/core/ports"
)

var _ ports.StateStore = (*Store)(nil)

type entry struct {
	mu      sync.Mutex
	state   *labelstate.State
	touched time.Time
	// evicted is set under mu when the entry leaves the map; a transition
	// that raced with eviction retries against a fresh entry.
	evicted bool
}

// Store is an in-memory ports.StateStore.
type Store struct {
	mu      sync.RWMutex
	entries map[kernel.OrderID]*entry
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now as the source of touch times.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		entries: make(map[kernel.OrderID]*entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the order's current state. Loading does not count as activity
// for eviction.
func (s *Store) Load(_ context.Context, orderID kernel.OrderID) (*labelstate.State, bool) {
	s.mu.RLock()
	e, ok := s.entries[orderID]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.evicted || e.state == nil {
		return nil, false
	}
	return e.state, true
}

// Apply runs transition under the order's lock. A nil next state leaves the
// stored state as it was; an error discards the transition.
func (s *Store) Apply(
	ctx context.Context,
	orderID kernel.OrderID,
	transition ports.StateTransition,
) (*labelstate.State, *labelstate.State, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		e := s.entry(orderID)
		e.mu.Lock()
		if e.evicted {
			e.mu.Unlock()
			continue
		}

		prev := e.state
		next, err := transition(prev)
		if err != nil {
			e.mu.Unlock()
			return prev, prev, err
		}
		if next == nil {
			next = prev
		}
		e.state = next
		e.touched = s.now()
		e.mu.Unlock()

		return prev, next, nil
	}
}

// OrderIDs lists the orders holding a state, in no particular order.
func (s *Store) OrderIDs(_ context.Context) []kernel.OrderID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]kernel.OrderID, 0, len(s.entries))
	for id, e := range s.entries {
		e.mu.Lock()
		held := e.state != nil
		e.mu.Unlock()
		if held {
			ids = append(ids, id)
		}
	}
	return ids
}

// EvictIdle drops every order whose last transition is older than idleFor.
// Orders with a transition in progress are never idle.
func (s *Store) EvictIdle(_ context.Context, idleFor time.Duration) int {
	cutoff := s.now().Add(-idleFor)

	s.mu.Lock()
	defer s.mu.Unlock()

	var evicted int
	for id, e := range s.entries {
		if !e.mu.TryLock() {
			continue
		}
		if !e.touched.After(cutoff) {
			e.evicted = true
			delete(s.entries, id)
			if e.state != nil {
				evicted++
			}
		}
		e.mu.Unlock()
	}
	return evicted
}

// Len reports how many orders hold a state.
func (s *Store) Len() int {
	return len(s.OrderIDs(context.Background()))
}

func (s *Store) entry(orderID kernel.OrderID) *entry {
	s.mu.RLock()
	e, ok := s.entries[orderID]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok = s.entries[orderID]; ok {
		return e
	}
	e = &entry{}
	s.entries[orderID] = e
	return e
}
