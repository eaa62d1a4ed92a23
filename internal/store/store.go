package store

import (
	"sync"
)

// Store exposes the application state to the UI.
type Store interface {
	GetState() State
	Subscribe(listener func(State)) (unsubscribe func())
	Dispatch(action Action)
}

// MemoryStore is a reducer-driven Store safe for use from effect goroutines.
type MemoryStore struct {
	listeners map[int]func(State)
	state     State
	nextID    int
	mu        sync.Mutex
}

// New creates a store with the given initial state.
func New(initial State) *MemoryStore {
	return &MemoryStore{
		state:     initial,
		listeners: make(map[int]func(State)),
	}
}

// GetState returns the current snapshot.
func (s *MemoryStore) GetState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers listener to be called with every new state.
func (s *MemoryStore) Subscribe(listener func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = listener

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Dispatch reduces action into the state, then notifies listeners outside the lock.
func (s *MemoryStore) Dispatch(action Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	snapshot := s.state
	listeners := make([]func(State), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}
