package store

import "sync"

// Memory is an in-memory Store implementation safe for concurrent use.
type Memory[T any] struct {
	mu sync.RWMutex
	m  map[string]T
}

var _ Store[any] = (*Memory[any])(nil)

// NewMemory creates an empty in-memory store.
func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{m: make(map[string]T)}
}

// Get returns the value for id, and whether it exists.
func (s *Memory[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[id]
	return v, ok
}

// Put creates or replaces the value for id.
func (s *Memory[T]) Put(id string, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[id] = v
}

// Delete removes the value for id.
func (s *Memory[T]) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, id)
}

// List returns all stored values in unspecified order.
func (s *Memory[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.m))
	for _, v := range s.m {
		out = append(out, v)
	}
	return out
}
