package smallgraph

import "sync"

// Synced guards a Graph with a sync.RWMutex so it can be shared between
// goroutines. Mutations take the write lock; queries take the read lock and
// may run in parallel with each other.
//
// Values are returned by copy. To change a value in place use Update, which
// runs the callback under the write lock.
type Synced[T any] struct {
	mu sync.RWMutex
	g  *Graph[T]
}

// NewSynced creates an empty, lock-guarded graph.
func NewSynced[T any]() *Synced[T] {
	return &Synced[T]{g: New[T]()}
}

func (s *Synced[T]) Insert(value T) NodeHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Insert(value)
}

func (s *Synced[T]) Remove(h NodeHandle) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Remove(h)
}

func (s *Synced[T]) Get(h NodeHandle) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.g.Get(h)
}

// Update calls fn with a pointer to the value stored under h while holding
// the write lock. It reports false, without calling fn, if h is not valid.
// fn must not retain the pointer or call back into s.
func (s *Synced[T]) Update(h NodeHandle, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.g.GetMut(h)
	if !ok {
		return false
	}
	fn(v)
	return true
}

func (s *Synced[T]) Contains(h NodeHandle) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.g.Contains(h)
}

func (s *Synced[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.g.Count()
}

func (s *Synced[T]) ConnectDirected(parent, child NodeHandle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.ConnectDirected(parent, child)
}

func (s *Synced[T]) ConnectUndirected(a, b NodeHandle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.ConnectUndirected(a, b)
}

func (s *Synced[T]) NeighborsOut(n NodeHandle) []NodeHandle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.g.NeighborsOut(n)
}

func (s *Synced[T]) NeighborsIn(n NodeHandle) []NodeHandle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.g.NeighborsIn(n)
}

func (s *Synced[T]) DisconnectAll(n NodeHandle) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.DisconnectAll(n)
}

func (s *Synced[T]) DisconnectPair(a, b NodeHandle) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.DisconnectPair(a, b)
}

func (s *Synced[T]) DisconnectDirected(source, dest NodeHandle) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.DisconnectDirected(source, dest)
}

func (s *Synced[T]) IsConnected(a, b NodeHandle) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.g.IsConnected(a, b)
}

func (s *Synced[T]) IsConnectedEither(a, b NodeHandle) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.g.IsConnectedEither(a, b)
}

func (s *Synced[T]) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.g.EdgeCount()
}

// View runs fn with read-only access to the underlying graph. fn must not
// mutate g or keep it after returning.
func (s *Synced[T]) View(fn func(g *Graph[T])) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.g)
}
