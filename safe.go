package vec

import "sync"

// SafeVector is a mutex-protected wrapper around Vector for concurrent
// access. All operations are thread-safe but come with the overhead of
// mutex locking. Elements are handed out by value; use Update to mutate
// one in place under the lock.
type SafeVector[T any] struct {
	mu sync.Mutex
	v  *Vector[T]
}

// NewSafe creates a new thread-safe empty vector.
func NewSafe[T any]() *SafeVector[T] {
	return &SafeVector[T]{v: New[T]()}
}

// NewSafeSized creates a thread-safe vector of n default-constructed
// elements, with the same rollback behavior as NewSized.
func NewSafeSized[T any](n int) (*SafeVector[T], error) {
	v, err := NewSized[T](n)
	if err != nil {
		return nil, err
	}
	return &SafeVector[T]{v: v}, nil
}

// Append thread-safely appends a duplicate of val.
func (s *SafeVector[T]) Append(val T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Append(val)
}

// AppendWith thread-safely constructs a new last element in place.
func (s *SafeVector[T]) AppendWith(build func(*T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.AppendWith(build)
}

// Insert thread-safely inserts a duplicate of val at position i.
func (s *SafeVector[T]) Insert(i int, val T) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Insert(i, val)
}

// Erase thread-safely removes the element at position i.
func (s *SafeVector[T]) Erase(i int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Erase(i)
}

// PopBack thread-safely destroys and removes the last element.
func (s *SafeVector[T]) PopBack() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.PopBack()
}

// Reserve thread-safely ensures capacity for at least n elements.
func (s *SafeVector[T]) Reserve(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Reserve(n)
}

// Resize thread-safely sets the element count to n.
func (s *SafeVector[T]) Resize(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Resize(n)
}

// Get thread-safely returns a shallow copy of the element at index i.
func (s *SafeVector[T]) Get(i int) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.v.At(i)
}

// Update runs fn on the element at index i while holding the lock. fn must
// not retain the pointer.
func (s *SafeVector[T]) Update(i int, fn func(*T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.v.At(i))
}

// Clear thread-safely destroys all live elements, keeping capacity.
func (s *SafeVector[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Clear()
}

// Release thread-safely destroys all live elements and drops the block.
func (s *SafeVector[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Release()
}
