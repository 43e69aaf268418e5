package vec

// Spare returns the number of storage cells beyond the live range.
func (v *Vector[T]) Spare() int {
	return v.data.Cap() - v.size
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.data.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Growths returns how many times the vector has relocated to a new block.
func (v *Vector[T]) Growths() int64 {
	return v.growths.Load()
}

// Relocated returns the total number of elements moved across blocks.
func (v *Vector[T]) Relocated() int64 {
	return v.relocated.Load()
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:         v.Len(),
		Cap:         v.Cap(),
		Spare:       v.Spare(),
		Growths:     v.Growths(),
		Relocated:   v.Relocated(),
		Utilization: v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len         int     // live elements
	Cap         int     // element capacity of the owned block
	Spare       int     // Cap - Len
	Growths     int64   // relocation events
	Relocated   int64   // elements moved across blocks
	Utilization float64 // ratio of live elements to capacity (0.0-1.0)
}

// Thread-safe metrics for SafeVector.
//
// The counters are atomics, so Growths and Relocated read without taking
// the lock; the remaining snapshots lock like every other operation.

// Len thread-safely returns the number of live elements.
func (s *SafeVector[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Len()
}

// Cap thread-safely returns the element capacity.
func (s *SafeVector[T]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Cap()
}

// Spare thread-safely returns the number of cells beyond the live range.
func (s *SafeVector[T]) Spare() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Spare()
}

// Utilization thread-safely returns the ratio of live elements to capacity.
func (s *SafeVector[T]) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Utilization()
}

// Growths returns the relocation count without locking.
func (s *SafeVector[T]) Growths() int64 {
	return s.v.growths.Load()
}

// Relocated returns the cross-block element move count without locking.
func (s *SafeVector[T]) Relocated() int64 {
	return s.v.relocated.Load()
}

// Metrics thread-safely returns a snapshot of vector statistics.
func (s *SafeVector[T]) Metrics() VectorMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Metrics()
}
