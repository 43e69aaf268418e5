package vec

import (
	"iter"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// Vector is a generic resizable array: contiguous storage, amortized
// constant-time append, and a hard split between raw storage (RawBlock)
// and element liveness (size). Elements [0, Len()) are live; the rest of
// the block is spare storage the vector never reads.
//
// Not goroutine-safe. Use SafeVector for concurrent access.
type Vector[T any] struct {
	data RawBlock[T]
	size int

	growths   atomic.Int64 // relocation events
	relocated atomic.Int64 // elements moved across blocks
}

// New creates an empty vector. No allocation happens until the first
// element arrives.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSized creates a vector of n default-constructed elements with capacity
// exactly n. If an element's Init fails partway, the elements constructed
// so far are destroyed and the block is released before the error returns:
// no partial, leaked state.
func NewSized[T any](n int) (*Vector[T], error) {
	if n < 0 {
		panic("vec: negative size")
	}
	v := New[T]()
	v.data.Alloc(n)
	if traitsOf[T]().inits {
		buf := v.data.Tail(0)
		for i := 0; i < n; i++ {
			if err := initElem(&buf[i]); err != nil {
				destroyRange(buf[:i])
				v.data.Release()
				return nil, errors.Wrapf(err, "vec: init element %d", i)
			}
		}
	}
	v.size = n
	return v, nil
}

// Take constructs a vector by taking other's block and size. other is left
// empty with a null block.
func Take[T any](other *Vector[T]) *Vector[T] {
	v := New[T]()
	v.Swap(other)
	return v
}

// Clone returns an element-wise duplicate with capacity exactly Len(), no
// spare. If cloning the k-th element fails, the clones made so far are
// destroyed and the new block released; the receiver is untouched either
// way.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := New[T]()
	if v.size == 0 {
		return out, nil
	}
	out.data.Alloc(v.size)
	if err := cloneInto(traitsOf[T](), out.data.Tail(0), v.live()); err != nil {
		out.data.Release()
		return nil, err
	}
	out.size = v.size
	return out, nil
}

// CopyFrom replaces the vector's contents with a duplicate of rhs.
//
// When current capacity cannot hold rhs, a full copy of rhs is built first
// and swapped in, so a failure leaves the receiver untouched (strong
// guarantee). When capacity suffices, storage is reused: the overlap is
// assigned element by element, excess source elements are constructed into
// the tail, excess target elements are destroyed. A Clone failure on that
// in-place path returns with size unchanged but a partially assigned
// prefix (basic guarantee).
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	if v.data.Cap() < rhs.size {
		tmp, err := rhs.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Release()
		return nil
	}
	tr := traitsOf[T]()
	dst := v.data.Tail(0)
	src := rhs.live()
	overlap := min(v.size, rhs.size)
	if tr.clones {
		for i := 0; i < overlap; i++ {
			c, err := cloneElem(src[i])
			if err != nil {
				return errors.Wrapf(err, "vec: clone element %d", i)
			}
			destroyElem(&dst[i])
			dst[i] = c
		}
	} else {
		copy(dst, src[:overlap])
	}
	switch {
	case rhs.size > v.size:
		if err := cloneInto(tr, dst[v.size:rhs.size], src[v.size:]); err != nil {
			return err
		}
	case rhs.size < v.size:
		destroyRange(dst[rhs.size:v.size])
	}
	v.size = rhs.size
	return nil
}

// Swap exchanges contents with rhs in constant time. Never fails. Growth
// statistics stay with their handle.
func (v *Vector[T]) Swap(rhs *Vector[T]) {
	v.data.Swap(&rhs.data)
	v.size, rhs.size = rhs.size, v.size
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the element capacity of the owned block. Capacity never
// shrinks implicitly.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// At returns the live element at index i. Requires i < Len(); violations
// panic.
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic("vec: index out of range")
	}
	return v.data.At(i)
}

// All iterates the live elements in index order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.data.At(i)) {
				return
			}
		}
	}
}

// Clear destroys all live elements. Capacity is kept for reuse.
func (v *Vector[T]) Clear() {
	destroyRange(v.live())
	v.size = 0
}

// Release destroys all live elements and drops the block. The vector is
// back to its empty, unallocated state and remains usable.
func (v *Vector[T]) Release() {
	v.Clear()
	v.data.Release()
}

// live returns the live-element range [0, size).
func (v *Vector[T]) live() []T {
	return v.data.Tail(0)[:v.size]
}

// cloneInto duplicates src into the same-length prefix of dst. On failure
// the clones made so far are destroyed before the error returns.
func cloneInto[T any](tr traits, dst, src []T) error {
	if !tr.clones {
		copy(dst, src)
		return nil
	}
	for i := range src {
		c, err := cloneElem(src[i])
		if err != nil {
			destroyRange(dst[:i])
			return errors.Wrapf(err, "vec: clone element %d", i)
		}
		dst[i] = c
	}
	return nil
}
