package vec

// noCopy is embedded in types that must not be copied after first use.
// go vet's copylocks check reports any copy.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// RawBlock owns a contiguous storage region sized for a fixed number of
// elements of type T. It never constructs or destroys elements: the region
// is pure storage, and tracking which cells hold live values is entirely
// the caller's job. A zero RawBlock owns no memory.
//
// A block belongs to exactly one container at a time. Ownership moves via
// Swap; copying a RawBlock value is reported by go vet.
type RawBlock[T any] struct {
	noCopy noCopy
	buf    []T
}

// Alloc acquires storage for capacity elements. Zero capacity leaves the
// block null without touching the allocator. Alloc panics if the block
// already owns a region; Release or Swap it away first.
func (b *RawBlock[T]) Alloc(capacity int) {
	if capacity < 0 {
		panic("vec: negative block capacity")
	}
	if b.buf != nil {
		panic("vec: Alloc on a block that already owns storage")
	}
	if capacity == 0 {
		return
	}
	b.buf = make([]T, capacity)
}

// At returns the storage cell at index i. Requires i < Cap(); violations
// fail the bounds check.
func (b *RawBlock[T]) At(i int) *T {
	return &b.buf[i]
}

// Tail returns the cells from offset on. offset == Cap() is legal and
// yields an empty slice (one-past-end); offset > Cap() is a contract
// violation.
func (b *RawBlock[T]) Tail(offset int) []T {
	return b.buf[offset:]
}

// Cap returns the number of elements the region can hold.
func (b *RawBlock[T]) Cap() int {
	return len(b.buf)
}

// Swap exchanges the two blocks' regions and capacities in constant time.
// Never fails.
func (b *RawBlock[T]) Swap(other *RawBlock[T]) {
	b.buf, other.buf = other.buf, b.buf
}

// Release drops the owned region and returns the block to its null state.
// Any live elements must already have been destroyed by the owner; the
// block itself never runs element cleanup.
func (b *RawBlock[T]) Release() {
	b.buf = nil
}
