package vec

import "github.com/pkg/errors"

// grownCap returns the capacity for the next growth step: doubling, with
// the very first growth from empty allocating exactly one slot.
func (v *Vector[T]) grownCap() int {
	if v.size == 0 {
		return 1
	}
	return 2 * v.size
}

// relocate populates dst with the vector's live elements as part of moving
// to a new block: assignment transfer when the type allows it, clones
// otherwise, with the old elements kept intact until every clone has
// succeeded.
func (v *Vector[T]) relocate(tr traits, dst []T) error {
	if tr.moveOK {
		copy(dst, v.live())
		return nil
	}
	return cloneInto(tr, dst, v.live())
}

// installBlock makes nb the vector's storage once relocation into it has
// succeeded. When relocation cloned, the old originals are destroyed here;
// when it transferred by assignment the old block is dropped as-is, since
// its values live on in nb.
func (v *Vector[T]) installBlock(nb *RawBlock[T], tr traits) {
	if !tr.moveOK {
		destroyRange(v.live())
	}
	v.growths.Inc()
	v.relocated.Add(int64(v.size))
	v.data.Swap(nb)
	nb.Release()
}

// Reserve ensures capacity for at least n elements. A no-op when n does not
// exceed current capacity; otherwise allocates a block of exactly n,
// relocates, and swaps. On a relocation failure the original is untouched.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.data.Cap() {
		return nil
	}
	tr := traitsOf[T]()
	var nb RawBlock[T]
	nb.Alloc(n)
	if err := v.relocate(tr, nb.Tail(0)[:v.size]); err != nil {
		nb.Release()
		return err
	}
	v.installBlock(&nb, tr)
	return nil
}

// Resize sets the element count to n. Shrinking destroys the trailing
// elements. Growing reserves exactly n (the doubling rule does not apply)
// and default-constructs the new tail; if an Init fails partway, the tail
// elements constructed so far are destroyed and size is unchanged.
func (v *Vector[T]) Resize(n int) error {
	switch {
	case n < 0:
		panic("vec: negative size")
	case n < v.size:
		destroyRange(v.data.Tail(n)[:v.size-n])
		v.size = n
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
		if traitsOf[T]().inits {
			tail := v.data.Tail(v.size)[:n-v.size]
			for i := range tail {
				if err := initElem(&tail[i]); err != nil {
					destroyRange(tail[:i])
					return errors.Wrapf(err, "vec: init element %d", v.size+i)
				}
			}
		}
		v.size = n
	}
	return nil
}

// Append places a duplicate of val after the last element, growing storage
// when needed. On any failure the vector is unchanged.
func (v *Vector[T]) Append(val T) error {
	elem, err := cloneElem(val)
	if err != nil {
		return errors.Wrap(err, "vec: clone appended value")
	}
	if v.size < v.data.Cap() {
		*v.data.At(v.size) = elem
		v.size++
		return nil
	}
	return v.appendSlow(elem)
}

// appendSlow grows storage and lands elem at the end, constructing it in
// the new block before anything existing is touched.
func (v *Vector[T]) appendSlow(elem T) error {
	tr := traitsOf[T]()
	var nb RawBlock[T]
	nb.Alloc(v.grownCap())
	*nb.At(v.size) = elem
	if err := v.relocate(tr, nb.Tail(0)[:v.size]); err != nil {
		destroyElem(nb.At(v.size))
		nb.Release()
		return err
	}
	v.installBlock(&nb, tr)
	v.size++
	return nil
}

// AppendWith constructs a new last element directly in its final slot by
// calling build on zeroed storage. On failure the slot returns to spare
// state and the vector is unchanged.
func (v *Vector[T]) AppendWith(build func(*T) error) error {
	if v.size < v.data.Cap() {
		slot := v.data.At(v.size)
		if err := build(slot); err != nil {
			var zero T
			*slot = zero
			return errors.Wrap(err, "vec: construct appended element")
		}
		v.size++
		return nil
	}
	tr := traitsOf[T]()
	var nb RawBlock[T]
	nb.Alloc(v.grownCap())
	slot := nb.At(v.size)
	if err := build(slot); err != nil {
		nb.Release()
		return errors.Wrap(err, "vec: construct appended element")
	}
	if err := v.relocate(tr, nb.Tail(0)[:v.size]); err != nil {
		destroyElem(slot)
		nb.Release()
		return err
	}
	v.installBlock(&nb, tr)
	v.size++
	return nil
}

// Insert places a duplicate of val at position i, shifting [i, Len()) one
// slot right. i may equal Len() (insert at end). Returns the position of
// the new element.
func (v *Vector[T]) Insert(i int, val T) (int, error) {
	if i < 0 || i > v.size {
		panic("vec: insert position out of range")
	}
	if i == v.size {
		if err := v.Append(val); err != nil {
			return 0, err
		}
		return i, nil
	}
	elem, err := cloneElem(val)
	if err != nil {
		return 0, errors.Wrap(err, "vec: clone inserted value")
	}
	if v.size < v.data.Cap() {
		err = v.insertInPlace(i, elem)
	} else {
		err = v.insertGrow(i, elem)
	}
	if err != nil {
		return 0, err
	}
	return i, nil
}

// InsertWith is Insert with in-place construction: build runs on zeroed
// storage, directly at the final offset when growth relocates anyway.
func (v *Vector[T]) InsertWith(i int, build func(*T) error) (int, error) {
	if i < 0 || i > v.size {
		panic("vec: insert position out of range")
	}
	if i == v.size {
		if err := v.AppendWith(build); err != nil {
			return 0, err
		}
		return i, nil
	}
	if v.size < v.data.Cap() {
		var elem T
		if err := build(&elem); err != nil {
			return 0, errors.Wrap(err, "vec: construct inserted element")
		}
		if err := v.insertInPlace(i, elem); err != nil {
			return 0, err
		}
		return i, nil
	}
	tr := traitsOf[T]()
	var nb RawBlock[T]
	nb.Alloc(v.grownCap())
	if err := build(nb.At(i)); err != nil {
		nb.Release()
		return 0, errors.Wrap(err, "vec: construct inserted element")
	}
	if err := v.finishInsertGrow(&nb, i, tr); err != nil {
		return 0, err
	}
	return i, nil
}

// insertInPlace shifts [i, size) one slot right within the current block
// and lands elem in slot i. For assignment-transferable types the shift
// cannot fail. For clone-transferred types a failed Clone mid-shift
// destroys the speculative one-past-end element and returns with size
// unchanged, leaving [i, size) valid but with unspecified contents (the
// basic guarantee).
func (v *Vector[T]) insertInPlace(i int, elem T) error {
	tr := traitsOf[T]()
	buf := v.data.Tail(0)
	if tr.moveOK {
		copy(buf[i+1:v.size+1], buf[i:v.size])
		buf[i] = elem
		v.size++
		return nil
	}
	// Speculative tail: a clone of the last element goes one past the end.
	c, err := cloneElem(buf[v.size-1])
	if err != nil {
		destroyElem(&elem)
		return errors.Wrap(err, "vec: clone during insert shift")
	}
	buf[v.size] = c
	for j := v.size - 1; j > i; j-- {
		c, err := cloneElem(buf[j-1])
		if err != nil {
			destroyElem(&buf[v.size])
			destroyElem(&elem)
			return errors.Wrapf(err, "vec: clone during insert shift, contents of [%d, %d) unspecified", i, v.size)
		}
		destroyElem(&buf[j])
		buf[j] = c
	}
	destroyElem(&buf[i])
	buf[i] = elem
	v.size++
	return nil
}

// insertGrow allocates grown storage, constructs elem at its final offset,
// and relocates the prefix and suffix around it.
func (v *Vector[T]) insertGrow(i int, elem T) error {
	tr := traitsOf[T]()
	var nb RawBlock[T]
	nb.Alloc(v.grownCap())
	*nb.At(i) = elem
	return v.finishInsertGrow(&nb, i, tr)
}

// finishInsertGrow relocates [0, i) and [i, size) around the element
// already constructed in slot i of nb, then installs nb. On a relocation
// failure everything constructed in nb is destroyed and the original
// vector is untouched.
func (v *Vector[T]) finishInsertGrow(nb *RawBlock[T], i int, tr traits) error {
	dst := nb.Tail(0)
	src := v.live()
	if tr.moveOK {
		copy(dst[:i], src[:i])
		copy(dst[i+1:v.size+1], src[i:])
	} else {
		if err := cloneInto(tr, dst[:i], src[:i]); err != nil {
			destroyElem(nb.At(i))
			nb.Release()
			return err
		}
		if err := cloneInto(tr, dst[i+1:v.size+1], src[i:]); err != nil {
			destroyRange(dst[:i])
			destroyElem(nb.At(i))
			nb.Release()
			return err
		}
	}
	v.installBlock(nb, tr)
	v.size++
	return nil
}

// Erase removes the element at position i, shifting the tail one slot
// left. Returns i, which now refers to the former next element, or equals
// Len() when the last element was removed. Transfer within a block is
// plain assignment, so Erase cannot fail.
func (v *Vector[T]) Erase(i int) int {
	if i < 0 || i >= v.size {
		panic("vec: erase position out of range")
	}
	buf := v.data.Tail(0)
	destroyElem(&buf[i])
	copy(buf[i:v.size-1], buf[i+1:v.size])
	// The last slot's value moved left; drop the stale duplicate without
	// destroying it.
	var zero T
	buf[v.size-1] = zero
	v.size--
	return i
}

// PopBack destroys and removes the last element.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vec: PopBack on empty vector")
	}
	destroyElem(v.data.At(v.size - 1))
	v.size--
}
