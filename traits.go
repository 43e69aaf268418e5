package vec

// Element types opt into lifecycle behavior by implementing the interfaces
// below. Plain types need none of them: assignment duplicates them, nothing
// runs when the container discards them, and moving them between storage
// blocks is a plain copy.

// Cloner is implemented by element types whose duplication can fail or must
// do real work (deep copies, handles, refcounts). The container duplicates
// such values exclusively through Clone, so a failed Clone never leaves a
// half-owned element behind.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Destroyer is implemented by element types that own resources. Destroy is
// called exactly once for every element the container discards (erase,
// shrink, clear, failed-operation unwind). It must not fail.
type Destroyer interface {
	Destroy()
}

// Initializer is implemented on *T by element types whose default
// construction can fail. NewSized and Resize call Init on each new slot
// after zeroing it.
type Initializer interface {
	Init() error
}

// Relocatable marks a Cloner type whose values may be transferred to a new
// storage block by plain assignment. The old block is then dropped without
// destroying the originals, since the same values live on in the new block.
// Types that must not be aliased even transiently (say, values registered
// by address elsewhere) leave this unimplemented and are relocated through
// Clone instead, with the old elements kept intact until every clone has
// succeeded.
type Relocatable interface {
	Relocatable()
}

// traits records which of the opt-in interfaces T implements.
type traits struct {
	clones   bool
	destroys bool
	inits    bool
	moveOK   bool // block-to-block transfer by assignment is allowed
}

func traitsOf[T any]() traits {
	var zero T
	tr := traits{}
	_, tr.clones = any(zero).(Cloner[T])
	_, tr.destroys = any(&zero).(Destroyer)
	_, tr.inits = any(&zero).(Initializer)
	if tr.clones {
		_, tr.moveOK = any(zero).(Relocatable)
	} else {
		tr.moveOK = true
	}
	return tr
}

// cloneElem duplicates v through Clone when T opts in, by assignment
// otherwise.
func cloneElem[T any](v T) (T, error) {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v, nil
}

// initElem default-constructs the element in slot p. The slot is already
// zeroed; Init only runs for types that opt in.
func initElem[T any](p *T) error {
	if in, ok := any(p).(Initializer); ok {
		return in.Init()
	}
	return nil
}

// destroyElem runs Destroy when T opts in, then zeroes the slot so spare
// storage keeps no references alive.
func destroyElem[T any](p *T) {
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	*p = zero
}

func destroyRange[T any](s []T) {
	if len(s) == 0 {
		return
	}
	if !traitsOf[T]().destroys {
		clear(s)
		return
	}
	for i := range s {
		destroyElem(&s[i])
	}
}
