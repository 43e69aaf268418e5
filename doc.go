// Package vec implements a generic resizable array that separates raw
// storage allocation from element construction.
//
// # Overview
//
// A Vector keeps its elements in a single contiguous RawBlock and tracks
// which cells hold live values itself; the block is pure storage and
// never constructs or destroys anything. Appends run in amortized
// constant time: when the block fills up, a new one of double the size is
// allocated, the live elements are relocated, and the blocks are swapped.
// This is particularly useful for:
//
//   - Value-dense sequences with many appends and occasional inserts
//   - Element types that own resources and need deterministic cleanup
//   - Code that wants explicit control over capacity and reallocation
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release() // destroy elements, drop the block
//
//	for i := 0; i < 100; i++ {
//		if err := v.Append(i); err != nil {
//			return err
//		}
//	}
//
//	pos, err := v.Insert(10, 42) // shift [10, len) right
//	_ = v.Erase(pos)             // and back out again
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Element Lifecycle
//
// Plain element types need nothing: assignment duplicates them and
// discarded slots are simply zeroed. Types owning resources opt into
// lifecycle hooks by implementing Cloner (fallible duplication),
// Destroyer (cleanup on discard), Initializer (fallible default
// construction) and Relocatable (allow block-to-block transfer by
// assignment). Resource-owning types should implement Cloner and
// Destroyer together: duplicating a resource by plain assignment aliases
// it, and the container destroys each of its elements exactly once.
//
// # Failure Behavior
//
// Operations that duplicate or construct elements return an error when an
// element hook fails. Every reallocating path (Reserve, growth-driven
// Append/Insert, Clone, CopyFrom into too-small storage) gives the strong
// guarantee: on failure the original vector is untouched and nothing
// leaks. The in-place insert shift for clone-relocated types gives only
// the basic guarantee: the vector stays valid and destructible, but the
// shifted range's contents are unspecified after a mid-shift failure.
// Out-of-range indexes and positions are contract violations and panic.
//
// # Thread Safety
//
// Vector is not thread-safe. For concurrent access, use SafeVector:
//
//	s := vec.NewSafe[int]()
//	defer s.Release()
//
//	// All operations are thread-safe
//	_ = s.Append(7)
//	s.Update(0, func(p *int) { *p++ })
//
// # Metrics and Monitoring
//
// The vector tracks its growth behavior:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("Growth events: %d\n", m.Growths)
//	fmt.Printf("Elements relocated: %d\n", m.Relocated)
package vec
