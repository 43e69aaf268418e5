package vec

import (
	"sync"
	"testing"
)

func TestSafeVectorConcurrentAppend(t *testing.T) {
	const workers = 8
	const perWorker = 250

	s := NewSafe[int]()
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if err := s.Append(id); err != nil {
					t.Errorf("Append: %v", err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	if s.Len() != workers*perWorker {
		t.Errorf("Len = %d, want %d", s.Len(), workers*perWorker)
	}

	// Every worker's writes must all have landed.
	counts := make(map[int]int)
	for i := 0; i < s.Len(); i++ {
		counts[s.Get(i)]++
	}
	for w := 0; w < workers; w++ {
		if counts[w] != perWorker {
			t.Errorf("worker %d: %d elements, want %d", w, counts[w], perWorker)
		}
	}
}

func TestSafeVectorGetUpdate(t *testing.T) {
	s := NewSafe[int]()
	if err := s.Append(41); err != nil {
		t.Fatalf("Append: %v", err)
	}

	s.Update(0, func(p *int) { *p++ })

	if got := s.Get(0); got != 42 {
		t.Errorf("Get(0) = %d, want 42", got)
	}
}

func TestSafeVectorConcurrentUpdate(t *testing.T) {
	s := NewSafe[int]()
	if err := s.Append(0); err != nil {
		t.Fatalf("Append: %v", err)
	}

	const workers = 8
	const increments = 100
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < increments; i++ {
				s.Update(0, func(p *int) { *p++ })
			}
		}()
	}
	wg.Wait()

	if got := s.Get(0); got != workers*increments {
		t.Errorf("Get(0) = %d, want %d", got, workers*increments)
	}
}

func TestSafeSized(t *testing.T) {
	s, err := NewSafeSized[int](4)
	if err != nil {
		t.Fatalf("NewSafeSized: %v", err)
	}
	if s.Len() != 4 || s.Cap() != 4 {
		t.Errorf("len=%d cap=%d, want 4, 4", s.Len(), s.Cap())
	}
}

func TestSafeVectorOps(t *testing.T) {
	s := NewSafe[int]()
	for _, n := range []int{10, 20, 30} {
		if err := s.Append(n); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	pos, err := s.Insert(1, 99)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if pos != 1 || s.Get(1) != 99 {
		t.Errorf("Insert landed at %d with value %d, want 1, 99", pos, s.Get(1))
	}

	s.Erase(1)
	if s.Len() != 3 || s.Get(1) != 20 {
		t.Errorf("after Erase len=%d Get(1)=%d, want 3, 20", s.Len(), s.Get(1))
	}

	s.PopBack()
	if s.Len() != 2 {
		t.Errorf("after PopBack len=%d, want 2", s.Len())
	}

	if err := s.Resize(5); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if s.Len() != 5 {
		t.Errorf("after Resize len=%d, want 5", s.Len())
	}

	s.Clear()
	if s.Len() != 0 || s.Cap() == 0 {
		t.Errorf("after Clear len=%d cap=%d, want 0 and nonzero cap", s.Len(), s.Cap())
	}

	s.Release()
	if s.Cap() != 0 {
		t.Errorf("after Release cap=%d, want 0", s.Cap())
	}
}

func TestSafeVectorMetrics(t *testing.T) {
	s := NewSafe[int]()
	for i := 0; i < 5; i++ {
		if err := s.Append(i); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	m := s.Metrics()
	if m.Len != 5 || m.Cap != 8 {
		t.Errorf("Len/Cap = %d/%d, want 5/8", m.Len, m.Cap)
	}
	if s.Growths() != 4 {
		t.Errorf("Growths = %d, want 4", s.Growths())
	}
	if s.Relocated() != 7 {
		t.Errorf("Relocated = %d, want 7", s.Relocated())
	}
}
