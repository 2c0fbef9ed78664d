package sequence

import (
	"sync"
	"testing"
)

func TestSequencerMonotonic(t *testing.T) {
	s := New(0)
	if s.Next() != 1 || s.Next() != 2 || s.Current() != 2 {
		t.Fatal("sequencer not monotonic from zero")
	}

	s.Reset(100)
	if s.Next() != 101 {
		t.Fatal("Reset did not move the sequence")
	}
}

func TestSequencerConcurrentUnique(t *testing.T) {
	s := New(0)
	const workers, each = 8, 1000

	var wg sync.WaitGroup
	out := make([][]uint64, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < each; i++ {
				out[w] = append(out[w], s.Next())
			}
		}(w)
	}
	wg.Wait()

	seen := make(map[uint64]bool, workers*each)
	for _, ids := range out {
		for _, id := range ids {
			if seen[id] {
				t.Fatalf("duplicate sequence %d", id)
			}
			seen[id] = true
		}
	}
	if s.Current() != workers*each {
		t.Fatalf("current = %d, want %d", s.Current(), workers*each)
	}
}
