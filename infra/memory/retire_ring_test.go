package memory

import "testing"

type thing struct{ id int }

func TestRetireRingBasic(t *testing.T) {
	r := NewRetireRing(4)
	o1 := &thing{id: 1}
	o2 := &thing{id: 2}

	if !r.Enqueue(o1) || !r.Enqueue(o2) {
		t.Fatal("enqueue failed unexpectedly")
	}
	if r.Len() != 2 {
		t.Errorf("len = %d, want 2", r.Len())
	}
	if r.Dequeue() != o1 {
		t.Error("expected first dequeue to be o1")
	}
	if r.Dequeue() != o2 {
		t.Error("expected second dequeue to be o2")
	}
	if r.Dequeue() != nil {
		t.Error("expected empty ring to return nil")
	}
}

func TestRetireRingFull(t *testing.T) {
	r := NewRetireRing(2)
	if !r.Enqueue(&thing{}) || !r.Enqueue(&thing{}) {
		t.Fatal("enqueue failed unexpectedly")
	}
	if r.Enqueue(&thing{}) {
		t.Error("expected enqueue on full ring to fail")
	}
	r.Dequeue()
	if !r.Enqueue(&thing{}) {
		t.Error("expected enqueue to succeed after dequeue")
	}
}

// One producer and one consumer running flat out; every object must come
// out exactly once and in order. Run with -race to check the head/tail
// publication between the two goroutines.
func TestRetireRingConcurrentSPSC(t *testing.T) {
	const n = 100000
	r := NewRetireRing(64)

	done := make(chan struct{})
	go func() {
		defer close(done)
		next := 0
		for next < n {
			v := r.Dequeue()
			if v == nil {
				continue
			}
			got := v.(*thing).id
			if got != next {
				t.Errorf("dequeued id %d, want %d", got, next)
				return
			}
			next++
		}
	}()

	for i := 0; i < n; {
		if r.Enqueue(&thing{id: i}) {
			i++
		}
	}
	<-done

	if r.Len() != 0 {
		t.Errorf("ring len = %d after drain, want 0", r.Len())
	}
}

func TestRetireRingRejectsOddSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non power-of-two size")
		}
	}()
	NewRetireRing(3)
}

func TestReclaimWaitsForReaders(t *testing.T) {
	ring := NewRetireRing(8)
	pool := NewPool(func() *thing { return &thing{} })

	ring.Enqueue(&thing{id: 1})

	var reader ReaderEpoch
	reader.Enter()
	AdvanceEpochAndReclaim(ring, pool, &reader)
	if ring.Len() != 1 {
		t.Fatal("reclaimed while a reader was active")
	}

	reader.Exit()
	AdvanceEpochAndReclaim(ring, pool, &reader)
	if ring.Len() != 0 {
		t.Fatal("failed to reclaim after reader exit")
	}
}

func TestReclaimWithNoReaders(t *testing.T) {
	ring := NewRetireRing(8)
	pool := NewPool(func() *thing { return &thing{} })

	for i := 0; i < 5; i++ {
		ring.Enqueue(&thing{id: i})
	}
	AdvanceEpochAndReclaim(ring, pool)
	if ring.Len() != 0 {
		t.Fatalf("ring len = %d after reclaim, want 0", ring.Len())
	}
}
