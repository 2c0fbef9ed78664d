package sequence

import "sync/atomic"

// Sequencer issues the strictly monotonic sequence ids that give the book
// its single total order of events. Replay-safe: after WAL replay it is
// reset to the last replayed sequence.
type Sequencer struct {
	next atomic.Uint64
}

func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next returns the next sequence id.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued sequence.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}

// Reset jumps the sequencer. Only used after WAL replay.
func (s *Sequencer) Reset(v uint64) {
	s.next.Store(v)
}
