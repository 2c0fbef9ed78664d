package snapshot

import "matchbook/infra/memory"

// Reader marks the begin and end of a consistent read of the book. It is a
// thin adapter over memory.ReaderEpoch: while a reader is inside an epoch,
// no order it might still reference is recycled.
type Reader struct {
	epoch *memory.ReaderEpoch
}

func NewReader() *Reader {
	r := &Reader{epoch: &memory.ReaderEpoch{}}
	r.epoch.Exit()
	return r
}

// Begin marks the start of a consistent snapshot.
func (r *Reader) Begin() {
	r.epoch.Enter()
}

// End marks the end of a snapshot.
func (r *Reader) End() {
	r.epoch.Exit()
}

// Epoch exposes the underlying epoch for reclaimers.
func (r *Reader) Epoch() *memory.ReaderEpoch {
	return r.epoch
}
