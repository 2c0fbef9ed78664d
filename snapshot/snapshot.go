package snapshot

import "time"

// Snapshot is a point-in-time copy of every resting order, FIFO order
// preserved per price level so a reload reproduces time priority exactly.
type Snapshot struct {
	Seq      uint64
	TradeSeq uint64
	Created  time.Time
	Orders   []OrderEntry
}

type OrderEntry struct {
	ID    uint64
	Seq   uint64
	Side  int
	Type  int
	Price int64
	Qty   int64
}
