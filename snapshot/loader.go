package snapshot

import (
	"encoding/gob"
	"os"

	"matchbook/domain/orderbook"
	"matchbook/infra/memory"
)

// Load restores a book from a snapshot file. A missing file is not an
// error; the engine then starts empty and replays the WAL alone. Orders are
// resubmitted in file order, which is priority order, so the rebuilt book is
// identical to the one that was written.
func Load(
	path string,
	book *orderbook.OrderBook,
	pool *memory.Pool[orderbook.Order],
) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil // snapshot optional
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return 0, err
	}

	for _, e := range s.Orders {
		o := pool.Get()
		*o = orderbook.Order{
			ID:    e.ID,
			Seq:   e.Seq,
			Side:  orderbook.Side(e.Side),
			Type:  orderbook.OrderType(e.Type),
			Price: e.Price,
			Qty:   e.Qty,
		}
		if _, err := book.Submit(o); err != nil {
			return 0, err
		}
	}
	book.SeedTrades(s.TradeSeq)

	return s.Seq, nil
}
