package service

import (
	"go.uber.org/zap"

	"matchbook/domain/orderbook"
	"matchbook/infra/memory"
	"matchbook/infra/sequence"
	entrywal "matchbook/infra/wal/entry"
)

// ReplayFromWAL rebuilds in-memory state from the entry WAL. It must run
// before the engine accepts traffic. Records with seq <= afterSeq are
// already reflected in the loaded snapshot and are skipped; the current
// segment keeps them until the next rotation. The exit outbox is not
// replayed: it is durable on its own, and regenerated trades keep the same
// trade sequence because replay reproduces the original submit order
// exactly.
func ReplayFromWAL(
	log *zap.Logger,
	walDir string,
	book *orderbook.OrderBook,
	pool *memory.Pool[orderbook.Order],
	seqGen *sequence.Sequencer,
	afterSeq uint64,
) error {
	log = log.Named("replay")

	replayed := 0
	lastSeq, err := entrywal.Replay(walDir, func(rec *entrywal.Record) error {
		if rec.Seq <= afterSeq {
			return nil
		}
		switch rec.Type {
		case entrywal.RecordPlace:
			p, err := entrywal.DecodePlace(rec.Data)
			if err != nil {
				return err
			}
			o := pool.Get()
			*o = orderbook.Order{
				ID:    p.ID,
				Seq:   rec.Seq,
				Side:  orderbook.Side(p.Side),
				Type:  orderbook.OrderType(p.Type),
				Price: p.Price,
				Qty:   p.Qty,
			}
			conf, err := book.Submit(o)
			if err != nil {
				// was rejected in the original run too; determinism holds
				o.Reset()
				pool.Put(o)
				return nil
			}
			if conf.Disposition != orderbook.Rested && conf.Disposition != orderbook.PartialRested {
				// no readers during replay, reuse immediately
				o.Reset()
				pool.Put(o)
			}

		case entrywal.RecordCancel:
			c, err := entrywal.DecodeCancel(rec.Data)
			if err != nil {
				return err
			}
			_ = book.Cancel(c.ID)
		}
		replayed++
		return nil
	})
	if err != nil {
		return err
	}

	if lastSeq < afterSeq {
		lastSeq = afterSeq
	}
	seqGen.Reset(lastSeq)
	log.Info("wal replay complete",
		zap.Int("records", replayed),
		zap.Uint64("last_seq", lastSeq),
		zap.Int("live_orders", book.LiveOrders()),
	)
	return nil
}
