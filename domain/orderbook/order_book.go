package orderbook

import (
	"sync/atomic"

	"matchbook/infra/memory"
)

// OrderBook is the matching core for a single instrument. It is
// single-writer and deterministic: exactly one Submit or Cancel runs at a
// time, and the same input sequence always produces the same trades.
//
// Three structures are kept mutually consistent by every operation:
//
//	Bids/Asks  red-black trees of price levels (price priority)
//	per level  intrusive FIFO of orders (time priority)
//	orders     id -> live order, for O(1) cancel
type OrderBook struct {
	Bids *RBTree
	Asks *RBTree

	orders map[uint64]*Order
	ring   *memory.RetireRing

	tradeSeq uint64
	LastSeq  atomic.Uint64
}

// NewOrderBook creates an empty book. ring may be nil; dead orders are then
// left to the garbage collector instead of being recycled.
func NewOrderBook(ring *memory.RetireRing) *OrderBook {
	return &OrderBook{
		Bids:   NewRBTree(),
		Asks:   NewRBTree(),
		orders: make(map[uint64]*Order),
		ring:   ring,
	}
}

// Submit validates and executes one incoming order: match against the
// opposite side under price-time priority, then rest any remainder the
// order type allows. The returned Confirmation lists every trade in
// execution order. On error the book is untouched and the order is not live.
func (b *OrderBook) Submit(o *Order) (*Confirmation, error) {
	if o.Qty <= 0 {
		return nil, ErrInvalidQuantity
	}
	if o.Type != Market && o.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if _, live := b.orders[o.ID]; live {
		return nil, ErrDuplicateOrderID
	}

	b.LastSeq.Store(o.Seq)
	o.Status = Active

	conf := &Confirmation{OrderID: o.ID, Seq: o.Seq}

	switch o.Type {
	case PostOnly:
		if b.wouldCross(o) {
			o.Status = Inactive
			conf.Disposition = Killed
			conf.Remaining = o.Remaining()
			return conf, nil
		}
	case FOK:
		if !b.fillable(o) {
			o.Status = Inactive
			conf.Disposition = Killed
			conf.Remaining = o.Remaining()
			return conf, nil
		}
	}

	conf.Trades = b.match(o)

	rest := o.Remaining() > 0 && (o.Type == Limit || o.Type == PostOnly)
	if rest {
		b.enqueue(o)
	} else if o.Remaining() > 0 {
		o.Status = Inactive
	}

	conf.Remaining = o.Remaining()
	conf.Disposition = disposition(o, len(conf.Trades), rest)
	return conf, nil
}

// Cancel removes a resting order by id. Unknown or already-removed ids are
// reported as NotFound and leave every structure unchanged.
func (b *OrderBook) Cancel(id uint64) CancelResult {
	o, live := b.orders[id]
	if !live {
		return NotFound
	}

	lvl := o.level
	lvl.Unlink(o)
	delete(b.orders, id)
	if lvl.Empty() {
		b.tree(o.Side).DeleteLevel(lvl.Price)
	}
	b.retire(o)
	return Removed
}

// BestBid returns the highest resting buy price. ok is false when the bid
// side is empty; there is no sentinel price.
func (b *OrderBook) BestBid() (int64, bool) {
	lvl := b.Bids.MaxLevel()
	if lvl == nil {
		return 0, false
	}
	return lvl.Price, true
}

// BestOffer returns the lowest resting sell price.
func (b *OrderBook) BestOffer() (int64, bool) {
	lvl := b.Asks.MinLevel()
	if lvl == nil {
		return 0, false
	}
	return lvl.Price, true
}

// Depth returns up to max levels per side, best first. max <= 0 means all.
// Diagnostics only; not on the hot path.
func (b *OrderBook) Depth(max int) (bids, asks []LevelDepth) {
	collect := func(out *[]LevelDepth) func(*PriceLevel) bool {
		return func(lvl *PriceLevel) bool {
			*out = append(*out, LevelDepth{
				Price:  lvl.Price,
				Volume: lvl.TotalQty,
				Orders: lvl.OrderCount,
			})
			return max <= 0 || len(*out) < max
		}
	}
	b.Bids.ForEachDescending(collect(&bids))
	b.Asks.ForEachAscending(collect(&asks))
	return bids, asks
}

// LiveOrders returns the number of resting orders on both sides.
func (b *OrderBook) LiveOrders() int {
	return len(b.orders)
}

// TradeSeq returns the last issued trade sequence.
func (b *OrderBook) TradeSeq() uint64 {
	return b.tradeSeq
}

// SeedTrades resumes trade sequencing after a snapshot load, so trade ids
// stay monotonic across restarts.
func (b *OrderBook) SeedTrades(seq uint64) {
	b.tradeSeq = seq
}

// ---- traversal helpers ----

func (b *OrderBook) BidsWalk(fn func(*PriceLevel)) {
	b.Bids.ForEachDescending(func(lvl *PriceLevel) bool {
		fn(lvl)
		return true
	})
}

func (b *OrderBook) AsksWalk(fn func(*PriceLevel)) {
	b.Asks.ForEachAscending(func(lvl *PriceLevel) bool {
		fn(lvl)
		return true
	})
}

// ---- matching ----

// match consumes the opposite side from the best level while the incoming
// order still crosses. Every trade executes at the resting order's price;
// FIFO within a level, never reordered. The loop stops the moment the
// opposite best no longer crosses, even if quantity remains.
func (b *OrderBook) match(o *Order) []Trade {
	var trades []Trade
	opp := b.tree(o.Side.Opposite())

	for o.Remaining() > 0 {
		best := b.bestOpposite(o.Side)
		if best == nil || !crosses(o, best.Price) {
			break
		}

		maker := best.Head()
		qty := min64(o.Remaining(), maker.Remaining())

		o.Filled += qty
		maker.Filled += qty
		best.Reduce(qty)

		b.tradeSeq++
		trades = append(trades, Trade{
			Price:   best.Price,
			Qty:     qty,
			TakerID: o.ID,
			MakerID: maker.ID,
			Seq:     b.tradeSeq,
		})

		if maker.Remaining() == 0 {
			best.PopHead()
			delete(b.orders, maker.ID)
			b.retire(maker)
			if best.Empty() {
				opp.DeleteLevel(best.Price)
			}
		}
	}
	return trades
}

// enqueue rests the order: find-or-create its level, append at the tail,
// index by id. All three updates are one logical step.
func (b *OrderBook) enqueue(o *Order) {
	b.tree(o.Side).UpsertLevel(o.Price).Enqueue(o)
	b.orders[o.ID] = o
}

// wouldCross reports whether o would trade immediately.
func (b *OrderBook) wouldCross(o *Order) bool {
	best := b.bestOpposite(o.Side)
	return best != nil && crosses(o, best.Price)
}

// fillable walks the opposite side best-first and reports whether enough
// crossing volume rests to fill o completely. Used by FOK so that a kill
// has no partial effect.
func (b *OrderBook) fillable(o *Order) bool {
	need := o.Remaining()
	walk := b.Asks.ForEachAscending
	if o.Side == Ask {
		walk = b.Bids.ForEachDescending
	}
	walk(func(lvl *PriceLevel) bool {
		if !crosses(o, lvl.Price) {
			return false
		}
		need -= lvl.TotalQty
		return need > 0
	})
	return need <= 0
}

func (b *OrderBook) bestOpposite(side Side) *PriceLevel {
	if side == Bid {
		return b.Asks.MinLevel()
	}
	return b.Bids.MaxLevel()
}

func (b *OrderBook) tree(side Side) *RBTree {
	if side == Bid {
		return b.Bids
	}
	return b.Asks
}

func (b *OrderBook) retire(o *Order) {
	o.Status = Inactive
	if b.ring != nil {
		_ = b.ring.Enqueue(o)
	}
}

// crosses reports whether a resting level at best is matchable by o.
func crosses(o *Order, best int64) bool {
	if o.Type == Market {
		return true
	}
	if o.Side == Bid {
		return best <= o.Price
	}
	return best >= o.Price
}

func disposition(o *Order, trades int, rested bool) Disposition {
	switch {
	case trades == 0 && rested:
		return Rested
	case trades == 0:
		return Killed
	case o.Remaining() == 0:
		return Filled
	case rested:
		return PartialRested
	default:
		return PartialKilled
	}
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
