package service

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"matchbook/domain/orderbook"
	"matchbook/infra/memory"
	"matchbook/infra/sequence"
	entrywal "matchbook/infra/wal/entry"
	exitwal "matchbook/infra/wal/exit"
	"matchbook/snapshot"
)

// OrderService is the only write entry point into the engine. It serializes
// concurrent callers into the single total order the book requires, assigns
// sequence numbers, logs intent to the entry WAL, runs the book, and records
// trades in the exit outbox.
type OrderService struct {
	mu sync.Mutex

	log    *zap.Logger
	book   *orderbook.OrderBook
	pool   *memory.Pool[orderbook.Order]
	ring   *memory.RetireRing
	reader *snapshot.Reader
	seqGen *sequence.Sequencer

	entryWAL *entrywal.WAL
	outbox   *exitwal.Outbox
}

func NewOrderService(
	log *zap.Logger,
	book *orderbook.OrderBook,
	pool *memory.Pool[orderbook.Order],
	ring *memory.RetireRing,
	reader *snapshot.Reader,
	seqGen *sequence.Sequencer,
	entryWAL *entrywal.WAL,
	outbox *exitwal.Outbox,
) *OrderService {
	return &OrderService{
		log:      log.Named("service"),
		book:     book,
		pool:     pool,
		ring:     ring,
		reader:   reader,
		seqGen:   seqGen,
		entryWAL: entryWAL,
		outbox:   outbox,
	}
}

// Submit runs one incoming order through WAL, book, and outbox. Rejections
// (bad quantity, bad price, duplicate live id) come back as errors and leave
// the book untouched; everything else is reported in the Confirmation.
func (s *OrderService) Submit(
	id uint64,
	side orderbook.Side,
	otype orderbook.OrderType,
	price int64,
	qty int64,
) (*orderbook.Confirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seqGen.Next()

	payload := entrywal.EncodePlace(entrywal.PlacePayload{
		ID:    id,
		Side:  int32(side),
		Type:  int32(otype),
		Price: price,
		Qty:   qty,
	})
	if err := s.entryWAL.Append(entrywal.NewRecord(entrywal.RecordPlace, seq, payload)); err != nil {
		return nil, errors.Wrap(err, "submit: wal append")
	}

	o := s.pool.Get()
	*o = orderbook.Order{
		ID:    id,
		Seq:   seq,
		Side:  side,
		Type:  otype,
		Price: price,
		Qty:   qty,
	}

	conf, err := s.book.Submit(o)
	if err != nil {
		o.Reset()
		s.pool.Put(o)
		return nil, err
	}

	for _, t := range conf.Trades {
		if err := s.outbox.PutNew(exitwal.TradeRecord{
			Seq:     t.Seq,
			Price:   t.Price,
			Qty:     t.Qty,
			TakerID: t.TakerID,
			MakerID: t.MakerID,
		}); err != nil {
			s.log.Error("outbox write failed", zap.Uint64("trade_seq", t.Seq), zap.Error(err))
		}
	}

	// makers are retired by the book; the taker is ours
	if conf.Disposition != orderbook.Rested && conf.Disposition != orderbook.PartialRested {
		s.retire(o)
	}

	if s.log.Core().Enabled(zap.DebugLevel) {
		s.log.Debug("submit",
			zap.Uint64("id", id),
			zap.Stringer("side", side),
			zap.Int64("price", price),
			zap.Int64("qty", qty),
			zap.Stringer("disposition", conf.Disposition),
			zap.Int("trades", len(conf.Trades)),
		)
	}
	return conf, nil
}

// Cancel removes a resting order by id. NotFound is a normal outcome, not
// an error.
func (s *OrderService) Cancel(id uint64) (orderbook.CancelResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seqGen.Next()

	payload := entrywal.EncodeCancel(entrywal.CancelPayload{ID: id})
	if err := s.entryWAL.Append(entrywal.NewRecord(entrywal.RecordCancel, seq, payload)); err != nil {
		return orderbook.NotFound, errors.Wrap(err, "cancel: wal append")
	}

	res := s.book.Cancel(id)
	if s.log.Core().Enabled(zap.DebugLevel) {
		s.log.Debug("cancel", zap.Uint64("id", id), zap.Stringer("result", res))
	}
	return res, nil
}

// BestQuotes returns the top of both sides. ok flags are false on an empty
// side.
func (s *OrderService) BestQuotes() (bid int64, bidOK bool, ask int64, askOK bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bid, bidOK = s.book.BestBid()
	ask, askOK = s.book.BestOffer()
	return bid, bidOK, ask, askOK
}

// Depth returns up to max levels per side, best first.
func (s *OrderService) Depth(max int) (bids, asks []orderbook.LevelDepth) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Depth(max)
}

// Snapshot returns a consistent view of all resting orders. It runs inside
// a reader epoch so no order it touches is recycled mid-walk.
func (s *OrderService) Snapshot() []OrderView {
	s.reader.Begin()
	defer s.reader.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]OrderView, 0, 1024)
	collect := func(lvl *orderbook.PriceLevel) {
		for o := lvl.Head(); o != nil; o = o.Next() {
			if o.Status != orderbook.Active {
				continue
			}
			out = append(out, OrderView{
				ID:        o.ID,
				Seq:       o.Seq,
				Side:      o.Side,
				Type:      o.Type,
				Price:     o.Price,
				Remaining: o.Remaining(),
			})
		}
	}
	s.book.BidsWalk(collect)
	s.book.AsksWalk(collect)
	return out
}

// OrderView is a read-only copy of one resting order.
type OrderView struct {
	ID        uint64
	Seq       uint64
	Side      orderbook.Side
	Type      orderbook.OrderType
	Price     int64
	Remaining int64
}

// AdvanceEpoch performs safe reclamation. Called periodically by a
// background job.
func (s *OrderService) AdvanceEpoch() {
	memory.AdvanceEpochAndReclaim(s.ring, s.pool, s.reader.Epoch())
}

// LastSeq returns the sequence of the last accepted command.
func (s *OrderService) LastSeq() uint64 {
	return s.seqGen.Current()
}

func (s *OrderService) retire(o *orderbook.Order) {
	if !s.ring.Enqueue(o) {
		// ring full: let the GC have it rather than stall the hot path
		s.log.Warn("retire ring full", zap.Uint64("id", o.ID))
	}
}
