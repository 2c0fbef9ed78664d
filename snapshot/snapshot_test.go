package snapshot

import (
	"path/filepath"
	"reflect"
	"testing"

	"matchbook/domain/orderbook"
	"matchbook/infra/memory"
)

func newPool() *memory.Pool[orderbook.Order] {
	return memory.NewPool(func() *orderbook.Order { return &orderbook.Order{} })
}

func place(t *testing.T, b *orderbook.OrderBook, id, seq uint64, side orderbook.Side, price, qty int64) {
	t.Helper()
	if _, err := b.Submit(&orderbook.Order{
		ID: id, Seq: seq, Side: side, Type: orderbook.Limit, Price: price, Qty: qty,
	}); err != nil {
		t.Fatalf("submit id=%d: %v", id, err)
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	book := orderbook.NewOrderBook(nil)
	place(t, book, 1, 1, orderbook.Bid, 100, 5)
	place(t, book, 2, 2, orderbook.Bid, 100, 7)
	place(t, book, 3, 3, orderbook.Bid, 99, 2)
	place(t, book, 4, 4, orderbook.Ask, 105, 3)
	// a partial fill, so one restored order carries a reduced remainder
	place(t, book, 5, 5, orderbook.Ask, 100, 2)

	w := &Writer{Dir: dir}
	if err := w.Write(5, book); err != nil {
		t.Fatalf("write: %v", err)
	}

	restored := orderbook.NewOrderBook(nil)
	seq, err := Load(filepath.Join(dir, "snapshot.bin"), restored, newPool())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if seq != 5 {
		t.Fatalf("seq = %d, want 5", seq)
	}

	wantBids, wantAsks := book.Depth(0)
	gotBids, gotAsks := restored.Depth(0)
	if !reflect.DeepEqual(gotBids, wantBids) || !reflect.DeepEqual(gotAsks, wantAsks) {
		t.Fatalf("depth mismatch:\n got %+v / %+v\nwant %+v / %+v", gotBids, gotAsks, wantBids, wantAsks)
	}
	if restored.LiveOrders() != book.LiveOrders() {
		t.Fatalf("live orders %d, want %d", restored.LiveOrders(), book.LiveOrders())
	}
	if restored.TradeSeq() != book.TradeSeq() {
		t.Fatalf("trade seq %d, want %d", restored.TradeSeq(), book.TradeSeq())
	}

	// FIFO must survive: order 1 was partially filled and still heads the
	// 100 level, so the next sell hits it first
	conf, err := restored.Submit(&orderbook.Order{
		ID: 10, Seq: 10, Side: orderbook.Ask, Type: orderbook.Limit, Price: 100, Qty: 1,
	})
	if err != nil {
		t.Fatalf("submit into restored book: %v", err)
	}
	if len(conf.Trades) != 1 || conf.Trades[0].MakerID != 1 {
		t.Fatalf("trades = %+v, want single fill against maker 1", conf.Trades)
	}
}

func TestLoadMissingFile(t *testing.T) {
	book := orderbook.NewOrderBook(nil)
	seq, err := Load(filepath.Join(t.TempDir(), "snapshot.bin"), book, newPool())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if seq != 0 || book.LiveOrders() != 0 {
		t.Fatal("missing snapshot must leave the book empty at seq 0")
	}
}

func TestWriteIsAtomic(t *testing.T) {
	dir := t.TempDir()
	book := orderbook.NewOrderBook(nil)
	place(t, book, 1, 1, orderbook.Bid, 100, 5)

	w := &Writer{Dir: dir}
	if err := w.Write(1, book); err != nil {
		t.Fatalf("first write: %v", err)
	}
	place(t, book, 2, 2, orderbook.Bid, 101, 5)
	if err := w.Write(2, book); err != nil {
		t.Fatalf("second write: %v", err)
	}

	// the second write replaces the file in place; no tmp left behind
	restored := orderbook.NewOrderBook(nil)
	seq, err := Load(filepath.Join(dir, "snapshot.bin"), restored, newPool())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if seq != 2 || restored.LiveOrders() != 2 {
		t.Fatalf("seq=%d live=%d, want 2/2", seq, restored.LiveOrders())
	}
	if _, err := filepath.Glob(filepath.Join(dir, "*.tmp")); err != nil {
		t.Fatalf("glob: %v", err)
	}
	if tmps, _ := filepath.Glob(filepath.Join(dir, "*.tmp")); len(tmps) != 0 {
		t.Fatalf("leftover tmp files: %v", tmps)
	}
}

func TestReaderEpochLifecycle(t *testing.T) {
	r := NewReader()

	// a fresh reader must not block reclamation
	ring := memory.NewRetireRing(4)
	pool := memory.NewPool(func() *orderbook.Order { return &orderbook.Order{} })
	ring.Enqueue(&orderbook.Order{ID: 1})

	memory.AdvanceEpochAndReclaim(ring, pool, r.Epoch())
	if ring.Len() != 0 {
		t.Fatal("idle reader blocked reclamation")
	}

	ring.Enqueue(&orderbook.Order{ID: 2})
	r.Begin()
	memory.AdvanceEpochAndReclaim(ring, pool, r.Epoch())
	if ring.Len() != 1 {
		t.Fatal("active reader did not block reclamation")
	}
	r.End()
	memory.AdvanceEpochAndReclaim(ring, pool, r.Epoch())
	if ring.Len() != 0 {
		t.Fatal("reclamation still blocked after End")
	}
}
