package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"matchbook/domain/orderbook"
	"matchbook/infra/memory"
	"matchbook/infra/sequence"
	entrywal "matchbook/infra/wal/entry"
	exitwal "matchbook/infra/wal/exit"
	"matchbook/snapshot"
)

type testEnv struct {
	svc    *OrderService
	book   *orderbook.OrderBook
	pool   *memory.Pool[orderbook.Order]
	seqGen *sequence.Sequencer
	wal    *entrywal.WAL
	outbox *exitwal.Outbox
	walDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	walDir := t.TempDir()
	w, err := entrywal.Open(entrywal.Config{Dir: walDir, SegmentSize: 1 << 20})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	ob, err := exitwal.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = ob.Close() })

	pool := memory.NewPool(func() *orderbook.Order { return &orderbook.Order{} })
	ring := memory.NewRetireRing(1 << 10)
	book := orderbook.NewOrderBook(ring)
	seqGen := sequence.New(0)

	svc := NewOrderService(zap.NewNop(), book, pool, ring, snapshot.NewReader(), seqGen, w, ob)
	return &testEnv{svc: svc, book: book, pool: pool, seqGen: seqGen, wal: w, outbox: ob, walDir: walDir}
}

func TestSubmitMatchAndOutbox(t *testing.T) {
	env := newTestEnv(t)

	conf, err := env.svc.Submit(1, orderbook.Bid, orderbook.Limit, 100, 10)
	require.NoError(t, err)
	require.Equal(t, orderbook.Rested, conf.Disposition)

	conf, err = env.svc.Submit(2, orderbook.Ask, orderbook.Limit, 100, 4)
	require.NoError(t, err)
	require.Equal(t, orderbook.Filled, conf.Disposition)
	require.Len(t, conf.Trades, 1)
	require.Equal(t, int64(100), conf.Trades[0].Price)
	require.Equal(t, int64(4), conf.Trades[0].Qty)

	// the trade must be durable in the outbox as NEW
	rec, err := env.outbox.Get(conf.Trades[0].Seq)
	require.NoError(t, err)
	require.Equal(t, exitwal.StateNew, rec.State)
	require.Equal(t, uint64(2), rec.TakerID)
	require.Equal(t, uint64(1), rec.MakerID)

	bid, bidOK, _, askOK := env.svc.BestQuotes()
	require.True(t, bidOK)
	require.Equal(t, int64(100), bid)
	require.False(t, askOK)
}

func TestSubmitRejection(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Submit(1, orderbook.Bid, orderbook.Limit, 100, 0)
	require.ErrorIs(t, err, orderbook.ErrInvalidQuantity)

	_, err = env.svc.Submit(1, orderbook.Bid, orderbook.Limit, 0, 5)
	require.ErrorIs(t, err, orderbook.ErrInvalidPrice)

	_, err = env.svc.Submit(1, orderbook.Bid, orderbook.Limit, 100, 5)
	require.NoError(t, err)
	_, err = env.svc.Submit(1, orderbook.Ask, orderbook.Limit, 200, 5)
	require.ErrorIs(t, err, orderbook.ErrDuplicateOrderID)

	require.Equal(t, 1, env.book.LiveOrders())
}

func TestCancel(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Submit(1, orderbook.Bid, orderbook.Limit, 100, 5)
	require.NoError(t, err)

	res, err := env.svc.Cancel(1)
	require.NoError(t, err)
	require.Equal(t, orderbook.Removed, res)

	res, err = env.svc.Cancel(1)
	require.NoError(t, err)
	require.Equal(t, orderbook.NotFound, res)

	_, bidOK, _, _ := env.svc.BestQuotes()
	require.False(t, bidOK)
}

func TestSnapshotView(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Submit(1, orderbook.Bid, orderbook.Limit, 100, 5)
	require.NoError(t, err)
	_, err = env.svc.Submit(2, orderbook.Ask, orderbook.Limit, 105, 3)
	require.NoError(t, err)

	views := env.svc.Snapshot()
	require.Len(t, views, 2)
	require.Equal(t, uint64(1), views[0].ID)
	require.Equal(t, int64(5), views[0].Remaining)
	require.Equal(t, uint64(2), views[1].ID)
}

func TestReplayRestoresState(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Submit(1, orderbook.Bid, orderbook.Limit, 100, 5)
	require.NoError(t, err)
	_, err = env.svc.Submit(2, orderbook.Bid, orderbook.Limit, 101, 3)
	require.NoError(t, err)
	_, err = env.svc.Submit(3, orderbook.Ask, orderbook.Limit, 101, 1) // trades against 2
	require.NoError(t, err)
	_, err = env.svc.Cancel(1)
	require.NoError(t, err)
	require.NoError(t, env.wal.Sync())

	wantBids, wantAsks := env.book.Depth(0)
	wantTradeSeq := env.book.TradeSeq()

	restored := orderbook.NewOrderBook(nil)
	seqGen := sequence.New(0)
	err = ReplayFromWAL(zap.NewNop(), env.walDir, restored, env.pool, seqGen, 0)
	require.NoError(t, err)

	gotBids, gotAsks := restored.Depth(0)
	require.Equal(t, wantBids, gotBids)
	require.Equal(t, wantAsks, gotAsks)
	require.Equal(t, env.book.LiveOrders(), restored.LiveOrders())
	require.Equal(t, wantTradeSeq, restored.TradeSeq())
	require.Equal(t, env.svc.LastSeq(), seqGen.Current())
}

func TestReplaySkipsRejectedRecords(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Submit(1, orderbook.Bid, orderbook.Limit, 100, 5)
	require.NoError(t, err)
	// rejected after the WAL append; replay must reject it again
	_, err = env.svc.Submit(1, orderbook.Ask, orderbook.Limit, 200, 5)
	require.ErrorIs(t, err, orderbook.ErrDuplicateOrderID)
	require.NoError(t, env.wal.Sync())

	restored := orderbook.NewOrderBook(nil)
	err = ReplayFromWAL(zap.NewNop(), env.walDir, restored, env.pool, sequence.New(0), 0)
	require.NoError(t, err)
	require.Equal(t, 1, restored.LiveOrders())
}

func TestSnapshotPlusTailRecovery(t *testing.T) {
	env := newTestEnv(t)
	snapDir := t.TempDir()

	_, err := env.svc.Submit(1, orderbook.Bid, orderbook.Limit, 100, 5)
	require.NoError(t, err)
	_, err = env.svc.Submit(2, orderbook.Ask, orderbook.Limit, 105, 3)
	require.NoError(t, err)

	w := &snapshot.Writer{Dir: snapDir}
	require.NoError(t, w.Write(env.seqGen.Current(), env.book))

	// traffic after the snapshot forms the WAL tail
	_, err = env.svc.Submit(3, orderbook.Bid, orderbook.Limit, 99, 2)
	require.NoError(t, err)
	_, err = env.svc.Cancel(2)
	require.NoError(t, err)
	require.NoError(t, env.wal.Sync())

	wantBids, wantAsks := env.book.Depth(0)

	restored := orderbook.NewOrderBook(nil)
	seqGen := sequence.New(0)
	snapSeq, err := snapshot.Load(filepath.Join(snapDir, "snapshot.bin"), restored, env.pool)
	require.NoError(t, err)
	require.Equal(t, uint64(2), snapSeq)

	err = ReplayFromWAL(zap.NewNop(), env.walDir, restored, env.pool, seqGen, snapSeq)
	require.NoError(t, err)

	gotBids, gotAsks := restored.Depth(0)
	require.Equal(t, wantBids, gotBids)
	require.Equal(t, wantAsks, gotAsks)
	require.Equal(t, env.svc.LastSeq(), seqGen.Current())
}

// Small segments force WAL rotations while the snapshot job is truncating;
// recovery afterwards must reproduce the live book exactly. Run with -race
// to catch unserialized access to the WAL's segment state.
func TestSnapshotJobConcurrentWithSubmits(t *testing.T) {
	walDir := t.TempDir()
	w, err := entrywal.Open(entrywal.Config{Dir: walDir, SegmentSize: 512})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	ob, err := exitwal.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = ob.Close() })

	pool := memory.NewPool(func() *orderbook.Order { return &orderbook.Order{} })
	ring := memory.NewRetireRing(1 << 10)
	book := orderbook.NewOrderBook(ring)
	seqGen := sequence.New(0)
	svc := NewOrderService(zap.NewNop(), book, pool, ring, snapshot.NewReader(), seqGen, w, ob)

	snapDir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	svc.StartSnapshotJob(ctx, snapDir, 2*time.Millisecond)

	id := uint64(1)
	for batch := 0; batch < 20; batch++ {
		for i := 0; i < 25; i++ {
			_, err := svc.Submit(id, orderbook.Bid, orderbook.Limit, int64(id), 1)
			require.NoError(t, err)
			id++
		}
		time.Sleep(3 * time.Millisecond)
	}
	cancel()
	time.Sleep(10 * time.Millisecond)
	_ = svc.Snapshot() // serialize with any in-flight snapshot tick
	require.NoError(t, w.Sync())

	wantBids, _ := book.Depth(0)

	restored := orderbook.NewOrderBook(nil)
	snapSeq, err := snapshot.Load(filepath.Join(snapDir, "snapshot.bin"), restored, pool)
	require.NoError(t, err)
	require.NoError(t, ReplayFromWAL(zap.NewNop(), walDir, restored, pool, sequence.New(0), snapSeq))

	gotBids, _ := restored.Depth(0)
	require.Equal(t, wantBids, gotBids)
	require.Equal(t, book.LiveOrders(), restored.LiveOrders())
}

func TestAdvanceEpochReclaims(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Submit(1, orderbook.Bid, orderbook.Limit, 100, 5)
	require.NoError(t, err)
	_, err = env.svc.Submit(2, orderbook.Ask, orderbook.Limit, 100, 5) // both retire
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		env.svc.AdvanceEpoch()
		views := env.svc.Snapshot()
		return len(views) == 0
	}, time.Second, 10*time.Millisecond)
}
