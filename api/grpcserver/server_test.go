package grpcserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "matchbook/api/pb"
	"matchbook/domain/orderbook"
	"matchbook/infra/memory"
	"matchbook/infra/sequence"
	entrywal "matchbook/infra/wal/entry"
	exitwal "matchbook/infra/wal/exit"
	"matchbook/service"
	"matchbook/snapshot"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	w, err := entrywal.Open(entrywal.Config{Dir: t.TempDir(), SegmentSize: 1 << 20})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	ob, err := exitwal.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = ob.Close() })

	pool := memory.NewPool(func() *orderbook.Order { return &orderbook.Order{} })
	ring := memory.NewRetireRing(1 << 10)
	book := orderbook.NewOrderBook(ring)
	svc := service.NewOrderService(
		zap.NewNop(), book, pool, ring, snapshot.NewReader(), sequence.New(0), w, ob)
	return NewServer(zap.NewNop(), svc)
}

func TestSubmitOrderRejectsUnknownEnums(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	_, err := srv.SubmitOrder(ctx, &pb.SubmitOrderRequest{
		OrderId: 1, Side: pb.Side(9), Type: pb.OrderType_ORDER_TYPE_LIMIT, Price: 100, Qty: 5,
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = srv.SubmitOrder(ctx, &pb.SubmitOrderRequest{
		OrderId: 1, Side: pb.Side_SIDE_BID, Type: pb.OrderType(9), Price: 100, Qty: 5,
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	// neither request touched the book
	quotes, err := srv.BestQuotes(ctx, &pb.BestQuotesRequest{})
	require.NoError(t, err)
	require.False(t, quotes.HasBid)
	require.False(t, quotes.HasAsk)
}

func TestSubmitOrderErrorCodes(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	_, err := srv.SubmitOrder(ctx, &pb.SubmitOrderRequest{
		OrderId: 1, Side: pb.Side_SIDE_BID, Type: pb.OrderType_ORDER_TYPE_LIMIT, Price: 100, Qty: 0,
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = srv.SubmitOrder(ctx, &pb.SubmitOrderRequest{
		OrderId: 1, Side: pb.Side_SIDE_BID, Type: pb.OrderType_ORDER_TYPE_LIMIT, Price: 100, Qty: 5,
	})
	require.NoError(t, err)
	_, err = srv.SubmitOrder(ctx, &pb.SubmitOrderRequest{
		OrderId: 1, Side: pb.Side_SIDE_ASK, Type: pb.OrderType_ORDER_TYPE_LIMIT, Price: 200, Qty: 5,
	})
	require.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestKilledOrderReportsFullRemaining(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	_, err := srv.SubmitOrder(ctx, &pb.SubmitOrderRequest{
		OrderId: 1, Side: pb.Side_SIDE_ASK, Type: pb.OrderType_ORDER_TYPE_LIMIT, Price: 100, Qty: 3,
	})
	require.NoError(t, err)

	resp, err := srv.SubmitOrder(ctx, &pb.SubmitOrderRequest{
		OrderId: 2, Side: pb.Side_SIDE_BID, Type: pb.OrderType_ORDER_TYPE_FOK, Price: 100, Qty: 5,
	})
	require.NoError(t, err)
	require.Equal(t, "KILLED", resp.Disposition)
	require.Equal(t, int64(5), resp.Remaining)
	require.Empty(t, resp.Fills)

	resp, err = srv.SubmitOrder(ctx, &pb.SubmitOrderRequest{
		OrderId: 3, Side: pb.Side_SIDE_BID, Type: pb.OrderType_ORDER_TYPE_POST_ONLY, Price: 100, Qty: 7,
	})
	require.NoError(t, err)
	require.Equal(t, "KILLED", resp.Disposition)
	require.Equal(t, int64(7), resp.Remaining)
}
