package grpcserver

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "matchbook/api/pb"
	"matchbook/domain/orderbook"
	"matchbook/service"
)

// Server adapts OrderService to gRPC.
type Server struct {
	pb.UnimplementedOrderAPIServer
	svc *service.OrderService
	log *zap.Logger
}

func NewServer(log *zap.Logger, svc *service.OrderService) *Server {
	return &Server{svc: svc, log: log.Named("grpc")}
}

// -------------------- Commands --------------------

func (s *Server) SubmitOrder(
	ctx context.Context,
	req *pb.SubmitOrderRequest,
) (*pb.SubmitOrderResponse, error) {
	side, err := toSide(req.Side)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	otype, err := toType(req.Type)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	conf, err := s.svc.Submit(req.OrderId, side, otype, req.Price, req.Qty)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &pb.SubmitOrderResponse{
		Disposition: conf.Disposition.String(),
		Seq:         conf.Seq,
		Remaining:   conf.Remaining,
		Fills:       make([]*pb.Fill, 0, len(conf.Trades)),
	}
	for _, t := range conf.Trades {
		resp.Fills = append(resp.Fills, &pb.Fill{
			Price:    t.Price,
			Qty:      t.Qty,
			MakerId:  t.MakerID,
			TradeSeq: t.Seq,
		})
	}
	return resp, nil
}

func (s *Server) CancelOrder(
	ctx context.Context,
	req *pb.CancelOrderRequest,
) (*pb.CancelOrderResponse, error) {
	res, err := s.svc.Cancel(req.OrderId)
	if err != nil {
		s.log.Error("cancel failed", zap.Uint64("order_id", req.OrderId), zap.Error(err))
		return nil, status.Error(codes.Internal, "cancel failed")
	}
	return &pb.CancelOrderResponse{Result: res.String()}, nil
}

// -------------------- Queries --------------------

func (s *Server) BestQuotes(
	ctx context.Context,
	req *pb.BestQuotesRequest,
) (*pb.BestQuotesResponse, error) {
	bid, bidOK, ask, askOK := s.svc.BestQuotes()
	return &pb.BestQuotesResponse{
		HasBid: bidOK,
		Bid:    bid,
		HasAsk: askOK,
		Ask:    ask,
	}, nil
}

func (s *Server) GetDepth(
	ctx context.Context,
	req *pb.DepthRequest,
) (*pb.DepthResponse, error) {
	max := int(req.MaxLevels)
	if max <= 0 {
		max = 10
	}

	bids, asks := s.svc.Depth(max)
	return &pb.DepthResponse{
		Bids: toLevels(bids),
		Asks: toLevels(asks),
	}, nil
}

// -------------------- Converters --------------------

func toLevels(in []orderbook.LevelDepth) []*pb.DepthLevel {
	out := make([]*pb.DepthLevel, 0, len(in))
	for _, l := range in {
		out = append(out, &pb.DepthLevel{
			Price:  l.Price,
			Volume: l.Volume,
			Orders: int32(l.Orders),
		})
	}
	return out
}

func toSide(s pb.Side) (orderbook.Side, error) {
	switch s {
	case pb.Side_SIDE_BID:
		return orderbook.Bid, nil
	case pb.Side_SIDE_ASK:
		return orderbook.Ask, nil
	default:
		return 0, errors.Errorf("unknown side %d", s)
	}
}

func toType(t pb.OrderType) (orderbook.OrderType, error) {
	switch t {
	case pb.OrderType_ORDER_TYPE_LIMIT:
		return orderbook.Limit, nil
	case pb.OrderType_ORDER_TYPE_MARKET:
		return orderbook.Market, nil
	case pb.OrderType_ORDER_TYPE_IOC:
		return orderbook.IOC, nil
	case pb.OrderType_ORDER_TYPE_FOK:
		return orderbook.FOK, nil
	case pb.OrderType_ORDER_TYPE_POST_ONLY:
		return orderbook.PostOnly, nil
	default:
		return 0, errors.Errorf("unknown order type %d", t)
	}
}

func toStatus(err error) error {
	switch errors.Cause(err) {
	case orderbook.ErrInvalidQuantity, orderbook.ErrInvalidPrice:
		return status.Error(codes.InvalidArgument, err.Error())
	case orderbook.ErrDuplicateOrderID:
		return status.Error(codes.AlreadyExists, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
