// Package marketdata publishes periodic book snapshots to Kafka.
//
// Two feeds share one topic, keyed by feed name:
//
//	quote - top of book (best bid/ask)
//	depth - aggregate volume for the top price levels
package marketdata

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"matchbook/domain/orderbook"
	"matchbook/infra/kafka"
	"matchbook/service"
)

// Quote is the top-of-book feed record.
type Quote struct {
	V         int   `json:"v"`
	HasBid    bool  `json:"has_bid"`
	Bid       int64 `json:"bid"`
	HasAsk    bool  `json:"has_ask"`
	Ask       int64 `json:"ask"`
	Timestamp int64 `json:"ts"`
}

// Depth is the aggregated depth feed record.
type Depth struct {
	V         int          `json:"v"`
	Bids      []DepthLevel `json:"bids"`
	Asks      []DepthLevel `json:"asks"`
	Timestamp int64        `json:"ts"`
}

type DepthLevel struct {
	Price  int64 `json:"price"`
	Volume int64 `json:"volume"`
	Orders int   `json:"orders"`
}

type Publisher struct {
	svc      *service.OrderService
	producer *kafka.Producer
	levels   int
	interval time.Duration
	log      *zap.Logger
}

func NewPublisher(
	log *zap.Logger,
	svc *service.OrderService,
	producer *kafka.Producer,
	levels int,
	interval time.Duration,
) *Publisher {
	if levels <= 0 {
		levels = 10
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &Publisher{
		svc:      svc,
		producer: producer,
		levels:   levels,
		interval: interval,
		log:      log.Named("marketdata"),
	}
}

func (p *Publisher) Start(ctx context.Context) {
	p.log.Info("started", zap.Duration("interval", p.interval))

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case <-ticker.C:
				p.publishOnce(ctx)
			}
		}
	}()
}

func (p *Publisher) publishOnce(ctx context.Context) {
	now := time.Now().UnixNano()

	bid, bidOK, ask, askOK := p.svc.BestQuotes()
	quote, err := json.Marshal(Quote{
		V:         1,
		HasBid:    bidOK,
		Bid:       bid,
		HasAsk:    askOK,
		Ask:       ask,
		Timestamp: now,
	})
	if err == nil {
		if err := p.producer.Send(ctx, []byte("quote"), quote); err != nil {
			p.log.Warn("quote publish failed", zap.Error(err))
		}
	}

	bids, asks := p.svc.Depth(p.levels)
	depth, err := json.Marshal(Depth{
		V:         1,
		Bids:      toLevels(bids),
		Asks:      toLevels(asks),
		Timestamp: now,
	})
	if err == nil {
		if err := p.producer.Send(ctx, []byte("depth"), depth); err != nil {
			p.log.Warn("depth publish failed", zap.Error(err))
		}
	}
}

func toLevels(in []orderbook.LevelDepth) []DepthLevel {
	out := make([]DepthLevel, 0, len(in))
	for _, l := range in {
		out = append(out, DepthLevel{Price: l.Price, Volume: l.Volume, Orders: l.Orders})
	}
	return out
}
