// Package broadcaster drains the trade outbox to Kafka. Records move
// NEW -> SENT -> ACKED; anything not ACKED is re-sent after a restart,
// so downstream consumers must deduplicate on trade seq.
package broadcaster

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	exitwal "matchbook/infra/wal/exit"
)

type Broadcaster struct {
	outbox   *exitwal.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
	log      *zap.Logger
}

// TradeEvent is the wire form of one execution.
type TradeEvent struct {
	V       int    `json:"v"`
	Type    string `json:"type"`
	Seq     uint64 `json:"seq"`
	Price   int64  `json:"price"`
	Qty     int64  `json:"qty"`
	TakerID uint64 `json:"taker_id"`
	MakerID uint64 `json:"maker_id"`
}

func New(
	log *zap.Logger,
	outbox *exitwal.Outbox,
	brokers []string,
	topic string,
	interval time.Duration,
) (*Broadcaster, error) {

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	if interval <= 0 {
		interval = 250 * time.Millisecond
	}

	return &Broadcaster{
		outbox:   outbox,
		producer: producer,
		topic:    topic,
		interval: interval,
		log:      log.Named("broadcaster"),
	}, nil
}

func (b *Broadcaster) Start(ctx context.Context) {
	b.log.Info("started", zap.String("topic", b.topic))

	go func() {
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case <-ticker.C:
				b.drainOnce()
			}
		}
	}()
}

func (b *Broadcaster) drainOnce() {
	err := b.outbox.ScanPending(func(rec exitwal.TradeRecord) error {
		if err := b.outbox.MarkSent(rec.Seq); err != nil {
			return err
		}

		payload, err := json.Marshal(TradeEvent{
			V:       1,
			Type:    "trade",
			Seq:     rec.Seq,
			Price:   rec.Price,
			Qty:     rec.Qty,
			TakerID: rec.TakerID,
			MakerID: rec.MakerID,
		})
		if err != nil {
			return err
		}

		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Value: sarama.ByteEncoder(payload),
		}
		if _, _, err := b.producer.SendMessage(msg); err != nil {
			// stays SENT, picked up on the next tick
			b.log.Warn("publish failed", zap.Uint64("seq", rec.Seq), zap.Error(err))
			return nil
		}

		return b.outbox.MarkAcked(rec.Seq)
	})
	if err != nil {
		b.log.Error("outbox scan failed", zap.Error(err))
	}
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
