package main

import (
	"context"
	"flag"
	"net"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"

	"matchbook/api/grpcserver"
	pb "matchbook/api/pb"
	"matchbook/config"
	"matchbook/domain/orderbook"
	"matchbook/infra/kafka"
	"matchbook/infra/memory"
	"matchbook/infra/sequence"
	entrywal "matchbook/infra/wal/entry"
	exitwal "matchbook/infra/wal/exit"
	"matchbook/jobs/broadcaster"
	"matchbook/marketdata"
	"matchbook/service"
	"matchbook/snapshot"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	log, err := buildLogger(cfg.Log.Level)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// ---------------- Durability ----------------

	entryWAL, err := entrywal.Open(entrywal.Config{
		Dir:         cfg.WAL.Dir,
		SegmentSize: cfg.WAL.SegmentSize,
	})
	if err != nil {
		log.Fatal("entry WAL init failed", zap.Error(err))
	}
	defer entryWAL.Close()

	outbox, err := exitwal.Open(cfg.WAL.OutboxDir)
	if err != nil {
		log.Fatal("outbox init failed", zap.Error(err))
	}
	defer outbox.Close()

	// ---------------- Memory ----------------

	pool := memory.NewPool(func() *orderbook.Order {
		return &orderbook.Order{}
	})
	ring := memory.NewRetireRing(1 << 18)
	reader := snapshot.NewReader()

	// ---------------- Recovery ----------------

	seqGen := sequence.New(0)
	book := orderbook.NewOrderBook(ring)

	snapPath := filepath.Join(cfg.Snapshot.Dir, "snapshot.bin")
	snapSeq, err := snapshot.Load(snapPath, book, pool)
	if err != nil {
		log.Fatal("snapshot load failed", zap.Error(err))
	}
	if snapSeq > 0 {
		log.Info("snapshot restored", zap.Uint64("seq", snapSeq))
	}

	if err := service.ReplayFromWAL(log, cfg.WAL.Dir, book, pool, seqGen, snapSeq); err != nil {
		log.Fatal("WAL replay failed", zap.Error(err))
	}

	// ---------------- Service ----------------

	svc := service.NewOrderService(
		log,
		book,
		pool,
		ring,
		reader,
		seqGen,
		entryWAL,
		outbox,
	)

	// ---------------- Background jobs ----------------

	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				svc.AdvanceEpoch()
			}
		}
	}()

	svc.StartSnapshotJob(ctx, cfg.Snapshot.Dir, cfg.Snapshot.Interval.Duration)

	if cfg.Kafka.Enabled {
		bc, err := broadcaster.New(
			log,
			outbox,
			cfg.Kafka.Brokers,
			cfg.Kafka.TradeTopic,
			cfg.Kafka.DrainInterval.Duration,
		)
		if err != nil {
			log.Fatal("broadcaster init failed", zap.Error(err))
		}
		defer bc.Close()
		bc.Start(ctx)
	}

	if cfg.MarketData.Enabled {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.MarketData.Topic)
		defer producer.Close()
		marketdata.NewPublisher(
			log,
			svc,
			producer,
			cfg.MarketData.Levels,
			cfg.MarketData.Interval.Duration,
		).Start(ctx)
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.Server.ListenAddr)
	if err != nil {
		log.Fatal("listen failed", zap.Error(err))
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterOrderAPIServer(grpcSrv, grpcserver.NewServer(log, svc))

	go func() {
		<-ctx.Done()
		grpcSrv.GracefulStop()
	}()

	log.Info("engine running", zap.String("addr", cfg.Server.ListenAddr))
	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatal("gRPC server exited", zap.Error(err))
	}
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
