// Package config loads the server configuration from a TOML file.
package config

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

type Config struct {
	Server     ServerConfig     `toml:"server"`
	WAL        WALConfig        `toml:"wal"`
	Snapshot   SnapshotConfig   `toml:"snapshot"`
	Kafka      KafkaConfig      `toml:"kafka"`
	MarketData MarketDataConfig `toml:"marketdata"`
	Log        LogConfig        `toml:"log"`
}

type ServerConfig struct {
	ListenAddr string `toml:"listen_addr"`
}

type WALConfig struct {
	Dir         string `toml:"dir"`
	SegmentSize int64  `toml:"segment_size"`
	OutboxDir   string `toml:"outbox_dir"`
}

type SnapshotConfig struct {
	Dir      string   `toml:"dir"`
	Interval Duration `toml:"interval"`
}

type KafkaConfig struct {
	Enabled       bool     `toml:"enabled"`
	Brokers       []string `toml:"brokers"`
	TradeTopic    string   `toml:"trade_topic"`
	DrainInterval Duration `toml:"drain_interval"`
}

type MarketDataConfig struct {
	Enabled  bool     `toml:"enabled"`
	Topic    string   `toml:"topic"`
	Levels   int      `toml:"levels"`
	Interval Duration `toml:"interval"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Duration lets interval fields be written as "5s" or "2m" in the file.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns a runnable local configuration. A config file overrides
// whatever fields it sets.
func Default() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr: ":9090",
		},
		WAL: WALConfig{
			Dir:         "data/wal",
			SegmentSize: 64 << 20,
			OutboxDir:   "data/outbox",
		},
		Snapshot: SnapshotConfig{
			Dir:      "data/snapshots",
			Interval: Duration{30 * time.Second},
		},
		Kafka: KafkaConfig{
			Enabled:       false,
			Brokers:       []string{"localhost:9092"},
			TradeTopic:    "trades",
			DrainInterval: Duration{250 * time.Millisecond},
		},
		MarketData: MarketDataConfig{
			Enabled:  false,
			Topic:    "marketdata",
			Levels:   10,
			Interval: Duration{time.Second},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults
// unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: decode %s", path)
	}
	return cfg, nil
}
