package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"matchbook/snapshot"
)

// StartSnapshotJob periodically writes a book snapshot, then truncates the
// entry WAL segments the snapshot covers and garbage-collects acked outbox
// records. Runs until ctx is cancelled.
func (s *OrderService) StartSnapshotJob(
	ctx context.Context,
	dir string,
	interval time.Duration,
) {
	w := &snapshot.Writer{Dir: dir}
	log := s.log.Named("snapshot")

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
			if ctx.Err() != nil {
				return
			}

			// Truncation walks and removes WAL segments, so it must not
			// run concurrently with an Append rotating to a new segment.
			// s.mu serializes it with Submit.
			s.mu.Lock()
			seq := s.seqGen.Current()
			err := w.Write(seq, s.book)
			if err == nil {
				if terr := s.entryWAL.TruncateBefore(seq); terr != nil {
					log.Warn("wal truncate failed", zap.Error(terr))
				}
			}
			s.mu.Unlock()
			if err != nil {
				log.Error("snapshot write failed", zap.Error(err))
				continue
			}

			if err := s.outbox.TruncateAckedUpTo(^uint64(0)); err != nil {
				log.Warn("outbox gc failed", zap.Error(err))
			}
			log.Debug("snapshot written", zap.Uint64("seq", seq))
		}
	}()
}
