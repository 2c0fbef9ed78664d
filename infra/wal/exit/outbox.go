package exit

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/pkg/errors"
)

// The outbox holds every trade the engine has produced but not yet proven
// delivered downstream. It survives restarts, so the broadcaster can resume
// exactly where it stopped: NEW -> SENT -> ACKED, then garbage-collected.

type State uint8

const (
	StateNew State = iota
	StateSent
	StateAcked
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	default:
		return "UNKNOWN"
	}
}

// TradeRecord is one executed trade plus its delivery state.
type TradeRecord struct {
	Seq     uint64
	Price   int64
	Qty     int64
	TakerID uint64
	MakerID uint64

	State       State
	Retries     uint32
	LastAttempt int64
}

// binary encoding: [state:1][retries:4][lastAttempt:8][price:8][qty:8][taker:8][maker:8]
const recordLen = 1 + 4 + 8 + 8 + 8 + 8 + 8

func encodeRecord(r TradeRecord) []byte {
	buf := make([]byte, recordLen)
	buf[0] = byte(r.State)
	binary.BigEndian.PutUint32(buf[1:5], r.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(r.LastAttempt))
	binary.BigEndian.PutUint64(buf[13:21], uint64(r.Price))
	binary.BigEndian.PutUint64(buf[21:29], uint64(r.Qty))
	binary.BigEndian.PutUint64(buf[29:37], r.TakerID)
	binary.BigEndian.PutUint64(buf[37:45], r.MakerID)
	return buf
}

func decodeRecord(seq uint64, b []byte) (TradeRecord, error) {
	if len(b) != recordLen {
		return TradeRecord{}, errors.New("exit: invalid record length")
	}
	return TradeRecord{
		Seq:         seq,
		State:       State(b[0]),
		Retries:     binary.BigEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[5:13])),
		Price:       int64(binary.BigEndian.Uint64(b[13:21])),
		Qty:         int64(binary.BigEndian.Uint64(b[21:29])),
		TakerID:     binary.BigEndian.Uint64(b[29:37]),
		MakerID:     binary.BigEndian.Uint64(b[37:45]),
	}, nil
}

type Outbox struct {
	db *pebble.DB
}

func Open(dir string) (*Outbox, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // the whole point is durability
	})
	if err != nil {
		return nil, errors.Wrap(err, "exit: open pebble")
	}
	return &Outbox{db: db}, nil
}

func (o *Outbox) Close() error {
	return o.db.Close()
}

// PutNew records a freshly executed trade. Called by the order service in
// the same logical step that produced the trade.
func (o *Outbox) PutNew(t TradeRecord) error {
	t.State = StateNew
	t.Retries = 0
	t.LastAttempt = 0
	return o.db.Set(keyFor(t.Seq), encodeRecord(t), pebble.Sync)
}

// MarkSent bumps the record to SENT and counts the attempt.
func (o *Outbox) MarkSent(seq uint64) error {
	return o.transition(seq, StateSent)
}

// MarkAcked marks the record delivered; it becomes eligible for GC.
func (o *Outbox) MarkAcked(seq uint64) error {
	return o.transition(seq, StateAcked)
}

func (o *Outbox) transition(seq uint64, to State) error {
	rec, err := o.Get(seq)
	if err != nil {
		return err
	}
	rec.State = to
	if to == StateSent {
		rec.Retries++
	}
	rec.LastAttempt = time.Now().UnixNano()
	return o.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync)
}

func (o *Outbox) Get(seq uint64) (TradeRecord, error) {
	val, closer, err := o.db.Get(keyFor(seq))
	if err != nil {
		return TradeRecord{}, err
	}
	defer closer.Close()

	return decodeRecord(seq, val)
}

// ScanPending iterates every record not yet ACKED, in seq order. SENT
// records are included: a crash between send and ack must lead to a resend,
// never a loss.
func (o *Outbox) ScanPending(fn func(TradeRecord) error) error {
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("trade/"),
		UpperBound: []byte("trade/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		rec, err := decodeRecord(seq, iter.Value())
		if err != nil {
			return err
		}
		if rec.State == StateAcked {
			continue
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// TruncateAckedUpTo deletes ACKED records with seq <= bound. Called by the
// snapshot job.
func (o *Outbox) TruncateAckedUpTo(bound uint64) error {
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("trade/"),
		UpperBound: []byte("trade/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		if seq > bound {
			break
		}
		rec, err := decodeRecord(seq, iter.Value())
		if err != nil {
			return err
		}
		if rec.State != StateAcked {
			continue
		}
		if err := o.db.Delete(keyFor(seq), pebble.Sync); err != nil {
			return err
		}
	}
	return iter.Error()
}

func keyFor(seq uint64) []byte {
	return []byte(fmt.Sprintf("trade/%020d", seq))
}

func parseKey(b []byte) (uint64, error) {
	var seq uint64
	_, err := fmt.Sscanf(string(bytes.TrimPrefix(b, []byte("trade/"))), "%d", &seq)
	return seq, err
}
