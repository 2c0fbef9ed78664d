package entry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAppendAndReplay(t *testing.T) {
	dir := t.TempDir()

	w, err := Open(Config{Dir: dir, SegmentSize: 1 << 20})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}

	const n = 100
	for i := uint64(1); i <= n; i++ {
		payload := EncodePlace(PlacePayload{ID: i, Side: 0, Type: 0, Price: 100, Qty: 5})
		if err := w.Append(NewRecord(RecordPlace, i, payload)); err != nil {
			t.Fatalf("append: %v", err)
		}
		if i%20 == 0 {
			_ = w.Sync()
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	count := 0
	lastSeq, err := Replay(dir, func(rec *Record) error {
		if rec.Type != RecordPlace {
			t.Fatalf("unexpected record type: %v", rec.Type)
		}
		p, err := DecodePlace(rec.Data)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if p.ID != rec.Seq {
			t.Fatalf("payload id %d != seq %d", p.ID, rec.Seq)
		}
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if count != n || lastSeq != n {
		t.Fatalf("replayed %d records lastSeq=%d, want %d/%d", count, lastSeq, n, n)
	}
}

func TestRotationAndResume(t *testing.T) {
	dir := t.TempDir()

	// tiny segments force rotation every few records
	w, err := Open(Config{Dir: dir, SegmentSize: 128})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}
	for i := uint64(1); i <= 20; i++ {
		if err := w.Append(NewRecord(RecordCancel, i, EncodeCancel(CancelPayload{ID: i}))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	_ = w.Close()

	files, _ := os.ReadDir(dir)
	if len(files) < 2 {
		t.Fatalf("expected multiple segments, found %d", len(files))
	}

	// reopen resumes the highest segment and keeps seq continuity
	w2, err := Open(Config{Dir: dir, SegmentSize: 128})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if err := w2.Append(NewRecord(RecordCancel, 21, EncodeCancel(CancelPayload{ID: 21}))); err != nil {
		t.Fatalf("append after reopen: %v", err)
	}
	_ = w2.Close()

	lastSeq, err := Replay(dir, func(*Record) error { return nil })
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if lastSeq != 21 {
		t.Fatalf("lastSeq = %d, want 21", lastSeq)
	}
}

func TestTruncateBefore(t *testing.T) {
	dir := t.TempDir()

	w, err := Open(Config{Dir: dir, SegmentSize: 128})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}
	for i := uint64(1); i <= 30; i++ {
		if err := w.Append(NewRecord(RecordPlace, i, EncodePlace(PlacePayload{ID: i, Price: 1, Qty: 1}))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	before, _ := os.ReadDir(dir)
	if err := w.TruncateBefore(30); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	after, _ := os.ReadDir(dir)
	if len(after) >= len(before) {
		t.Fatalf("truncate removed nothing: %d -> %d segments", len(before), len(after))
	}
	_ = w.Close()

	// the surviving tail must still replay cleanly
	if _, err := Replay(dir, func(*Record) error { return nil }); err != nil {
		t.Fatalf("replay after truncate: %v", err)
	}
}

func TestReopenAfterTruncate(t *testing.T) {
	dir := t.TempDir()

	w, err := Open(Config{Dir: dir, SegmentSize: 128})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}
	for i := uint64(1); i <= 30; i++ {
		_ = w.Append(NewRecord(RecordPlace, i, EncodePlace(PlacePayload{ID: i, Price: 1, Qty: 1})))
	}
	if err := w.TruncateBefore(30); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	_ = w.Close()

	// reopen must resume the highest surviving index, not restart the
	// numbering, or replay order would break
	w2, err := Open(Config{Dir: dir, SegmentSize: 128})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	for i := uint64(31); i <= 40; i++ {
		if err := w2.Append(NewRecord(RecordPlace, i, EncodePlace(PlacePayload{ID: i, Price: 1, Qty: 1}))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	_ = w2.Close()

	lastSeq, err := Replay(dir, func(*Record) error { return nil })
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if lastSeq != 40 {
		t.Fatalf("lastSeq = %d, want 40", lastSeq)
	}
}

func TestTornTailStopsReplay(t *testing.T) {
	dir := t.TempDir()

	w, err := Open(Config{Dir: dir, SegmentSize: 1 << 20})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}
	for i := uint64(1); i <= 10; i++ {
		if err := w.Append(NewRecord(RecordPlace, i, EncodePlace(PlacePayload{ID: i, Price: 1, Qty: 1}))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	_ = w.Close()

	// chop a few bytes off the last record to simulate a crash mid-write
	path := filepath.Join(dir, segmentName(0))
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if err := os.Truncate(path, info.Size()-3); err != nil {
		t.Fatalf("truncate file: %v", err)
	}

	count := 0
	lastSeq, err := Replay(dir, func(*Record) error {
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if count != 9 || lastSeq != 9 {
		t.Fatalf("replayed %d lastSeq=%d, want 9/9", count, lastSeq)
	}
}

func TestCorruptRecordStopsReplay(t *testing.T) {
	dir := t.TempDir()

	w, err := Open(Config{Dir: dir, SegmentSize: 1 << 20})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}
	for i := uint64(1); i <= 5; i++ {
		if err := w.Append(NewRecord(RecordPlace, i, EncodePlace(PlacePayload{ID: i, Price: 1, Qty: 1}))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	_ = w.Close()

	// flip one payload byte in the last record
	path := filepath.Join(dir, segmentName(0))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	data[len(data)-6] ^= 0xff
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	count := 0
	if _, err := Replay(dir, func(*Record) error { count++; return nil }); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if count != 4 {
		t.Fatalf("replayed %d records past corruption, want 4", count)
	}
}

func TestNonMonotonicSeqRejected(t *testing.T) {
	dir := t.TempDir()

	w, err := Open(Config{Dir: dir, SegmentSize: 1 << 20})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}
	_ = w.Append(NewRecord(RecordPlace, 5, EncodePlace(PlacePayload{ID: 1, Price: 1, Qty: 1})))
	_ = w.Append(NewRecord(RecordPlace, 3, EncodePlace(PlacePayload{ID: 2, Price: 1, Qty: 1})))
	_ = w.Close()

	if _, err := Replay(dir, func(*Record) error { return nil }); err == nil {
		t.Fatal("expected error for sequence regression")
	}
}
