package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"matchbook/domain/orderbook"
)

type Writer struct {
	Dir string
}

// Write persists the current book state. Levels are walked best-first and
// orders head-first, so the entry order in the file is the priority order.
func (w *Writer) Write(seq uint64, book *orderbook.OrderBook) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return errors.Wrap(err, "snapshot: create dir")
	}

	path := filepath.Join(w.Dir, "snapshot.bin")
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	s := Snapshot{
		Seq:      seq,
		TradeSeq: book.TradeSeq(),
		Created:  time.Now(),
		Orders:   make([]OrderEntry, 0, 1024),
	}

	appendLevel := func(lvl *orderbook.PriceLevel) {
		for o := lvl.Head(); o != nil; o = o.Next() {
			if o.Status != orderbook.Active {
				continue
			}
			s.Orders = append(s.Orders, OrderEntry{
				ID:    o.ID,
				Seq:   o.Seq,
				Side:  int(o.Side),
				Type:  int(o.Type),
				Price: o.Price,
				Qty:   o.Remaining(),
			})
		}
	}

	book.BidsWalk(appendLevel)
	book.AsksWalk(appendLevel)

	if err := gob.NewEncoder(f).Encode(&s); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return errors.Wrap(err, "snapshot: encode")
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
