package entry

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Record payloads are protobuf-encoded by hand with protowire: two tiny
// messages do not justify a generated package, but the encoding must stay
// readable by standard protobuf tooling.
//
//	PlacePayload:  id=1 side=2 type=3 price=4(sint64) qty=5(sint64)
//	CancelPayload: id=1

var ErrBadPayload = errors.New("wal: malformed record payload")

type PlacePayload struct {
	ID    uint64
	Side  int32
	Type  int32
	Price int64
	Qty   int64
}

type CancelPayload struct {
	ID uint64
}

func EncodePlace(p PlacePayload) []byte {
	b := make([]byte, 0, 40)
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, p.ID)
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(p.Side))
	b = protowire.AppendTag(b, 3, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(p.Type))
	b = protowire.AppendTag(b, 4, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(p.Price))
	b = protowire.AppendTag(b, 5, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(p.Qty))
	return b
}

func DecodePlace(b []byte) (PlacePayload, error) {
	var p PlacePayload
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return p, ErrBadPayload
		}
		b = b[n:]
		if typ != protowire.VarintType {
			return p, ErrBadPayload
		}
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return p, ErrBadPayload
		}
		b = b[n:]

		switch num {
		case 1:
			p.ID = v
		case 2:
			p.Side = int32(v)
		case 3:
			p.Type = int32(v)
		case 4:
			p.Price = protowire.DecodeZigZag(v)
		case 5:
			p.Qty = protowire.DecodeZigZag(v)
		}
	}
	return p, nil
}

func EncodeCancel(c CancelPayload) []byte {
	b := make([]byte, 0, 12)
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, c.ID)
	return b
}

func DecodeCancel(b []byte) (CancelPayload, error) {
	var c CancelPayload
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 || typ != protowire.VarintType {
			return c, ErrBadPayload
		}
		b = b[n:]
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return c, ErrBadPayload
		}
		b = b[n:]
		if num == 1 {
			c.ID = v
		}
	}
	return c, nil
}
