package orderbook

type Side int
type OrderType int
type Status int

const (
	Bid Side = iota
	Ask
)

func (s Side) String() string {
	if s == Ask {
		return "ASK"
	}
	return "BID"
}

// Opposite returns the side an incoming order matches against.
func (s Side) Opposite() Side {
	if s == Bid {
		return Ask
	}
	return Bid
}

const (
	Limit OrderType = iota
	Market
	IOC
	FOK
	PostOnly
)

const (
	Active Status = iota
	Inactive
)

// Order is a pure domain entity. Price is in integer ticks, Qty is the
// quantity submitted, Filled grows as the order trades. An order is live
// while it rests in a price level; once fully filled, killed, or cancelled
// it is Inactive and must never be reached through the book again.
type Order struct {
	ID     uint64
	Price  int64
	Qty    int64
	Filled int64
	Seq    uint64

	Side   Side
	Type   OrderType
	Status Status

	// set while resting, cleared on unlink
	level *PriceLevel
	next  *Order
	prev  *Order
}

func (o *Order) Remaining() int64 {
	return o.Qty - o.Filled
}

// Reset clears the order for pool reuse.
func (o *Order) Reset() { *o = Order{} }

// Read-only traversal helper for snapshot walks.
func (o *Order) Next() *Order {
	return o.next
}
