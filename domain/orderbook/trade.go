package orderbook

import "github.com/pkg/errors"

// Rejection reasons. Validation runs strictly before any index mutation, so
// a rejected submit leaves the book untouched.
var (
	ErrInvalidQuantity  = errors.New("orderbook: quantity must be positive")
	ErrInvalidPrice     = errors.New("orderbook: price must be positive")
	ErrDuplicateOrderID = errors.New("orderbook: order id already live")
)

// Trade is one execution between an incoming (taker) order and a resting
// (maker) order. Price is always the maker's price.
type Trade struct {
	Price   int64
	Qty     int64
	TakerID uint64
	MakerID uint64
	Seq     uint64
}

// Disposition describes what happened to the incoming order.
type Disposition int

const (
	// Rested: no fill, the full quantity is now resting.
	Rested Disposition = iota
	// Filled: the incoming order traded completely and never entered the book.
	Filled
	// PartialRested: traded partially, remainder is resting (Limit only).
	PartialRested
	// PartialKilled: traded partially, remainder discarded (Market/IOC).
	PartialKilled
	// Killed: nothing traded and nothing rested (IOC/FOK/PostOnly/Market).
	Killed
)

func (d Disposition) String() string {
	switch d {
	case Rested:
		return "RESTED"
	case Filled:
		return "FILLED"
	case PartialRested:
		return "PARTIAL_RESTED"
	case PartialKilled:
		return "PARTIAL_KILLED"
	case Killed:
		return "KILLED"
	default:
		return "UNKNOWN"
	}
}

// Confirmation is the full report for one submit.
type Confirmation struct {
	OrderID     uint64
	Seq         uint64
	Disposition Disposition
	Remaining   int64
	Trades      []Trade
}

// CancelResult distinguishes a removed order from an unknown id. Cancelling
// an unknown or already-removed id is not an error.
type CancelResult int

const (
	Removed CancelResult = iota
	NotFound
)

func (r CancelResult) String() string {
	if r == Removed {
		return "REMOVED"
	}
	return "NOT_FOUND"
}

// LevelDepth is one (price, volume) row of a depth snapshot.
type LevelDepth struct {
	Price  int64
	Volume int64
	Orders int
}
