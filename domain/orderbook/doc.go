// Package orderbook implements the in-memory matching core: two red-black
// trees of price levels (bids and asks), a FIFO queue of resting orders per
// level, and an id-keyed index for O(1) cancel. Matching follows strict
// price-time priority and every trade executes at the resting order's price.
//
// The package is single-writer by contract. Callers serialize submissions
// into one total order before they reach the book; the book itself holds no
// locks and every operation is a bounded synchronous computation.
package orderbook
