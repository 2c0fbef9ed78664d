// Package memory provides the allocation side of the engine: a typed order
// pool, a retire ring for objects leaving the book, and an epoch scheme that
// delays reuse until no snapshot reader can still hold a reference.
package memory
