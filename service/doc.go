// Package service coordinates the engine: it is the single write entry
// point that ties the order book to sequencing, the entry WAL, the exit
// outbox, snapshots, and memory reclamation. Nothing below this layer does
// I/O; nothing above it touches the book.
package service
