// Package entry implements the intent log. Commands are framed with a CRC
// and appended to size-rotated segments before they touch the book; replay
// rebuilds the book deterministically after a restart, and segments fully
// covered by a snapshot are truncated.
package entry
