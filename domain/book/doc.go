// Package book implements the in-memory order book for a single
// instrument. It keeps resting orders in per-side price levels with
// strict time priority inside a level, tracks hidden iceberg volume,
// and reveals the next slice of an iceberg only once the visible
// slice is gone.
//
// The book is a single-writer structure: one mutating call at a time,
// no internal locking. Callers that need concurrent submission must
// serialize access themselves (see the service package).
package book
