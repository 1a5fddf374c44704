// Package sequence provides monotonic number generation for orders
// submitted without a caller-assigned id.
package sequence

import "sync/atomic"

// Sequencer hands out strictly monotonic sequence numbers. Safe for
// concurrent use.
type Sequencer struct {
	next atomic.Uint64
}

// New creates a sequencer that issues numbers starting from start+1.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next returns the next sequence number.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued sequence number.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}
