// Package queue provides the bounded circular queue that holds upcoming pieces.
//
// Ring is a fixed-capacity FIFO over a ring of slots addressed by a front
// index, a back index and a count. It never grows: Enqueue on a full ring
// fails with ErrFull and leaves the contents untouched.
//
// # Positional access
//
// At and Set address elements by logical position from the front, so
// position 0 is always the next element Dequeue would return. Exchange
// operations use them to swap pieces in place without changing the count.
//
// Ring is not safe for concurrent use.
package queue

import "errors"

var (
	// ErrEmpty is returned when removing from an empty queue.
	ErrEmpty = errors.New("queue: empty")

	// ErrFull is returned when inserting into a full queue.
	ErrFull = errors.New("queue: full")

	// ErrOutOfRange is returned for positions outside [0, Len()).
	ErrOutOfRange = errors.New("queue: position out of range")
)
