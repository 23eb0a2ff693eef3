// Package exchange swaps pieces in place between the upcoming queue and the
// reserve stack. Neither container changes size.
package exchange

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientPieces is returned when either side lacks the pieces a
	// swap needs.
	ErrInsufficientPieces = errors.New("exchange: insufficient pieces")

	// ErrInvalidBatch is returned for a batch size below 1.
	ErrInvalidBatch = errors.New("exchange: invalid batch size")
)

// DefaultBatch is the number of pieces SwapBatch exchanges in the classic game.
const DefaultBatch = 3

// Slots is positional access into a container. Position 0 is the element the
// container would hand out next: the queue front or the stack top.
type Slots[T any] interface {
	Len() int
	At(i int) (T, error)
	Set(i int, v T) error
}

// SwapFront exchanges the queue front with the stack top.
func SwapFront[T any](q, s Slots[T]) error {
	if q.Len() == 0 || s.Len() == 0 {
		return fmt.Errorf("%w: queue has %d, stack has %d", ErrInsufficientPieces, q.Len(), s.Len())
	}
	return swap(q, s, 0)
}

// SwapBatch exchanges the first k queue pieces with the top k stack pieces,
// pairing queue position i with stack depth i. Nothing moves unless both
// sides hold at least k pieces.
func SwapBatch[T any](q, s Slots[T], k int) error {
	if k < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidBatch, k)
	}
	if q.Len() < k || s.Len() < k {
		return fmt.Errorf("%w: need %d on each side, queue has %d, stack has %d",
			ErrInsufficientPieces, k, q.Len(), s.Len())
	}
	for i := 0; i < k; i++ {
		if err := swap(q, s, i); err != nil {
			return err
		}
	}
	return nil
}

func swap[T any](q, s Slots[T], i int) error {
	a, err := q.At(i)
	if err != nil {
		return err
	}
	b, err := s.At(i)
	if err != nil {
		return err
	}
	if err := q.Set(i, b); err != nil {
		return err
	}
	return s.Set(i, a)
}
