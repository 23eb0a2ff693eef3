// Package inventory holds one player's pieces: the upcoming queue, the
// reserve stack, and the generator that refills the queue.
//
// Every removal returns piece.None together with the error when it fails.
package inventory

import (
	"fmt"
	"iter"

	"github.com/EstruturaDados/tetris-paulooricardfs/internal/exchange"
	"github.com/EstruturaDados/tetris-paulooricardfs/internal/piece"
	"github.com/EstruturaDados/tetris-paulooricardfs/internal/queue"
	"github.com/EstruturaDados/tetris-paulooricardfs/internal/stack"
)

// Options sizes the containers.
type Options struct {
	QueueCapacity   int
	ReserveCapacity int
	BatchSize       int
}

// DefaultOptions matches the classic game: 5 upcoming, 3 reserved, swap 3.
func DefaultOptions() Options {
	return Options{
		QueueCapacity:   5,
		ReserveCapacity: 3,
		BatchSize:       exchange.DefaultBatch,
	}
}

// Inventory is not safe for concurrent use.
type Inventory struct {
	upcoming *queue.Ring[piece.Piece]
	reserve  *stack.Stack[piece.Piece]
	gen      *piece.Generator
	batch    int
}

// New creates an empty inventory. Call Fill for the initial queue.
func New(opts Options, gen *piece.Generator) *Inventory {
	if gen == nil {
		gen = piece.NewGenerator(nil)
	}
	batch := opts.BatchSize
	if batch < 1 {
		batch = exchange.DefaultBatch
	}
	return &Inventory{
		upcoming: queue.New[piece.Piece](opts.QueueCapacity),
		reserve:  stack.New[piece.Piece](opts.ReserveCapacity),
		gen:      gen,
		batch:    batch,
	}
}

// Fill enqueues generated pieces until the queue is full and returns how
// many were added.
func (inv *Inventory) Fill() int {
	n := 0
	for !inv.upcoming.IsFull() {
		_ = inv.upcoming.Enqueue(inv.gen.Next())
		n++
	}
	return n
}

// Play removes the front piece from the queue.
func (inv *Inventory) Play() (piece.Piece, error) {
	p, err := inv.upcoming.Dequeue()
	if err != nil {
		return piece.None, fmt.Errorf("play: %w", err)
	}
	return p, nil
}

// PlayAndRefill plays the front piece and enqueues a fresh one behind the
// rest of the queue.
func (inv *Inventory) PlayAndRefill() (piece.Piece, error) {
	p, err := inv.Play()
	if err != nil {
		return p, err
	}
	inv.refill()
	return p, nil
}

// Insert generates a piece and enqueues it. No piece is minted when the
// queue is full.
func (inv *Inventory) Insert() (piece.Piece, error) {
	if inv.upcoming.IsFull() {
		return piece.None, fmt.Errorf("insert: %w", queue.ErrFull)
	}
	p := inv.gen.Next()
	if err := inv.upcoming.Enqueue(p); err != nil {
		return piece.None, fmt.Errorf("insert: %w", err)
	}
	return p, nil
}

// Reserve moves the front piece onto the reserve stack and refills the
// queue. Both preconditions are checked before anything moves, so a failed
// reserve never drops a piece.
func (inv *Inventory) Reserve() (piece.Piece, error) {
	if inv.reserve.IsFull() {
		return piece.None, fmt.Errorf("reserve: %w", stack.ErrFull)
	}
	if inv.upcoming.IsEmpty() {
		return piece.None, fmt.Errorf("reserve: %w", queue.ErrEmpty)
	}
	p, err := inv.upcoming.Dequeue()
	if err != nil {
		return piece.None, fmt.Errorf("reserve: %w", err)
	}
	if err := inv.reserve.Push(p); err != nil {
		return piece.None, fmt.Errorf("reserve: %w", err)
	}
	inv.refill()
	return p, nil
}

// UseReserved pops the top of the reserve stack.
func (inv *Inventory) UseReserved() (piece.Piece, error) {
	p, err := inv.reserve.Pop()
	if err != nil {
		return piece.None, fmt.Errorf("use reserved: %w", err)
	}
	return p, nil
}

// SwapFront exchanges the queue front with the reserve top.
func (inv *Inventory) SwapFront() error {
	if err := exchange.SwapFront(inv.upcoming, inv.reserve); err != nil {
		return fmt.Errorf("swap front: %w", err)
	}
	return nil
}

// SwapBatch exchanges the first BatchSize queue pieces with the top
// BatchSize reserved pieces.
func (inv *Inventory) SwapBatch() error {
	if err := exchange.SwapBatch(inv.upcoming, inv.reserve, inv.batch); err != nil {
		return fmt.Errorf("swap batch: %w", err)
	}
	return nil
}

// BatchSize returns the number of pieces SwapBatch moves.
func (inv *Inventory) BatchSize() int { return inv.batch }

// Upcoming yields the queue front to back.
func (inv *Inventory) Upcoming() iter.Seq[piece.Piece] { return inv.upcoming.All() }

// Reserved yields the reserve top to base.
func (inv *Inventory) Reserved() iter.Seq[piece.Piece] { return inv.reserve.All() }

// Snapshot is a copy of both containers.
type Snapshot struct {
	Upcoming []piece.Piece
	Reserved []piece.Piece
}

// Snapshot copies the current state.
func (inv *Inventory) Snapshot() Snapshot {
	return Snapshot{
		Upcoming: inv.upcoming.Snapshot(),
		Reserved: inv.reserve.Snapshot(),
	}
}

// Issued returns how many pieces the generator has minted.
func (inv *Inventory) Issued() int { return inv.gen.Issued() }

// refill tops the queue up by one piece. The queue only drops below
// capacity between a removal and this call.
func (inv *Inventory) refill() {
	if inv.upcoming.IsFull() {
		return
	}
	_ = inv.upcoming.Enqueue(inv.gen.Next())
}
