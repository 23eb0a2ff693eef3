package queue

import (
	"fmt"
	"iter"
)

// Ring is a bounded circular FIFO queue.
type Ring[T any] struct {
	buf   []T
	front int // slot of the oldest element
	back  int // slot of the newest element
	count int
}

// New creates a Ring holding at most capacity elements.
// Capacity below 1 is raised to 1.
func New[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{
		buf:  make([]T, capacity),
		back: capacity - 1,
	}
}

// Len returns the number of queued elements.
func (r *Ring[T]) Len() int {
	return r.count
}

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// IsEmpty reports whether the queue holds no elements.
func (r *Ring[T]) IsEmpty() bool {
	return r.count == 0
}

// IsFull reports whether the queue is at capacity.
func (r *Ring[T]) IsFull() bool {
	return r.count == len(r.buf)
}

// Enqueue appends v at the back.
// Returns ErrFull without modifying the queue if it is at capacity.
func (r *Ring[T]) Enqueue(v T) error {
	if r.IsFull() {
		return ErrFull
	}
	r.back = (r.back + 1) % len(r.buf)
	r.buf[r.back] = v
	r.count++
	return nil
}

// Dequeue removes and returns the front element.
// Returns the zero value and ErrEmpty if the queue is empty.
func (r *Ring[T]) Dequeue() (T, error) {
	var zero T
	if r.IsEmpty() {
		return zero, ErrEmpty
	}
	v := r.buf[r.front]
	r.buf[r.front] = zero
	r.front = (r.front + 1) % len(r.buf)
	r.count--
	return v, nil
}

// Peek returns the front element without removing it.
func (r *Ring[T]) Peek() (T, error) {
	if r.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	return r.buf[r.front], nil
}

// At returns the element i positions behind the front.
func (r *Ring[T]) At(i int) (T, error) {
	slot, err := r.slot(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return r.buf[slot], nil
}

// Set replaces the element i positions behind the front.
// The count and ordering of the other elements are unchanged.
func (r *Ring[T]) Set(i int, v T) error {
	slot, err := r.slot(i)
	if err != nil {
		return err
	}
	r.buf[slot] = v
	return nil
}

func (r *Ring[T]) slot(i int) (int, error) {
	if i < 0 || i >= r.count {
		return 0, fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, i, r.count)
	}
	return (r.front + i) % len(r.buf), nil
}

// All yields the queued elements front to back without consuming them.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < r.count; i++ {
			if !yield(r.buf[(r.front+i)%len(r.buf)]) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the queued elements in FIFO order.
func (r *Ring[T]) Snapshot() []T {
	out := make([]T, r.count)
	for i := 0; i < r.count; i++ {
		out[i] = r.buf[(r.front+i)%len(r.buf)]
	}
	return out
}
