// Package stack provides the bounded LIFO that holds reserved pieces.
package stack

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrEmpty is returned when popping an empty stack.
	ErrEmpty = errors.New("stack: empty")

	// ErrFull is returned when pushing onto a full stack.
	ErrFull = errors.New("stack: full")

	// ErrOutOfRange is returned for depths outside [0, Len()).
	ErrOutOfRange = errors.New("stack: depth out of range")
)

// Stack is a fixed-capacity LIFO. The top index is -1 when empty.
//
// Not safe for concurrent use.
type Stack[T any] struct {
	buf []T
	top int
}

// New creates a Stack holding at most capacity elements.
// Capacity below 1 is raised to 1.
func New[T any](capacity int) *Stack[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Stack[T]{
		buf: make([]T, capacity),
		top: -1,
	}
}

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int { return s.top + 1 }

// Cap returns the fixed capacity.
func (s *Stack[T]) Cap() int { return len(s.buf) }

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return s.top == -1 }

// IsFull reports whether the stack is at capacity.
func (s *Stack[T]) IsFull() bool { return s.top == len(s.buf)-1 }

// Push places v on top.
// Returns ErrFull without modifying the stack if it is at capacity.
func (s *Stack[T]) Push(v T) error {
	if s.IsFull() {
		return ErrFull
	}
	s.top++
	s.buf[s.top] = v
	return nil
}

// Pop removes and returns the top element.
// Returns the zero value and ErrEmpty if the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, ErrEmpty
	}
	v := s.buf[s.top]
	s.buf[s.top] = zero
	s.top--
	return v, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	return s.buf[s.top], nil
}

// At returns the element depth positions below the top; depth 0 is the top.
func (s *Stack[T]) At(depth int) (T, error) {
	slot, err := s.slot(depth)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.buf[slot], nil
}

// Set replaces the element depth positions below the top.
func (s *Stack[T]) Set(depth int, v T) error {
	slot, err := s.slot(depth)
	if err != nil {
		return err
	}
	s.buf[slot] = v
	return nil
}

func (s *Stack[T]) slot(depth int) (int, error) {
	if depth < 0 || depth > s.top {
		return 0, fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, depth, s.Len())
	}
	return s.top - depth, nil
}

// All yields the elements from the top down to the base without popping.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.top; i >= 0; i-- {
			if !yield(s.buf[i]) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the elements, top first.
func (s *Stack[T]) Snapshot() []T {
	out := make([]T, 0, s.Len())
	for i := s.top; i >= 0; i-- {
		out = append(out, s.buf[i])
	}
	return out
}
