// Package stack provides a fixed-capacity Last-In-First-Out (LIFO) container for floating-point operands.
//
// The buffer is allocated once at construction and never grows. Every access is bounds checked:
// pushing onto a full stack yields ErrOverflow and reading from an empty one yields ErrUnderflow,
// in both cases leaving the stack untouched.
package stack

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the number of operands a stack holds when no explicit capacity is requested.
const DefaultCapacity = 20

var (
	// ErrOverflow is returned when a value is pushed onto a full stack.
	ErrOverflow = errors.New("stack overflow")

	// ErrUnderflow is returned when a value is popped or peeked from an empty stack.
	ErrUnderflow = errors.New("stack underflow")
)

// Stack is a bounded LIFO container backed by a contiguous buffer.
// The zero value is an empty stack of DefaultCapacity whose buffer is allocated on the first Push.
// It is not safe for concurrent use.
type Stack struct {
	buffer []float64
	length int // values stored; buffer[length-1] is the top
}

// New returns an empty stack holding at most capacity values.
// A non-positive capacity selects DefaultCapacity.
func New(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Stack{buffer: make([]float64, capacity)}
}

// Default returns an empty stack of DefaultCapacity.
func Default() *Stack {
	return New(DefaultCapacity)
}

// Restore rebuilds a stack from values ordered bottom to top.
func Restore(capacity int, values []float64) (*Stack, error) {
	s := New(capacity)
	if len(values) > s.Cap() {
		return nil, fmt.Errorf("restore %d values into capacity %d: %w", len(values), s.Cap(), ErrOverflow)
	}

	s.length = copy(s.buffer, values)
	return s, nil
}

// Push stores value on top of the stack.
func (s *Stack) Push(value float64) error {
	if s.IsFull() {
		return ErrOverflow
	}

	if s.buffer == nil {
		s.buffer = make([]float64, DefaultCapacity)
	}

	s.buffer[s.length] = value
	s.length++
	return nil
}

// Pop removes and returns the topmost value.
func (s *Stack) Pop() (float64, error) {
	if s.IsEmpty() {
		return 0, ErrUnderflow
	}

	s.length--
	return s.buffer[s.length], nil
}

// Peek returns the topmost value without removing it.
func (s *Stack) Peek() (float64, error) {
	if s.IsEmpty() {
		return 0, ErrUnderflow
	}

	return s.buffer[s.length-1], nil
}

// IsFull reports whether another Push would overflow.
func (s *Stack) IsFull() bool {
	return s.length == s.Cap()
}

// IsEmpty reports whether the stack holds no values.
func (s *Stack) IsEmpty() bool {
	return s.length == 0
}

// Len returns the number of values currently stored.
func (s *Stack) Len() int {
	return s.length
}

// Cap returns the fixed capacity chosen at construction.
func (s *Stack) Cap() int {
	if s.buffer == nil {
		return DefaultCapacity
	}
	return len(s.buffer)
}

// Top returns the index of the topmost value, or -1 when the stack is empty.
func (s *Stack) Top() int {
	return s.length - 1
}

// Clear discards every stored value. The buffer is kept.
func (s *Stack) Clear() {
	s.length = 0
}

// Values returns a copy of the stored values ordered bottom to top.
func (s *Stack) Values() []float64 {
	values := make([]float64, s.length)
	copy(values, s.buffer[:s.length])
	return values
}
