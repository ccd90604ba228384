package stack

import "io"

// IBoundedStack specifies the queries and the lifecycle common to all bounded stacks.
// Stacks are last-in, first-out (LIFO) collections whose storage grows and shrinks within the bounds of a CapacityPolicy.
// They are not safe for concurrent use.
type IBoundedStack interface {
	io.Closer
	// Size returns the number of elements in the stack.
	Size() int
	// IsEmpty states whether the stack holds no element.
	IsEmpty() bool
	// IsFull states whether the stack reached its maximum capacity.
	IsFull() bool
	// Capacity returns the number of slots currently allocated.
	Capacity() int
	// Destroy releases the stack and every element it still owns. The stack cannot be used afterwards.
	Destroy()
}

// IStack is a bounded stack of values.
type IStack[T any] interface {
	IBoundedStack
	// Push adds a value on top of the stack.
	Push(value T) error
	// Pop removes and returns the value on top of the stack.
	Pop() (T, error)
}

// IStringStack is a bounded stack owning copies of the strings pushed onto it.
type IStringStack interface {
	IBoundedStack
	// Push adds a copy of s on top of the stack.
	Push(s string) error
	// PushBytes adds a copy of b on top of the stack.
	PushBytes(b []byte) error
	// Pop removes the string on top of the stack and hands its ownership over to the caller.
	Pop() (*OwnedString, error)
	// PopString removes the string on top of the stack and returns its value.
	PopString() (string, error)
}
