package stack

import (
	"github.com/boundedstack/stackutils/commonerrors"
)

var _ IStack[int] = &Stack[int]{}

// Stack is a bounded stack of values of type T, stored in contiguous storage.
// A nil or destroyed Stack behaves like an empty stack and refuses pushes.
type Stack[T any] struct {
	buf *buffer[T]
}

// NewStack creates an empty stack. It fails if the options are invalid or the initial storage cannot be allocated.
func NewStack[T any](opts ...StackOption) (*Stack[T], error) {
	options := WithOptions(opts...)
	err := options.Validate()
	if err != nil {
		return nil, err
	}
	buf, err := newBuffer[T](options)
	if err != nil {
		return nil, err
	}
	return &Stack[T]{buf: buf}, nil
}

func (s *Stack[T]) storage() *buffer[T] {
	if s == nil || s.buf == nil || s.buf.released() {
		return nil
	}
	return s.buf
}

func (s *Stack[T]) Size() int {
	if b := s.storage(); b != nil {
		return b.size
	}
	return 0
}

func (s *Stack[T]) IsEmpty() bool {
	return s.Size() == 0
}

func (s *Stack[T]) IsFull() bool {
	if b := s.storage(); b != nil {
		return b.isFull()
	}
	return false
}

func (s *Stack[T]) Capacity() int {
	if b := s.storage(); b != nil {
		return b.capacity()
	}
	return 0
}

// Push adds value on top of the stack.
// It returns ErrOverflow if the stack is full and ErrOutOfMemory if the storage could not grow. The stack is unchanged in both cases.
func (s *Stack[T]) Push(value T) error {
	b := s.storage()
	if b == nil {
		return commonerrors.UndefinedVariable("stack")
	}
	if b.isFull() {
		return ErrOverflow
	}
	err := b.ensureRoom()
	if err != nil {
		if commonerrors.Any(err, ErrStackFull) {
			return ErrOverflow
		}
		return err
	}
	b.push(value)
	return nil
}

// Pop removes and returns the value on top of the stack, or ErrUnderflow if the stack is empty.
func (s *Stack[T]) Pop() (value T, err error) {
	b := s.storage()
	if b == nil {
		err = ErrUnderflow
		return
	}
	value, ok := b.pop()
	if !ok {
		err = ErrUnderflow
	}
	return
}

func (s *Stack[T]) Destroy() {
	if b := s.storage(); b != nil {
		b.release()
	}
}

func (s *Stack[T]) Close() error {
	s.Destroy()
	return nil
}
