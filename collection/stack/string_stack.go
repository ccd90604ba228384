package stack

import (
	"github.com/dustin/go-humanize"

	"github.com/boundedstack/stackutils/commonerrors"
	"github.com/boundedstack/stackutils/safecast"
)

var (
	_ IStringStack  = &StringStack{}
	_ IBoundedStack = &StringStack{}
)

// OwnedString is a string copied into memory accounted by a stack's allocator.
// Whoever holds it owns it: the stack while it is stored, the caller once popped. The owner must Release it.
type OwnedString struct {
	data     []byte
	alloc    IAllocator
	released bool
}

// String returns the value of the string. It is empty once released.
func (o *OwnedString) String() string {
	if o == nil || o.released {
		return ""
	}
	return string(o.data)
}

// Bytes returns the owned bytes. They must not be used after Release.
func (o *OwnedString) Bytes() []byte {
	if o == nil || o.released {
		return nil
	}
	return o.data
}

func (o *OwnedString) Len() int {
	if o == nil || o.released {
		return 0
	}
	return len(o.data)
}

func (o *OwnedString) IsReleased() bool {
	return o == nil || o.released
}

// Release gives the memory of the string back. Releasing more than once has no effect.
func (o *OwnedString) Release() {
	if o.IsReleased() {
		return
	}
	o.released = true
	size := len(o.data)
	clear(o.data)
	o.data = nil
	if o.alloc != nil {
		o.alloc.Free(size)
	}
}

// StringStack is a bounded stack of strings. It stores its own copy of every string pushed.
// A nil or destroyed StringStack behaves like an empty stack and refuses pushes.
type StringStack struct {
	buf                *buffer[*OwnedString]
	maxElementByteSize int
	alloc              IAllocator
}

// NewStringStack creates an empty string stack. It fails if the options are invalid or the initial storage cannot be allocated.
func NewStringStack(opts ...StackOption) (*StringStack, error) {
	options := WithOptions(opts...)
	err := options.Validate()
	if err != nil {
		return nil, err
	}
	buf, err := newBuffer[*OwnedString](options)
	if err != nil {
		return nil, err
	}
	return &StringStack{
		buf:                buf,
		maxElementByteSize: options.maxElementByteSize,
		alloc:              options.allocator,
	}, nil
}

func (s *StringStack) storage() *buffer[*OwnedString] {
	if s == nil || s.buf == nil || s.buf.released() {
		return nil
	}
	return s.buf
}

func (s *StringStack) Size() int {
	if b := s.storage(); b != nil {
		return b.size
	}
	return 0
}

func (s *StringStack) IsEmpty() bool {
	return s.Size() == 0
}

func (s *StringStack) IsFull() bool {
	if b := s.storage(); b != nil {
		return b.isFull()
	}
	return false
}

func (s *StringStack) Capacity() int {
	if b := s.storage(); b != nil {
		return b.capacity()
	}
	return 0
}

// MaxElementByteSize returns the exclusive upper bound of the byte length of elements.
func (s *StringStack) MaxElementByteSize() int {
	if s.storage() == nil {
		return 0
	}
	return s.maxElementByteSize
}

// Push stores a copy of value on top of the stack.
// It returns ErrStackFull if the stack is full, ErrElementTooLarge if value is not shorter than the maximum element size
// and ErrOutOfMemory if either the storage or the copy could not be allocated. The size of the stack is unchanged on failure.
func (s *StringStack) Push(value string) error {
	return s.store(len(value), func(dst []byte) { copy(dst, value) })
}

// PushBytes stores a copy of value on top of the stack. Later changes to value do not affect the stack.
// A nil slice is stored as an empty string.
func (s *StringStack) PushBytes(value []byte) error {
	return s.store(len(value), func(dst []byte) { copy(dst, value) })
}

func (s *StringStack) store(length int, fill func([]byte)) error {
	b := s.storage()
	if b == nil {
		return commonerrors.UndefinedVariable("string stack")
	}
	if b.isFull() {
		return ErrStackFull
	}
	if length >= s.maxElementByteSize {
		return commonerrors.Newf(ErrElementTooLarge, "element of %v is not smaller than %v",
			humanize.IBytes(safecast.ToUint64(length)), humanize.IBytes(safecast.ToUint64(s.maxElementByteSize)))
	}
	err := b.ensureRoom()
	if err != nil {
		return err
	}
	err = s.alloc.Allocate(length)
	if err != nil {
		return commonerrors.WrapErrorf(ErrOutOfMemory, err, "could not copy element of %v", humanize.IBytes(safecast.ToUint64(length)))
	}
	element := &OwnedString{data: make([]byte, length), alloc: s.alloc}
	fill(element.data)
	b.push(element)
	return nil
}

// Pop removes the string on top of the stack and transfers its ownership to the caller, who must Release it.
// It returns ErrStackEmpty if the stack holds no element.
func (s *StringStack) Pop() (*OwnedString, error) {
	b := s.storage()
	if b == nil {
		return nil, ErrStackEmpty
	}
	element, ok := b.pop()
	if !ok {
		return nil, ErrStackEmpty
	}
	return element, nil
}

// PopString removes the string on top of the stack and returns its value. The stack's copy is released.
func (s *StringStack) PopString() (string, error) {
	element, err := s.Pop()
	if err != nil {
		return "", err
	}
	value := element.String()
	element.Release()
	return value, nil
}

// Destroy releases every string still stored and then the storage.
func (s *StringStack) Destroy() {
	b := s.storage()
	if b == nil {
		return
	}
	b.live(func(element *OwnedString) { element.Release() })
	b.release()
}

func (s *StringStack) Close() error {
	s.Destroy()
	return nil
}
