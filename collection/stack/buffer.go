package stack

import (
	"unsafe"

	"github.com/go-logr/logr"

	"github.com/boundedstack/stackutils/commonerrors"
)

// buffer is the contiguous storage of a stack. Slots [0, size) are live; the others are kept zeroed.
type buffer[T any] struct {
	slots    []T
	size     int
	policy   CapacityPolicy
	alloc    IAllocator
	slotSize int
	logger   logr.Logger
}

func newBuffer[T any](opts *StackOptions) (b *buffer[T], err error) {
	var zero T
	b = &buffer[T]{
		policy:   opts.policy,
		alloc:    opts.allocator,
		slotSize: int(unsafe.Sizeof(zero)),
		logger:   opts.logger,
	}
	b.slots, err = b.allocate(opts.policy.Initial)
	if err != nil {
		b = nil
	}
	return
}

func (b *buffer[T]) allocate(capacity int) ([]T, error) {
	err := b.alloc.Allocate(capacity * b.slotSize)
	if err != nil {
		return nil, commonerrors.WrapErrorf(ErrOutOfMemory, err, "could not allocate storage for %v elements", capacity)
	}
	return make([]T, capacity), nil
}

// resize moves the live elements to storage of the given capacity. Nothing changes if the new storage cannot be allocated.
func (b *buffer[T]) resize(capacity int) error {
	capacity = b.policy.Clamp(capacity)
	previous := len(b.slots)
	if capacity == previous {
		return nil
	}
	slots, err := b.allocate(capacity)
	if err != nil {
		return err
	}
	copy(slots, b.slots[:min(b.size, capacity)])
	clear(b.slots)
	b.alloc.Free(previous * b.slotSize)
	b.slots = slots
	b.logger.V(1).Info("stack storage resized", "from", previous, "to", capacity, "size", b.size)
	return nil
}

func (b *buffer[T]) capacity() int {
	return len(b.slots)
}

func (b *buffer[T]) isFull() bool {
	return b.size >= b.policy.Max
}

func (b *buffer[T]) released() bool {
	return b.slots == nil
}

// ensureRoom grows the storage if no slot is free.
func (b *buffer[T]) ensureRoom() error {
	if b.size < len(b.slots) {
		return nil
	}
	capacity, ok := b.policy.Grow(len(b.slots))
	if !ok {
		return ErrStackFull
	}
	return b.resize(capacity)
}

func (b *buffer[T]) push(v T) {
	b.slots[b.size] = v
	b.size++
}

func (b *buffer[T]) pop() (v T, ok bool) {
	if b.size == 0 {
		return
	}
	var zero T
	b.size--
	v = b.slots[b.size]
	b.slots[b.size] = zero
	ok = true
	if capacity, shrink := b.policy.Shrink(len(b.slots), b.size); shrink {
		// The stack remains valid at its current capacity.
		if err := b.resize(capacity); err != nil {
			b.logger.V(1).Info("stack storage could not be shrunk", "reason", err.Error(), "capacity", len(b.slots), "size", b.size)
		}
	}
	return
}

// live iterates over the live elements, from the top of the stack.
func (b *buffer[T]) live(do func(T)) {
	for i := b.size - 1; i >= 0; i-- {
		do(b.slots[i])
	}
}

func (b *buffer[T]) release() {
	if b.released() {
		return
	}
	capacity := len(b.slots)
	clear(b.slots)
	b.slots = nil
	b.size = 0
	b.alloc.Free(capacity * b.slotSize)
	b.logger.V(1).Info("stack storage released", "capacity", capacity)
}
