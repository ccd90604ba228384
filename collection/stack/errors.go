package stack

import (
	"github.com/boundedstack/stackutils/commonerrors"
)

var (
	// ErrStackEmpty is returned when popping from a stack holding no element.
	ErrStackEmpty = commonerrors.New(commonerrors.ErrEmpty, "stack is empty")
	// ErrStackFull is returned when pushing onto a stack whose size reached the maximum capacity.
	ErrStackFull = commonerrors.New(commonerrors.ErrFull, "stack has reached maximum capacity")
	// ErrElementTooLarge is returned when a string element is not shorter than the maximum element byte size.
	ErrElementTooLarge = commonerrors.New(commonerrors.ErrTooLarge, "stack element is too large")
	// ErrOutOfMemory is returned when storage or an element copy could not be allocated.
	ErrOutOfMemory = commonerrors.ErrOutOfMemory
	// ErrOverflow is the full-stack signal of the value stack.
	ErrOverflow = commonerrors.New(ErrStackFull, "overflow")
	// ErrUnderflow is the empty-stack signal of the value stack.
	ErrUnderflow = commonerrors.New(ErrStackEmpty, "cannot pop from empty stack")
)

// IsLogicalFailure states whether err is a failure induced by the caller's usage (empty pop, full push, oversized element).
// Such failures never alter the stack.
func IsLogicalFailure(err error) bool {
	if err == nil {
		return false
	}
	return commonerrors.Any(err, commonerrors.ErrEmpty, commonerrors.ErrFull, commonerrors.ErrTooLarge)
}

// IsResourceFailure states whether err is the result of an allocation failure.
func IsResourceFailure(err error) bool {
	if err == nil {
		return false
	}
	return commonerrors.Any(err, commonerrors.ErrOutOfMemory)
}
