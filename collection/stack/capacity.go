package stack

import (
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/boundedstack/stackutils/commonerrors"
)

const (
	DefaultInitialCapacity = 16
	DefaultMinCapacity     = 16
	DefaultMaxCapacity     = 32768
	// DefaultMaxElementByteSize bounds the length of string elements: only strings strictly shorter are accepted.
	DefaultMaxElementByteSize = 1024

	maxCapacityCeiling = math.MaxInt32
)

// CapacityPolicy decides when and how the storage of a stack is resized.
// Storage doubles when full and halves once utilisation drops below a quarter, always within [Min, Max].
type CapacityPolicy struct {
	// Initial is the capacity of a newly created stack.
	Initial int `mapstructure:"initial"`
	// Min is the capacity below which storage never shrinks.
	Min int `mapstructure:"min"`
	// Max is the capacity above which storage never grows. It is also the maximum number of elements.
	Max int `mapstructure:"max"`
}

// DefaultCapacityPolicy returns the policy of stacks created without options.
func DefaultCapacityPolicy() CapacityPolicy {
	return CapacityPolicy{
		Initial: DefaultInitialCapacity,
		Min:     DefaultMinCapacity,
		Max:     DefaultMaxCapacity,
	}
}

// Validate checks that 1 <= Min <= Initial <= Max.
func (p CapacityPolicy) Validate() error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.Min, validation.Required, validation.Min(1)),
		validation.Field(&p.Max, validation.Required, validation.Min(p.Min), validation.Max(maxCapacityCeiling)),
		validation.Field(&p.Initial, validation.Required, validation.Min(p.Min), validation.Max(p.Max)),
	)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid capacity policy")
	}
	return nil
}

// Clamp brings capacity within [Min, Max].
func (p CapacityPolicy) Clamp(capacity int) int {
	return max(p.Min, min(capacity, p.Max))
}

// Grow proposes the capacity to use when storage of the given capacity is full.
// ok is false when capacity already reached Max, in which case the stack is full.
func (p CapacityPolicy) Grow(capacity int) (newCapacity int, ok bool) {
	if capacity >= p.Max {
		return capacity, false
	}
	return p.Clamp(capacity * 2), true
}

// Shrink proposes a smaller capacity after a pop left size elements in storage of the given capacity.
// ok is false when no shrinking should happen.
func (p CapacityPolicy) Shrink(capacity, size int) (newCapacity int, ok bool) {
	if capacity <= p.Min || size*4 >= capacity {
		return capacity, false
	}
	newCapacity = p.Clamp(capacity / 2)
	return newCapacity, newCapacity != capacity
}
