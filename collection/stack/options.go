package stack

import (
	"github.com/go-logr/logr"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/boundedstack/stackutils/commonerrors"
	"github.com/boundedstack/stackutils/logs/logrimp"
)

// StackOptions gathers the settings of a stack.
type StackOptions struct {
	policy             CapacityPolicy
	maxElementByteSize int
	allocator          IAllocator
	logger             logr.Logger
	err                error
}

type StackOption func(*StackOptions) *StackOptions

// DefaultOptions returns the options of a stack created without any option.
func DefaultOptions() *StackOptions {
	return &StackOptions{
		policy:             DefaultCapacityPolicy(),
		maxElementByteSize: DefaultMaxElementByteSize,
		allocator:          NewHeapAllocator(),
		logger:             logrimp.NewNoopLogger(),
	}
}

// WithOptions applies opts on top of the default options.
func WithOptions(opts ...StackOption) *StackOptions {
	options := DefaultOptions()
	for i := range opts {
		if opts[i] == nil {
			continue
		}
		options = opts[i](options)
	}
	return options
}

// WithCapacityPolicy sets the capacity bounds of the stack.
func WithCapacityPolicy(policy CapacityPolicy) StackOption {
	return func(o *StackOptions) *StackOptions {
		o.policy = policy
		return o
	}
}

// WithMaxElementByteSize sets the exclusive upper bound of the byte length of string elements.
func WithMaxElementByteSize(size int) StackOption {
	return func(o *StackOptions) *StackOptions {
		o.maxElementByteSize = size
		return o
	}
}

// WithAllocator makes the stack account its memory through allocator. A nil allocator is ignored.
func WithAllocator(allocator IAllocator) StackOption {
	return func(o *StackOptions) *StackOptions {
		if allocator != nil {
			o.allocator = allocator
		}
		return o
	}
}

// WithLogger sets the logger the stack reports resizing to.
func WithLogger(logger logr.Logger) StackOption {
	return func(o *StackOptions) *StackOptions {
		o.logger = logger
		return o
	}
}

// WithConfiguration applies a configuration, usually obtained from LoadConfiguration.
// An invalid configuration makes stack creation fail.
func WithConfiguration(cfg *Configuration) StackOption {
	return func(o *StackOptions) *StackOptions {
		if cfg == nil {
			o.err = commonerrors.UndefinedVariable("stack configuration")
			return o
		}
		err := cfg.Validate()
		if err != nil {
			o.err = err
			return o
		}
		size, err := cfg.MaxElementByteSize()
		if err != nil {
			o.err = err
			return o
		}
		o.policy = cfg.Capacity
		o.maxElementByteSize = size
		return o
	}
}

func (o *StackOptions) Validate() error {
	if o == nil {
		return commonerrors.UndefinedVariable("stack options")
	}
	if o.err != nil {
		return o.err
	}
	if o.allocator == nil {
		return commonerrors.UndefinedVariable("allocator")
	}
	err := o.policy.Validate()
	if err != nil {
		return err
	}
	err = validation.Validate(o.maxElementByteSize, validation.Required, validation.Min(1))
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid maximum element size")
	}
	return nil
}
