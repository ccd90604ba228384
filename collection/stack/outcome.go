package stack

import (
	"github.com/boundedstack/stackutils/commonerrors"
)

// Outcome is the result code of a stack operation, for callers which prefer branching on codes rather than on errors.
//
//go:generate go run github.com/dmarkham/enumer -type=Outcome -text -json -yaml -trimprefix=Outcome -transform=snake
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeOutOfMemory
	OutcomeStackFull
	OutcomeStackEmpty
	OutcomeStackElementTooLarge
	OutcomeUndefined
	OutcomeUnknown
)

// OutcomeOf converts the error returned by a stack operation into its outcome.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case commonerrors.Any(err, commonerrors.ErrOutOfMemory):
		return OutcomeOutOfMemory
	case commonerrors.Any(err, commonerrors.ErrFull):
		return OutcomeStackFull
	case commonerrors.Any(err, commonerrors.ErrEmpty):
		return OutcomeStackEmpty
	case commonerrors.Any(err, commonerrors.ErrTooLarge):
		return OutcomeStackElementTooLarge
	case commonerrors.Any(err, commonerrors.ErrUndefined):
		return OutcomeUndefined
	default:
		return OutcomeUnknown
	}
}

// Err returns the error corresponding to the outcome, nil on success.
func (i Outcome) Err() error {
	switch i {
	case OutcomeSuccess:
		return nil
	case OutcomeOutOfMemory:
		return ErrOutOfMemory
	case OutcomeStackFull:
		return ErrStackFull
	case OutcomeStackEmpty:
		return ErrStackEmpty
	case OutcomeStackElementTooLarge:
		return ErrElementTooLarge
	case OutcomeUndefined:
		return commonerrors.ErrUndefined
	default:
		return commonerrors.ErrUnknown
	}
}

// IsLogicalFailure states whether the outcome is a caller-induced failure.
func (i Outcome) IsLogicalFailure() bool {
	return i == OutcomeStackFull || i == OutcomeStackEmpty || i == OutcomeStackElementTooLarge
}

// IsResourceFailure states whether the outcome is an allocation failure.
func (i Outcome) IsResourceFailure() bool {
	return i == OutcomeOutOfMemory
}
