/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the error kinds shared by all packages of this module.
package commonerrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrUndefined      = errors.New("undefined")
	ErrInvalid        = errors.New("invalid")
	ErrUnexpected     = errors.New("unexpected")
	ErrUnknown        = errors.New("unknown")
	ErrNotFound       = errors.New("not found")
	ErrUnsupported    = errors.New("unsupported")
	ErrCondition      = errors.New("failed condition")
	ErrMarshalling    = errors.New("unserialisable")
	ErrEmpty          = errors.New("empty")
	ErrFull           = errors.New("full")
	ErrTooLarge       = errors.New("too large")
	ErrOutOfMemory    = errors.New("out of memory")
)

var commonErrors = []error{
	ErrNotImplemented,
	ErrUndefined,
	ErrInvalid,
	ErrUnexpected,
	ErrUnknown,
	ErrNotFound,
	ErrUnsupported,
	ErrCondition,
	ErrMarshalling,
	ErrEmpty,
	ErrFull,
	ErrTooLarge,
	ErrOutOfMemory,
}

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error is of none of the types of the errors `err`
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// IsCommonError returns whether an error is a commonerror
func IsCommonError(target error) bool {
	return Any(target, commonErrors...)
}

// CorrespondTo determines whether a `target` error corresponds to a specific error described by `description`
// It will check whether the error contains the string in its description.
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for i := range description {
		if strings.Contains(desc, strings.ToLower(description[i])) {
			return true
		}
	}
	return false
}

// Ignore will return nil if the target error matches one of the errors to ignore
func Ignore(target error, ignore ...error) error {
	if Any(target, ignore...) {
		return nil
	}
	return target
}

// New creates a new error of type `errorType` with a `message`.
func New(errorType error, message string) error {
	if errorType == nil {
		return errors.New(message)
	}
	if message == "" {
		return errorType
	}
	return fmt.Errorf("%w: %v", errorType, message)
}

// Newf is similar to New but allows for formatting.
func Newf(errorType error, format string, args ...any) error {
	return New(errorType, fmt.Sprintf(format, args...))
}

// WrapError wraps an error `originalError` into a commonerror of type `targetError` and adds a `message`.
// If `originalError` is nil, nil is returned.
func WrapError(targetError, originalError error, message string) error {
	if originalError == nil {
		return nil
	}
	if targetError == nil {
		targetError = ErrUnknown
	}
	if message == "" {
		return fmt.Errorf("%w: %w", targetError, originalError)
	}
	return fmt.Errorf("%w: %v: %w", targetError, message, originalError)
}

// WrapErrorf is similar to WrapError but allows for formatting.
func WrapErrorf(targetError, originalError error, format string, args ...any) error {
	return WrapError(targetError, originalError, fmt.Sprintf(format, args...))
}

// UndefinedVariable returns an undefined error for the variable described by `variableName`
func UndefinedVariable(variableName string) error {
	return Newf(ErrUndefined, "undefined variable '%v'", variableName)
}
