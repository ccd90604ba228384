// Package safecast provides conversions between numeric types which saturate instead of overflowing.
package safecast

// ISignedInteger is an alias for all signed integers: int, int8, int16, int32, and int64 types.
type ISignedInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// IUnsignedInteger is an alias for all unsigned integers: uint, uint8, uint16, uint32, and uint64 types.
type IUnsignedInteger interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IInteger is an alias for all unsigned and signed integers.
type IInteger interface {
	ISignedInteger | IUnsignedInteger
}
