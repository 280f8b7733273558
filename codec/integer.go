package codec

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Integer is the identity codec for integer types. Unsigned values above
// math.MaxInt64 are outside its domain.
type Integer[T constraints.Integer] struct{}

var (
	// Int is the codec for plain int ranges.
	Int = Integer[int]{}

	// Int64 is the codec for int64 ranges.
	Int64 = Integer[int64]{}

	// Float64 is the codec for float64 ranges with whole-number resolution.
	Float64 = Float[float64]{}
)

// Encode returns value as an int64.
func (Integer[T]) Encode(value T) int64 {
	return int64(value)
}

// Decode converts key back to T.
func (Integer[T]) Decode(key int64) T {
	return T(key)
}

// Normalize returns value unchanged.
func (Integer[T]) Normalize(value T) T {
	return value
}

// Float stores floating point values truncated toward zero, so every range
// bound is a whole number and adjacency works in steps of one. NaN, the
// infinities and values whose whole part does not fit in an int64 are outside
// its domain.
type Float[T constraints.Float] struct{}

// Encode returns the whole part of value.
func (Float[T]) Encode(value T) int64 {
	return int64(math.Trunc(float64(value)))
}

// Decode converts key back to T.
func (Float[T]) Decode(key int64) T {
	return T(key)
}

// Normalize truncates value toward zero.
func (Float[T]) Normalize(value T) T {
	return T(math.Trunc(float64(value)))
}
