// Package orderkey provides Key, an integer-or-infinity ordering surrogate.
//
// A Key is what a range compares, never the domain value itself. Finite keys
// carry an int64; the two infinite keys mark an unbounded side of a range and
// sort before (negative infinity) or after (positive infinity) every finite key.
// Infinite keys never take part in successor/predecessor arithmetic.
package orderkey

import (
	"math"
	"strconv"

	"github.com/amp-labs/amp-ranges/sortable"
)

type kind int8

const (
	negInf kind = iota - 1
	finite
	posInf
)

// Key is an immutable ordering key. The zero Key is the finite key 0.
type Key struct {
	kind  kind
	value int64
}

// Compile-time check that Key implements Sortable[Key].
var _ sortable.Sortable[Key] = Key{}

// NegInf returns the key that sorts before every other key.
func NegInf() Key {
	return Key{kind: negInf}
}

// PosInf returns the key that sorts after every other key.
func PosInf() Key {
	return Key{kind: posInf}
}

// Of returns the finite key n.
func Of(n int64) Key {
	return Key{kind: finite, value: n}
}

// IsFinite reports whether the key holds an integer.
func (k Key) IsFinite() bool {
	return k.kind == finite
}

// IsNegInf reports whether the key is negative infinity.
func (k Key) IsNegInf() bool {
	return k.kind == negInf
}

// IsPosInf reports whether the key is positive infinity.
func (k Key) IsPosInf() bool {
	return k.kind == posInf
}

// Int64 returns the integer held by a finite key. The boolean is false for
// infinite keys.
func (k Key) Int64() (int64, bool) {
	return k.value, k.kind == finite
}

// Compare returns -1, 0 or 1 depending on whether k sorts before, equal to,
// or after other.
func (k Key) Compare(other Key) int {
	switch {
	case k.kind < other.kind:
		return -1
	case k.kind > other.kind:
		return 1
	case k.kind != finite:
		return 0
	case k.value < other.value:
		return -1
	case k.value > other.value:
		return 1
	default:
		return 0
	}
}

// Equals reports whether both keys are the same infinity or the same integer.
func (k Key) Equals(other Key) bool {
	return k.Compare(other) == 0
}

// LessThan reports whether k sorts strictly before other.
func (k Key) LessThan(other Key) bool {
	return k.Compare(other) < 0
}

// Succ returns the key one unit after k. It reports false for infinite keys
// and when k is the largest representable integer.
func (k Key) Succ() (Key, bool) {
	if k.kind != finite || k.value == math.MaxInt64 {
		return Key{}, false
	}

	return Of(k.value + 1), true
}

// Pred returns the key one unit before k. It reports false for infinite keys
// and when k is the smallest representable integer.
func (k Key) Pred() (Key, bool) {
	if k.kind != finite || k.value == math.MinInt64 {
		return Key{}, false
	}

	return Of(k.value - 1), true
}

// Min returns whichever of a and b sorts first, preferring a on ties.
func Min(a, b Key) Key {
	if b.LessThan(a) {
		return b
	}

	return a
}

// Max returns whichever of a and b sorts last, preferring a on ties.
func Max(a, b Key) Key {
	if a.LessThan(b) {
		return b
	}

	return a
}

func (k Key) String() string {
	switch k.kind {
	case negInf:
		return "-inf"
	case posInf:
		return "+inf"
	default:
		return strconv.FormatInt(k.value, 10)
	}
}
