// Package codec maps domain values onto the integer order keys that ranges compare.
//
// A Codec must be strictly monotonic (a < b implies Encode(a) < Encode(b)) and
// Decode must invert Encode for every key Encode can produce. Normalize
// canonicalizes a value before it is stored, for example by truncating it to the
// codec's resolution, and must be idempotent.
//
// The codec attached to a range is also its kind: collections only accept ranges
// whose codecs are the same kind (see SameKind).
package codec

import "reflect"

// Codec converts values of type V to and from order keys.
type Codec[V any] interface {
	// Encode returns the order key of the value.
	Encode(value V) int64
	// Decode returns the value for an order key produced by Encode.
	Decode(key int64) V
	// Normalize returns the canonical form of the value.
	Normalize(value V) V
}

// SameKind reports whether two codecs describe the same kind of range. Codecs
// are the same kind when they share a dynamic type and, if that type is
// comparable, are equal. Pointer codecs such as *Func are only the same kind as
// themselves.
func SameKind[V any](a, b Codec[V]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)

	if va.Type() != vb.Type() {
		return false
	}

	if !va.Comparable() {
		return true
	}

	return va.Equal(vb)
}

// Name returns a printable name for the codec's kind, used in error messages.
func Name[V any](c Codec[V]) string {
	if c == nil {
		return "<nil>"
	}

	return reflect.TypeOf(c).String()
}
