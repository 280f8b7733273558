package ranges

import (
	"fmt"
	"hash"

	"github.com/amp-labs/amp-ranges/codec"
	"github.com/amp-labs/amp-ranges/hashing"
	"github.com/amp-labs/amp-ranges/optional"
	"github.com/amp-labs/amp-ranges/orderkey"
)

// bound is one side of a range: its order key plus the stored value, which is
// absent exactly when the key is infinite.
type bound[V any] struct {
	key   orderkey.Key
	value optional.Value[V]
}

// Range is an immutable interval over the values of a codec. Either side may
// be unbounded. Ranges compare by their order keys only, so two ranges built
// from different values that normalize to the same keys are equal.
//
// The zero Range has no codec and must not be used; build ranges with New or
// one of its shorthands.
type Range[V any] struct {
	codec codec.Codec[V]
	start bound[V]
	end   bound[V]
}

// New returns the range from start to end. An absent start makes the range
// unbounded below, an absent end makes it unbounded above. Values are
// normalized by the codec before they are stored.
//
// New does not require start <= end. A range whose start sorts after its end is
// inverted (see Inverted); the algebra still operates on it key by key.
func New[V any](c codec.Codec[V], start, end optional.Value[V]) Range[V] {
	return Range[V]{
		codec: c,
		start: valueBound(c, start, orderkey.NegInf()),
		end:   valueBound(c, end, orderkey.PosInf()),
	}
}

// Closed returns the range [start, end].
func Closed[V any](c codec.Codec[V], start, end V) Range[V] {
	return New(c, optional.Some(start), optional.Some(end))
}

// From returns the range [start, +inf).
func From[V any](c codec.Codec[V], start V) Range[V] {
	return New(c, optional.Some(start), optional.None[V]())
}

// Until returns the range (-inf, end].
func Until[V any](c codec.Codec[V], end V) Range[V] {
	return New(c, optional.None[V](), optional.Some(end))
}

// Unbounded returns the range covering every value of the codec.
func Unbounded[V any](c codec.Codec[V]) Range[V] {
	return New(c, optional.None[V](), optional.None[V]())
}

func valueBound[V any](c codec.Codec[V], value optional.Value[V], infinity orderkey.Key) bound[V] {
	v, ok := value.Get()
	if !ok {
		return bound[V]{key: infinity}
	}

	v = c.Normalize(v)

	return bound[V]{
		key:   orderkey.Of(c.Encode(v)),
		value: optional.Some(v),
	}
}

// keyBound builds the bound for a finite key produced by arithmetic on
// another bound.
func (r Range[V]) keyBound(key orderkey.Key) bound[V] {
	n, _ := key.Int64()

	return bound[V]{
		key:   key,
		value: optional.Some(r.codec.Decode(n)),
	}
}

// with returns a range on the receiver's codec with the given bounds.
func (r Range[V]) with(start, end bound[V]) Range[V] {
	return Range[V]{codec: r.codec, start: start, end: end}
}

// Codec returns the codec the range was built with.
func (r Range[V]) Codec() codec.Codec[V] {
	return r.codec
}

// Start returns the normalized start value, or None if the range is unbounded below.
func (r Range[V]) Start() optional.Value[V] {
	return r.start.value
}

// End returns the normalized end value, or None if the range is unbounded above.
func (r Range[V]) End() optional.Value[V] {
	return r.end.value
}

// StartKey returns the order key of the start; negative infinity when unbounded.
func (r Range[V]) StartKey() orderkey.Key {
	return r.start.key
}

// EndKey returns the order key of the end; positive infinity when unbounded.
func (r Range[V]) EndKey() orderkey.Key {
	return r.end.key
}

// WithStart returns a copy of the range with a different start.
func (r Range[V]) WithStart(start optional.Value[V]) Range[V] {
	return r.with(valueBound(r.codec, start, orderkey.NegInf()), r.end)
}

// WithEnd returns a copy of the range with a different end.
func (r Range[V]) WithEnd(end optional.Value[V]) Range[V] {
	return r.with(r.start, valueBound(r.codec, end, orderkey.PosInf()))
}

// Inverted reports whether the start sorts after the end.
func (r Range[V]) Inverted() bool {
	return r.end.key.LessThan(r.start.key)
}

// Equals reports whether both ranges have the same start and end keys.
func (r Range[V]) Equals(other Range[V]) bool {
	return r.start.key.Equals(other.start.key) && r.end.key.Equals(other.end.key)
}

// Intersects reports whether the ranges share at least one key.
func (r Range[V]) Intersects(other Range[V]) bool {
	return !(other.end.key.LessThan(r.start.key) || r.end.key.LessThan(other.start.key))
}

// Contains reports whether other lies entirely within r.
func (r Range[V]) Contains(other Range[V]) bool {
	return !other.start.key.LessThan(r.start.key) && !r.end.key.LessThan(other.end.key)
}

// ContainsValue reports whether the value falls within the range.
func (r Range[V]) ContainsValue(value V) bool {
	key := orderkey.Of(r.codec.Encode(r.codec.Normalize(value)))

	return !key.LessThan(r.start.key) && !r.end.key.LessThan(key)
}

// ExtendsBefore reports whether r starts before other.
func (r Range[V]) ExtendsBefore(other Range[V]) bool {
	return r.start.key.LessThan(other.start.key)
}

// ExtendsAfter reports whether r ends after other.
func (r Range[V]) ExtendsAfter(other Range[V]) bool {
	return other.end.key.LessThan(r.end.key)
}

// AdjacentRightOf reports whether r starts exactly one unit after other ends.
// Unbounded sides are never adjacent to anything.
func (r Range[V]) AdjacentRightOf(other Range[V]) bool {
	next, ok := other.end.key.Succ()

	return ok && r.start.key.Equals(next)
}

// AdjacentLeftOf reports whether r ends exactly one unit before other starts.
// Unbounded sides are never adjacent to anything.
func (r Range[V]) AdjacentLeftOf(other Range[V]) bool {
	next, ok := r.end.key.Succ()

	return ok && other.start.key.Equals(next)
}

// Adjacent reports whether the ranges touch without a gap on either side.
func (r Range[V]) Adjacent(other Range[V]) bool {
	return r.AdjacentRightOf(other) || r.AdjacentLeftOf(other)
}

// UpdateHash writes the range's keys to h. Equal ranges write equal bytes.
func (r Range[V]) UpdateHash(h hash.Hash) error {
	if err := writeKey(h, r.start.key); err != nil {
		return err
	}

	return writeKey(h, r.end.key)
}

func writeKey(h hash.Hash, key orderkey.Key) error {
	var tag byte

	switch {
	case key.IsNegInf():
		tag = 'N'
	case key.IsPosInf():
		tag = 'P'
	default:
		tag = 'F'
	}

	if _, err := h.Write([]byte{tag}); err != nil {
		return err
	}

	n, _ := key.Int64()

	return hashing.WriteInt64(h, n)
}

// String renders the range as [start...end], leaving an unbounded side empty.
func (r Range[V]) String() string {
	return "[" + formatBound(r.start) + "..." + formatBound(r.end) + "]"
}

func formatBound[V any](b bound[V]) string {
	v, ok := b.value.Get()
	if !ok {
		return ""
	}

	return fmt.Sprint(v)
}
