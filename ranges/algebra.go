package ranges

import (
	"slices"

	"github.com/amp-labs/amp-ranges/assert"
	"github.com/amp-labs/amp-ranges/logger"
	"github.com/amp-labs/amp-ranges/optional"
)

// The boolean operations below expect both operands to share a codec kind.
// Every range they return is built on the receiver's codec.

// And returns the part of the key space covered by both ranges, or None when
// they do not intersect.
func (r Range[V]) And(other Range[V]) optional.Value[Range[V]] {
	if !r.Intersects(other) {
		return optional.None[Range[V]]()
	}

	start := r.start
	if r.ExtendsBefore(other) {
		start = other.start
	}

	end := r.end
	if r.ExtendsAfter(other) {
		end = other.end
	}

	return optional.Some(r.with(start, end))
}

// Or returns the union of both ranges: a single range when they intersect or
// are adjacent, otherwise both ranges in order.
func (r Range[V]) Or(other Range[V]) Collection[V] {
	if r.Intersects(other) || r.Adjacent(other) {
		return r.collect(r.span(other))
	}

	return r.collect(r, r.rebase(other))
}

// Xor returns the parts of the key space covered by exactly one of the ranges.
// Adjacent ranges come back merged, as with Or.
func (r Range[V]) Xor(other Range[V]) Collection[V] {
	switch {
	case r.Equals(other):
		return r.collect()
	case r.Adjacent(other):
		return r.Or(other)
	case !r.Intersects(other):
		return r.collect(r, r.rebase(other))
	}

	overlap, _ := r.And(other).Get()

	return r.span(other).Not(overlap)
}

// Not returns what is left of r after removing every key other covers. The
// result holds zero, one or two ranges.
func (r Range[V]) Not(other Range[V]) Collection[V] {
	switch {
	case other.Contains(r):
		return r.collect()
	case !r.Intersects(other):
		return r.collect(r)
	}

	pieces := make([]Range[V], 0, 2) //nolint:mnd

	if left, ok := r.leftOf(other); ok {
		pieces = append(pieces, left)
	}

	if right, ok := r.rightOf(other); ok {
		pieces = append(pieces, right)
	}

	return r.collect(pieces...)
}

// Slice cuts the combined extent of both ranges along the edges of their
// intersection. Equal ranges give one piece, disjoint (including adjacent)
// ranges give both ranges unchanged, and overlapping ranges give the
// intersection plus the one or two pieces on either side of it. A side that
// lies beyond the int64 key limits holds no keys and yields no piece.
func (r Range[V]) Slice(other Range[V]) Collection[V] {
	switch {
	case r.Equals(other):
		return r.collect(r)
	case !r.Intersects(other):
		return r.collect(r, r.rebase(other))
	}

	overlap, _ := r.And(other).Get()
	span := r.span(other)
	outside := span.Not(overlap)

	// A side that only reaches past an int64 limit holds no keys.
	allowed := []int{1, 2}
	if span.pastLimit(overlap) {
		allowed = []int{0, 1}
	}

	if n := outside.Len(); !slices.Contains(allowed, n) {
		logger.Get().Error("range slice produced an impossible piece count",
			"range", r.String(), "other", other.String(), "pieces", n)
	}

	assert.OneOf(outside.Len(), allowed,
		"ranges: slicing %s by %s left %d pieces around the intersection", r, other, outside.Len())

	return r.collect(append(outside.ranges, overlap)...)
}

// span returns the smallest range enclosing both ranges.
func (r Range[V]) span(other Range[V]) Range[V] {
	start := r.start
	if other.ExtendsBefore(r) {
		start = other.start
	}

	end := r.end
	if other.ExtendsAfter(r) {
		end = other.end
	}

	return r.with(start, end)
}

// leftOf returns the part of r before other starts, if there is one.
func (r Range[V]) leftOf(other Range[V]) (Range[V], bool) {
	if !r.ExtendsBefore(other) {
		return Range[V]{}, false
	}

	before, ok := other.start.key.Pred()
	if !ok {
		return Range[V]{}, false
	}

	return r.with(r.start, r.keyBound(before)), true
}

// rightOf returns the part of r after other ends, if there is one.
func (r Range[V]) rightOf(other Range[V]) (Range[V], bool) {
	if !r.ExtendsAfter(other) {
		return Range[V]{}, false
	}

	after, ok := other.end.key.Succ()
	if !ok {
		return Range[V]{}, false
	}

	return r.with(r.keyBound(after), r.end), true
}

// pastLimit reports whether r extends beyond inner on a side where inner
// already sits at the int64 limit.
func (r Range[V]) pastLimit(inner Range[V]) bool {
	if r.ExtendsBefore(inner) {
		if _, ok := inner.start.key.Pred(); !ok {
			return true
		}
	}

	if r.ExtendsAfter(inner) {
		if _, ok := inner.end.key.Succ(); !ok {
			return true
		}
	}

	return false
}

// rebase moves other onto the receiver's codec.
func (r Range[V]) rebase(other Range[V]) Range[V] {
	return r.with(other.start, other.end)
}

// collect wraps pieces in a sorted collection of the receiver's kind.
func (r Range[V]) collect(pieces ...Range[V]) Collection[V] {
	return EmptyCollection(r.codec).derive(pieces)
}
