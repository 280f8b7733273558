package ranges

import (
	"iter"
	"slices"
	"strings"

	"github.com/amp-labs/amp-ranges/codec"
	"github.com/amp-labs/amp-ranges/compare"
	"github.com/amp-labs/amp-ranges/errors"
	"github.com/amp-labs/amp-ranges/hashing"
	"github.com/amp-labs/amp-ranges/optional"
	"github.com/amp-labs/amp-ranges/orderkey"
	"github.com/amp-labs/amp-ranges/set"
	"github.com/amp-labs/amp-ranges/sorting"
)

// Collection is an immutable sequence of ranges that share one codec kind.
// It is always sorted ascending by start key, then end key; ranges that tie on
// both keep the order they were added in. Every operation returns a new
// Collection and leaves the receiver untouched.
//
// The zero Collection is empty and adopts the codec of the first range added.
type Collection[V any] struct {
	codec  codec.Codec[V]
	sorter *sorting.Sorter[Range[V]]
	ranges []Range[V]
}

// NewSorter returns the ordering every Collection keeps its ranges in.
func NewSorter[V any]() *sorting.Sorter[Range[V]] {
	return sorting.New(
		func(a, b Range[V]) int { return a.start.key.Compare(b.start.key) },
		func(a, b Range[V]) int { return a.end.key.Compare(b.end.key) },
	)
}

// EmptyCollection returns a collection holding no ranges that only accepts
// ranges built on a codec of the same kind as c.
func EmptyCollection[V any](c codec.Codec[V]) Collection[V] {
	return Collection[V]{codec: c, sorter: NewSorter[V]()}
}

// NewCollection returns a sorted collection of the given ranges. The first
// range decides the codec kind; every other range must match it.
func NewCollection[V any](first Range[V], rest ...Range[V]) (Collection[V], error) {
	return EmptyCollection(first.codec).Add(append([]Range[V]{first}, rest...)...)
}

// Add returns a new collection holding the receiver's ranges plus the given
// ones. If any range uses a codec of a different kind, nothing is added: the
// receiver is returned unchanged alongside an error wrapping ErrTypeMismatch
// for every offending range.
func (c Collection[V]) Add(ranges ...Range[V]) (Collection[V], error) {
	if len(ranges) == 0 {
		return c, nil
	}

	expected := c.codec
	if expected == nil {
		expected = ranges[0].codec
	}

	var errs errors.Collection

	for i, r := range ranges {
		if !codec.SameKind(expected, r.codec) {
			errs.Add(typeMismatch(i, expected, r.codec))
		}
	}

	if errs.HasError() {
		return c, errs.GetError()
	}

	combined := make([]Range[V], 0, len(c.ranges)+len(ranges))
	combined = append(combined, c.ranges...)
	combined = append(combined, ranges...)

	out := c.derive(combined)
	out.codec = expected

	return out, nil
}

// derive returns a collection of the receiver's kind holding the given ranges
// in sorted order. It takes ownership of the slice.
func (c Collection[V]) derive(ranges []Range[V]) Collection[V] {
	sorter := c.sorter
	if sorter == nil {
		sorter = NewSorter[V]()
	}

	sorter.Sort(ranges)

	return Collection[V]{codec: c.codec, sorter: sorter, ranges: ranges}
}

func (c Collection[V]) empty() Collection[V] {
	return Collection[V]{codec: c.codec, sorter: c.sorter}
}

// Filter returns the ranges for which keep reports true, in their current order.
func (c Collection[V]) Filter(keep func(Range[V]) bool) Collection[V] {
	kept := make([]Range[V], 0, len(c.ranges))

	for _, r := range c.ranges {
		if keep(r) {
			kept = append(kept, r)
		}
	}

	return c.derive(kept)
}

// Map replaces every range with whatever f returns for it: nothing deletes the
// range, several ranges are spliced in its place. The result is re-sorted. The
// returned ranges must match the collection's codec kind; if any does not, the
// receiver is returned with an error wrapping ErrTypeMismatch.
func (c Collection[V]) Map(f func(Range[V]) []Range[V]) (Collection[V], error) {
	var out []Range[V]

	for _, r := range c.ranges {
		out = append(out, f(r)...)
	}

	mapped, err := c.empty().Add(out...)
	if err != nil {
		return c, err
	}

	return mapped, nil
}

// And intersects every range with other, dropping ranges that miss it.
func (c Collection[V]) And(other Range[V]) Collection[V] {
	out := make([]Range[V], 0, len(c.ranges))

	for _, r := range c.ranges {
		if overlap, ok := r.And(other).Get(); ok {
			out = append(out, overlap)
		}
	}

	return c.derive(out)
}

// Not removes the keys covered by other from every range. A range may vanish,
// shrink or split in two.
func (c Collection[V]) Not(other Range[V]) Collection[V] {
	out := make([]Range[V], 0, len(c.ranges))

	for _, r := range c.ranges {
		out = append(out, r.Not(other).ranges...)
	}

	return c.derive(out)
}

// Codec returns the codec the collection's ranges are built on. It is nil for
// a zero Collection that has never held a range.
func (c Collection[V]) Codec() codec.Codec[V] {
	return c.codec
}

func (c Collection[V]) first() optional.Value[Range[V]] {
	if len(c.ranges) == 0 {
		return optional.None[Range[V]]()
	}

	return optional.Some(c.ranges[0])
}

func (c Collection[V]) last() optional.Value[Range[V]] {
	if len(c.ranges) == 0 {
		return optional.None[Range[V]]()
	}

	return optional.Some(c.ranges[len(c.ranges)-1])
}

// Start returns the start value of the first range. It is None when the
// collection is empty or the first range is unbounded below.
func (c Collection[V]) Start() optional.Value[V] {
	first, ok := c.first().Get()
	if !ok {
		return optional.None[V]()
	}

	return first.Start()
}

// StartKey returns the start key of the first range, which is the smallest
// start key in the collection.
func (c Collection[V]) StartKey() optional.Value[orderkey.Key] {
	return optional.Map(c.first(), Range[V].StartKey)
}

// End returns the end value of the last range. Ranges are sorted by start key
// first, so this is not necessarily the largest end in the collection.
func (c Collection[V]) End() optional.Value[V] {
	last, ok := c.last().Get()
	if !ok {
		return optional.None[V]()
	}

	return last.End()
}

// EndKey returns the end key of the last range. See End.
func (c Collection[V]) EndKey() optional.Value[orderkey.Key] {
	return optional.Map(c.last(), Range[V].EndKey)
}

// IsEmpty reports whether the collection holds no ranges.
func (c Collection[V]) IsEmpty() bool {
	return len(c.ranges) == 0
}

// Len returns the number of ranges.
func (c Collection[V]) Len() int {
	return len(c.ranges)
}

// Get returns the range at index i in sorted order.
func (c Collection[V]) Get(i int) (Range[V], bool) {
	if i < 0 || i >= len(c.ranges) {
		return Range[V]{}, false
	}

	return c.ranges[i], true
}

// All iterates over the ranges in sorted order.
func (c Collection[V]) All() iter.Seq2[int, Range[V]] {
	return slices.All(c.ranges)
}

// Ranges returns a copy of the ranges in sorted order.
func (c Collection[V]) Ranges() []Range[V] {
	return slices.Clone(c.ranges)
}

// Equals reports whether both collections hold equal ranges in the same order.
func (c Collection[V]) Equals(other Collection[V]) bool {
	return compare.EqualSlices(c.ranges, other.ranges)
}

// ContainsValue reports whether any range contains the value.
func (c Collection[V]) ContainsValue(value V) bool {
	return slices.ContainsFunc(c.ranges, func(r Range[V]) bool {
		return r.ContainsValue(value)
	})
}

// Distinct drops every range equal to an earlier one.
func (c Collection[V]) Distinct() (Collection[V], error) {
	seen := set.NewSet[Range[V]](hashing.XXH3)
	out := make([]Range[V], 0, len(c.ranges))

	for _, r := range c.ranges {
		added, err := seen.Insert(r)
		if err != nil {
			return c, err
		}

		if added {
			out = append(out, r)
		}
	}

	return c.derive(out), nil
}

// String joins the ranges with ", ". An empty collection renders as "".
func (c Collection[V]) String() string {
	parts := make([]string, len(c.ranges))
	for i, r := range c.ranges {
		parts[i] = r.String()
	}

	return strings.Join(parts, ", ")
}
