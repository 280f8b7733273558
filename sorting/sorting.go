// Package sorting sorts slices by an ordered list of comparators. The first
// comparator that tells two elements apart decides their order; when every
// comparator reports a tie, the elements keep their original relative order.
//
// A Sorter is immutable once built, so one instance can be shared by every
// caller that needs the same ordering.
package sorting

import (
	"cmp"
	"slices"

	"github.com/amp-labs/amp-ranges/sortable"
)

// Comparator returns a negative number when a sorts before b, a positive number
// when a sorts after b, and zero when the comparator cannot tell them apart.
type Comparator[T any] func(a, b T) int

// Sorter applies a fixed list of comparators.
type Sorter[T any] struct {
	comparators []Comparator[T]
}

// New returns a Sorter that tries each comparator in order.
func New[T any](comparators ...Comparator[T]) *Sorter[T] {
	return &Sorter[T]{comparators: slices.Clone(comparators)}
}

// Then returns a new Sorter that falls back to the extra comparators after the
// existing ones. The receiver is left untouched.
func (s *Sorter[T]) Then(comparators ...Comparator[T]) *Sorter[T] {
	combined := make([]Comparator[T], 0, len(s.comparators)+len(comparators))
	combined = append(combined, s.comparators...)
	combined = append(combined, comparators...)

	return &Sorter[T]{comparators: combined}
}

// Compare runs the comparators in order and returns the first non-zero result.
func (s *Sorter[T]) Compare(a, b T) int {
	for _, c := range s.comparators {
		if result := c(a, b); result != 0 {
			return result
		}
	}

	return 0
}

// Sort orders data in place. The sort is stable.
func (s *Sorter[T]) Sort(data []T) {
	slices.SortStableFunc(data, s.Compare)
}

// Sorted returns a sorted copy of data, leaving data unchanged.
func (s *Sorter[T]) Sorted(data []T) []T {
	out := slices.Clone(data)
	s.Sort(out)

	return out
}

// Sort is the one-shot form of New(comparators...).Sort(data).
func Sort[T any](data []T, comparators ...Comparator[T]) {
	New(comparators...).Sort(data)
}

// Reverse flips the direction of a comparator.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// By compares elements by a derived key.
func By[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Natural compares Sortable elements by their own ordering.
func Natural[T sortable.Sortable[T]]() Comparator[T] {
	return sortable.Compare[T]
}
