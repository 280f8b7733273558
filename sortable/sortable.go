package sortable

import (
	"github.com/amp-labs/amp-ranges/compare"
)

// Sortable is a Comparable that also defines a strict ordering.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare derives a three-way comparison from a Sortable pair:
// -1 if a sorts first, 1 if b sorts first, 0 if they are equal.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.Equals(b):
		return 0
	case a.LessThan(b):
		return -1
	default:
		return 1
	}
}
