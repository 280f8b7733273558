// Package set provides a hash-keyed set of Collectable values.
package set

import (
	"errors"

	"github.com/amp-labs/amp-ranges/compare"
	"github.com/amp-labs/amp-ranges/hashing"
)

// ErrHashCollision is returned when a hashing collision is detected.
// Specifically this refers to two different (non-equal) objects
// that have the same hashing value.
var ErrHashCollision = errors.New("hashing collision")

// Collectable is an interface that combines the Hashable and
// Comparable interfaces. Uniqueness is determined by the hashing
// value, and collisions are resolved by comparing the objects.
type Collectable[T any] interface {
	hashing.Hashable
	compare.Comparable[T]
}

// A Set is a collection of unique elements. Uniqueness is
// determined by the HashFunc provided when the Set is created,
// as well as how the object has implemented the Hashable and
// Comparable interfaces. If a collision is detected, an error
// is returned.
type Set[T Collectable[T]] interface {
	// Insert adds a single element and reports whether it was not already present.
	Insert(element T) (bool, error)
}

type setImpl[T Collectable[T]] struct {
	hash     hashing.HashFunc
	elements map[string]T
}

// NewSet creates a new Set with the provided hash function.
// The hash function is used to determine uniqueness of elements.
func NewSet[T Collectable[T]](hash hashing.HashFunc) Set[T] {
	return &setImpl[T]{
		hash:     hash,
		elements: make(map[string]T),
	}
}

func (s *setImpl[T]) Insert(element T) (bool, error) {
	hashVal, err := s.hash(element)
	if err != nil {
		return false, err
	}

	prev, ok := s.elements[hashVal]
	if ok {
		if compare.Equals(prev, element) {
			return false, nil
		}

		return false, ErrHashCollision
	}

	s.elements[hashVal] = element

	return true, nil
}
