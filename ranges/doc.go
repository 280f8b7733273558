// Package ranges implements interval algebra over any totally ordered domain.
//
// A Range is built on a codec.Codec, which maps domain values to integer order
// keys. Every comparison and every plus-or-minus-one step happens on those keys,
// so the same algebra serves integers, calendar days or any other discrete
// domain. Either side of a range may be unbounded.
//
// Ranges combine pairwise with And, Or, Xor, Not and Slice. A Collection keeps
// many ranges of one codec kind sorted and applies the same operations across
// all of them, plus single-pass merges of intersecting and adjacent ranges.
//
// Ranges and collections are immutable values and are safe to share between
// goroutines.
package ranges
