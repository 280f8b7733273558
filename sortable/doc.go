// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use wherever an ordering is required.
//
// # Overview
//
// The [Sortable] interface extends [github.com/amp-labs/amp-ranges/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
// [Int] is a ready-made implementation, and order keys
// ([github.com/amp-labs/amp-ranges/orderkey.Key]) implement it as well.
//
// # Usage
//
// Any Sortable type can be handed to the sorting package without writing a
// comparator by hand:
//
//	data := []sortable.Int{42, 10, 25}
//	sorting.Sort(data, sorting.Natural[sortable.Int]())
//	// data is now 10, 25, 42
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
package sortable
