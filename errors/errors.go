// Package errors holds the sentinel errors shared across the module and a small
// accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrWrongType is the root of every type or kind mismatch, such as inserting
	// a range built on a different codec into a collection.
	ErrWrongType = errors.New("wrong type")

	// ErrInvalidArgument is returned when an argument can never be valid,
	// for example a non-positive codec resolution.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use this when every failing element should be reported, rather than only the first.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of errors collected so far.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
