// Package assert provides panicking invariant checks. A failed assertion is a
// defect in this module, never a caller error, so it is reported by panicking
// rather than by returning an error.
package assert

import "fmt"

// True asserts that the given value is true.
// If the assertion fails, it panics with a message.
// The optional args can be used to provide a formatted panic message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func True(value bool, args ...any) {
	if value {
		return
	}

	if len(args) == 0 {
		panic("assertion failed")
	}

	first := args[0]
	remaining := args[1:]

	if firstStr, ok := first.(string); ok {
		panic(fmt.Sprintf(firstStr, remaining...))
	}

	panic(fmt.Sprintf("assertion failed: %v", args))
}

// False asserts that the given value is false.
// The optional args are passed to True and follow the same formatting rules.
func False(value bool, args ...any) {
	True(!value, args...)
}

// OneOf asserts that n equals one of the allowed values.
// The optional args are passed to True and follow the same formatting rules.
func OneOf(n int, allowed []int, args ...any) {
	for _, a := range allowed {
		if n == a {
			return
		}
	}

	True(false, args...)
}
