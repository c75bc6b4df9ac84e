//go:build !release

// Package err provides self-checks for conditions that should be impossible.
//
// The checks are similar to the assert() macro in C: they guard internal
// invariants during development and abort with a panic when one is broken.
// Building with the release tag turns every check into a no-op, so they must
// never stand in for validating input or for any other behaviour the program
// relies on. Report recoverable failures through error values instead.
package err

import "fmt"

// Enabled reports whether self-checks are compiled in.
const Enabled = true

// Assert provides a function that is similar to the assert() function in C.
// Call it to ensure invariant conditions are met.
func Assert(condition bool) {
	if !condition {
		panic("Assertion failed")
	}
}

// Assertf is Assert with a formatted description of the broken invariant.
func Assertf(condition bool, format string, args ...any) {
	if !condition {
		panic("Assertion failed: " + fmt.Sprintf(format, args...))
	}
}

// Never marks code that must be unreachable.
func Never(format string, args ...any) {
	Assertf(false, format, args...)
}
