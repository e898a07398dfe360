// Package sortable provides the ordering contract for sorted containers, plus wrapper types
// that implement it for common primitives.
package sortable

import (
	"github.com/amp-labs/sortedlist/compare"
)

// Sortable is implemented by types with a total ordering. LessThan must be a strict weak
// order; two values where neither is LessThan the other are considered equal by sorted
// containers, so Equals should agree with that.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare returns -1 if a sorts before b, +1 if a sorts after b, and 0 otherwise.
// Only LessThan is consulted; Equals is not.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}
