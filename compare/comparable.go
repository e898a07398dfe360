// Package compare provides the equality contract used by the ordered containers.
package compare

import "iter"

// Comparable is implemented by types that decide equality themselves.
// Equals must be reflexive and symmetric; sorted containers additionally expect it to
// agree with the type's ordering (see sortable.Sortable).
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Contains reports whether any value yielded by seq equals target.
// Iteration stops at the first match.
func Contains[T Comparable[T]](seq iter.Seq[T], target T) bool {
	for v := range seq {
		if v.Equals(target) {
			return true
		}
	}

	return false
}
