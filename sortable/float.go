package sortable

import "cmp"

// Float64 is a sortable wrapper type for the built-in float64 type.
// NaN sorts before every other value and equals itself, so the ordering stays total.
// -0.0 and +0.0 are equal.
type Float64 float64

var _ Sortable[Float64] = (*Float64)(nil)

// Equals returns true if both values are equal, or both are NaN.
func (f Float64) Equals(other Float64) bool {
	return cmp.Compare(float64(f), float64(other)) == 0
}

// LessThan orders NaN first, then by numeric value.
func (f Float64) LessThan(other Float64) bool {
	return cmp.Less(float64(f), float64(other))
}
