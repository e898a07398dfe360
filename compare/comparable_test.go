package compare

import (
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testNumber is a numeric type that implements Comparable.
type testNumber int

func (n testNumber) Equals(other testNumber) bool {
	return int(n) == int(other)
}

// caseFolded treats strings equal regardless of case.
type caseFolded string

func (s caseFolded) Equals(other caseFolded) bool {
	return strings.EqualFold(string(s), string(other))
}

func TestEquals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        testNumber
		b        testNumber
		expected bool
	}{
		{name: "equal numbers", a: 42, b: 42, expected: true},
		{name: "different numbers", a: 42, b: 24, expected: false},
		{name: "zero values", a: 0, b: 0, expected: true},
		{name: "negative numbers", a: -5, b: -5, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Equals[testNumber](tt.a, tt.b))
		})
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	t.Run("finds present value", func(t *testing.T) {
		t.Parallel()

		seq := slices.Values([]testNumber{1, 2, 3})
		assert.True(t, Contains(seq, 2))
	})

	t.Run("misses absent value", func(t *testing.T) {
		t.Parallel()

		seq := slices.Values([]testNumber{1, 2, 3})
		assert.False(t, Contains(seq, 4))
	})

	t.Run("empty sequence", func(t *testing.T) {
		t.Parallel()

		assert.False(t, Contains(slices.Values([]testNumber(nil)), 1))
	})

	t.Run("uses the type's equality", func(t *testing.T) {
		t.Parallel()

		seq := slices.Values([]caseFolded{"Alpha", "Beta"})
		assert.True(t, Contains(seq, "beta"))
	})

	t.Run("stops at first match", func(t *testing.T) {
		t.Parallel()

		visited := 0

		var seq iter.Seq[testNumber] = func(yield func(testNumber) bool) {
			for _, v := range []testNumber{1, 2, 3, 4} {
				visited++

				if !yield(v) {
					return
				}
			}
		}

		assert.True(t, Contains(seq, 2))
		assert.Equal(t, 2, visited)
	})
}
