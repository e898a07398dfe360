package sortable

import "facette.io/natsort"

type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// NaturalString orders strings the way people read them: runs of digits compare
// numerically, so "file2" sorts before "file10". Strings that tie under natural order
// ("a01", "a1") fall back to byte order, keeping LessThan consistent with Equals.
type NaturalString string

var _ Sortable[NaturalString] = (*NaturalString)(nil)

func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

func (s NaturalString) LessThan(other NaturalString) bool {
	a, b := string(s), string(other)
	if a == b {
		return false
	}

	ab := natsort.Compare(a, b)
	if ab == natsort.Compare(b, a) {
		return a < b
	}

	return ab
}
