package sortedlist

import (
	"encoding/json"

	"github.com/amp-labs/sortedlist/sortable"
	"gopkg.in/yaml.v3"
)

var (
	_ json.Marshaler   = (*List[sortable.Int])(nil)
	_ json.Unmarshaler = (*List[sortable.Int])(nil)
	_ yaml.Marshaler   = (*List[sortable.Int])(nil)
	_ yaml.Unmarshaler = (*List[sortable.Int])(nil)
)

// MarshalJSON encodes the list as a JSON array in ascending order.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.encodable())
}

// UnmarshalJSON replaces the contents with the decoded array. The input need not be
// sorted. A null element fails with ErrInvalidArgument and leaves the list unchanged.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var values []T

	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}

	return l.replace(values)
}

// MarshalYAML encodes the list as a YAML sequence in ascending order.
func (l *List[T]) MarshalYAML() (any, error) {
	return l.encodable(), nil
}

// UnmarshalYAML replaces the contents with the decoded sequence, with the same rules
// as UnmarshalJSON.
func (l *List[T]) UnmarshalYAML(value *yaml.Node) error {
	var values []T

	if err := value.Decode(&values); err != nil {
		return err
	}

	return l.replace(values)
}

// encodable returns the entries, never nil, so an empty list encodes as [] and not null.
func (l *List[T]) encodable() []T {
	entries := l.Entries()
	if entries == nil {
		return []T{}
	}

	return entries
}

func (l *List[T]) replace(values []T) error {
	next := New[T]()

	if err := next.AddAll(values...); err != nil {
		return err
	}

	l.head = next.head
	l.tail = next.tail
	l.size = next.size
	l.mods++

	return nil
}
