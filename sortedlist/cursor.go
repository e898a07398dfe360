package sortedlist

import (
	"github.com/amp-labs/sortedlist/sortable"
	"github.com/amp-labs/sortedlist/zero"
)

// Cursor walks a list once, from the smallest element to the largest.
// Obtain one with List.Iterator; each call starts a fresh traversal.
//
// Adding, removing or clearing after the cursor was created makes Next fail with
// ErrConcurrentModification.
type Cursor[T sortable.Sortable[T]] struct {
	list *List[T]
	next *node[T]
	mods uint64
}

// Iterator returns a cursor positioned before the first element.
func (l *List[T]) Iterator() *Cursor[T] {
	return &Cursor[T]{
		list: l,
		next: l.head,
		mods: l.mods,
	}
}

// HasNext reports whether Next has another element to return.
func (c *Cursor[T]) HasNext() bool {
	return c.next != nil
}

// Next returns the next element and advances the cursor.
func (c *Cursor[T]) Next() (T, error) {
	if c.list.mods != c.mods {
		return zero.Value[T](), ErrConcurrentModification
	}

	if c.next == nil {
		return zero.Value[T](), ErrEndOfSequence
	}

	value := c.next.value
	c.next = c.next.next

	return value, nil
}
