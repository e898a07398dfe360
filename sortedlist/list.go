// Package sortedlist provides List, a singly linked list that keeps its elements in
// ascending order.
//
// Ordering comes from the element type, which must implement sortable.Sortable. Equal
// elements are kept in the order they were added. Every lookup is a linear scan; First,
// Last, Size and IsEmpty are O(1).
//
// A List is not safe for concurrent use.
package sortedlist

import (
	"fmt"
	"iter"
	"strings"

	"github.com/amp-labs/sortedlist/compare"
	"github.com/amp-labs/sortedlist/errors"
	"github.com/amp-labs/sortedlist/sortable"
	"github.com/amp-labs/sortedlist/zero"
)

// node holds one element. It is reachable only through its predecessor, or through
// List.head for the first node.
type node[T sortable.Sortable[T]] struct {
	value T
	next  *node[T]
}

// List is an ordered singly linked list. The zero value is an empty list ready to use.
//
// Element types must keep Equals consistent with their ordering: Remove locates elements
// by ordering (sortable.Compare), while Contains uses Equals.
type List[T sortable.Sortable[T]] struct {
	head *node[T]
	tail *node[T] // last node of the chain headed by head; nil iff head is nil
	size int
	mods uint64 // bumped on every structural change, checked by cursors
}

// New creates an empty list.
func New[T sortable.Sortable[T]]() *List[T] {
	return &List[T]{}
}

// From creates a list holding values. It fails without building anything if any
// value is nil.
func From[T sortable.Sortable[T]](values ...T) (*List[T], error) {
	l := New[T]()

	if err := l.AddAll(values...); err != nil {
		return nil, err
	}

	return l, nil
}

// Add inserts value after every element that does not sort after it.
// Returns ErrInvalidArgument, without modifying the list, if value is nil.
func (l *List[T]) Add(value T) error {
	if zero.IsNil(value) {
		return fmt.Errorf("%w: nil values are not allowed in this list", ErrInvalidArgument)
	}

	l.insert(value)

	return nil
}

// AddAll inserts every value. If any value is nil, nothing is inserted and the returned
// error names each offending position.
func (l *List[T]) AddAll(values ...T) error {
	var errs errors.Collection

	for i, value := range values {
		if zero.IsNil(value) {
			errs.Addf("%w: nil value at position %d", ErrInvalidArgument, i)
		}
	}

	if errs.HasError() {
		return errs.GetError()
	}

	for _, value := range values {
		l.insert(value)
	}

	return nil
}

func (l *List[T]) insert(value T) {
	added := &node[T]{value: value}

	switch {
	case l.head == nil:
		l.head = added
		l.tail = added
	case value.LessThan(l.head.value):
		added.next = l.head
		l.head = added
	case !value.LessThan(l.tail.value):
		l.tail.next = added
		l.tail = added
	default:
		// value sorts before the tail, so the scan stops inside the chain.
		cur := l.head
		for cur.next != nil && !value.LessThan(cur.next.value) {
			cur = cur.next
		}

		added.next = cur.next
		cur.next = added
	}

	l.size++
	l.mods++
}

// Remove deletes the first element that compares equal to value and reports whether
// one was found.
func (l *List[T]) Remove(value T) bool {
	if zero.IsNil(value) {
		return false
	}

	var prev *node[T]

	for cur := l.head; cur != nil; prev, cur = cur, cur.next {
		switch sortable.Compare(cur.value, value) {
		case -1:
			continue
		case 0:
			l.unlink(prev, cur)

			return true
		default:
			// Past the point where value would sit.
			return false
		}
	}

	return false
}

func (l *List[T]) unlink(prev, cur *node[T]) {
	if prev == nil {
		l.head = cur.next
	} else {
		prev.next = cur.next
	}

	if l.tail == cur {
		l.tail = prev
	}

	l.size--
	l.mods++
}

// Contains reports whether any element Equals value.
func (l *List[T]) Contains(value T) bool {
	if zero.IsNil(value) {
		return false
	}

	return compare.Contains(l.All(), value)
}

// Get returns the element at index. It returns an *IndexError when index is outside
// [0, Size()).
func (l *List[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		return zero.Value[T](), &IndexError{Index: index, Size: l.size}
	}

	cur := l.head
	for range index {
		cur = cur.next
	}

	return cur.value, nil
}

// First returns the smallest element, or ErrEmpty.
func (l *List[T]) First() (T, error) {
	if l.head == nil {
		return zero.Value[T](), ErrEmpty
	}

	return l.head.value, nil
}

// Last returns the largest element (the most recently added among equals), or ErrEmpty.
func (l *List[T]) Last() (T, error) {
	if l.tail == nil {
		return zero.Value[T](), ErrEmpty
	}

	return l.tail.value, nil
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0 && l.head == nil
}

// Size returns the number of elements, counting duplicates.
func (l *List[T]) Size() int {
	return l.size
}

// All returns an iterator over the elements in ascending order.
// This enables range-over-func syntax: for v := range list.All() { ... }
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// Entries returns the elements in ascending order, or nil if the list is empty.
func (l *List[T]) Entries() []T {
	if l.size == 0 {
		return nil
	}

	entries := make([]T, 0, l.size)

	for v := range l.All() {
		entries = append(entries, v)
	}

	return entries
}

// Clear removes every element.
func (l *List[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
	l.mods++
}

// Clone returns an independent list with the same elements in the same order.
// Elements themselves are copied by value, so pointer elements are shared.
func (l *List[T]) Clone() *List[T] {
	out := New[T]()

	for v := range l.All() {
		added := &node[T]{value: v}

		if out.tail == nil {
			out.head = added
		} else {
			out.tail.next = added
		}

		out.tail = added
		out.size++
	}

	return out
}

// String renders the elements in order, e.g. "[1, 2, 3]", or "[]" when empty.
func (l *List[T]) String() string {
	var sb strings.Builder

	sb.WriteByte('[')

	for cur := l.head; cur != nil; cur = cur.next {
		_, _ = fmt.Fprintf(&sb, "%v", cur.value)

		if cur.next != nil {
			sb.WriteString(", ")
		}
	}

	sb.WriteByte(']')

	return sb.String()
}
