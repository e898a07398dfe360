// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as elements of sorted containers.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Int64], [Float64], [Byte],
// [String] and [NaturalString]. These types are designed to work with
// [github.com/amp-labs/sortedlist/sortedlist.List].
//
// The Sortable interface extends [github.com/amp-labs/sortedlist/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
//
// # Usage
//
//	list := sortedlist.New[sortable.Int]()
//	_ = list.Add(sortable.Int(42))
//	_ = list.Add(sortable.Int(10))
//	_ = list.Add(sortable.Int(25))
//
//	// Elements are returned in sorted order: 10, 25, 42
//	for val := range list.All() {
//	    fmt.Println(int(val))
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (t Task) Equals(other Task) bool {
//	    return t.Priority == other.Priority && t.Name == other.Name
//	}
//
//	func (t Task) LessThan(other Task) bool {
//	    if t.Priority != other.Priority {
//	        return t.Priority < other.Priority
//	    }
//	    return t.Name < other.Name
//	}
//
// Equals and the ordering must agree: a sorted list finds elements to remove with
// [Compare] but answers membership with Equals. If a type considers two values equal
// under one relation and not the other, those operations disagree.
package sortable
