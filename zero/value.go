// Package zero provides utilities for working with zero values of generic types.
package zero

import "reflect"

// Value returns the zero value for type T.
// This is useful when a generic function has to return something alongside an error.
//
// Example:
//
//	var defaultInt = zero.Value[int]()        // returns 0
//	var defaultPtr = zero.Value[*MyStruct]()  // returns nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// IsNil reports whether value is absent: a nil interface, or a nil pointer,
// map, slice, channel or func. Value types (ints, strings, structs) are never nil.
//
// Example:
//
//	zero.IsNil[*MyStruct](nil) // returns true
//	zero.IsNil(0)              // returns false
//	zero.IsNil([]int(nil))     // returns true
func IsNil[T any](value T) bool {
	val := any(value)
	if val == nil {
		return true
	}

	valOf := reflect.ValueOf(val)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	}

	return false
}
