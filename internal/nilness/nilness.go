// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package nilness reports whether an arbitrary value is an absence marker.
package nilness

import "reflect"

// IsNil reports whether v is nil or a typed value of a nilable kind
// (pointer, interface, map, slice, channel or func) holding nil.
// Values of non-nilable kinds are never nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
