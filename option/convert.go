// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package option

import "iter"

// FromPtr bridges a pointer into an Option, treating nil as None.
// The pointee is copied, so later writes through ptr do not affect
// the returned Option.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// FromOk bridges Go's comma-ok convention into an Option, e.g. from a
// map lookup or type assertion.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// Ptr returns a pointer to the contained value, or nil on None. The
// pointer references a copy of the stored value.
func (o Option[T]) Ptr() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// Values yields the payloads of the present entries of seq, skipping
// absent ones. The returned sequence is lazy and can be re-ranged
// whenever seq can.
func Values[T any](seq iter.Seq[Option[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for o := range seq {
			if !o.some {
				continue
			}
			if !yield(o.value) {
				return
			}
		}
	}
}

// SliceValues collects the payloads of the present entries of opts
// into a new slice, preserving order.
func SliceValues[T any](opts []Option[T]) []T {
	values := make([]T, 0, len(opts))
	for _, o := range opts {
		if o.some {
			values = append(values, o.value)
		}
	}
	return values
}
