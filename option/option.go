// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package option

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/z5labs/outcome/internal/nilness"
)

var (
	// ErrNilValue is the value passed to panic by [Some] when it is
	// called with a nil value.
	ErrNilValue = errors.New("option: value must not be nil")

	// ErrNone is the value passed to panic by [Option.Unwrap] and,
	// wrapped with the caller supplied message, by [Option.Expect]
	// when no value is present.
	ErrNone = errors.New("option: no value is present")
)

// Option represents an optional value: it either holds exactly one
// non-nil value (Some) or nothing at all (None).
//
// The zero value of Option is None, so Options can be embedded in other
// structs safely. Option is comparable whenever T is comparable, with
// Some(a) == Some(b) iff a == b and None equal only to None.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option holding v.
//
// It panics with [ErrNilValue] if v is nil, since a present value must
// never be an absence marker. Use [None] or [FromPtr] to represent
// absence instead.
func Some[T any](v T) Option[T] {
	if nilness.IsNil(v) {
		panic(ErrNilValue)
	}
	return Option[T]{value: v, some: true}
}

// None returns the empty Option for type T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// IsSomeAnd reports whether a value is present and satisfies pred.
// pred is never called on None.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.some && pred(o.value)
}

// Contains reports whether the Option holds a value equal to v.
func Contains[T comparable](o Option[T], v T) bool {
	return o.some && o.value == v
}

// Map applies f to the contained value, if any. None passes through
// untouched and f is never called.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(f(o.value))
}

// Bind chains o with an Option returning function. The Option returned
// by f is the overall result, with no additional nesting. None
// short-circuits and f is never called.
func Bind[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return f(o.value)
}

// Filter keeps the contained value only if pred holds for it,
// otherwise the result is None. pred is never called on None.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// Zip combines two Options into one holding both values. The result is
// Some only if both inputs are Some.
func Zip[T, U any](a Option[T], b Option[U]) Option[Pair[T, U]] {
	if !a.some || !b.some {
		return None[Pair[T, U]]()
	}
	return Some(Pair[T, U]{First: a.value, Second: b.value})
}

// ZipWith combines two Options with f. f is called only when both
// inputs are Some.
func ZipWith[T, U, V any](a Option[T], b Option[U], f func(T, U) V) Option[V] {
	if !a.some || !b.some {
		return None[V]()
	}
	return Some(f(a.value, b.value))
}

// Or returns o if a value is present, otherwise other. other is
// evaluated eagerly by the caller; use [Option.OrElse] when computing
// the fallback is expensive.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// OrElse returns o if a value is present, otherwise the Option
// produced by f. f is called only on None, exactly once.
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return f()
}

// Tap calls fn with the contained value, if any, and returns o
// unchanged. It is a no-op on None.
func (o Option[T]) Tap(fn func(T)) Option[T] {
	if o.some {
		fn(o.value)
	}
	return o
}

// Get returns the contained value and whether one was present.
// It never panics; the returned value is the zero value on None.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the contained value. It panics with [ErrNone] on None.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(ErrNone)
	}
	return o.value
}

// Expect returns the contained value. On None it panics with an error
// wrapping [ErrNone] that carries msg.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(fmt.Errorf("%s: %w", msg, ErrNone))
	}
	return o.value
}

// UnwrapOr returns the contained value or def on None.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

// UnwrapOrElse returns the contained value or the result of f on None.
// f is called only on None.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if !o.some {
		return f()
	}
	return o.value
}

// Match calls someFn with the contained value when present, otherwise
// noneFn. Exactly one of the two is called. Use the package level
// [Match] when a value needs to be returned.
func (o Option[T]) Match(someFn func(T), noneFn func()) {
	if o.some {
		someFn(o.value)
		return
	}
	noneFn()
}

// Match collapses the Option into a single value by applying someFn to
// the contained value or calling noneFn on None. Exactly one of the
// two is called.
func Match[T, U any](o Option[T], someFn func(T) U, noneFn func() U) U {
	if !o.some {
		return noneFn()
	}
	return someFn(o.value)
}

// MapOr applies f to the contained value and returns the result, or
// def on None. f is never called on None.
func MapOr[T, U any](o Option[T], def U, f func(T) U) U {
	if !o.some {
		return def
	}
	return f(o.value)
}

// MapOrElse applies f to the contained value and returns the result,
// or the result of def on None. Exactly one of the two is called.
func MapOrElse[T, U any](o Option[T], def func() U, f func(T) U) U {
	if !o.some {
		return def()
	}
	return f(o.value)
}

// Flatten collapses one level of nesting. Some(Some(v)) becomes
// Some(v); Some(None) and None both become None.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	return Bind(o, func(inner Option[T]) Option[T] {
		return inner
	})
}

// Compare orders two Options. None sorts before every Some and two
// Somes order by their contained values. The result follows the
// [cmp.Compare] convention.
func Compare[T cmp.Ordered](a, b Option[T]) int {
	switch {
	case a.some && b.some:
		return cmp.Compare(a.value, b.value)
	case a.some:
		return 1
	case b.some:
		return -1
	default:
		return 0
	}
}

// String implements the [fmt.Stringer] interface. The rendered forms,
// Some(v) and None, are meant for diagnostics and are not a parseable
// wire format.
func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Pair holds two values of independent types. It is the payload type
// produced by [Zip].
type Pair[A, B any] struct {
	First  A
	Second B
}
