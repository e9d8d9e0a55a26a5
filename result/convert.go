// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package result

import (
	"github.com/z5labs/outcome/internal/nilness"
	"github.com/z5labs/outcome/option"
)

// Of bridges Go's native (value, error) return shape into a Result: a
// non-nil error yields Err, otherwise Ok.
//
//	n, err := strconv.Atoi(s)
//	r := result.Of(n, err)
func Of[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[error](v)
}

// Success tags a bare value as the success payload. It disambiguates
// construction when the success and error types coincide and Ok/Err
// would otherwise read identically at the call site.
type Success[T any] struct {
	Value T
}

// Failure tags a bare value as the failure payload. It is the
// counterpart of [Success] for the error branch.
type Failure[E any] struct {
	Err E
}

// FromSuccess builds an Ok Result from a [Success] wrapper.
func FromSuccess[E, T any](s Success[T]) Result[T, E] {
	return Ok[E](s.Value)
}

// FromFailure builds an Err Result from a [Failure] wrapper. It panics
// with [ErrNilError] if the wrapped payload is nil.
func FromFailure[T, E any](f Failure[E]) Result[T, E] {
	return Err[T](f.Err)
}

// ToOption discards the failure payload: Ok(v) bridges to Some(v) and
// Err to None. A nil success payload also bridges to None, since a
// present Option value must never be an absence marker.
func (r Result[T, E]) ToOption() option.Option[T] {
	r.check()
	if r.state != isOk || nilness.IsNil(r.value) {
		return option.None[T]()
	}
	return option.Some(r.value)
}

// ErrToOption discards the success value: Err(e) bridges to Some(e)
// and Ok to None.
func (r Result[T, E]) ErrToOption() option.Option[E] {
	r.check()
	if r.state != isErr {
		return option.None[E]()
	}
	return option.Some(r.err)
}

// OkOr is the inverse of [Result.ToOption]: Some(v) bridges to Ok(v)
// and None to Err(e). e is evaluated eagerly by the caller; use
// [OkOrElse] when constructing the error is expensive.
func OkOr[T, E any](o option.Option[T], e E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[E](v)
	}
	return Err[T](e)
}

// OkOrElse bridges Some(v) to Ok(v) and None to Err(f()). f is called
// only on None, exactly once.
func OkOrElse[T, E any](o option.Option[T], f func() E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[E](v)
	}
	return Err[T](f())
}
