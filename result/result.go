// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package result

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/z5labs/outcome/internal/nilness"
)

var (
	// ErrNilError is the value passed to panic by [Err] when it is
	// called with a nil error payload.
	ErrNilError = errors.New("result: error payload must not be nil")

	// ErrUninitialized is the value passed to panic by any payload
	// touching operation invoked on a zero value Result, that is, one
	// which was never produced by a constructor.
	ErrUninitialized = errors.New("result: use of uninitialized Result")
)

// BranchError is the value passed to panic by the unwrap and expect
// methods when they are invoked on the wrong branch. Msg names the
// branch which was actually present, including the error's string
// form when the Result was an Err.
type BranchError struct {
	Msg string
}

// Error implements the [builtin.error] interface.
func (e BranchError) Error() string {
	return e.Msg
}

// state discriminates the three representable conditions of a Result.
// The zero value is deliberately not a valid branch: a Result which
// never went through a constructor must be detected, since a real Err
// always carries a non-nil payload and a zero value has neither a
// valid Ok nor a valid Err payload.
type state uint8

const (
	uninitialized state = iota
	isOk
	isErr
)

// Result represents the outcome of an operation: either a success
// value (Ok) or a failure value (Err). The error branch always holds a
// non-nil payload.
//
// The zero value of Result is NOT Ok and NOT Err. Only [Ok], [Err] and
// the other constructors produce a usable Result; every operation
// besides [Result.IsOk], [Result.IsErr], [Result.Deconstruct] and
// [Result.String] panics with [ErrUninitialized] on a zero value.
//
// Result is comparable whenever T and E are, with Ok(a) == Ok(b) iff
// a == b, Err(x) == Err(y) iff x == y, and Ok never equal to Err.
type Result[T, E any] struct {
	state state
	value T
	err   E
}

// Ok returns a Result holding the success value v.
//
// The error type parameter cannot be inferred from the argument, so it
// comes first: Ok[string](42) builds a Result[int, string].
func Ok[E, T any](v T) Result[T, E] {
	return Result[T, E]{state: isOk, value: v}
}

// Err returns a Result holding the failure value e.
//
// It panics with [ErrNilError] if e is nil: an error branch without a
// payload is indistinguishable from a Result that was never
// constructed at all.
func Err[T, E any](e E) Result[T, E] {
	if nilness.IsNil(e) {
		panic(ErrNilError)
	}
	return Result[T, E]{state: isErr, err: e}
}

// check guards every payload touching operation against the zero
// value escape hatch.
func (r Result[T, E]) check() {
	if r.state == uninitialized {
		panic(ErrUninitialized)
	}
}

// IsOk reports whether the Result is a success. It reports false on
// both Err and the zero value, and never panics.
func (r Result[T, E]) IsOk() bool {
	return r.state == isOk
}

// IsErr reports whether the Result is a failure. It reports false on
// both Ok and the zero value, and never panics.
func (r Result[T, E]) IsErr() bool {
	return r.state == isErr
}

// IsOkAnd reports whether the Result is a success whose value
// satisfies pred. pred is never called on Err.
func (r Result[T, E]) IsOkAnd(pred func(T) bool) bool {
	r.check()
	return r.state == isOk && pred(r.value)
}

// IsErrAnd reports whether the Result is a failure whose payload
// satisfies pred. pred is never called on Ok.
func (r Result[T, E]) IsErrAnd(pred func(E) bool) bool {
	r.check()
	return r.state == isErr && pred(r.err)
}

// Contains reports whether the Result is a success holding a value
// equal to v.
func Contains[T comparable, E any](r Result[T, E], v T) bool {
	r.check()
	return r.state == isOk && r.value == v
}

// ContainsErr reports whether the Result is a failure holding a
// payload equal to e.
func ContainsErr[T any, E comparable](r Result[T, E], e E) bool {
	r.check()
	return r.state == isErr && r.err == e
}

// Map applies f to the success value. Err passes through untouched and
// f is never called.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	r.check()
	if r.state == isErr {
		return Result[U, E]{state: isErr, err: r.err}
	}
	return Result[U, E]{state: isOk, value: f(r.value)}
}

// MapErr applies f to the failure payload. Ok passes through untouched
// and f is never called. It panics with [ErrNilError] if f returns a
// nil payload.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	r.check()
	if r.state == isOk {
		return Result[T, F]{state: isOk, value: r.value}
	}
	return Err[T](f(r.err))
}

// Bind chains r with a Result returning function, railway style: the
// Result returned by f is the overall result, while Err bypasses f
// entirely and propagates unchanged.
func Bind[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	r.check()
	if r.state == isErr {
		return Result[U, E]{state: isErr, err: r.err}
	}
	return f(r.value)
}

// Or returns r if it is a success, otherwise other. other is evaluated
// eagerly by the caller; use [Result.OrElse] when computing the
// fallback is expensive.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	r.check()
	if r.state == isOk {
		return r
	}
	return other
}

// OrElse returns r if it is a success, otherwise the Result produced
// by f from the failure payload. f is called only on Err, exactly
// once.
func (r Result[T, E]) OrElse(f func(E) Result[T, E]) Result[T, E] {
	r.check()
	if r.state == isOk {
		return r
	}
	return f(r.err)
}

// Tap calls fn with the success value, if any, and returns r
// unchanged. It is a no-op on Err.
func (r Result[T, E]) Tap(fn func(T)) Result[T, E] {
	r.check()
	if r.state == isOk {
		fn(r.value)
	}
	return r
}

// TapErr calls fn with the failure payload, if any, and returns r
// unchanged. It is a no-op on Ok.
func (r Result[T, E]) TapErr(fn func(E)) Result[T, E] {
	r.check()
	if r.state == isErr {
		fn(r.err)
	}
	return r
}

// Get returns the success value and whether the Result is Ok. The
// returned value is the zero value on Err.
func (r Result[T, E]) Get() (T, bool) {
	r.check()
	return r.value, r.state == isOk
}

// GetErr returns the failure payload and whether the Result is Err.
// The returned payload is the zero value on Ok.
func (r Result[T, E]) GetErr() (E, bool) {
	r.check()
	return r.err, r.state == isErr
}

// TryGet returns the success value, the failure payload and whether
// the Result is Ok, enabling single call guard clauses:
//
//	v, e, ok := r.TryGet()
//	if !ok {
//	    return handle(e)
//	}
//
// The branch that is not present is returned as its zero value.
func (r Result[T, E]) TryGet() (T, E, bool) {
	r.check()
	return r.value, r.err, r.state == isOk
}

// Deconstruct projects the Result into an (ok, value, err) triple for
// pattern matching idioms. Unlike every other accessor it does not
// panic on the zero value: a Result which was never constructed
// deconstructs to (false, zero, zero), since this is a read only
// projection rather than an operation dereferencing a promised
// payload.
func (r Result[T, E]) Deconstruct() (bool, T, E) {
	return r.state == isOk, r.value, r.err
}

// Unwrap returns the success value. On Err it panics with a
// [BranchError] embedding the failure payload's string form.
func (r Result[T, E]) Unwrap() T {
	r.check()
	if r.state == isErr {
		panic(BranchError{Msg: fmt.Sprintf("result: Unwrap called on Err(%v)", r.err)})
	}
	return r.value
}

// UnwrapErr returns the failure payload. On Ok it panics with a
// [BranchError].
func (r Result[T, E]) UnwrapErr() E {
	r.check()
	if r.state == isOk {
		panic(BranchError{Msg: "result: UnwrapErr called but Result is Ok"})
	}
	return r.err
}

// Expect returns the success value. On Err it panics with a
// [BranchError] carrying msg and the failure payload's string form.
func (r Result[T, E]) Expect(msg string) T {
	r.check()
	if r.state == isErr {
		panic(BranchError{Msg: fmt.Sprintf("%s: Err(%v)", msg, r.err)})
	}
	return r.value
}

// ExpectErr returns the failure payload. On Ok it panics with a
// [BranchError] carrying msg.
func (r Result[T, E]) ExpectErr(msg string) E {
	r.check()
	if r.state == isOk {
		panic(BranchError{Msg: fmt.Sprintf("%s: Result is Ok", msg)})
	}
	return r.err
}

// UnwrapOr returns the success value or def on Err.
func (r Result[T, E]) UnwrapOr(def T) T {
	r.check()
	if r.state == isErr {
		return def
	}
	return r.value
}

// UnwrapOrElse returns the success value or the result of f applied to
// the failure payload. f is called only on Err.
func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	r.check()
	if r.state == isErr {
		return f(r.err)
	}
	return r.value
}

// Match calls okFn with the success value or errFn with the failure
// payload. Exactly one of the two is called. Use the package level
// [Match] when a value needs to be returned.
func (r Result[T, E]) Match(okFn func(T), errFn func(E)) {
	r.check()
	if r.state == isOk {
		okFn(r.value)
		return
	}
	errFn(r.err)
}

// Match collapses the Result into a single value by applying okFn to
// the success value or errFn to the failure payload. Exactly one of
// the two is called.
func Match[T, E, U any](r Result[T, E], okFn func(T) U, errFn func(E) U) U {
	r.check()
	if r.state == isOk {
		return okFn(r.value)
	}
	return errFn(r.err)
}

// MapOr applies f to the success value and returns the result, or def
// on Err. f is never called on Err.
func MapOr[T, U, E any](r Result[T, E], def U, f func(T) U) U {
	r.check()
	if r.state == isErr {
		return def
	}
	return f(r.value)
}

// MapOrElse applies f to the success value and returns the result, or
// applies def to the failure payload on Err. Exactly one of the two is
// called.
func MapOrElse[T, U, E any](r Result[T, E], def func(E) U, f func(T) U) U {
	r.check()
	if r.state == isErr {
		return def(r.err)
	}
	return f(r.value)
}

// Flatten collapses one level of nesting. An outer Err yields the
// outer payload, an outer Ok yields the inner Result as is.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	return Bind(r, func(inner Result[T, E]) Result[T, E] {
		return inner
	})
}

// Compare orders two Results. Err sorts before every Ok, two Oks order
// by success value and two Errs by failure payload. The result follows
// the [cmp.Compare] convention.
func Compare[T, E cmp.Ordered](a, b Result[T, E]) int {
	a.check()
	b.check()
	switch {
	case a.state == isOk && b.state == isOk:
		return cmp.Compare(a.value, b.value)
	case a.state == isErr && b.state == isErr:
		return cmp.Compare(a.err, b.err)
	case a.state == isOk:
		return 1
	default:
		return -1
	}
}

// String implements the [fmt.Stringer] interface. The rendered forms,
// Ok(v) and Err(e), are meant for diagnostics and are not a parseable
// wire format. Like [Result.Deconstruct], String is a read only
// projection and renders the zero value as Result(uninitialized)
// instead of panicking.
func (r Result[T, E]) String() string {
	switch r.state {
	case isOk:
		return fmt.Sprintf("Ok(%v)", r.value)
	case isErr:
		return fmt.Sprintf("Err(%v)", r.err)
	default:
		return "Result(uninitialized)"
	}
}
