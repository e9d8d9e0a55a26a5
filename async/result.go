// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package async

import (
	"context"

	"github.com/z5labs/outcome"
	"github.com/z5labs/outcome/result"
)

// BindResult chains a pending Result with an asynchronous Result
// returning callback, railway style across a suspension point. The
// source is awaited first; on Ok the callback's Task is awaited and
// its outcome adopted, on Err the callback is never invoked and the
// failure payload propagates unchanged.
func BindResult[T, U, E any](t Task[result.Result[T, E]], f func(T) Task[result.Result[U, E]]) Task[result.Result[U, E]] {
	return TaskFunc[result.Result[U, E]](func(ctx context.Context) (result.Result[U, E], error) {
		r, err := t.Await(ctx)
		if err != nil {
			var zero result.Result[U, E]
			return zero, err
		}

		v, e, ok := r.TryGet()
		if !ok {
			return result.Err[U](e), nil
		}
		return f(v).Await(ctx)
	})
}

// MapResult transforms the success value of a pending Result with an
// asynchronous mapping callback. On Err the callback is never invoked.
func MapResult[T, U, E any](t Task[result.Result[T, E]], f func(T) Task[U]) Task[result.Result[U, E]] {
	return TaskFunc[result.Result[U, E]](func(ctx context.Context) (result.Result[U, E], error) {
		r, err := t.Await(ctx)
		if err != nil {
			var zero result.Result[U, E]
			return zero, err
		}

		v, e, ok := r.TryGet()
		if !ok {
			return result.Err[U](e), nil
		}

		u, err := f(v).Await(ctx)
		if err != nil {
			var zero result.Result[U, E]
			return zero, err
		}
		return result.Ok[E](u), nil
	})
}

// MapErr transforms the failure payload of a pending Result with an
// asynchronous mapping callback. On Ok the callback is never invoked.
func MapErr[T, E, F any](t Task[result.Result[T, E]], f func(E) Task[F]) Task[result.Result[T, F]] {
	return TaskFunc[result.Result[T, F]](func(ctx context.Context) (result.Result[T, F], error) {
		r, err := t.Await(ctx)
		if err != nil {
			var zero result.Result[T, F]
			return zero, err
		}

		v, e, ok := r.TryGet()
		if ok {
			return result.Ok[F](v), nil
		}

		fe, err := f(e).Await(ctx)
		if err != nil {
			var zero result.Result[T, F]
			return zero, err
		}
		return result.Err[T](fe), nil
	})
}

// OrElseResult supplies an asynchronous recovery for a pending Result.
// The callback receives the failure payload and is invoked only when
// the source resolves to Err.
func OrElseResult[T, E any](t Task[result.Result[T, E]], f func(E) Task[result.Result[T, E]]) Task[result.Result[T, E]] {
	return TaskFunc[result.Result[T, E]](func(ctx context.Context) (result.Result[T, E], error) {
		r, err := t.Await(ctx)
		if err != nil {
			var zero result.Result[T, E]
			return zero, err
		}

		e, isErr := r.GetErr()
		if !isErr {
			return r, nil
		}
		return f(e).Await(ctx)
	})
}

// TapResult runs an asynchronous side effect against the success value
// of a pending Result and passes the Result through unchanged. On Err
// the callback is never invoked.
func TapResult[T, E any](t Task[result.Result[T, E]], f func(T) Task[outcome.Unit]) Task[result.Result[T, E]] {
	return TaskFunc[result.Result[T, E]](func(ctx context.Context) (result.Result[T, E], error) {
		r, err := t.Await(ctx)
		if err != nil {
			var zero result.Result[T, E]
			return zero, err
		}

		v, ok := r.Get()
		if !ok {
			return r, nil
		}

		_, err = f(v).Await(ctx)
		if err != nil {
			var zero result.Result[T, E]
			return zero, err
		}
		return r, nil
	})
}

// TapErr runs an asynchronous side effect against the failure payload
// of a pending Result and passes the Result through unchanged. On Ok
// the callback is never invoked.
func TapErr[T, E any](t Task[result.Result[T, E]], f func(E) Task[outcome.Unit]) Task[result.Result[T, E]] {
	return TaskFunc[result.Result[T, E]](func(ctx context.Context) (result.Result[T, E], error) {
		r, err := t.Await(ctx)
		if err != nil {
			var zero result.Result[T, E]
			return zero, err
		}

		e, isErr := r.GetErr()
		if !isErr {
			return r, nil
		}

		_, err = f(e).Await(ctx)
		if err != nil {
			var zero result.Result[T, E]
			return zero, err
		}
		return r, nil
	})
}
