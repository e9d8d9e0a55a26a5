// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package async

import (
	"context"

	"github.com/z5labs/outcome"
	"github.com/z5labs/outcome/option"
)

// BindOption chains a pending Option with an asynchronous Option
// returning callback. The source is awaited first; on Some the
// callback's Task is awaited and its outcome adopted, on None the
// callback is never invoked and None propagates unchanged.
func BindOption[T, U any](t Task[option.Option[T]], f func(T) Task[option.Option[U]]) Task[option.Option[U]] {
	return TaskFunc[option.Option[U]](func(ctx context.Context) (option.Option[U], error) {
		o, err := t.Await(ctx)
		if err != nil {
			return option.None[U](), err
		}

		v, ok := o.Get()
		if !ok {
			return option.None[U](), nil
		}
		return f(v).Await(ctx)
	})
}

// MapOption transforms a pending Option with an asynchronous mapping
// callback. On None the callback is never invoked.
func MapOption[T, U any](t Task[option.Option[T]], f func(T) Task[U]) Task[option.Option[U]] {
	return TaskFunc[option.Option[U]](func(ctx context.Context) (option.Option[U], error) {
		o, err := t.Await(ctx)
		if err != nil {
			return option.None[U](), err
		}

		v, ok := o.Get()
		if !ok {
			return option.None[U](), nil
		}

		u, err := f(v).Await(ctx)
		if err != nil {
			return option.None[U](), err
		}
		return option.Some(u), nil
	})
}

// OrElseOption supplies an asynchronous fallback for a pending Option.
// The callback is invoked only when the source resolves to None.
func OrElseOption[T any](t Task[option.Option[T]], f func() Task[option.Option[T]]) Task[option.Option[T]] {
	return TaskFunc[option.Option[T]](func(ctx context.Context) (option.Option[T], error) {
		o, err := t.Await(ctx)
		if err != nil {
			return option.None[T](), err
		}

		if o.IsSome() {
			return o, nil
		}
		return f().Await(ctx)
	})
}

// TapOption runs an asynchronous side effect against the payload of a
// pending Option and passes the Option through unchanged. On None the
// callback is never invoked.
func TapOption[T any](t Task[option.Option[T]], f func(T) Task[outcome.Unit]) Task[option.Option[T]] {
	return TaskFunc[option.Option[T]](func(ctx context.Context) (option.Option[T], error) {
		o, err := t.Await(ctx)
		if err != nil {
			return option.None[T](), err
		}

		v, ok := o.Get()
		if !ok {
			return o, nil
		}

		_, err = f(v).Await(ctx)
		if err != nil {
			return option.None[T](), err
		}
		return o, nil
	})
}
