// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package async

import "context"

// Task represents a pending computation producing a value of type T.
//
// The error returned by Await carries only infrastructure signals,
// most notably cancellation propagating out of the underlying
// computation; domain failure belongs inside T itself, for example as
// the Err branch of a [github.com/z5labs/outcome/result.Result]. Tasks
// built by the combinators in this package are lazy: no work happens
// until Await is called and no goroutines are spawned on the caller's
// behalf.
type Task[T any] interface {
	Await(context.Context) (T, error)
}

// TaskFunc is a functional implementation of the Task interface.
type TaskFunc[T any] func(context.Context) (T, error)

// Await implements the [Task] interface.
func (f TaskFunc[T]) Await(ctx context.Context) (T, error) {
	return f(ctx)
}

// Resolved wraps an already available value in a Task. Awaiting it
// completes immediately without allocating any synchronization
// machinery, which makes it the cheap way to feed known values into a
// combinator chain.
func Resolved[T any](v T) Task[T] {
	return TaskFunc[T](func(context.Context) (T, error) {
		return v, nil
	})
}
